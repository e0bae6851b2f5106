package labelkit

// LookupTable is an indexed table of RGBA colors with channels in [0,1].
type LookupTable interface {
	NumberOfColors() int
	TableValue(index int) [4]float64
}

// ColorSource is the color table a LabelComboBox mirrors. It is owned by the
// caller; the widget only keeps a reference and a change subscription.
type ColorSource interface {
	LookupTable() LookupTable
	ColorName(index int) string
	// NamesInitialised reports whether ColorName is ready to be used. A
	// source that is still loading returns false.
	NamesInitialised() bool
	// Subscribe registers fn to run after every change to the source and
	// returns a function that cancels the registration.
	Subscribe(fn func()) (unsubscribe func())
}

// SourceDescriber is implemented by sources that can identify themselves in
// diagnostics.
type SourceDescriber interface {
	ClassName() string
	ID() string
	TypeString() string
}

package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Scaled multiplies every side by the window scale factor.
func (p Padding) Scaled() Padding {
	return Padding{Top: Scale(p.Top), Right: Scale(p.Right), Bottom: Scale(p.Bottom), Left: Scale(p.Left)}
}

func (p Padding) Horizontal() int32 { return p.Left + p.Right }

func (p Padding) Vertical() int32 { return p.Top + p.Bottom }

package labelkit

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"go.uber.org/atomic"
)

// LabelComboBox mirrors a ColorSource into an ItemList and tracks which
// color is selected.
//
// Selection is kept as a logical index into the source, -1 meaning none.
// The list is rebuilt from scratch whenever the source changes, the source
// is replaced, or the "None" row or name visibility is toggled, and every
// rebuild resets the selection to -1.
//
// A LabelComboBox is not safe for concurrent use. Drive it from the UI
// goroutine, including source change notifications.
type LabelComboBox struct {
	list            ItemList
	unsubscribeList func()

	source            ColorSource
	unsubscribeSource func()

	enabled           atomic.Bool
	noneEnabled       bool
	colorNameVisible  bool
	maximumColorCount int
	currentColor      int
	swatchSize        int

	// reconciling suppresses selection handling while rows are rewritten.
	reconciling bool

	notifier selectionNotifier
	logger   *slog.Logger
}

// NewLabelComboBox creates a disabled widget rendering into list. A nil list
// gets a fresh ListModel.
func NewLabelComboBox(list ItemList) *LabelComboBox {
	if list == nil {
		list = NewListModel()
	}

	b := &LabelComboBox{
		list:             list,
		colorNameVisible: true,
		currentColor:     -1,
		swatchSize:       internal.DefaultSwatchSize,
		logger:           internal.ComponentLogger("LabelComboBox"),
	}
	b.unsubscribeList = list.OnCurrentIndexChanged(b.onCurrentIndexChanged)

	return b
}

// List returns the list the widget renders into.
func (b *LabelComboBox) List() ItemList {
	return b.list
}

// ColorSource returns the current source, or nil.
func (b *LabelComboBox) ColorSource() ColorSource {
	return b.source
}

// SetColorSource replaces the mirrored source. The subscription to the
// previous source is cancelled before the new one is registered. A nil
// source disables the widget and empties the list.
func (b *LabelComboBox) SetColorSource(source ColorSource) {
	if b.unsubscribeSource != nil {
		b.unsubscribeSource()
		b.unsubscribeSource = nil
	}

	b.source = source
	b.enabled.Store(source != nil)

	if source == nil {
		b.clear()
		return
	}

	b.unsubscribeSource = source.Subscribe(b.Rebuild)
	b.Rebuild()
}

// IsEnabled reports whether the widget has a source to select from.
func (b *LabelComboBox) IsEnabled() bool {
	return b.enabled.Load()
}

// CurrentColor returns the selected logical index, -1 when nothing is
// selected.
func (b *LabelComboBox) CurrentColor() int {
	return b.currentColor
}

// CurrentColorValue resolves the selected index to its color.
func (b *LabelComboBox) CurrentColorValue() Color {
	return b.ColorFromIndex(b.currentColor)
}

// CurrentColorName resolves the selected index to its name.
func (b *LabelComboBox) CurrentColorName() string {
	return b.colorName(b.currentColor)
}

// SetCurrentColor selects a logical index. Requests outside the rows on
// display are ignored; -1 is only accepted when the "None" row is enabled.
//
// The change is applied to the list, and the list's change notification
// updates CurrentColor and emits the selection events, exactly as if the
// user had picked the row.
func (b *LabelComboBox) SetCurrentColor(index int) {
	if index == b.currentColor {
		return
	}

	count := b.list.Count()
	lowest, highest := 0, count-1
	if b.noneEnabled {
		lowest, highest = -1, count-2
	}

	if index < lowest || index > highest {
		b.logger.Debug("Ignoring out of range color", "index", index, "min", lowest, "max", highest)
		return
	}

	b.list.SetCurrentIndex(DisplayIndex(index, b.noneEnabled))
}

// NoneEnabled reports whether the list starts with a "None" row.
func (b *LabelComboBox) NoneEnabled() bool {
	return b.noneEnabled
}

// SetNoneEnabled adds or removes the "None" row at the top of the list.
func (b *LabelComboBox) SetNoneEnabled(enabled bool) {
	if b.noneEnabled == enabled {
		return
	}
	b.noneEnabled = enabled
	b.refresh()
}

// ColorNameVisible reports whether rows show color names.
func (b *LabelComboBox) ColorNameVisible() bool {
	return b.colorNameVisible
}

// SetColorNameVisible shows or hides color names. Hidden names leave only
// the swatches.
func (b *LabelComboBox) SetColorNameVisible(visible bool) {
	if b.colorNameVisible == visible {
		return
	}
	b.colorNameVisible = visible
	b.refresh()
}

// MaximumColorCount returns the listing cap, 0 when uncapped.
func (b *LabelComboBox) MaximumColorCount() int {
	return b.maximumColorCount
}

// SetMaximumColorCount caps how many colors are listed; 0 or less means no
// cap. The "None" row does not count towards the cap. The new cap applies
// from the next rebuild on.
func (b *LabelComboBox) SetMaximumColorCount(maximum int) {
	b.maximumColorCount = max(maximum, 0)
}

// SetSwatchSize sets the edge length of row icons in pixels. Applies from
// the next rebuild on.
func (b *LabelComboBox) SetSwatchSize(size int) {
	if size > 0 {
		b.swatchSize = size
	}
}

// OnColorChanged registers fn to receive the selected color. The
// returned function cancels the registration.
func (b *LabelComboBox) OnColorChanged(fn func(Color)) (unsubscribe func()) {
	return b.notifier.colors.add(fn)
}

// OnColorNameChanged registers fn to receive the selected color's name,
// "" when nothing is selected.
func (b *LabelComboBox) OnColorNameChanged(fn func(string)) (unsubscribe func()) {
	return b.notifier.names.add(fn)
}

// OnIndexChanged registers fn to receive the selected logical index.
func (b *LabelComboBox) OnIndexChanged(fn func(int)) (unsubscribe func()) {
	return b.notifier.indices.add(fn)
}

// AddListener registers all three callbacks of l at once.
func (b *LabelComboBox) AddListener(l SelectionListener) (remove func()) {
	return b.notifier.addListener(l)
}

// ColorFromIndex resolves a logical index against the source's lookup
// table. Negative indices, a missing source and indices past the table end
// all give InvalidColor.
func (b *LabelComboBox) ColorFromIndex(index int) Color {
	if index < 0 || b.source == nil {
		return InvalidColor
	}

	table := b.source.LookupTable()
	if table == nil || index >= table.NumberOfColors() {
		return InvalidColor
	}

	return ColorFromTableValue(table.TableValue(index))
}

// Rebuild repopulates the list from the source. It runs automatically on
// source changes; call it after SetMaximumColorCount to apply a new cap.
//
// A source whose names are not initialised yet leaves the list empty. That
// is logged and otherwise ignored: the source will notify again once loaded.
func (b *LabelComboBox) Rebuild() {
	if b.source == nil {
		b.clear()
		return
	}

	if err := b.reconcile(); err != nil {
		b.logger.Error("Rebuild aborted", "error", err)
	}
}

// Close cancels the source and list subscriptions. The widget must not be
// used afterwards.
func (b *LabelComboBox) Close() {
	if b.unsubscribeSource != nil {
		b.unsubscribeSource()
		b.unsubscribeSource = nil
	}
	if b.unsubscribeList != nil {
		b.unsubscribeList()
		b.unsubscribeList = nil
	}
	b.enabled.Store(false)
}

func (b *LabelComboBox) refresh() {
	if b.source != nil {
		b.Rebuild()
	}
}

// reconcile rewrites the whole list from the current flags and source. It
// is the only path that changes rows, so the "None" row, the name
// visibility and the cap can never drift apart.
func (b *LabelComboBox) reconcile() error {
	rows, err := b.desiredRows()

	previous := b.currentColor

	b.reconciling = true
	b.list.Clear()
	for _, row := range rows {
		b.list.AddItem(row.Icon, row.Text)
	}
	if err == nil {
		// Row 0 is "None" when enabled, which is what -1 maps to.
		b.list.SetCurrentIndex(DisplayIndex(-1, b.noneEnabled))
	}
	b.reconciling = false

	b.resetSelection(previous)
	return err
}

func (b *LabelComboBox) desiredRows() ([]Item, error) {
	if !b.source.NamesInitialised() {
		return nil, ErrNamesNotInitialised
	}

	count := b.visibleColorCount()
	rows := make([]Item, 0, count+1)

	if b.noneEnabled {
		rows = append(rows, Item{Icon: b.noneSwatch(), Text: internal.Localize(internal.MsgLabelNone, "None")})
	}

	for i := 0; i < count; i++ {
		text := ""
		if b.colorNameVisible {
			text = b.source.ColorName(i)
		}
		rows = append(rows, Item{Icon: b.swatch(b.ColorFromIndex(i)), Text: text})
	}

	return rows, nil
}

func (b *LabelComboBox) visibleColorCount() int {
	table := b.source.LookupTable()
	if table == nil {
		b.logger.Warn("Color source has no lookup table")
		return 0
	}

	count := table.NumberOfColors()
	if b.maximumColorCount > 0 && b.maximumColorCount < count {
		count = b.maximumColorCount
	}
	return count
}

func (b *LabelComboBox) swatch(c Color) image.Image {
	if !c.IsValid() {
		return nil
	}

	nrgba := c.NRGBA()
	img, err := internal.RenderSwatch(&nrgba, b.swatchSize)
	if err != nil {
		b.logger.Warn("Failed to render swatch", "color", c.Hex(), "error", err)
		return nil
	}
	return img
}

// noneSwatch is the struck-through frame shown on the "None" row.
func (b *LabelComboBox) noneSwatch() image.Image {
	img, err := internal.RenderSwatch(nil, b.swatchSize)
	if err != nil {
		b.logger.Warn("Failed to render none swatch", "error", err)
		return nil
	}
	return img
}

func (b *LabelComboBox) clear() {
	previous := b.currentColor

	b.reconciling = true
	b.list.Clear()
	b.reconciling = false

	b.resetSelection(previous)
}

// resetSelection puts the selection back to -1 and tells subscribers if it
// was pointing at a color before.
func (b *LabelComboBox) resetSelection(previous int) {
	b.currentColor = -1
	if previous != -1 {
		b.notifier.emit(InvalidColor, "", -1)
	}
}

func (b *LabelComboBox) onCurrentIndexChanged(display int) {
	if b.reconciling {
		return
	}

	index := -1
	if display >= 0 {
		index = LogicalIndex(display, b.noneEnabled)
	}

	b.currentColor = index
	b.notifier.emit(b.ColorFromIndex(index), b.colorName(index), index)
}

func (b *LabelComboBox) colorName(index int) string {
	if index < 0 || b.source == nil {
		return ""
	}
	return b.source.ColorName(index)
}

// LogValue reports the widget state for structured logging.
func (b *LabelComboBox) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Any("color_source", describeSource(b.source)),
		slog.Int("current_color", b.currentColor),
		slog.Bool("none_enabled", b.noneEnabled),
		slog.Bool("color_name_visible", b.colorNameVisible),
		slog.Int("maximum_color_count", b.maximumColorCount),
		slog.Bool("enabled", b.enabled.Load()),
		slog.Int("rows", b.list.Count()),
		slog.Int("index_subscribers", b.notifier.indices.len()),
	}
	return slog.GroupValue(attrs...)
}

func (b *LabelComboBox) String() string {
	return fmt.Sprintf("LabelComboBox{source: %s, current: %d, none: %t, names: %t, max: %d}",
		describeSource(b.source), b.currentColor, b.noneEnabled, b.colorNameVisible, b.maximumColorCount)
}

func describeSource(source ColorSource) string {
	if source == nil {
		return "null"
	}
	if d, ok := source.(SourceDescriber); ok {
		return fmt.Sprintf("%s(id=%s, type=%s)", d.ClassName(), d.ID(), d.TypeString())
	}
	return fmt.Sprintf("%T", source)
}

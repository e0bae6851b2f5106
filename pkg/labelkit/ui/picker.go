package ui

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/ui/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// PickerSettings configures LabelPicker.
type PickerSettings struct {
	// ConfirmButton commits the highlighted row (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton leaves without committing (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton hides the back hint and ignores the back button
	DisableBackButton bool
	// DisableToggles ignores X (toggle "None" row) and Y (toggle names)
	DisableToggles bool
	// Margins around the title, list and footer before scaling
	Margins internal.Padding
}

type pickerController struct {
	title    string
	box      *labelkit.LabelComboBox
	settings PickerSettings

	cursor      int
	first       int
	visibleRows int

	directional   internal.DirectionalInput
	swatches      *internal.TextureCache
	inputDelay    time.Duration
	lastInputTime time.Time

	confirmed bool
	cancelled bool
	logger    *slog.Logger
}

// LabelPicker shows the rows of box full screen and lets the user move
// through them. Confirming a row selects it in the box's list, which
// updates the box and fires its change events. Toggling the "None" row or
// name visibility rebuilds the box and so clears its selection.
//
// Returns ErrCancelled if the user presses the back button, and
// ErrNoColorSource if box has nothing to show.
func LabelPicker(title string, box *labelkit.LabelComboBox, settings PickerSettings) (*PickerResult, error) {
	if box == nil || box.ColorSource() == nil {
		return nil, labelkit.ErrNoColorSource
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, labelkit.NewInfrastructureError("picker", fmt.Errorf("ui not initialised"))
	}

	c := newPickerController(title, box, settings)
	defer c.swatches.Destroy()

	c.logger.Debug("Picker opened", "box", box)

	for c.handleEvents() && c.drainHardwareKeys(window.HardwareKeys) {
		c.handleRepeat()
		c.render(window)
	}

	if c.cancelled {
		return nil, labelkit.ErrCancelled
	}

	return c.result(), nil
}

func newPickerController(title string, box *labelkit.LabelComboBox, settings PickerSettings) *pickerController {
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonA
	}
	if settings.BackButton == constants.VirtualButtonUnassigned {
		settings.BackButton = constants.VirtualButtonB
	}
	if settings.Margins == (internal.Padding{}) {
		settings.Margins = internal.UniformPadding(20)
	}

	c := &pickerController{
		title:         title,
		box:           box,
		settings:      settings,
		directional:   internal.NewDirectionalInput(),
		swatches:      internal.NewTextureCache(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
		logger:        lk.ComponentLogger("LabelPicker"),
	}

	list := box.List()
	c.cursor = clampCursor(list.CurrentIndex(), list.Count())
	return c
}

func (c *pickerController) result() *PickerResult {
	index := c.box.CurrentColor()
	action := PickerActionSelected
	if index < 0 {
		action = PickerActionNoneSelected
	}
	return &PickerResult{
		Action: action,
		Index:  index,
		Color:  c.box.CurrentColorValue(),
		Name:   c.box.CurrentColorName(),
	}
}

func (c *pickerController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || inputEvent.Repeat {
				continue
			}
			if !c.handleInput(inputEvent, true) {
				return false
			}
		}
	}
	return true
}

// drainHardwareKeys handles what the evdev reader queued since the last frame.
func (c *pickerController) drainHardwareKeys(keys *internal.HardwareKeys) bool {
	if keys == nil {
		return true
	}
	for {
		select {
		case ev, ok := <-keys.Events():
			if !ok {
				return true
			}
			// Wheels never release, so device input bypasses hold-to-repeat.
			if !c.handleInput(&ev, false) {
				return false
			}
		default:
			return true
		}
	}
}

// handleInput returns false once the picker should close.
func (c *pickerController) handleInput(ev *internal.Event, holdable bool) bool {
	if !ev.Pressed {
		c.directional.SetHeld(ev.Button, false)
		return true
	}

	if dir := internal.DirectionFor(ev.Button); dir != internal.DirectionNone {
		if holdable {
			c.directional.SetHeld(ev.Button, true)
		}
		c.navigate(dir)
		return true
	}

	if time.Since(c.lastInputTime) < c.inputDelay {
		return true
	}
	c.lastInputTime = time.Now()

	switch ev.Button {
	case c.settings.ConfirmButton, constants.VirtualButtonStart:
		return !c.confirm()
	case c.settings.BackButton:
		if !c.settings.DisableBackButton {
			c.cancelled = true
			return false
		}
	case constants.VirtualButtonX:
		if !c.settings.DisableToggles {
			c.toggleNone()
		}
	case constants.VirtualButtonY:
		if !c.settings.DisableToggles {
			c.box.SetColorNameVisible(!c.box.ColorNameVisible())
			c.cursor = clampCursor(c.cursor, c.box.List().Count())
		}
	}
	return true
}

func (c *pickerController) handleRepeat() {
	if dir := c.directional.Update(); dir != internal.DirectionNone {
		c.navigate(dir)
	}
}

func (c *pickerController) navigate(dir internal.Direction) {
	page := max(c.visibleRows, 1)
	delta := 0
	switch dir {
	case internal.DirectionUp:
		delta = -1
	case internal.DirectionDown:
		delta = 1
	case internal.DirectionPageUp:
		delta = -page
	case internal.DirectionPageDown:
		delta = page
	}
	c.cursor = moveCursor(c.cursor, delta, c.box.List().Count())
}

// confirm commits the highlighted row. An empty list has nothing to commit.
func (c *pickerController) confirm() bool {
	list := c.box.List()
	if list.Count() == 0 {
		return false
	}
	list.SetCurrentIndex(c.cursor)
	c.confirmed = true
	c.logger.Debug("Picker confirmed", "index", c.box.CurrentColor(), "name", c.box.CurrentColorName())
	return true
}

// toggleNone keeps the cursor on the same color while the "None" row
// appears or disappears above it.
func (c *pickerController) toggleNone() {
	wasEnabled := c.box.NoneEnabled()
	logical := labelkit.LogicalIndex(c.cursor, wasEnabled)

	c.box.SetNoneEnabled(!wasEnabled)

	c.cursor = clampCursor(labelkit.DisplayIndex(logical, !wasEnabled), c.box.List().Count())
}

func (c *pickerController) render(window *internal.Window) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	window.Clear()

	width := window.GetWidth()
	height := window.GetHeight()
	margins := c.settings.Margins.Scaled()

	titleHeight := int32(0)
	if c.title != "" {
		_, titleHeight = renderText(renderer, internal.Fonts.LargeFont, c.title, margins.Left, margins.Top, theme.TextColor)
	}

	rowHeight := internal.Scale(constants.DefaultRowHeight)
	swatchEdge := internal.Scale(constants.DefaultSwatchSize)
	listTop := margins.Top + titleHeight + internal.Scale(constants.DefaultTitleSpacing)
	footerHeight := int32(internal.Fonts.SmallFont.Height()) + margins.Bottom
	c.visibleRows = max(int((height-listTop-footerHeight)/max(rowHeight, 1)), 1)

	list := c.box.List()
	total := list.Count()

	if total == 0 {
		msg := lk.Localize(lk.MsgPickerEmpty, "No colors available")
		w, _ := textSize(internal.Fonts.MediumFont, msg)
		renderText(renderer, internal.Fonts.MediumFont, msg, (width-w)/2, height/2, theme.HintColor)
	}

	c.first = scrollWindow(c.cursor, c.first, c.visibleRows, total)
	committed := list.CurrentIndex()
	last := min(c.first+c.visibleRows, total)

	for i := c.first; i < last; i++ {
		y := listTop + int32(i-c.first)*rowHeight
		c.renderRow(renderer, theme, list, i, i == committed, margins, width, y, rowHeight, swatchEdge)
	}

	font := internal.Fonts.SmallFont
	if c.first > 0 {
		w, _ := textSize(font, constants.ScrollUp)
		renderText(renderer, font, constants.ScrollUp, width-margins.Right-w, listTop, theme.AccentColor)
	}
	if last < total {
		w, h := textSize(font, constants.ScrollDown)
		renderText(renderer, font, constants.ScrollDown, width-margins.Right-w, listTop+int32(c.visibleRows)*rowHeight-h, theme.AccentColor)
	}

	c.renderFooter(renderer, theme, margins, height)

	window.Present()
}

func (c *pickerController) renderRow(renderer *sdl.Renderer, theme internal.Theme, list labelkit.ItemList, i int, committed bool, margins internal.Padding, width, y, rowHeight, swatchEdge int32) {
	textColor := theme.TextColor
	if i == c.cursor {
		hl := theme.HighlightColor
		renderer.SetDrawColor(hl.R, hl.G, hl.B, hl.A)
		renderer.FillRect(&sdl.Rect{X: margins.Left, Y: y, W: width - margins.Horizontal(), H: rowHeight})
		textColor = theme.HighlightedTextColor
	}

	font := internal.Fonts.MediumFont
	x := margins.Left + internal.Scale(8)

	markerWidth, _ := textSize(font, constants.Selected)
	if committed {
		_, h := textSize(font, constants.Selected)
		renderText(renderer, font, constants.Selected, x, y+(rowHeight-h)/2, theme.AccentColor)
	}
	x += markerWidth + internal.Scale(8)

	swatchRect := sdl.Rect{X: x, Y: y + (rowHeight-swatchEdge)/2, W: swatchEdge, H: swatchEdge}
	if icon := list.ItemIcon(i); icon != nil {
		c.renderSwatch(renderer, icon, &swatchRect)
		border := theme.SwatchBorderColor
		renderer.SetDrawColor(border.R, border.G, border.B, border.A)
		renderer.DrawRect(&swatchRect)
	} else {
		w, h := textSize(font, constants.NoColor)
		renderText(renderer, font, constants.NoColor, x+(swatchEdge-w)/2, y+(rowHeight-h)/2, textColor)
	}
	x += swatchEdge + internal.Scale(12)

	if text := list.ItemText(i); text != "" {
		_, h := textSize(font, text)
		renderText(renderer, font, text, x, y+(rowHeight-h)/2, textColor)
	}
}

func (c *pickerController) renderSwatch(renderer *sdl.Renderer, icon image.Image, dst *sdl.Rect) {
	texture, err := c.swatches.Image(renderer, swatchKey(icon), toRGBA(icon))
	if err != nil {
		c.logger.Warn("Failed to upload swatch", "error", err)
		return
	}
	renderer.Copy(texture, nil, dst)
}

func (c *pickerController) renderFooter(renderer *sdl.Renderer, theme internal.Theme, margins internal.Padding, height int32) {
	font := internal.Fonts.SmallFont
	y := height - margins.Bottom - int32(font.Height())
	x := margins.Left

	w, _ := renderText(renderer, font, fmt.Sprintf("%s %s", c.settings.ConfirmButton.GetName(), lk.Localize(lk.MsgFooterSelect, "Select")), x, y, theme.HintColor)
	x += w + internal.Scale(24)

	if !c.settings.DisableBackButton {
		renderText(renderer, font, fmt.Sprintf("%s %s", c.settings.BackButton.GetName(), lk.Localize(lk.MsgFooterBack, "Back")), x, y, theme.HintColor)
	}
}

// swatchKey identifies a swatch by its size, its center color and an
// interior sample that tells the hollow "no color" frame from a fill.
func swatchKey(img image.Image) string {
	b := img.Bounds()
	r, g, bl, a := img.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2).RGBA()
	_, _, _, ia := img.At(b.Min.X+b.Dx()/4, b.Min.Y+b.Dy()/4).RGBA()
	return fmt.Sprintf("%dx%d#%04x%04x%04x%04x/%04x", b.Dx(), b.Dy(), r, g, bl, a, ia)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func textSize(font *ttf.Font, text string) (int32, int32) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// renderText draws text at x,y and returns the size it took.
func renderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if text == "" {
		return 0, 0
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
	return surface.W, surface.H
}

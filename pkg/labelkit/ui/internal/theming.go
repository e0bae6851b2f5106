package internal

import (
	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the pickers.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background
	AccentColor          sdl.Color // Committed-row marker, scroll indicators
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted rows
	HintColor            sdl.Color // Footer and empty-list text
	BackgroundColor      sdl.Color // Screen background color
	SwatchBorderColor    sdl.Color // Frame drawn around swatches
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme = DefaultTheme("")

// DefaultTheme is a dark theme using the font at fontPath.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x008080),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0xB4B4B4),
		BackgroundColor:      HexToColor(0x101418),
		SwatchBorderColor:    HexToColor(0x404040),
		FontPath:             fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ToSDLColor converts a label color. InvalidColor becomes transparent.
func ToSDLColor(c labelkit.Color) sdl.Color {
	n := c.NRGBA()
	return sdl.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

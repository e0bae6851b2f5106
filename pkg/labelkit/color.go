package labelkit

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with float channels in [0,1]. The zero value is
// InvalidColor, which stands for "no color" and is distinct from
// transparent black.
type Color struct {
	R, G, B, A float64
	valid      bool
}

// InvalidColor is returned wherever a logical index resolves to no color.
var InvalidColor = Color{}

// NewColor builds a valid color, clamping each channel to [0,1].
func NewColor(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a), valid: true}
}

// ColorFromTableValue converts a lookup table entry into a Color.
//
// Some tables store opaque black with a zero alpha, so whenever red, green
// and blue are all exactly 0 the alpha is forced to 1, whatever was stored.
func ColorFromTableValue(v [4]float64) Color {
	if v[0] == 0 && v[1] == 0 && v[2] == 0 {
		v[3] = 1
	}
	return NewColor(v[0], v[1], v[2], v[3])
}

// IsValid reports whether c is a real color rather than InvalidColor.
func (c Color) IsValid() bool {
	return c.valid
}

// RGBA implements image/color.Color. InvalidColor is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.valid {
		return 0, 0, 0, 0
	}
	return c.NRGBA().RGBA()
}

// NRGBA converts to 8-bit non-premultiplied channels.
func (c Color) NRGBA() color.NRGBA {
	if !c.valid {
		return color.NRGBA{}
	}
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Hex renders the color as #rrggbbaa, or "" for InvalidColor.
func (c Color) Hex() string {
	if !c.valid {
		return ""
	}
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c Color) String() string {
	if !c.valid {
		return "invalid"
	}
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

package labelkit

import (
	"image/color"
	"testing"
)

func TestColorFromTableValueBlackAlpha(t *testing.T) {
	tests := []struct {
		name   string
		stored [4]float64
		want   Color
	}{
		{"black with partial alpha", [4]float64{0, 0, 0, 0.37}, NewColor(0, 0, 0, 1)},
		{"black with zero alpha", [4]float64{0, 0, 0, 0}, NewColor(0, 0, 0, 1)},
		{"black already opaque", [4]float64{0, 0, 0, 1}, NewColor(0, 0, 0, 1)},
		{"near black keeps alpha", [4]float64{0, 0, 0.1, 0.5}, NewColor(0, 0, 0.1, 0.5)},
		{"red keeps zero alpha", [4]float64{1, 0, 0, 0}, NewColor(1, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromTableValue(tt.stored); got != tt.want {
				t.Errorf("ColorFromTableValue(%v) = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestInvalidColor(t *testing.T) {
	if InvalidColor.IsValid() {
		t.Fatal("InvalidColor must not be valid")
	}
	if InvalidColor == NewColor(0, 0, 0, 0) {
		t.Fatal("InvalidColor must differ from transparent black")
	}
	if InvalidColor.Hex() != "" {
		t.Errorf("InvalidColor.Hex() = %q, want empty", InvalidColor.Hex())
	}
	if _, _, _, a := InvalidColor.RGBA(); a != 0 {
		t.Errorf("InvalidColor alpha = %d, want 0", a)
	}
}

func TestNewColorClamps(t *testing.T) {
	c := NewColor(-1, 2, 0.5, 1)
	if c.R != 0 || c.G != 1 || c.B != 0.5 || c.A != 1 {
		t.Errorf("NewColor did not clamp: %v", c)
	}
}

func TestColorConversions(t *testing.T) {
	c := NewColor(1, 0.5, 0, 1)

	if got, want := c.NRGBA(), (color.NRGBA{R: 255, G: 128, B: 0, A: 255}); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	if got := c.Hex(); got != "#ff8000ff" {
		t.Errorf("Hex() = %q, want #ff8000ff", got)
	}

	var _ color.Color = c
	r, _, _, a := c.RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("RGBA() r=%#x a=%#x, want 0xffff", r, a)
	}
}

package internal

import (
	"fmt"
	"os"

	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes before scaling.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  34,
	Medium: 26,
	Small:  20,
}

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

var Fonts fontsManager

// GetScaleFactor relates the window height to the 768px layout the
// default sizes were chosen for.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}
	h := window.GetHeight()
	if h <= 0 {
		return 1
	}
	return float32(h) / 768
}

// Scale multiplies v by the window scale factor.
func Scale(v int32) int32 {
	return int32(float32(v) * GetScaleFactor())
}

// fallbackFonts are tried in order when the theme names no font.
var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

func resolveFontPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	for _, p := range fallbackFonts {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no font configured and none of %d fallback fonts found", len(fallbackFonts))
}

func initFonts(sizes FontSizes) error {
	path, err := resolveFontPath(GetTheme().FontPath)
	if err != nil {
		return err
	}

	scale := GetScaleFactor()
	open := func(size int) (*ttf.Font, error) {
		f, err := ttf.OpenFont(path, int(float32(size)*scale))
		if err != nil {
			return nil, fmt.Errorf("open font %s: %w", path, err)
		}
		return f, nil
	}

	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}

	lk.GetInternalLogger().Debug("Fonts loaded", "path", path, "scale", scale)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}

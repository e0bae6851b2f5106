package internal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultSwatchSize is the edge length in pixels of list row icons.
const DefaultSwatchSize = 16

const swatchTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
<rect x="1" y="1" width="14" height="14" rx="3" ry="3" fill="#%02x%02x%02x" fill-opacity="%.3f" stroke="#202020" stroke-width="1"/>
</svg>`

// The "no color" swatch is an empty frame struck through.
const noColorSwatch = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
<rect x="1" y="1" width="14" height="14" rx="3" ry="3" fill="none" stroke="#808080" stroke-width="1"/>
<line x1="3" y1="13" x2="13" y2="3" stroke="#c03030" stroke-width="1.5"/>
</svg>`

// SwatchSVG returns the SVG document for a color swatch. A nil color yields
// the "no color" swatch.
func SwatchSVG(c *color.NRGBA) string {
	if c == nil {
		return noColorSwatch
	}
	return fmt.Sprintf(swatchTemplate, c.R, c.G, c.B, float64(c.A)/255)
}

// RenderSwatch rasterizes a square swatch of the given size. A nil color
// renders the "no color" swatch.
func RenderSwatch(c *color.NRGBA, size int) (*image.RGBA, error) {
	if size <= 0 {
		size = DefaultSwatchSize
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(SwatchSVG(c)))
	if err != nil {
		return nil, fmt.Errorf("parse swatch svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

package colorconv

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	swatchSize  = 120.0
	swatchLabel = 28.0
)

// WriteSwatch renders the colors as a horizontal strip of labeled squares
// and saves it as a PNG.
func WriteSwatch(colors []Color, path string) error {
	if len(colors) == 0 {
		return fmt.Errorf("no colors to render")
	}
	w := int(swatchSize) * len(colors)
	h := int(swatchSize + swatchLabel)
	dc := gg.NewContext(w, h)

	dc.SetColor(color.White)
	dc.Clear()

	for i, c := range colors {
		x := float64(i) * swatchSize
		dc.SetColor(color.RGBA{c.R, c.G, c.B, 255})
		dc.DrawRectangle(x, 0, swatchSize, swatchSize)
		dc.Fill()

		// Label in a contrasting shade below the square.
		dc.SetColor(color.RGBA{40, 40, 40, 255})
		dc.DrawStringAnchored(c.Hex(), x+swatchSize/2, swatchSize+swatchLabel/2, 0.5, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save swatch: %w", err)
	}
	return nil
}

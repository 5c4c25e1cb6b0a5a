// Package colorutil provides shared colors for the editor canvas.
package colorutil

import (
	"fmt"
	"image/color"
)

// Colors used by the renderer and the guide overlay.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	// Stroke is the default shape outline color.
	Stroke = Black
	// Background fills the canvas before shapes are stroked.
	Background = White
	// Guide is the color of the alignment guide overlay lines.
	Guide = Magenta
)

// Hex formats a color as #rrggbb for SVG output. Alpha is ignored.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

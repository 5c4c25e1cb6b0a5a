package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"shapeedit/pkg/colorutil"
	"shapeedit/pkg/geometry"
)

// DefaultStrokeWidth is the outline width in canvas units.
const DefaultStrokeWidth = 2.0

// Raster is a Surface backed by an RGBA image. Each segment is stroked as a
// filled quad with square ends.
type Raster struct {
	img *image.RGBA

	// Scale maps canvas units to pixels, for HiDPI displays.
	Scale       float64
	StrokeWidth float64
	Color       color.Color
	Background  color.Color
}

// NewRaster creates a w x h pixel raster with default styling.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img:         image.NewRGBA(image.Rect(0, 0, w, h)),
		Scale:       1,
		StrokeWidth: DefaultStrokeWidth,
		Color:       colorutil.Stroke,
		Background:  colorutil.Background,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear fills the image with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

// Stroke outlines p.
func (r *Raster) Stroke(p Path) {
	b := r.img.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := r.StrokeWidth * r.Scale / 2
	drawn := false
	for _, seg := range p.Segments() {
		a := seg.A.Scale(r.Scale)
		c := seg.B.Scale(r.Scale)
		if r.addQuad(z, a, c, half) {
			drawn = true
		}
	}
	if !drawn {
		return
	}
	z.Draw(r.img, b, image.NewUniform(r.Color), image.Point{})
}

// addQuad adds the outline of segment a-c widened by half on each side. All
// quads wind the same way, so overlaps stay filled.
func (r *Raster) addQuad(z *vector.Rasterizer, a, c geometry.Point2D, half float64) bool {
	d := c.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 || half <= 0 {
		return false
	}
	u := d.Scale(1 / length)
	n := geometry.NewPoint2D(-u.Y, u.X).Scale(half)
	a = a.Sub(u.Scale(half))
	c = c.Add(u.Scale(half))

	corners := [4]geometry.Point2D{a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)}
	z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, q := range corners[1:] {
		z.LineTo(float32(q.X), float32(q.Y))
	}
	z.ClosePath()
	return true
}

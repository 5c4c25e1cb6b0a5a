package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"shapeedit/pkg/colorutil"
	"shapeedit/pkg/geometry"
)

// SVG is a Surface that collects stroked paths and writes them as an SVG
// document.
type SVG struct {
	Width, Height int
	StrokeWidth   float64
	Color         color.Color

	// paths holds the d attribute of every stroked element in draw order.
	paths []string
}

// NewSVG creates an SVG surface of the given size with default styling.
func NewSVG(w, h int) *SVG {
	return &SVG{
		Width:       w,
		Height:      h,
		StrokeWidth: DefaultStrokeWidth,
		Color:       colorutil.Stroke,
	}
}

// Clear drops every element.
func (s *SVG) Clear() {
	s.paths = s.paths[:0]
}

// Stroke appends p. Straight subpaths go into one <path>; each ellipse
// becomes its own <path> of two half-arcs so radii keep their precision.
func (s *SVG) Stroke(p Path) {
	var d strings.Builder
	for _, op := range p {
		switch op.Kind {
		case OpMoveTo:
			fmt.Fprintf(&d, "M%s ", formatPoint(op.P))
		case OpLineTo:
			fmt.Fprintf(&d, "L%s ", formatPoint(op.P))
		case OpClose:
			d.WriteString("Z ")
		case OpEllipse:
			s.paths = append(s.paths, ellipseData(op.P, op.RX, op.RY))
		}
	}
	if d.Len() > 0 {
		s.paths = append(s.paths, strings.TrimSpace(d.String()))
	}
}

func ellipseData(c geometry.Point2D, rx, ry float64) string {
	left := geometry.NewPoint2D(c.X-rx, c.Y)
	right := geometry.NewPoint2D(c.X+rx, c.Y)
	radii := formatFloat(rx) + " " + formatFloat(ry)
	return fmt.Sprintf("M%s A%s 0 1 0 %s A%s 0 1 0 %s Z",
		formatPoint(left), radii, formatPoint(right), radii, formatPoint(left))
}

// Encode writes the document to w.
func (s *SVG) Encode(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(s.Width, s.Height)
	style := s.style()
	for _, d := range s.paths {
		canvas.Path(d, style)
	}
	canvas.End()
}

// String renders the document.
func (s *SVG) String() string {
	var buf bytes.Buffer
	s.Encode(&buf)
	return buf.String()
}

// WriteTo writes the document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	s.Encode(&buf)
	return buf.WriteTo(w)
}

func (s *SVG) style() string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s",
		colorutil.Hex(s.Color), formatFloat(s.StrokeWidth))
}

// formatFloat rounds path coordinates to three decimals.
func formatFloat(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatPoint(p geometry.Point2D) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

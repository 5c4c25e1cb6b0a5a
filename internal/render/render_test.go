package render

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeedit/internal/shape"
	"shapeedit/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

func sh(k shape.Kind, x1, y1, x2, y2 float64) shape.Shape {
	return shape.Shape{Kind: k, Start: pt(x1, y1), End: pt(x2, y2)}
}

func TestEveryKindHasAPath(t *testing.T) {
	for _, k := range shape.Kinds() {
		assert.NotEmpty(t, PathFor(sh(k, 0, 0, 50, 40)), k.String())
	}
	assert.Empty(t, PathFor(sh(shape.Kind(77), 0, 0, 50, 40)))
}

func TestRectanglePathHandlesNegativeSpan(t *testing.T) {
	p := PathFor(sh(shape.Rectangle, 60, 60, 10, 10))
	assert.Equal(t, Path{
		{Kind: OpMoveTo, P: pt(60, 60)},
		{Kind: OpLineTo, P: pt(10, 60)},
		{Kind: OpLineTo, P: pt(10, 10)},
		{Kind: OpLineTo, P: pt(60, 10)},
		{Kind: OpClose},
	}, p)
	assert.Len(t, p.Segments(), 4)
}

func TestArrowHead(t *testing.T) {
	p := PathFor(sh(shape.Arrow, 0, 0, 100, 0))
	require.Len(t, p, 5)
	assert.Equal(t, OpMoveTo, p[3].Kind)
	assert.Equal(t, pt(100, 0), p[3].P)

	end := pt(100, 0)
	for _, barb := range []geometry.Point2D{p[2].P, p[4].P} {
		assert.InDelta(t, ArrowHeadLength, barb.Distance(end), 1e-9)
		assert.InDelta(t, 100-10*math.Cos(math.Pi/6), barb.X, 1e-9)
	}
	assert.InDelta(t, 5, p[2].P.Y, 1e-9)
	assert.InDelta(t, -5, p[4].P.Y, 1e-9)
}

func TestEllipsePath(t *testing.T) {
	p := PathFor(sh(shape.Ellipse, 100, 50, 0, 0))
	require.Len(t, p, 1)
	assert.Equal(t, Op{Kind: OpEllipse, P: pt(50, 25), RX: 50, RY: 25}, p[0])

	segs := p.Segments()
	assert.Len(t, segs, ellipseSteps)
	assert.InDelta(t, segs[0].A.X, segs[len(segs)-1].B.X, 1e-9)
	assert.InDelta(t, segs[0].A.Y, segs[len(segs)-1].B.Y, 1e-9)
}

func TestPolygonTriangle(t *testing.T) {
	p := PathFor(sh(shape.Polygon, 0, 0, 100, 80))
	assert.Equal(t, Path{
		{Kind: OpMoveTo, P: pt(50, 80)},
		{Kind: OpLineTo, P: pt(100, 0)},
		{Kind: OpLineTo, P: pt(0, 0)},
		{Kind: OpClose},
	}, p)
}

func TestStarVertices(t *testing.T) {
	p := PathFor(sh(shape.Star, 0, 0, 100, 100))
	require.Len(t, p, 13)
	assert.Equal(t, Op{Kind: OpMoveTo, P: pt(50, 0)}, p[0])

	center := pt(50, 50)
	for i := 1; i <= 10; i++ {
		want := 50.0
		if i%2 == 0 {
			want = 20
		}
		assert.InDelta(t, want, p[i].P.Distance(center), 1e-9, "vertex %d", i)
	}
	assert.InDelta(t, 50, p[1].P.X, 1e-9)
	assert.InDelta(t, 0, p[1].P.Y, 1e-9)
	assert.Equal(t, pt(50, 0), p[11].P)
	assert.Equal(t, OpClose, p[12].Kind)
}

type countingSurface struct {
	clears  int
	strokes []Path
}

func (c *countingSurface) Clear()        { c.clears++; c.strokes = nil }
func (c *countingSurface) Stroke(p Path) { c.strokes = append(c.strokes, p) }

func TestDrawClearsThenStrokesInOrder(t *testing.T) {
	shapes := []shape.Shape{
		sh(shape.Rectangle, 0, 0, 10, 10),
		sh(shape.Kind(77), 0, 0, 10, 10),
		sh(shape.Line, 0, 0, 10, 10),
	}
	s := &countingSurface{}
	Draw(s, shapes)
	Draw(s, shapes)

	assert.Equal(t, 2, s.clears)
	require.Len(t, s.strokes, 2)
	assert.Equal(t, PathFor(shapes[0]), s.strokes[0])
	assert.Equal(t, PathFor(shapes[2]), s.strokes[1])
}

func TestRasterRedrawIsIdempotent(t *testing.T) {
	shapes := []shape.Shape{
		sh(shape.Rectangle, 10, 10, 60, 60),
		sh(shape.Arrow, 5, 90, 90, 20),
		sh(shape.Ellipse, 20, 20, 80, 50),
		sh(shape.Star, 30, 30, 70, 70),
	}
	r := NewRaster(100, 100)
	Draw(r, shapes)
	first := bytes.Clone(r.Image().Pix)
	Draw(r, shapes)

	assert.Equal(t, first, r.Image().Pix)
}

func TestRasterStrokesRectangleOutline(t *testing.T) {
	r := NewRaster(100, 100)
	Draw(r, []shape.Shape{sh(shape.Rectangle, 10, 10, 60, 60)})
	img := r.Image()

	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(10, 30), "left edge")
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(35, 10), "top edge")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(35, 35), "interior")
}

func TestRasterScale(t *testing.T) {
	r := NewRaster(200, 200)
	r.Scale = 2
	Draw(r, []shape.Shape{sh(shape.Line, 0, 50, 100, 50)})

	assert.Equal(t, color.RGBA{A: 255}, r.Image().RGBAAt(100, 100))
	assert.Equal(t, uint8(255), r.Image().RGBAAt(100, 50).R)
}

func TestRasterZeroExtentDrawsNothing(t *testing.T) {
	r := NewRaster(20, 20)
	Draw(r, []shape.Shape{sh(shape.Line, 5, 5, 5, 5)})
	for _, v := range r.Image().Pix {
		require.Equal(t, uint8(255), v)
	}
}

func TestSVGOutput(t *testing.T) {
	s := NewSVG(100, 80)
	Draw(s, []shape.Shape{
		sh(shape.Rectangle, 10, 10, 60, 60),
		sh(shape.Ellipse, 0, 0, 20, 10),
	})
	out := s.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, `height="80"`)
	assert.Equal(t, 2, strings.Count(out, "<path"))
	assert.Contains(t, out, `d="M10 10 L60 10 L60 60 L10 60 Z"`)
	assert.Contains(t, out, `d="M0 5 A10 5 0 1 0 20 5 A10 5 0 1 0 0 5 Z"`)
	assert.Equal(t, 2, strings.Count(out, `style="fill:none;stroke:#000000;stroke-width:2"`))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	// A second full redraw replaces, not appends.
	Draw(s, []shape.Shape{sh(shape.Rectangle, 10, 10, 60, 60), sh(shape.Ellipse, 0, 0, 20, 10)})
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, out, buf.String())
}

func TestSVGEllipseKeepsFractionalRadii(t *testing.T) {
	s := NewSVG(10, 10)
	Draw(s, []shape.Shape{sh(shape.Ellipse, 0.5, 0, 3, 1.25)})
	assert.Contains(t, s.String(), `d="M0.5 0.625 A1.25 0.625 0 1 0 3 0.625 A1.25 0.625 0 1 0 0.5 0.625 Z"`)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "91.34", formatFloat(100-10*math.Cos(math.Pi/6)))
	assert.Equal(t, "0", formatFloat(-0.0001))
	assert.Equal(t, "-12.5", formatFloat(-12.5))
}

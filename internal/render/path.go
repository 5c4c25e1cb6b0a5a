// Package render turns shapes into stroke paths and draws them onto a
// Surface. It keeps no state between calls.
package render

import (
	"math"

	"shapeedit/internal/shape"
	"shapeedit/pkg/geometry"
)

const (
	// ArrowHeadLength is the length of each arrow barb.
	ArrowHeadLength = 10.0
	// ArrowHeadAngle is the angle between a barb and the shaft.
	ArrowHeadAngle = math.Pi / 6

	starSpikes     = 5
	starInnerRatio = 2.5
	ellipseSteps   = 64
)

// OpKind is the kind of a path operation.
type OpKind int

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpClose
	OpEllipse
)

// Op is one path operation. P is the target point, or the center for
// OpEllipse, where RX and RY hold the radii.
type Op struct {
	Kind   OpKind
	P      geometry.Point2D
	RX, RY float64
}

// Path is a sequence of stroke operations.
type Path []Op

func (p *Path) MoveTo(pt geometry.Point2D) { *p = append(*p, Op{Kind: OpMoveTo, P: pt}) }
func (p *Path) LineTo(pt geometry.Point2D) { *p = append(*p, Op{Kind: OpLineTo, P: pt}) }
func (p *Path) Close()                     { *p = append(*p, Op{Kind: OpClose}) }

// Ellipse adds a full axis-aligned ellipse as its own subpath.
func (p *Path) Ellipse(center geometry.Point2D, rx, ry float64) {
	*p = append(*p, Op{Kind: OpEllipse, P: center, RX: rx, RY: ry})
}

// Segment is a straight piece of a flattened path.
type Segment struct {
	A, B geometry.Point2D
}

// Segments flattens the path into straight segments. Ellipses are
// approximated by a closed polygon.
func (p Path) Segments() []Segment {
	var segs []Segment
	var cur, start geometry.Point2D
	for _, op := range p {
		switch op.Kind {
		case OpMoveTo:
			cur, start = op.P, op.P
		case OpLineTo:
			segs = append(segs, Segment{A: cur, B: op.P})
			cur = op.P
		case OpClose:
			if cur != start {
				segs = append(segs, Segment{A: cur, B: start})
			}
			cur = start
		case OpEllipse:
			prev := geometry.NewPoint2D(op.P.X+op.RX, op.P.Y)
			for i := 1; i <= ellipseSteps; i++ {
				a := 2 * math.Pi * float64(i) / ellipseSteps
				next := geometry.NewPoint2D(op.P.X+op.RX*math.Cos(a), op.P.Y+op.RY*math.Sin(a))
				segs = append(segs, Segment{A: prev, B: next})
				prev = next
			}
		}
	}
	return segs
}

// PathFor returns the stroke path of s. Unknown kinds produce an empty path.
func PathFor(s shape.Shape) Path {
	var p Path
	start, end := s.Start, s.End
	switch s.Kind {
	case shape.Rectangle:
		p.MoveTo(start)
		p.LineTo(geometry.NewPoint2D(end.X, start.Y))
		p.LineTo(end)
		p.LineTo(geometry.NewPoint2D(start.X, end.Y))
		p.Close()
	case shape.Line:
		p.MoveTo(start)
		p.LineTo(end)
	case shape.Arrow:
		angle := math.Atan2(end.Y-start.Y, end.X-start.X)
		p.MoveTo(start)
		p.LineTo(end)
		p.LineTo(end.Polar(-ArrowHeadLength, angle-ArrowHeadAngle))
		p.MoveTo(end)
		p.LineTo(end.Polar(-ArrowHeadLength, angle+ArrowHeadAngle))
	case shape.Ellipse:
		p.Ellipse(s.Center(), math.Abs(s.Width())/2, math.Abs(s.Height())/2)
	case shape.Polygon:
		// Triangle stand-in until general polygons exist.
		p.MoveTo(geometry.NewPoint2D(start.X+s.Width()/2, end.Y))
		p.LineTo(geometry.NewPoint2D(end.X, start.Y))
		p.LineTo(start)
		p.Close()
	case shape.Star:
		starPath(&p, s.Center(), s.Width()/2)
	}
	return p
}

func starPath(p *Path, c geometry.Point2D, outer float64) {
	inner := outer / starInnerRatio
	step := math.Pi / starSpikes
	rot := math.Pi / 2 * 3
	top := geometry.NewPoint2D(c.X, c.Y-outer)
	p.MoveTo(top)
	for i := 0; i < starSpikes; i++ {
		p.LineTo(c.Polar(outer, rot))
		rot += step
		p.LineTo(c.Polar(inner, rot))
		rot += step
	}
	p.LineTo(top)
	p.Close()
}

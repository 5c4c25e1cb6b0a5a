// Package shape holds the editable shapes and the z-ordered collection that
// owns them.
package shape

import (
	"strings"

	"shapeedit/pkg/geometry"
)

// HitSlop is the maximum distance from a line or arrow at which a point
// still counts as touching it.
const HitSlop = 5.0

// Kind identifies the geometry of a shape.
type Kind int

const (
	Rectangle Kind = iota
	Line
	Arrow
	Ellipse
	Polygon
	Star
)

var kindNames = map[Kind]string{
	Rectangle: "rectangle",
	Line:      "line",
	Arrow:     "arrow",
	Ellipse:   "ellipse",
	Polygon:   "polygon",
	Star:      "star",
}

// Kinds returns every known kind in toolbar order.
func Kinds() []Kind {
	return []Kind{Rectangle, Line, Arrow, Ellipse, Polygon, Star}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the toolbar name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a toolbar name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Shape is a single editable shape defined by two corners. The corners may be
// in any order; End is left of or above Start when drawn backwards.
type Shape struct {
	Kind  Kind
	Start geometry.Point2D
	End   geometry.Point2D
}

// Bounds returns the rectangle spanned by the corners, without normalising.
func (s Shape) Bounds() geometry.Rect {
	return geometry.RectFromCorners(s.Start, s.End)
}

// Width returns End.X - Start.X, which is negative for backwards shapes.
func (s Shape) Width() float64 { return s.End.X - s.Start.X }

// Height returns End.Y - Start.Y, which is negative for backwards shapes.
func (s Shape) Height() float64 { return s.End.Y - s.Start.Y }

// Center returns the midpoint of the corners.
func (s Shape) Center() geometry.Point2D { return s.Start.Midpoint(s.End) }

// Features are the six alignment coordinates of a shape.
type Features struct {
	StartX, CenterX, EndX float64
	StartY, CenterY, EndY float64
}

// Features derives the alignment coordinates from the raw corners.
func (s Shape) Features() Features {
	c := s.Center()
	return Features{
		StartX:  s.Start.X,
		CenterX: c.X,
		EndX:    s.End.X,
		StartY:  s.Start.Y,
		CenterY: c.Y,
		EndY:    s.End.Y,
	}
}

// Contains reports whether p hits the shape.
//
// Rectangles, polygons and stars all use the strict box test on the raw
// corners, so a shape drawn from bottom-right to top-left is never hit.
// Lines and arrows match within HitSlop of the line through their corners.
func (s Shape) Contains(p geometry.Point2D) bool {
	switch s.Kind {
	case Rectangle, Polygon, Star:
		return geometry.PointInBox(p, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	case Line, Arrow:
		return geometry.DistancePointToLine(p, s.Start, s.End) < HitSlop
	case Ellipse:
		return geometry.PointInEllipse(p, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	default:
		return false
	}
}

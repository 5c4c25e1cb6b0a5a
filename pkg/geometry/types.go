// Package geometry provides the point, rectangle and containment primitives
// used by the shape model, the renderer and the guide engine.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D point in canvas-local coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// FromVec converts a gonum vector to a Point2D.
func FromVec(v r2.Vec) Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

// Vec returns the point as a gonum vector.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return r2.Norm(r2.Sub(p.Vec(), other.Vec()))
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return FromVec(r2.Add(p.Vec(), other.Vec()))
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return FromVec(r2.Sub(p.Vec(), other.Vec()))
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return FromVec(r2.Scale(factor, p.Vec()))
}

// Midpoint returns the point halfway between p and other.
func (p Point2D) Midpoint(other Point2D) Point2D {
	return Point2D{X: p.X + (other.X-p.X)/2, Y: p.Y + (other.Y-p.Y)/2}
}

// Polar returns the point at the given distance and angle (radians) from p.
func (p Point2D) Polar(radius, angle float64) Point2D {
	return Point2D{X: p.X + radius*math.Cos(angle), Y: p.Y + radius*math.Sin(angle)}
}

// Rect represents a rectangle by origin and size. Width and Height may be
// negative when the rectangle was built from corners in reverse order.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromCorners builds a Rect from two corners without reordering them.
func RectFromCorners(a, b Point2D) Rect {
	return Rect{X: a.X, Y: a.Y, Width: b.X - a.X, Height: b.Y - a.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TopLeft returns the origin corner.
func (r Rect) TopLeft() Point2D {
	return Point2D{X: r.X, Y: r.Y}
}

// BottomRight returns the corner opposite the origin.
func (r Rect) BottomRight() Point2D {
	return Point2D{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Canon returns an equivalent rectangle with non-negative width and height.
func (r Rect) Canon() Rect {
	lo, hi := NormalizeBox(r.TopLeft(), r.BottomRight())
	return RectFromCorners(lo, hi)
}

// NormalizeBox returns the corners of the box spanned by a and b ordered so
// that lo is top-left and hi is bottom-right.
func NormalizeBox(a, b Point2D) (lo, hi Point2D) {
	return Point2D{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Point2D{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

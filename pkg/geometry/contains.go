package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DistancePointToLine returns the perpendicular distance from p to the
// infinite line through a and b. The result is not clamped to the segment,
// so points beyond either endpoint but close to the extended line are near.
// When a and b coincide the distance to a is returned.
func DistancePointToLine(p, a, b Point2D) float64 {
	dir := r2.Sub(b.Vec(), a.Vec())
	rel := r2.Sub(p.Vec(), a.Vec())
	length := r2.Norm(dir)
	if length == 0 {
		return p.Distance(a)
	}
	return math.Abs(r2.Cross(dir, rel)) / length
}

// PointInEllipse reports whether p lies within the axis-aligned ellipse
// inscribed in the box spanned by (x1,y1) and (x2,y2). Corner order does not
// matter. An ellipse with a zero radius contains nothing.
func PointInEllipse(p Point2D, x1, y1, x2, y2 float64) bool {
	rx := math.Abs(x2-x1) / 2
	ry := math.Abs(y2-y1) / 2
	if rx == 0 || ry == 0 {
		return false
	}
	cx := x1 + (x2-x1)/2
	cy := y1 + (y2-y1)/2
	dx := (p.X - cx) / rx
	dy := (p.Y - cy) / ry
	return dx*dx+dy*dy <= 1
}

// PointInBox reports whether p lies strictly inside the box with x1 < x2 and
// y1 < y2. Corners are used as given: a box with reversed corners contains
// nothing, so callers that accept any corner order must use NormalizeBox.
func PointInBox(p Point2D, x1, y1, x2, y2 float64) bool {
	return x1 < p.X && p.X < x2 && y1 < p.Y && p.Y < y2
}

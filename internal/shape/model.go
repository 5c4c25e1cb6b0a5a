package shape

import (
	"shapeedit/pkg/geometry"
)

// Ref addresses a shape inside a Model by its z-order index.
type Ref int

// NoRef is the Ref of no shape.
const NoRef Ref = -1

// Valid reports whether r can address a shape at all.
func (r Ref) Valid() bool { return r >= 0 }

// Model owns the shapes in z-order: later shapes are drawn on top.
// Shapes are only ever appended.
type Model struct {
	shapes []Shape
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// Len returns the number of shapes.
func (m *Model) Len() int {
	return len(m.shapes)
}

// Create appends a zero-extent shape at p and returns its Ref.
func (m *Model) Create(kind Kind, p geometry.Point2D) Ref {
	m.shapes = append(m.shapes, Shape{Kind: kind, Start: p, End: p})
	return Ref(len(m.shapes) - 1)
}

// Get returns the shape addressed by ref.
func (m *Model) Get(ref Ref) (Shape, bool) {
	if !m.has(ref) {
		return Shape{}, false
	}
	return m.shapes[ref], true
}

// Grow moves the End corner of the shape to p. Unknown refs are ignored.
func (m *Model) Grow(ref Ref, p geometry.Point2D) {
	if !m.has(ref) {
		return
	}
	m.shapes[ref].End = p
}

// Move translates both corners by (dx, dy), leaving width and height as they
// were. Unknown refs are ignored.
func (m *Model) Move(ref Ref, dx, dy float64) {
	if !m.has(ref) {
		return
	}
	s := &m.shapes[ref]
	s.Start.X += dx
	s.Start.Y += dy
	s.End.X += dx
	s.End.Y += dy
}

// HitTest returns the topmost shape containing p.
func (m *Model) HitTest(p geometry.Point2D) (Ref, bool) {
	for i := len(m.shapes) - 1; i >= 0; i-- {
		if m.shapes[i].Contains(p) {
			return Ref(i), true
		}
	}
	return NoRef, false
}

// Shapes returns a copy of the shapes in z-order.
func (m *Model) Shapes() []Shape {
	out := make([]Shape, len(m.shapes))
	copy(out, m.shapes)
	return out
}

func (m *Model) has(ref Ref) bool {
	return ref.Valid() && int(ref) < len(m.shapes)
}

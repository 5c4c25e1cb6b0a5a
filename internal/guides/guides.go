// Package guides detects alignment between pairs of shapes and drives the
// six guide lines shown on top of the canvas.
package guides

import (
	"math"

	"shapeedit/internal/shape"
)

// Tolerance is the distance in pixels below which two coordinates count as
// aligned.
const Tolerance = 5.0

// Axis is the orientation of a guide line.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Role says which feature of the shapes a guide aligns.
type Role int

const (
	Start Role = iota
	Center
	End
)

func (r Role) String() string {
	switch r {
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "start"
	}
}

// ID addresses one of the six guides.
type ID struct {
	Axis Axis
	Role Role
}

// String returns the overlay element name, e.g. "vertical-center".
func (id ID) String() string {
	return id.Axis.String() + "-" + id.Role.String()
}

// IDs lists every guide, horizontal first.
func IDs() []ID {
	ids := make([]ID, 0, 6)
	for _, a := range []Axis{Horizontal, Vertical} {
		for _, r := range []Role{Start, Center, End} {
			ids = append(ids, ID{Axis: a, Role: r})
		}
	}
	return ids
}

// Guide is the state of one guide line. Position is an x coordinate for
// vertical guides and a y coordinate for horizontal ones.
type Guide struct {
	Active   bool
	Position float64
}

// Set holds all six guides, indexed by axis then role.
type Set [2][3]Guide

// Get returns the guide for id.
func (s Set) Get(id ID) Guide {
	return s[id.Axis][id.Role]
}

func (s *Set) show(id ID, position float64) {
	s[id.Axis][id.Role] = Guide{Active: true, Position: position}
}

// Line is an active guide with its ID.
type Line struct {
	ID       ID
	Position float64
}

// Active returns the active guides in IDs order.
func (s Set) Active() []Line {
	var lines []Line
	for _, id := range IDs() {
		if g := s.Get(id); g.Active {
			lines = append(lines, Line{ID: id, Position: g.Position})
		}
	}
	return lines
}

// Any reports whether at least one guide is active.
func (s Set) Any() bool {
	return len(s.Active()) > 0
}

// Display is the surface that shows guide lines.
type Display interface {
	Show(id ID, position float64)
	Hide(id ID)
}

// Apply hides every guide on d, then shows the active ones.
func (s Set) Apply(d Display) {
	for _, id := range IDs() {
		d.Hide(id)
	}
	for _, l := range s.Active() {
		d.Show(l.ID, l.Position)
	}
}

// Compute compares every pair of shapes (i < j) and activates a guide at the
// first shape's coordinate for each feature that differs by less than tol.
// A later pair overwrites the position set by an earlier one. With fewer than
// two shapes no guide is active.
func Compute(shapes []shape.Shape, tol float64) Set {
	var set Set
	if len(shapes) < 2 {
		return set
	}
	for i := 0; i < len(shapes); i++ {
		fi := shapes[i].Features()
		for j := i + 1; j < len(shapes); j++ {
			fj := shapes[j].Features()
			pairs := [...]struct {
				id   ID
				a, b float64
			}{
				{ID{Vertical, Start}, fi.StartX, fj.StartX},
				{ID{Vertical, End}, fi.EndX, fj.EndX},
				{ID{Vertical, Center}, fi.CenterX, fj.CenterX},
				{ID{Horizontal, Start}, fi.StartY, fj.StartY},
				{ID{Horizontal, End}, fi.EndY, fj.EndY},
				{ID{Horizontal, Center}, fi.CenterY, fj.CenterY},
			}
			for _, p := range pairs {
				if math.Abs(p.a-p.b) < tol {
					set.show(p.id, p.a)
				}
			}
		}
	}
	return set
}

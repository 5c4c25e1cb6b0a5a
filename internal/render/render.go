package render

import (
	"shapeedit/internal/shape"
)

// Surface receives the stroke paths of a full redraw.
type Surface interface {
	// Clear erases everything drawn so far.
	Clear()
	// Stroke outlines a path.
	Stroke(p Path)
}

// Draw clears s and strokes every shape in z-order. It never draws
// incrementally, so calling it twice with the same shapes gives the same
// result.
func Draw(s Surface, shapes []shape.Shape) {
	s.Clear()
	for _, sh := range shapes {
		p := PathFor(sh)
		if len(p) == 0 {
			continue
		}
		s.Stroke(p)
	}
}

// Package panels provides the side panels of the main window.
package panels

import (
	"fmt"
	"sync"

	"shapeedit/internal/editor"
	"shapeedit/internal/guides"
	"shapeedit/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShapesPanel lists the shapes in stacking order and the active guides.
type ShapesPanel struct {
	// mu guards the rows, which are written from editor events and read by
	// the list callbacks on the render thread.
	mu     sync.Mutex
	shapes []shape.Shape
	lines  []guides.Line

	shapeList *widget.List
	guideList *widget.List
	container fyne.CanvasObject
}

// NewShapesPanel creates a panel that follows ed's redraw and guide events.
// The editor is only read during event dispatch, which the caller already
// serialises.
func NewShapesPanel(ed *editor.Editor) *ShapesPanel {
	sp := &ShapesPanel{}
	sp.buildUI()
	sp.setShapes(ed.Shapes())
	sp.setGuides(ed.Guides())

	ed.On(editor.EventRedraw, func(data interface{}) {
		if shapes, ok := data.([]shape.Shape); ok {
			sp.setShapes(shapes)
		}
	})
	ed.On(editor.EventGuidesChanged, func(data interface{}) {
		if set, ok := data.(guides.Set); ok {
			// Shapes created without a move emit no redraw.
			sp.setShapes(ed.Shapes())
			sp.setGuides(set)
		}
	})

	return sp
}

// Container returns the panel for embedding.
func (sp *ShapesPanel) Container() fyne.CanvasObject {
	return sp.container
}

func (sp *ShapesPanel) buildUI() {
	sp.shapeList = widget.NewList(
		func() int { return len(sp.Shapes()) },
		func() fyne.CanvasObject { return widget.NewLabel("ellipse (000,000)-(000,000)") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if s, ok := sp.shapeAt(id); ok {
				obj.(*widget.Label).SetText(ShapeLabel(id, s))
			}
		},
	)
	sp.guideList = widget.NewList(
		func() int { return len(sp.Guides()) },
		func() fyne.CanvasObject { return widget.NewLabel("horizontal-center at 000") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if l, ok := sp.guideAt(id); ok {
				obj.(*widget.Label).SetText(fmt.Sprintf("%s at %g", l.ID, l.Position))
			}
		},
	)

	sp.container = container.NewVSplit(
		container.NewBorder(widget.NewLabelWithStyle("Shapes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			nil, nil, nil, sp.shapeList),
		container.NewBorder(widget.NewLabelWithStyle("Guides", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			nil, nil, nil, sp.guideList),
	)
}

func (sp *ShapesPanel) setShapes(shapes []shape.Shape) {
	sp.mu.Lock()
	sp.shapes = append(sp.shapes[:0:0], shapes...)
	sp.mu.Unlock()
	sp.shapeList.Refresh()
}

func (sp *ShapesPanel) setGuides(set guides.Set) {
	sp.mu.Lock()
	sp.lines = set.Active()
	sp.mu.Unlock()
	sp.guideList.Refresh()
}

func (sp *ShapesPanel) shapeAt(i int) (shape.Shape, bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if i < 0 || i >= len(sp.shapes) {
		return shape.Shape{}, false
	}
	return sp.shapes[i], true
}

func (sp *ShapesPanel) guideAt(i int) (guides.Line, bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if i < 0 || i >= len(sp.lines) {
		return guides.Line{}, false
	}
	return sp.lines[i], true
}

// Shapes returns a copy of the shape rows currently listed.
func (sp *ShapesPanel) Shapes() []shape.Shape {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return append([]shape.Shape(nil), sp.shapes...)
}

// Guides returns a copy of the guide rows currently listed.
func (sp *ShapesPanel) Guides() []guides.Line {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return append([]guides.Line(nil), sp.lines...)
}

// ShapeLabel formats one shape row: its corners as drawn and its absolute size.
func ShapeLabel(i int, s shape.Shape) string {
	size := s.Bounds().Canon()
	return fmt.Sprintf("%d. %s (%g,%g)-(%g,%g) %gx%g",
		i+1, s.Kind, s.Start.X, s.Start.Y, s.End.X, s.End.Y, size.Width, size.Height)
}

package canvas

import (
	"shapeedit/internal/guides"
	"shapeedit/pkg/colorutil"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
)

const guideStrokeWidth = 1

// GuideOverlay shows the six alignment guides as lines spanning the whole
// canvas. It implements guides.Display.
type GuideOverlay struct {
	lines     map[guides.ID]*fynecanvas.Line
	positions map[guides.ID]float64
	size      fyne.Size
}

var _ guides.Display = (*GuideOverlay)(nil)

// NewGuideOverlay creates an overlay with every guide hidden.
func NewGuideOverlay() *GuideOverlay {
	o := &GuideOverlay{
		lines:     make(map[guides.ID]*fynecanvas.Line),
		positions: make(map[guides.ID]float64),
	}
	for _, id := range guides.IDs() {
		l := fynecanvas.NewLine(colorutil.Guide)
		l.StrokeWidth = guideStrokeWidth
		l.Hide()
		o.lines[id] = l
	}
	return o
}

// Show places the guide at position and makes it visible.
func (o *GuideOverlay) Show(id guides.ID, position float64) {
	l, ok := o.lines[id]
	if !ok {
		return
	}
	o.positions[id] = position
	o.place(id)
	l.Show()
	l.Refresh()
}

// Hide hides the guide.
func (o *GuideOverlay) Hide(id guides.ID) {
	l, ok := o.lines[id]
	if !ok {
		return
	}
	delete(o.positions, id)
	l.Hide()
}

// Visible returns the position of a shown guide.
func (o *GuideOverlay) Visible(id guides.ID) (float64, bool) {
	pos, ok := o.positions[id]
	return pos, ok
}

// Line returns the line object drawn for the guide.
func (o *GuideOverlay) Line(id guides.ID) *fynecanvas.Line {
	return o.lines[id]
}

// Layout stretches the visible guides across the new canvas size.
func (o *GuideOverlay) Layout(size fyne.Size) {
	o.size = size
	for id := range o.positions {
		o.place(id)
		o.lines[id].Refresh()
	}
}

// Objects returns the line objects in guides.IDs order.
func (o *GuideOverlay) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(o.lines))
	for _, id := range guides.IDs() {
		objs = append(objs, o.lines[id])
	}
	return objs
}

func (o *GuideOverlay) place(id guides.ID) {
	l := o.lines[id]
	pos := float32(o.positions[id])
	if id.Axis == guides.Vertical {
		l.Position1 = fyne.NewPos(pos, 0)
		l.Position2 = fyne.NewPos(pos, o.size.Height)
		return
	}
	l.Position1 = fyne.NewPos(0, pos)
	l.Position2 = fyne.NewPos(o.size.Width, pos)
}

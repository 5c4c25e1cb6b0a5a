// Package canvas provides the editor canvas widget: it forwards pointer
// events to the editor, paints the shapes and shows the alignment guides.
package canvas

import (
	"context"
	"image"
	"sync"

	"shapeedit/internal/editor"
	"shapeedit/internal/render"
	"shapeedit/internal/shape"
	"shapeedit/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var defaultSize = fyne.NewSize(800, 600)

// EditorCanvas is the drawing surface of the editor.
type EditorCanvas struct {
	widget.BaseWidget

	// mu serialises editor access between input callbacks and the raster
	// draw callback.
	mu     sync.Mutex
	ctx    context.Context
	editor *editor.Editor

	raster  *fynecanvas.Raster
	overlay *GuideOverlay

	strokeWidth float64
}

var (
	_ desktop.Mouseable  = (*EditorCanvas)(nil)
	_ desktop.Hoverable  = (*EditorCanvas)(nil)
	_ desktop.Cursorable = (*EditorCanvas)(nil)
	_ fyne.Draggable     = (*EditorCanvas)(nil)
)

// NewEditorCanvas creates a canvas driving ed. The canvas becomes the
// editor's guide display and repaints on every editor redraw.
func NewEditorCanvas(ctx context.Context, ed *editor.Editor) *EditorCanvas {
	ec := &EditorCanvas{
		ctx:         ctx,
		editor:      ed,
		overlay:     NewGuideOverlay(),
		strokeWidth: render.DefaultStrokeWidth,
	}
	ec.raster = fynecanvas.NewRaster(ec.draw)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels
	ec.raster.SetMinSize(defaultSize)

	ed.SetDisplay(ec.overlay)
	ed.On(editor.EventRedraw, func(interface{}) {
		ec.raster.Refresh()
	})

	ec.ExtendBaseWidget(ec)
	return ec
}

// Overlay returns the guide overlay.
func (ec *EditorCanvas) Overlay() *GuideOverlay {
	return ec.overlay
}

// SetStrokeWidth sets the shape outline width and repaints.
func (ec *EditorCanvas) SetStrokeWidth(w float64) {
	ec.mu.Lock()
	if w > 0 {
		ec.strokeWidth = w
	}
	ec.mu.Unlock()
	ec.raster.Refresh()
}

// Arm arms the named shape kind for the next pointer-down.
func (ec *EditorCanvas) Arm(name string) bool {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.editor.ArmByName(ec.ctx, name)
}

// Shapes returns a snapshot of the editor's shapes taken under the canvas
// lock, for readers outside the input and draw callbacks.
func (ec *EditorCanvas) Shapes() []shape.Shape {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.editor.Shapes()
}

// Reset abandons the current gesture.
func (ec *EditorCanvas) Reset() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.editor.Reset(ec.ctx)
}

// MouseDown starts a gesture on primary button presses.
func (ec *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.editor.PointerDown(ec.ctx, toPoint(ev.Position))
}

// MouseUp ends the current gesture.
func (ec *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	ec.pointerUp()
}

func (ec *EditorCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved forwards hover moves; the editor ignores them when idle.
func (ec *EditorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	ec.pointerMove(ev.Position)
}

func (ec *EditorCanvas) MouseOut() {}

// Dragged forwards moves while a button is held.
func (ec *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	ec.pointerMove(ev.Position)
}

// DragEnd ends the current gesture. It may follow MouseUp, which is harmless
// since pointer-up on an idle editor only recomputes guides.
func (ec *EditorCanvas) DragEnd() {
	ec.pointerUp()
}

// Cursor shows a crosshair while a shape kind is armed.
func (ec *EditorCanvas) Cursor() desktop.Cursor {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if _, armed := ec.editor.Pending(); armed {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (ec *EditorCanvas) pointerMove(pos fyne.Position) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.editor.PointerMove(ec.ctx, toPoint(pos))
}

func (ec *EditorCanvas) pointerUp() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.editor.PointerUp(ec.ctx)
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

// draw is the raster callback. It repaints every shape from scratch at the
// raster's pixel density.
func (ec *EditorCanvas) draw(w, h int) image.Image {
	ec.mu.Lock()
	shapes := ec.editor.Shapes()
	strokeWidth := ec.strokeWidth
	ec.mu.Unlock()

	r := render.NewRaster(w, h)
	r.StrokeWidth = strokeWidth
	if size := ec.Size(); size.Width > 0 {
		r.Scale = float64(w) / float64(size.Width)
	}
	render.Draw(r, shapes)
	return r.Image()
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: ec}
}

type editorCanvasRenderer struct {
	canvas *EditorCanvas
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	r.canvas.mu.Lock()
	r.canvas.overlay.Layout(size)
	r.canvas.mu.Unlock()
}

func (r *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *editorCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return append([]fyne.CanvasObject{r.canvas.raster}, r.canvas.overlay.Objects()...)
}

func (r *editorCanvasRenderer) Destroy() {}

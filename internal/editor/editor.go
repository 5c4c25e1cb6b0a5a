// Package editor implements the pointer-driven interaction state machine
// that creates and drags shapes and keeps the alignment guides current.
//
// An Editor is used from a single goroutine. Every handler runs to completion
// and fires its redraw and guide notifications only at the end.
package editor

import (
	"context"

	"cdr.dev/slog"

	"shapeedit/internal/guides"
	"shapeedit/internal/log"
	"shapeedit/internal/shape"
	"shapeedit/pkg/geometry"
)

// Mode is the interaction mode of the editor.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeDragging
)

func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Editor owns the shapes and the interaction state of one canvas.
type Editor struct {
	model     *shape.Model
	tolerance float64
	display   guides.Display
	guides    guides.Set

	mode       Mode
	pending    shape.Kind
	armed      bool
	active     shape.Ref
	dragOffset geometry.Point2D

	listeners map[EventType][]EventListener
}

// Option configures an Editor.
type Option func(*Editor)

// WithTolerance overrides the guide alignment tolerance.
func WithTolerance(tol float64) Option {
	return func(e *Editor) {
		if tol > 0 {
			e.tolerance = tol
		}
	}
}

// WithDisplay attaches the surface that shows guide lines.
func WithDisplay(d guides.Display) Option {
	return func(e *Editor) { e.display = d }
}

// New creates an idle editor with an empty model.
func New(opts ...Option) *Editor {
	e := &Editor{
		model:     shape.NewModel(),
		tolerance: guides.Tolerance,
		active:    shape.NoRef,
		listeners: make(map[EventType][]EventListener),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetDisplay attaches d and shows the current guides on it.
func (e *Editor) SetDisplay(d guides.Display) {
	e.display = d
	if d != nil {
		e.guides.Apply(d)
	}
}

// Mode returns the current interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// Pending returns the kind used for the next creation and whether the next
// pointer-down will create it.
func (e *Editor) Pending() (shape.Kind, bool) { return e.pending, e.armed }

// Active returns the shape being created or dragged, or shape.NoRef.
func (e *Editor) Active() shape.Ref { return e.active }

// Shapes returns a copy of the shapes in z-order.
func (e *Editor) Shapes() []shape.Shape { return e.model.Shapes() }

// Guides returns the guides from the last recomputation.
func (e *Editor) Guides() guides.Set { return e.guides }

// Tolerance returns the guide alignment tolerance.
func (e *Editor) Tolerance() float64 { return e.tolerance }

// Arm makes the next pointer-down create a shape of the given kind, whatever
// the current mode. Unknown kinds are ignored.
func (e *Editor) Arm(ctx context.Context, kind shape.Kind) {
	if !kind.Valid() {
		log.Warn(ctx, "ignoring unknown shape kind", slog.F("kind", int(kind)))
		return
	}
	e.pending = kind
	e.armed = true
	log.Debug(ctx, "armed", slog.F("kind", kind.String()))
	e.emit(EventArmed, kind)
}

// ArmByName arms the kind with the given toolbar name. It reports whether the
// name was recognised.
func (e *Editor) ArmByName(ctx context.Context, name string) bool {
	kind, ok := shape.ParseKind(name)
	if !ok {
		log.Warn(ctx, "ignoring unknown shape kind", slog.F("name", name))
		return false
	}
	e.Arm(ctx, kind)
	return true
}

// PointerDown starts a creation when armed, otherwise starts dragging the
// topmost shape under p. A miss leaves the editor idle.
func (e *Editor) PointerDown(ctx context.Context, p geometry.Point2D) {
	if e.armed {
		e.active = e.model.Create(e.pending, p)
		log.Debug(ctx, "shape created",
			slog.F("kind", e.pending.String()),
			slog.F("ref", int(e.active)),
			slog.F("x", p.X), slog.F("y", p.Y))
		e.setMode(ctx, ModeCreating)
		return
	}

	ref, ok := e.model.HitTest(p)
	if !ok {
		return
	}
	s, _ := e.model.Get(ref)
	e.active = ref
	e.dragOffset = p.Sub(s.Start)
	log.Debug(ctx, "drag started",
		slog.F("ref", int(ref)),
		slog.F("offset_x", e.dragOffset.X), slog.F("offset_y", e.dragOffset.Y))
	e.setMode(ctx, ModeDragging)
}

// PointerMove grows the shape being created or moves the shape being
// dragged, then redraws and recomputes guides. While dragging the pointer
// keeps its offset from the shape's start corner.
func (e *Editor) PointerMove(ctx context.Context, p geometry.Point2D) {
	switch e.mode {
	case ModeCreating:
		e.model.Grow(e.active, p)
	case ModeDragging:
		s, ok := e.model.Get(e.active)
		if !ok {
			return
		}
		dx := (p.X - e.dragOffset.X) - s.Start.X
		dy := (p.Y - e.dragOffset.Y) - s.Start.Y
		e.model.Move(e.active, dx, dy)
	default:
		return
	}
	e.redraw()
	e.recomputeGuides()
}

// PointerUp ends any gesture: the editor returns to idle, forgets the active
// shape and the armed kind, and recomputes guides from the settled shapes.
func (e *Editor) PointerUp(ctx context.Context) {
	if e.mode != ModeIdle {
		log.Debug(ctx, "gesture finished",
			slog.F("mode", e.mode.String()), slog.F("ref", int(e.active)))
	}
	e.clearGesture()
	e.setMode(ctx, ModeIdle)
	e.recomputeGuides()
}

// Reset returns the interaction state to idle without touching the shapes.
func (e *Editor) Reset(ctx context.Context) {
	e.clearGesture()
	e.setMode(ctx, ModeIdle)
}

func (e *Editor) clearGesture() {
	e.armed = false
	e.active = shape.NoRef
	e.dragOffset = geometry.Point2D{}
}

func (e *Editor) setMode(ctx context.Context, m Mode) {
	if e.mode == m {
		return
	}
	log.Debug(ctx, "mode changed", slog.F("from", e.mode.String()), slog.F("to", m.String()))
	e.mode = m
	e.emit(EventModeChanged, m)
}

func (e *Editor) redraw() {
	e.emit(EventRedraw, e.model.Shapes())
}

func (e *Editor) recomputeGuides() {
	e.guides = guides.Compute(e.model.Shapes(), e.tolerance)
	if e.display != nil {
		e.guides.Apply(e.display)
	}
	e.emit(EventGuidesChanged, e.guides)
}

package editor

// EventType identifies editor notifications.
type EventType int

const (
	// EventRedraw fires after shapes changed; data is []shape.Shape.
	EventRedraw EventType = iota
	// EventGuidesChanged fires after guides were recomputed; data is guides.Set.
	EventGuidesChanged
	// EventModeChanged fires on every mode transition; data is Mode.
	EventModeChanged
	// EventArmed fires when a shape kind is armed; data is shape.Kind.
	EventArmed
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// On registers a listener for the event type.
func (e *Editor) On(event EventType, listener EventListener) {
	e.listeners[event] = append(e.listeners[event], listener)
}

// emit calls every listener for the event type in registration order.
func (e *Editor) emit(event EventType, data interface{}) {
	for _, listener := range e.listeners[event] {
		listener(data)
	}
}

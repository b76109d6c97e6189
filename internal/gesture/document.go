// Package gesture implements document-level pointer listeners and the
// pointer-down to pointer-up gestures built on top of them.
//
// A Gesture acquires one move and one up listener when it begins and
// releases both when it ends, wherever the pointer is released.
package gesture

import "github.com/Gaurav-Gosain/retrodesk/internal/geometry"

// Event identifies the pointer event a listener is registered for.
type Event int

const (
	// PointerMove fires for every pointer motion.
	PointerMove Event = iota
	// PointerUp fires when the primary button is released anywhere.
	PointerUp
)

func (e Event) String() string {
	switch e {
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Handler receives a pointer position in viewport coordinates.
type Handler func(p geometry.Point)

type listener struct {
	id    int
	event Event
	fn    Handler
}

// Document is the pointer event source shared by every window on a desktop.
// It is not safe for concurrent use; all calls happen on the UI loop.
type Document struct {
	listeners []listener
	nextID    int
	active    *Gesture
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// AddListener registers fn for ev and returns a handle for RemoveListener.
func (d *Document) AddListener(ev Event, fn Handler) int {
	d.nextID++
	d.listeners = append(d.listeners, listener{id: d.nextID, event: ev, fn: fn})
	return d.nextID
}

// RemoveListener unregisters the listener with the given handle.
// Unknown handles are ignored.
func (d *Document) RemoveListener(id int) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	return len(d.listeners)
}

// Move dispatches a pointer motion to every move listener.
func (d *Document) Move(p geometry.Point) {
	d.dispatch(PointerMove, p)
}

// Up dispatches a pointer release to every up listener.
func (d *Document) Up(p geometry.Point) {
	d.dispatch(PointerUp, p)
}

func (d *Document) dispatch(ev Event, p geometry.Point) {
	// Handlers may remove listeners while we iterate.
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, l := range snapshot {
		if l.event == ev && d.has(l.id) {
			l.fn(p)
		}
	}
}

func (d *Document) has(id int) bool {
	for _, l := range d.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

// Active returns the gesture currently in progress, or nil.
func (d *Document) Active() *Gesture {
	return d.active
}

// Dragging reports whether any gesture is in progress.
func (d *Document) Dragging() bool {
	return d.active != nil
}

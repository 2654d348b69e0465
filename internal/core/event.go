package core

// EventKind tags an input event delivered by a frontend.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventKeyDown
	EventKeyUp
)

// Key identifies the keys the session reacts to. Frontends translate their
// native key codes into these.
type Key int

const (
	KeyUnknown Key = iota
	// KeyToggle flips between drawing and playing.
	KeyToggle
	// KeyModifier is held to erase instead of paint.
	KeyModifier
	// KeyReset clears the grid.
	KeyReset
	// KeyRestore brings back the last checkpoint.
	KeyRestore
	// KeySeed scatters a random soup while drawing.
	KeySeed
)

// Event is one input occurrence. X and Y are pointer pixel coordinates and are
// meaningful for pointer events only.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y int
}

// EventQueue buffers frontend input so the session can consume exactly one
// event per frame.
type EventQueue struct {
	events []Event
}

// Push appends ev. EventNone is discarded.
func (q *EventQueue) Push(ev Event) {
	if ev.Kind == EventNone {
		return
	}
	q.events = append(q.events, ev)
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int { return len(q.events) }

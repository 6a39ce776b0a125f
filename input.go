package triangle

// Key represents a keyboard key.
// Only keys the demo reacts to, or that are useful in logs, are named; the
// backend maps everything else to KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyQ
	KeyCount
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyQ:
		return "Q"
	default:
		return "None"
	}
}

// Action is the transition a key event reports.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// EventKind distinguishes window events.
type EventKind int

const (
	EventKey EventKind = iota + 1
	EventFramebufferSize
)

// Event is a single window or input event.
// Key and Action are set for EventKey; Width and Height for
// EventFramebufferSize.
type Event struct {
	Kind   EventKind
	Key    Key
	Action Action
	Width  int
	Height int
}

// KeyEvent creates a key event.
func KeyEvent(key Key, action Action) Event {
	return Event{Kind: EventKey, Key: key, Action: action}
}

// ResizeEvent creates a framebuffer size event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventFramebufferSize, Width: width, Height: height}
}

// EventQueue buffers events between polls.
// Backends push from their window callbacks and the render loop drains the
// queue once per frame. It is not safe for concurrent use; callbacks run on
// the polling thread.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

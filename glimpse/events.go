package glimpse

// Event is a raw input or window event. Consumers switch on the
// concrete type and ignore types they do not know.
type Event interface {
	event()
}

type KeyEvent struct {
	Key    Key
	Action Action
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
}

// CursorEvent reports a cursor movement. Delta is the movement since the
// previous CursorEvent, Dragging is true while the left button is held.
type CursorEvent struct {
	X, Y           float32
	DeltaX, DeltaY float32
	Dragging       bool
}

// ScrollEvent reports a scroll wheel or touchpad scroll offset.
type ScrollEvent struct {
	OffsetX, OffsetY float32
}

// ResizeEvent is sent when the framebuffer size of the window changes.
type ResizeEvent struct {
	Width, Height uint32
}

// ScaleEvent is sent when the content scale of the window changes, e.g.
// when the window is moved to a monitor with a different dpi.
type ScaleEvent struct {
	X, Y float32
}

// CloseEvent is sent when the user requests to close the window.
type CloseEvent struct{}

func (KeyEvent) event()         {}
func (MouseButtonEvent) event() {}
func (CursorEvent) event()      {}
func (ScrollEvent) event()      {}
func (ResizeEvent) event()      {}
func (ScaleEvent) event()       {}
func (CloseEvent) event()       {}

// Queue buffers events between the toolkit callbacks and the frame loop.
// It is not safe for concurrent use, callbacks are delivered on the
// thread that polls for events.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) Len() int {
	return len(q.events)
}

// Drain appends at most limit queued events to dst and removes them from
// the queue. Events that do not fit stay queued for the next call.
// A limit of zero or less drains everything.
func (q *Queue) Drain(dst []Event, limit int) []Event {
	n := len(q.events)
	if limit > 0 {
		n = min(n, limit)
	}

	dst = append(dst, q.events[:n]...)

	// move the remaining events to the front, reusing the backing array
	remaining := copy(q.events, q.events[n:])
	clear(q.events[remaining:])
	q.events = q.events[:remaining]

	return dst
}

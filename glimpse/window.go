package glimpse

import "time"

// MaxEventsPerPoll limits the number of events a Window hands out per
// call to PollEvents. Events above the limit are delivered on the next call.
const MaxEventsPerPoll = 256

// Window is the part of a window the frame loop needs. Implementations
// are glfw (package desktop) and the HeadlessWindow.
type Window interface {
	// PollEvents processes pending toolkit events without blocking and
	// appends the queued events to dst.
	PollEvents(dst []Event) []Event

	// WaitEvents blocks until an event arrives or the timeout elapses.
	WaitEvents(timeout time.Duration)

	// Size returns the size of the framebuffer in pixels.
	Size() (width, height uint32)

	SetTitle(title string)

	Fullscreen() bool
	SetFullscreen(fullscreen bool)
}

// FullscreenPolicy selects how a window enters full-screen mode.
type FullscreenPolicy string

const (
	// FullscreenBorderless covers the monitor with an undecorated window
	// and keeps the current video mode.
	FullscreenBorderless FullscreenPolicy = "borderless"

	// FullscreenExclusive switches the monitor to the window.
	FullscreenExclusive FullscreenPolicy = "exclusive"
)

func (p FullscreenPolicy) Valid() bool {
	return p == FullscreenBorderless || p == FullscreenExclusive
}

package glimpse

import (
	"time"
)

// HeadlessWindow is a Window without any toolkit behind it. Events are
// scripted using Send, the size is set with Resize.
type HeadlessWindow struct {
	queue Queue

	width, height uint32
	fullscreen    bool

	// Titles records every title that was set.
	Titles []string

	// Waits counts the calls to WaitEvents.
	Waits int
}

func NewHeadlessWindow(width, height uint32) *HeadlessWindow {
	return &HeadlessWindow{width: width, height: height}
}

// Send queues events to be returned by the next call to PollEvents.
func (h *HeadlessWindow) Send(events ...Event) {
	for _, ev := range events {
		h.queue.Push(ev)
	}
}

// Resize changes the window size and queues a matching ResizeEvent.
func (h *HeadlessWindow) Resize(width, height uint32) {
	h.width = width
	h.height = height
	h.queue.Push(ResizeEvent{Width: width, Height: height})
}

func (h *HeadlessWindow) PollEvents(dst []Event) []Event {
	return h.queue.Drain(dst, MaxEventsPerPoll)
}

func (h *HeadlessWindow) WaitEvents(timeout time.Duration) {
	h.Waits += 1
}

func (h *HeadlessWindow) Size() (uint32, uint32) {
	return h.width, h.height
}

func (h *HeadlessWindow) SetTitle(title string) {
	h.Titles = append(h.Titles, title)
}

// Title returns the last title set, or an empty string.
func (h *HeadlessWindow) Title() string {
	if len(h.Titles) == 0 {
		return ""
	}

	return h.Titles[len(h.Titles)-1]
}

func (h *HeadlessWindow) Fullscreen() bool {
	return h.fullscreen
}

func (h *HeadlessWindow) SetFullscreen(fullscreen bool) {
	h.fullscreen = fullscreen
}

package orion

import (
	"github.com/oliverbestmann/cube/glimpse"
	"github.com/oliverbestmann/cube/glm"
)

// Bindings maps keys to the interactions of the viewer.
type Bindings struct {
	Left, Right, Up, Down []glimpse.Key

	ToggleFullscreen glimpse.Key
	Quit             glimpse.Key
}

var DefaultBindings = Bindings{
	Left:  []glimpse.Key{glimpse.KeyA, glimpse.KeyLeft},
	Right: []glimpse.Key{glimpse.KeyD, glimpse.KeyRight},
	Up:    []glimpse.Key{glimpse.KeyW, glimpse.KeyUp},
	Down:  []glimpse.Key{glimpse.KeyS, glimpse.KeyDown},

	ToggleFullscreen: glimpse.KeyF,
	Quit:             glimpse.KeyEscape,
}

// DefaultDragSensitivity converts dragged pixels into pan units.
const DefaultDragSensitivity = 1.0 / 200.0

// InputState accumulates the interaction of one frame from raw events.
//
// Accumulators (drag, zoom) add up all events of a frame and the toggle is
// edge triggered. Both are cleared by Reset. Keys that are held down are
// level state and survive Reset until their release event arrives, the
// quit request is sticky until consumed.
type InputState struct {
	bindings Bindings

	// pixels to pan units
	dragSensitivity float32

	// keys currently held down
	held map[glimpse.Key]bool

	drag glm.Vec2f
	zoom float32

	toggleFullscreen bool
	quit             bool
}

func NewInputState(bindings Bindings, dragSensitivity float32) *InputState {
	return &InputState{
		bindings:        bindings,
		dragSensitivity: dragSensitivity,
		held:            map[glimpse.Key]bool{},
	}
}

// Ingest updates the state from a single event. Events the input state does
// not care about are ignored.
func (s *InputState) Ingest(ev glimpse.Event) {
	switch ev := ev.(type) {
	case glimpse.KeyEvent:
		s.ingestKey(ev)

	case glimpse.ScrollEvent:
		s.zoom += ev.OffsetY

	case glimpse.CursorEvent:
		if ev.Dragging {
			// screen y grows downwards, pan y grows upwards
			delta := glm.Vec2f{ev.DeltaX, -ev.DeltaY}
			s.drag = s.drag.Add(delta.Scale(s.dragSensitivity))
		}

	case glimpse.CloseEvent:
		s.quit = true
	}
}

func (s *InputState) ingestKey(ev glimpse.KeyEvent) {
	switch ev.Action {
	case glimpse.Release:
		delete(s.held, ev.Key)
		return

	case glimpse.Repeat:
		// the key is already held, nothing changes
		return
	}

	// a second press without a release in between must not re-trigger
	if s.held[ev.Key] {
		return
	}

	s.held[ev.Key] = true

	switch ev.Key {
	case s.bindings.ToggleFullscreen:
		s.toggleFullscreen = true

	case s.bindings.Quit:
		s.quit = true
	}
}

// Pan returns the pan direction from the held direction keys. Each axis is
// in [-1, 1]. The direction is a rate, it is scaled by the frame time.
func (s *InputState) Pan() glm.Vec2f {
	var keys glm.Vec2f

	if s.anyHeld(s.bindings.Left) {
		keys[0] -= 1
	}

	if s.anyHeld(s.bindings.Right) {
		keys[0] += 1
	}

	if s.anyHeld(s.bindings.Up) {
		keys[1] += 1
	}

	if s.anyHeld(s.bindings.Down) {
		keys[1] -= 1
	}

	return keys
}

// Drag returns the pan distance accumulated from dragging the cursor
// since the last Reset. Unlike Pan, this is a distance and not a rate.
func (s *InputState) Drag() glm.Vec2f {
	return s.drag
}

// Zoom returns the accumulated scroll offset.
func (s *InputState) Zoom() float32 {
	return s.zoom
}

func (s *InputState) ToggleFullscreen() bool {
	return s.toggleFullscreen
}

func (s *InputState) QuitRequested() bool {
	return s.quit
}

// ConsumeQuit returns the quit request and clears it.
func (s *InputState) ConsumeQuit() bool {
	quit := s.quit
	s.quit = false
	return quit
}

func (s *InputState) IsHeld(key glimpse.Key) bool {
	return s.held[key]
}

// Reset clears the per frame accumulators and edge triggered flags.
func (s *InputState) Reset() {
	s.drag = glm.Vec2f{}
	s.zoom = 0
	s.toggleFullscreen = false
}

func (s *InputState) anyHeld(keys []glimpse.Key) bool {
	for _, key := range keys {
		if s.held[key] {
			return true
		}
	}

	return false
}

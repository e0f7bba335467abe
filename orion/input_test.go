package orion

import (
	"testing"

	"github.com/oliverbestmann/cube/glimpse"
	"github.com/oliverbestmann/cube/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(key glimpse.Key) glimpse.KeyEvent {
	return glimpse.KeyEvent{Key: key, Action: glimpse.Press}
}

func release(key glimpse.Key) glimpse.KeyEvent {
	return glimpse.KeyEvent{Key: key, Action: glimpse.Release}
}

func TestInputStateAccumulatesWithinFrame(t *testing.T) {
	input := NewInputState(DefaultBindings, 0.5)

	input.Ingest(glimpse.ScrollEvent{OffsetY: 1})
	input.Ingest(glimpse.ScrollEvent{OffsetY: 2})
	input.Ingest(glimpse.CursorEvent{DeltaX: 4, DeltaY: 2, Dragging: true})
	input.Ingest(glimpse.CursorEvent{DeltaX: 2, DeltaY: 2, Dragging: true})

	// moving without dragging does not pan
	input.Ingest(glimpse.CursorEvent{DeltaX: 100, DeltaY: 100})

	assert.Equal(t, float32(3), input.Zoom())
	assert.Equal(t, glm.Vec2f{3, -2}, input.Drag())
}

func TestInputStateResetIsIdempotent(t *testing.T) {
	input := NewInputState(DefaultBindings, DefaultDragSensitivity)

	input.Ingest(glimpse.ScrollEvent{OffsetY: 1})
	input.Ingest(glimpse.CursorEvent{DeltaX: 4, Dragging: true})
	input.Ingest(press(glimpse.KeyF))

	input.Reset()
	first := *input

	input.Reset()

	assert.Equal(t, first.drag, input.drag)
	assert.Equal(t, first.zoom, input.zoom)
	assert.Equal(t, first.toggleFullscreen, input.toggleFullscreen)

	assert.Zero(t, input.Zoom())
	assert.True(t, input.Drag().IsZero())
	assert.False(t, input.ToggleFullscreen())
}

func TestInputStateHeldKeysSurviveReset(t *testing.T) {
	input := NewInputState(DefaultBindings, DefaultDragSensitivity)

	input.Ingest(press(glimpse.KeyD))
	input.Ingest(press(glimpse.KeyW))
	assert.Equal(t, glm.Vec2f{1, 1}, input.Pan())

	input.Reset()
	assert.Equal(t, glm.Vec2f{1, 1}, input.Pan())

	input.Ingest(release(glimpse.KeyW))
	assert.Equal(t, glm.Vec2f{1, 0}, input.Pan())

	// opposite directions cancel out
	input.Ingest(press(glimpse.KeyLeft))
	assert.True(t, input.Pan().IsZero())
}

func TestInputStateToggleIsEdgeTriggered(t *testing.T) {
	input := NewInputState(DefaultBindings, DefaultDragSensitivity)

	input.Ingest(press(glimpse.KeyF))
	require.True(t, input.ToggleFullscreen())
	input.Reset()

	// repeats and a second press while held do not toggle again
	input.Ingest(glimpse.KeyEvent{Key: glimpse.KeyF, Action: glimpse.Repeat})
	input.Ingest(press(glimpse.KeyF))
	assert.False(t, input.ToggleFullscreen())

	input.Ingest(release(glimpse.KeyF))
	input.Ingest(press(glimpse.KeyF))
	assert.True(t, input.ToggleFullscreen())
}

func TestInputStateQuitIsSticky(t *testing.T) {
	input := NewInputState(DefaultBindings, DefaultDragSensitivity)

	input.Ingest(press(glimpse.KeyEscape))
	input.Reset()

	require.True(t, input.QuitRequested())
	require.True(t, input.ConsumeQuit())
	require.False(t, input.QuitRequested())

	input.Ingest(glimpse.CloseEvent{})
	require.True(t, input.QuitRequested())
}

func TestInputStateIgnoresUnknownEvents(t *testing.T) {
	input := NewInputState(DefaultBindings, DefaultDragSensitivity)

	input.Ingest(glimpse.ResizeEvent{Width: 10, Height: 10})
	input.Ingest(glimpse.MouseButtonEvent{Button: glimpse.MouseButtonLeft, Action: glimpse.Press})
	input.Ingest(press(glimpse.KeyUnknown))

	assert.True(t, input.Pan().IsZero())
	assert.False(t, input.QuitRequested())
	assert.True(t, input.IsHeld(glimpse.KeyUnknown))
}

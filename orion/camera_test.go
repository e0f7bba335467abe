package orion

import (
	"testing"

	"github.com/oliverbestmann/cube/glm"
	"github.com/stretchr/testify/assert"
)

func TestCameraZoomIsClamped(t *testing.T) {
	camera := DefaultCamera()

	camera.Zoom(1000, 1.1)
	assert.Equal(t, camera.MinDistance, camera.Distance)

	camera.Zoom(-1000, 1.1)
	assert.Equal(t, camera.MaxDistance, camera.Distance)
}

func TestCameraZoomStep(t *testing.T) {
	camera := DefaultCamera()
	camera.Distance = 4

	camera.Zoom(1, 2)
	assert.InDelta(t, 2, camera.Distance, 1e-5)
}

func TestCameraPitchIsClamped(t *testing.T) {
	camera := DefaultCamera()

	camera.Orbit(0, 10)
	assert.Less(t, float32(camera.Pitch), float32(glm.HalfPi))

	camera.Orbit(0, -20)
	assert.Greater(t, float32(camera.Pitch), float32(-glm.HalfPi))
}

func TestCameraStateBasis(t *testing.T) {
	camera := DefaultCamera()

	state := camera.State(16.0/9.0, 0)

	assert.InDelta(t, camera.Distance, state.Eye.Length(), 1e-4)
	assert.InDelta(t, 1, state.Forward.Length(), 1e-4)
	assert.InDelta(t, 0, state.Forward.Dot(state.Right), 1e-4)
	assert.InDelta(t, 0, state.Forward.Dot(state.Up), 1e-4)

	// forward points at the target in the origin
	assert.InDelta(t, -1, state.Forward.Dot(state.Eye.Normalize()), 1e-4)

	assert.InDelta(t, 0.57735, state.TanHalfFovY, 1e-4)
}

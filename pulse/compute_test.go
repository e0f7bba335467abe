package pulse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkgroupsCoverImage(t *testing.T) {
	assert.Equal(t, uint32(1), workgroups(1, 8))
	assert.Equal(t, uint32(1), workgroups(8, 8))
	assert.Equal(t, uint32(2), workgroups(9, 8))
	assert.Equal(t, uint32(240), workgroups(1920, 8))
	assert.Equal(t, uint32(135), workgroups(1080, 8))
}

func TestCameraUniformLayout(t *testing.T) {
	// four vec4<f32> in cube.wgsl
	assert.Equal(t, uintptr(64), sizeOf[cameraUniform]())

	value := cameraUniform{Eye: [4]float32{1, 2, 3, 4}}
	assert.Len(t, asByteSlice(&value), 64)
}

func TestPresentModeOf(t *testing.T) {
	for _, name := range []string{"fifo", "mailbox", "immediate"} {
		_, err := PresentModeOf(name)
		require.NoError(t, err, name)
	}

	_, err := PresentModeOf("vsync")
	assert.Error(t, err)
}

func TestCubeShaderHasWorkgroupPlaceholder(t *testing.T) {
	assert.Contains(t, cubeShaderSource, "WORKGROUP_SIZE")
	assert.True(t, strings.Contains(compositeShaderSource, "fn vertex"))
}

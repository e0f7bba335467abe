package procgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseRGBASize(t *testing.T) {
	opts := DefaultNoiseOptions()
	opts.Size = 32

	pixels, err := NoiseRGBA(opts)
	require.NoError(t, err)
	require.Len(t, pixels, 32*32*4)

	for idx := 3; idx < len(pixels); idx += 4 {
		require.Equal(t, byte(255), pixels[idx])
	}
}

func TestNoiseRGBAIsDeterministic(t *testing.T) {
	opts := DefaultNoiseOptions()
	opts.Size = 16

	first, err := NoiseRGBA(opts)
	require.NoError(t, err)

	second, err := NoiseRGBA(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	opts.Seed += 1
	other, err := NoiseRGBA(opts)
	require.NoError(t, err)

	assert.NotEqual(t, first, other)
}

func TestNoiseRGBAHasContrast(t *testing.T) {
	opts := DefaultNoiseOptions()
	opts.Size = 64
	opts.Tint = [3]float32{1, 1, 1}

	pixels, err := NoiseRGBA(opts)
	require.NoError(t, err)

	lo, hi := byte(255), byte(0)
	for idx := 0; idx < len(pixels); idx += 4 {
		lo = min(lo, pixels[idx])
		hi = max(hi, pixels[idx])
	}

	assert.Greater(t, int(hi)-int(lo), 32)
}

func TestTileableWrapsAround(t *testing.T) {
	noise := newNoise(DefaultNoiseOptions().Octaves)
	for _, v := range []float64{0, 0.25, 0.7} {
		left := tileable(noise, 0, v, 4, 0)
		right := tileable(noise, 1, v, 4, 0)
		assert.InDelta(t, left, right, 1e-6)

		top := tileable(noise, v, 0, 4, 0)
		bottom := tileable(noise, v, 1, 4, 0)
		assert.InDelta(t, top, bottom, 1e-6)
	}
}

func TestNoiseRGBARejectsEmpty(t *testing.T) {
	_, err := NoiseRGBA(NoiseOptions{})
	assert.Error(t, err)
}

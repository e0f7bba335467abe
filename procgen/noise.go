// Package procgen generates the textures of the cube procedurally.
package procgen

import (
	"fmt"
	"math"

	"github.com/furui/fastnoiselite-go"
)

type NoiseOptions struct {
	// Size of the square texture in pixels
	Size uint32

	// Seed moves the sample window through the noise field
	Seed int

	// Frequency of the base octave, in cycles per texture
	Frequency float32

	Octaves int

	// Tint of the brightest pixel, rgb in [0, 1]
	Tint [3]float32
}

func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{
		Size:      256,
		Seed:      1337,
		Frequency: 4,
		Octaves:   4,
		Tint:      [3]float32{0.95, 0.55, 0.25},
	}
}

// NoiseRGBA renders fbm noise into tightly packed rgba8 pixels. The
// result tiles seamlessly, so the texture can be sampled with wrapping.
func NoiseRGBA(opts NoiseOptions) ([]byte, error) {
	if opts.Size == 0 {
		return nil, fmt.Errorf("noise texture of size 0")
	}

	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}

	noise := newNoise(opts.Octaves)

	size := int(opts.Size)
	pixels := make([]byte, size*size*4)

	// fastnoiselite seeds are fixed at construction, move the window instead
	offset := float64(opts.Seed) * 101.0
	frequency := float64(opts.Frequency)

	for y := range size {
		v := float64(y) / float64(size)

		for x := range size {
			u := float64(x) / float64(size)

			value := tileable(noise, u, v, frequency, offset)

			// map [-1, 1] to [0, 1]
			value = min(1, max(0, value*0.5+0.5))

			idx := (y*size + x) * 4
			pixels[idx+0] = channel(value, opts.Tint[0])
			pixels[idx+1] = channel(value, opts.Tint[1])
			pixels[idx+2] = channel(value, opts.Tint[2])
			pixels[idx+3] = 255
		}
	}

	return pixels, nil
}

func newNoise(octaves int) *fastnoiselite.FastNoiseLite {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = 1
	noise.SetFractalOctaves(int32(octaves))
	return noise
}

// tileable blends four samples of the noise field so that the value at
// u=0 equals the value at u=1 and the same for v.
func tileable(noise *fastnoiselite.FastNoiseLite, u, v, frequency, offset float64) float64 {
	sample := func(x, y float64) float64 {
		return float64(noise.GetNoise2D(
			fastnoiselite.FNLfloat(x*frequency+offset),
			fastnoiselite.FNLfloat(y*frequency+offset),
		))
	}

	a := sample(u, v)
	b := sample(u-1, v)
	c := sample(u, v-1)
	d := sample(u-1, v-1)

	ab := lerp(a, b, u)
	cd := lerp(c, d, u)

	return lerp(ab, cd, v)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func channel(value float64, tint float32) byte {
	return byte(math.Round(value * float64(tint) * 255))
}

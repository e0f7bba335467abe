package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossProductOfAxes(t *testing.T) {
	x := Vec3f{1, 0, 0}
	y := Vec3f{0, 1, 0}

	assert.Equal(t, Vec3f{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3f{0, 0, -1}, y.Cross(x))
}

func TestNormalize(t *testing.T) {
	v := Vec3f{3, 0, 4}.Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-6)
	assert.InDelta(t, 0.6, v[0], 1e-6)

	// the zero vector must not turn into NaN
	assert.Equal(t, Vec3f{}, Vec3f{}.Normalize())
	assert.Equal(t, Vec2f{}, Vec2f{}.Normalize())
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2f{1, 2}
	b := Vec2f{3, -1}

	assert.Equal(t, Vec2f{4, 1}, a.Add(b))
	assert.Equal(t, Vec2f{-2, 3}, a.Sub(b))
	assert.Equal(t, Vec2f{2, 4}, a.Scale(2))
	assert.Equal(t, float32(1), a.Dot(b))
	assert.True(t, Vec2f{}.IsZero())
}

func TestRadWrapAndClamp(t *testing.T) {
	assert.InDelta(t, 0, float64(Rad(2*math.Pi).Wrap()), 1e-5)
	assert.InDelta(t, -math.Pi/2, float64(Rad(3*math.Pi/2).Wrap()), 1e-5)
	assert.Equal(t, Rad(1), Rad(3).Clamp(-1, 1))
	assert.InDelta(t, 90, DegToRad(90.0).Degrees(), 1e-4)
}

func TestSincos(t *testing.T) {
	s, c := Rad(math.Pi / 2).Sincos()
	assert.InDelta(t, 1, s, 1e-5)
	assert.InDelta(t, 0, c, 1e-5)
}

package glm

import "math"

// Rad is an angle in radians.
type Rad float32

const (
	Pi     Rad = math.Pi
	HalfPi Rad = math.Pi / 2
)

func DegToRad[T numeric](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func (r Rad) Degrees() float32 {
	return float32(r) * (180 / math.Pi)
}

// Sincos returns sin(r) and cos(r) using the float32 approximations.
func (r Rad) Sincos() (sin, cos float32) {
	return fastSincos(r)
}

// Clamp restricts the angle to the range [lo, hi].
func (r Rad) Clamp(lo, hi Rad) Rad {
	return max(lo, min(hi, r))
}

// Wrap maps the angle into the range [-Pi, Pi).
func (r Rad) Wrap() Rad {
	w := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}

	return Rad(w - math.Pi)
}

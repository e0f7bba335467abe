package orion

import (
	"math"

	"github.com/oliverbestmann/cube/glm"
)

// pitch stays just inside +-90 degree to keep the basis well defined
const maxPitch = glm.HalfPi - 0.01

var worldUp = glm.Vec3f{0, 1, 0}

// Camera orbits around Target at the given Distance.
type Camera struct {
	Target glm.Vec3f

	Yaw   glm.Rad
	Pitch glm.Rad

	Distance    float32
	MinDistance float32
	MaxDistance float32

	// vertical field of view
	FovY glm.Rad
}

func DefaultCamera() Camera {
	return Camera{
		Yaw:         glm.Pi / 4,
		Pitch:       glm.DegToRad(25.0),
		Distance:    4,
		MinDistance: 1.5,
		MaxDistance: 20,
		FovY:        glm.DegToRad(60.0),
	}
}

// Orbit rotates the camera around its target.
func (c *Camera) Orbit(yaw, pitch glm.Rad) {
	c.Yaw = (c.Yaw + yaw).Wrap()
	c.Pitch = (c.Pitch + pitch).Clamp(-maxPitch, maxPitch)
}

// Zoom moves the camera towards the target for positive steps, each step
// dividing the distance by factor.
func (c *Camera) Zoom(steps, factor float32) {
	if steps == 0 || factor <= 0 {
		return
	}

	scale := float32(math.Pow(float64(factor), float64(-steps)))
	c.Distance = min(c.MaxDistance, max(c.MinDistance, c.Distance*scale))
}

// Eye returns the position of the camera in world space.
func (c *Camera) Eye() glm.Vec3f {
	sinYaw, cosYaw := c.Yaw.Sincos()
	sinPitch, cosPitch := c.Pitch.Sincos()

	offset := glm.Vec3f{
		cosPitch * sinYaw,
		sinPitch,
		cosPitch * cosYaw,
	}

	return c.Target.Add(offset.Scale(c.Distance))
}

// CameraState is everything the compute stage needs to cast the primary
// rays of a frame.
type CameraState struct {
	Eye     glm.Vec3f
	Forward glm.Vec3f
	Right   glm.Vec3f
	Up      glm.Vec3f

	// tan(fovY / 2)
	TanHalfFovY float32

	// width / height of the target image
	Aspect float32

	// seconds since the app started
	Time float32
}

func (c *Camera) State(aspect float32, time float32) CameraState {
	eye := c.Eye()

	forward := c.Target.Sub(eye).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	return CameraState{
		Eye:         eye,
		Forward:     forward,
		Right:       right,
		Up:          up,
		TanHalfFovY: float32(math.Tan(float64(c.FovY) / 2)),
		Aspect:      aspect,
		Time:        time,
	}
}

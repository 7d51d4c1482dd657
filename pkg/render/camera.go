package render

import (
	"errors"
	"math"

	"github.com/taigrr/biome/pkg/math3d"
)

// Camera is an orbit camera: the eye circles a target point and rays are
// generated in camera-local space (x right, y up, looking down -z) and
// transformed to world space through the camera's orthonormal basis.
type Camera struct {
	Eye    math3d.Vec3
	Target math3d.Vec3
	Up     math3d.Vec3

	// Cached orthonormal basis (computed on demand)
	right      math3d.Vec3
	up         math3d.Vec3
	forward    math3d.Vec3 // Points from target toward eye (+z in camera space)
	basisDirty bool
}

// MinZoomDistance is the closest the eye may get to the target.
const MinZoomDistance = 1.0

const maxOrbitPitch = math.Pi/2 - 0.01

// ErrDegenerateCamera reports an eye/target/up configuration with no
// usable orientation.
var ErrDegenerateCamera = errors.New("render: degenerate camera basis")

// NewCamera creates an orbit camera. It returns an error when the eye
// coincides with the target or the view direction is parallel to up, since
// no orthonormal basis exists for those configurations.
func NewCamera(eye, target, up math3d.Vec3) (*Camera, error) {
	c := &Camera{
		Eye:        eye,
		Target:     target,
		Up:         up,
		basisDirty: true,
	}

	forward := eye.Sub(target)
	if forward.LenSq() == 0 || up.LenSq() == 0 {
		return nil, ErrDegenerateCamera
	}
	if up.Cross(forward).LenSq() < 1e-12*forward.LenSq()*up.LenSq() {
		return nil, ErrDegenerateCamera
	}

	return c, nil
}

// Distance returns the current eye-to-target distance.
func (c *Camera) Distance() float64 {
	return c.Eye.Distance(c.Target)
}

// Orbit rotates the eye around the target by the given yaw and pitch
// deltas (radians), preserving the distance to the target. Pitch is
// clamped short of the poles so the basis never degenerates.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.Eye.Sub(c.Target)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(offset.Y / radius)

	yaw += deltaYaw
	pitch += deltaPitch
	if pitch > maxOrbitPitch {
		pitch = maxOrbitPitch
	}
	if pitch < -maxOrbitPitch {
		pitch = -maxOrbitPitch
	}

	c.Eye = c.Target.Add(math3d.V3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
	c.basisDirty = true
}

// Zoom moves the eye along the eye-to-target axis. Positive delta moves
// toward the target; the distance never drops below MinZoomDistance.
func (c *Camera) Zoom(delta float64) {
	back := c.Eye.Sub(c.Target)
	dist := back.Len()
	if dist == 0 {
		return
	}

	newDist := dist - delta
	if newDist < MinZoomDistance {
		newDist = MinZoomDistance
	}

	c.Eye = c.Target.Add(back.Scale(newDist / dist))
	c.basisDirty = true
}

// BaseChange transforms a camera-local direction into world space using
// the current basis. The basis is recomputed lazily after any orbit or
// zoom, so the result is never stale.
func (c *Camera) BaseChange(d math3d.Vec3) math3d.Vec3 {
	if c.basisDirty {
		c.computeBasis()
		c.basisDirty = false
	}
	return c.right.Scale(d.X).
		Add(c.up.Scale(d.Y)).
		Add(c.forward.Scale(d.Z))
}

func (c *Camera) computeBasis() {
	c.forward = c.Eye.Sub(c.Target).Normalize()
	right := c.Up.Cross(c.forward)
	if right.LenSq() < 1e-12 {
		// Looking straight along up: substitute a fallback up axis so the
		// basis stays orthonormal instead of collapsing to NaNs.
		right = math3d.V3(0, 0, 1).Cross(c.forward)
	}
	c.right = right.Normalize()
	c.up = c.forward.Cross(c.right)
}

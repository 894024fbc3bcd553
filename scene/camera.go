package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera carries the eye parameters the compute kernel turns into
// primary rays. FOV is the vertical field of view in radians.
type Camera struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Up       mgl32.Vec3
	FOV      float32
}

// DefaultCamera looks down -Z from the origin with a 60 degree field
// of view.
func DefaultCamera() *Camera {
	return &Camera{
		Forward: mgl32.Vec3{0, 0, -1},
		Up:      mgl32.Vec3{0, 1, 0},
		FOV:     math32.Pi / 3,
	}
}

// LookAt orients the camera so Forward points from Position at target,
// re-deriving Up so the basis stays orthonormal.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Forward = target.Sub(c.Position).Normalize()
	right := c.Forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < 1e-6 {
		// Forward is (anti)parallel to world up; fall back to world Z.
		right = c.Forward.Cross(mgl32.Vec3{0, 0, 1})
	}
	c.Up = right.Normalize().Cross(c.Forward).Normalize()
}

// Orbit places the camera on a circle of the given radius around
// center at the given height, facing the center. angle is in radians.
func (c *Camera) Orbit(center mgl32.Vec3, radius, height, angle float32) {
	c.Position = mgl32.Vec3{
		center.X() + radius*math32.Sin(angle),
		center.Y() + height,
		center.Z() + radius*math32.Cos(angle),
	}
	c.LookAt(center)
}

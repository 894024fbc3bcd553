package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const cameraEpsilon = 1e-5

func nearVec3(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < cameraEpsilon
}

func TestDefaultCamera(t *testing.T) {
	cam := DefaultCamera()
	if !nearVec3(cam.Forward, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("forward: expected -Z, got %v", cam.Forward)
	}
	if !nearVec3(cam.Up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("up: expected +Y, got %v", cam.Up)
	}
	if cam.FOV <= 0 || cam.FOV >= math32.Pi {
		t.Errorf("fov out of range: %v", cam.FOV)
	}
}

func TestLookAt(t *testing.T) {
	cam := DefaultCamera()
	cam.Position = mgl32.Vec3{0, 2, 5}
	target := mgl32.Vec3{0, 0, 0}
	cam.LookAt(target)

	want := target.Sub(cam.Position).Normalize()
	if !nearVec3(cam.Forward, want) {
		t.Errorf("forward: expected %v, got %v", want, cam.Forward)
	}
	if d := math32.Abs(cam.Forward.Len() - 1); d > cameraEpsilon {
		t.Errorf("forward not unit length: %v", cam.Forward.Len())
	}
	if d := math32.Abs(cam.Up.Len() - 1); d > cameraEpsilon {
		t.Errorf("up not unit length: %v", cam.Up.Len())
	}
	if d := math32.Abs(cam.Forward.Dot(cam.Up)); d > cameraEpsilon {
		t.Errorf("forward and up not orthogonal: dot = %v", d)
	}
	if cam.Up.Y() <= 0 {
		t.Errorf("up flipped below horizon: %v", cam.Up)
	}
}

func TestLookAtStraightDown(t *testing.T) {
	// Degenerate case: forward parallel to world up.
	cam := DefaultCamera()
	cam.Position = mgl32.Vec3{0, 10, 0}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	if !nearVec3(cam.Forward, mgl32.Vec3{0, -1, 0}) {
		t.Errorf("forward: expected -Y, got %v", cam.Forward)
	}
	if d := math32.Abs(cam.Up.Len() - 1); d > cameraEpsilon {
		t.Errorf("up not unit length: %v", cam.Up.Len())
	}
	if d := math32.Abs(cam.Forward.Dot(cam.Up)); d > cameraEpsilon {
		t.Errorf("forward and up not orthogonal: dot = %v", d)
	}
}

func TestOrbit(t *testing.T) {
	cam := DefaultCamera()
	center := mgl32.Vec3{1, 0, -2}

	for _, angle := range []float32{0, math32.Pi / 4, math32.Pi, 3 * math32.Pi / 2} {
		cam.Orbit(center, 5, 2, angle)

		if d := math32.Abs(cam.Position.Y() - center.Y() - 2); d > cameraEpsilon {
			t.Errorf("angle %v: height off by %v", angle, d)
		}
		flat := cam.Position.Sub(center)
		horizontal := math32.Sqrt(flat.X()*flat.X() + flat.Z()*flat.Z())
		if d := math32.Abs(horizontal - 5); d > 1e-4 {
			t.Errorf("angle %v: radius %v, expected 5", angle, horizontal)
		}
		// Facing the center throughout the orbit.
		toCenter := center.Sub(cam.Position).Normalize()
		if !nearVec3(cam.Forward, toCenter) {
			t.Errorf("angle %v: forward %v not facing center", angle, cam.Forward)
		}
	}
}

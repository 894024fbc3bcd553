package renderer

import (
	"math"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"compute-raytracer/core"
	"compute-raytracer/internal/opengl"
	"compute-raytracer/scene"
)

// newTestContext makes a hidden OpenGL 4.3 context current on the test
// goroutine, or skips the test on machines without a usable driver.
func newTestContext(t *testing.T) func() {
	t.Helper()
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		t.Skipf("glfw init: %v", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(64, 64, "test", nil, nil)
	if err != nil {
		glfw.Terminate()
		t.Skipf("no OpenGL 4.3 context: %v", err)
	}
	win.MakeContextCurrent()
	if err := opengl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		t.Skipf("gl init: %v", err)
	}
	return func() {
		win.Destroy()
		glfw.Terminate()
	}
}

// renderTestScene: one red sphere dead ahead of the default eye, lit
// from above.
func renderTestScene() *scene.Scene {
	s := scene.NewScene()
	red := s.AddMaterial(scene.Material{
		Specular: 0.5, Diffuse: 0.9, Ambient: 0.4, Shininess: 20,
		Color: core.ColorRed,
	})
	s.AddSphere(scene.Sphere{Position: mgl32.Vec3{0, 0, -5}, Radius: 2, Material: red})
	s.AddLight(scene.OmniLight{Position: mgl32.Vec3{0, 6, 0}, Color: core.ColorWhite})
	return s
}

// readResult pulls the raytracer's output texture back as RGBA floats.
func readResult(r *ComputeRaytracer) []float32 {
	tex := r.Result()
	pix := make([]float32, tex.Width()*tex.Height()*4)
	unbind := tex.Bind()
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.FLOAT, gl.Ptr(pix))
	unbind()
	return pix
}

func pixelAt(pix []float32, width, x, y int32) [4]float32 {
	base := (y*width + x) * 4
	return [4]float32{pix[base], pix[base+1], pix[base+2], pix[base+3]}
}

func TestNewComputeRaytracer(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	r, err := NewComputeRaytracer(renderTestScene(), 64, 64)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer r.Destroy()

	tex := r.Result()
	if tex == nil {
		t.Fatal("expected a result texture")
	}
	if tex.Width() != 64 || tex.Height() != 64 {
		t.Errorf("result dimensions: expected 64x64, got %dx%d", tex.Width(), tex.Height())
	}
}

func TestRenderReadback(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	r, err := NewComputeRaytracer(renderTestScene(), 64, 64)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer r.Destroy()
	r.AmbientColor = mgl32.Vec3{0.3, 0.3, 0.3}

	r.Render()
	gl.Finish()
	pix := readResult(r)

	for i, v := range pix {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("non-finite value %v at index %d", v, i)
		}
	}
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 1 {
			t.Fatalf("alpha at pixel %d: expected 1, got %v", i/4, pix[i])
		}
	}

	// The sphere fills the view center; the corners miss it and show
	// the blank color.
	center := pixelAt(pix, 64, 32, 32)
	corner := pixelAt(pix, 64, 0, 0)
	if center[0] <= center[2] {
		t.Errorf("center pixel %v not dominated by the red material", center)
	}
	if d := float64(corner[0] - r.BlankColor.X()); math.Abs(d) > 1e-4 {
		t.Errorf("corner pixel %v does not show the blank color %v", corner, r.BlankColor)
	}
	if center == corner {
		t.Error("center and corner pixels identical; the sphere did not render")
	}
}

func TestRenderEmptyScene(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	// Zero spheres, materials and lights upload as zero-size buffers;
	// every ray misses and the image is uniformly blank.
	r, err := NewComputeRaytracer(scene.NewScene(), 16, 16)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer r.Destroy()
	r.BlankColor = mgl32.Vec3{0.5, 0.25, 0.125}

	r.Render()
	gl.Finish()
	pix := readResult(r)

	first := pixelAt(pix, 16, 0, 0)
	for y := int32(0); y < 16; y++ {
		for x := int32(0); x < 16; x++ {
			if p := pixelAt(pix, 16, x, y); p != first {
				t.Fatalf("pixel (%d,%d) = %v differs from %v; expected a uniform image", x, y, p, first)
			}
		}
	}
	if d := float64(first[0] - 0.5); math.Abs(d) > 1e-4 {
		t.Errorf("blank color red: expected 0.5, got %v", first[0])
	}
}

func TestRepeatedRender(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	r, err := NewComputeRaytracer(renderTestScene(), 32, 32)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer r.Destroy()

	r.Render()
	gl.Finish()
	first := readResult(r)

	// Same parameters, same image: a frame must not depend on leftover
	// state from the previous dispatch.
	for i := 0; i < 3; i++ {
		r.Render()
	}
	gl.Finish()
	again := readResult(r)
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("pixel float %d changed across renders: %v vs %v", i, first[i], again[i])
		}
	}
}

func TestSetRenderDimensions(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	r, err := NewComputeRaytracer(renderTestScene(), 640, 480)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer r.Destroy()

	tex := r.Result()
	r.SetRenderDimensions(640, 480) // no-op resize
	if r.Result() != tex {
		t.Error("resize to the same dimensions replaced the result texture")
	}

	// Shrink to the degenerate minimum and back; the texture object
	// survives with reallocated storage.
	for _, dim := range [][2]int32{{1, 1}, {640, 480}} {
		r.SetRenderDimensions(dim[0], dim[1])
		if r.Result() != tex {
			t.Fatal("resize replaced the result texture")
		}
		if r.Result().Width() != dim[0] || r.Result().Height() != dim[1] {
			t.Fatalf("dimensions after resize: expected %dx%d, got %dx%d",
				dim[0], dim[1], r.Result().Width(), r.Result().Height())
		}
		r.Render()
		gl.Finish()
		if pix := readResult(r); int32(len(pix)) != dim[0]*dim[1]*4 {
			t.Fatalf("readback length %d for %dx%d", len(pix), dim[0], dim[1])
		}
	}
}

func TestApplyCamera(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	r, err := NewComputeRaytracer(renderTestScene(), 32, 32)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer r.Destroy()

	cam := scene.DefaultCamera()
	cam.Position = mgl32.Vec3{0, 0, 2}
	cam.LookAt(mgl32.Vec3{0, 0, 100}) // sphere is behind the eye now
	cam.FOV = 0.9
	r.ApplyCamera(cam)

	if r.EyePosition != cam.Position {
		t.Errorf("eye position: expected %v, got %v", cam.Position, r.EyePosition)
	}
	if r.FOV != 0.9 {
		t.Errorf("fov: expected 0.9, got %v", r.FOV)
	}

	r.Render()
	gl.Finish()
	pix := readResult(r)
	center := pixelAt(pix, 32, 16, 16)
	if d := float64(center[0] - r.BlankColor.X()); math.Abs(d) > 1e-4 {
		t.Errorf("center pixel %v should show blank color with the sphere behind the eye", center)
	}
}

func TestRaytracerDestroy(t *testing.T) {
	cleanup := newTestContext(t)
	defer cleanup()

	r, err := NewComputeRaytracer(renderTestScene(), 8, 8)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	r.Destroy()
	r.Destroy() // second destroy is a no-op
	if r.Result().ID() != 0 {
		t.Error("result texture still alive after Destroy")
	}
}

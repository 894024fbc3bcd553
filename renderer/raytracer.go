package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"compute-raytracer/internal/opengl"
	"compute-raytracer/scene"
)

// ComputeRaytracer renders scenes with an OpenGL compute kernel. The
// scene buffers are uploaded once at construction and never change;
// only the output texture's storage is reallocated on resize. All
// methods must run on the thread owning the GL context.
type ComputeRaytracer struct {
	compute *opengl.Program
	result  *opengl.Texture

	spheres   *opengl.Buffer
	materials *opengl.Buffer
	lights    *opengl.Buffer

	width, height int32

	// Camera and shading parameters, pushed as uniforms every frame.
	AmbientColor mgl32.Vec3
	BlankColor   mgl32.Vec3
	EyePosition  mgl32.Vec3
	EyeForward   mgl32.Vec3
	EyeUp        mgl32.Vec3
	FOV          float32 // vertical field of view, radians
}

// NewComputeRaytracer compiles and links the raytrace kernel, allocates
// the output texture at width x height and uploads the scene's three
// storage buffers. Construction fails when the kernel rejects
// compilation or linking, and when any of the storage blocks Spheres,
// Materials or Lights is missing — a scene cannot be rendered by an
// incompatible kernel, so block resolution is fatal here rather than
// tolerated per frame.
func NewComputeRaytracer(sc *scene.Scene, width, height int32) (*ComputeRaytracer, error) {
	shader, err := opengl.NewShader(gl.COMPUTE_SHADER, computeSrc)
	if err != nil {
		return nil, fmt.Errorf("raytrace kernel: %w", err)
	}
	defer shader.Destroy()

	prog, err := opengl.NewProgram(shader)
	if err != nil {
		return nil, fmt.Errorf("raytrace kernel: %w", err)
	}

	r := &ComputeRaytracer{
		compute:   prog,
		result:    opengl.NewTexture(gl.TEXTURE_2D),
		spheres:   opengl.NewBuffer(gl.SHADER_STORAGE_BUFFER),
		materials: opengl.NewBuffer(gl.SHADER_STORAGE_BUFFER),
		lights:    opengl.NewBuffer(gl.SHADER_STORAGE_BUFFER),
		width:     width,
		height:    height,

		BlankColor:  mgl32.Vec3{0.2, 0.2, 0.2},
		EyeForward:  mgl32.Vec3{0, 0, -1},
		EyeUp:       mgl32.Vec3{0, 1, 0},
		FOV:         mgl32.DegToRad(60),
	}

	// Output texture: RGBA32F, unfiltered, clamped.
	unbind := r.result.Bind()
	r.result.SetParameter(gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	r.result.SetParameter(gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	r.result.SetParameter(gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	r.result.SetParameter(gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	r.result.Allocate(gl.RGBA32F, width, height)
	unbind()

	// Scene buffers, one per kernel storage block.
	if err := r.initStorageBuffer(r.spheres, "Spheres", scene.PackSpheres(sc.Spheres)); err != nil {
		r.Destroy()
		return nil, err
	}
	if err := r.initStorageBuffer(r.materials, "Materials", scene.PackMaterials(sc.Materials)); err != nil {
		r.Destroy()
		return nil, err
	}
	if err := r.initStorageBuffer(r.lights, "Lights", scene.PackLights(sc.Lights)); err != nil {
		r.Destroy()
		return nil, err
	}

	return r, nil
}

// initStorageBuffer uploads data and attaches the buffer at the binding
// index the kernel assigned to block. The index resolution requires a
// linked program, so this only runs after NewProgram has succeeded.
func (r *ComputeRaytracer) initStorageBuffer(buf *opengl.Buffer, block string, data []byte) error {
	unbind := buf.Bind()
	defer unbind()
	buf.Upload(gl.STATIC_DRAW, data)

	binding, err := r.compute.ResourceIndex(block)
	if err != nil {
		return err
	}
	buf.BindBase(binding)
	return nil
}

// Result returns the output texture. The renderer keeps ownership; the
// texture's storage is rewritten by every Render and reallocated by
// SetRenderDimensions.
func (r *ComputeRaytracer) Result() *opengl.Texture {
	return r.result
}

// SetRenderDimensions reallocates the output texture's storage at the
// new size, discarding the previous image. The scene buffers and their
// block bindings are untouched. Calling with unchanged dimensions is
// not an error; the storage is simply reallocated at the same size.
func (r *ComputeRaytracer) SetRenderDimensions(width, height int32) {
	r.width = width
	r.height = height
	unbind := r.result.Bind()
	defer unbind()
	r.result.Allocate(gl.RGBA32F, width, height)
}

// Render dispatches the kernel over every output pixel and orders its
// image writes before any later sampling of the result. Missing
// optional uniforms are reported and skipped — the driver may have
// stripped them — but never abort the frame. Repeatable without any
// external reset.
func (r *ComputeRaytracer) Render() {
	r.compute.Use()

	r.result.BindImage(0, gl.READ_WRITE, gl.RGBA32F)
	unbind := r.result.ActiveBind(0)
	defer unbind()
	r.setInt("outputImg", 0)

	r.setVec3("ambientColor", r.AmbientColor)
	r.setVec3("blankColor", r.BlankColor)
	r.setVec3("eyePosition", r.EyePosition)
	r.setVec3("eyeForward", r.EyeForward)
	r.setVec3("eyeUp", r.EyeUp)
	r.setFloat("fov", r.FOV)

	gl.DispatchCompute(uint32(r.width), uint32(r.height), 1)
	// Writes through image units are not ordered against later sampling
	// without this barrier; the display pass would race the kernel.
	gl.MemoryBarrier(gl.SHADER_IMAGE_ACCESS_BARRIER_BIT)
}

// ApplyCamera copies a camera's eye parameters into the renderer.
func (r *ComputeRaytracer) ApplyCamera(cam *scene.Camera) {
	r.EyePosition = cam.Position
	r.EyeForward = cam.Forward
	r.EyeUp = cam.Up
	r.FOV = cam.FOV
}

// Destroy releases the program, the output texture and the scene
// buffers. Safe to call more than once.
func (r *ComputeRaytracer) Destroy() {
	r.compute.Destroy()
	r.result.Destroy()
	r.spheres.Destroy()
	r.materials.Destroy()
	r.lights.Destroy()
}

// Per-frame uniform updates tolerate absence: a stripped uniform only
// loses that one update, not the frame.

func (r *ComputeRaytracer) setVec3(name string, v mgl32.Vec3) {
	if err := r.compute.SetVec3(name, v); err != nil {
		fmt.Printf("WARNING: %v\n", err)
	}
}

func (r *ComputeRaytracer) setFloat(name string, v float32) {
	if err := r.compute.SetFloat(name, v); err != nil {
		fmt.Printf("WARNING: %v\n", err)
	}
}

func (r *ComputeRaytracer) setInt(name string, v int32) {
	if err := r.compute.SetInt(name, v); err != nil {
		fmt.Printf("WARNING: %v\n", err)
	}
}

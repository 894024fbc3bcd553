package renderer

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.3-core/gl"

	"compute-raytracer/internal/opengl"
)

// screenQuadVertices is two triangles covering the whole surface,
// interleaved position (3) + texcoord (2).
var screenQuadVertices = []float32{
	// Positions        Texcoords
	// Top right tri
	-1.0, 1.0, 0.0, 0.0, 1.0, // tl
	1.0, 1.0, 0.0, 1.0, 1.0, // tr
	1.0, -1.0, 0.0, 1.0, 0.0, // br
	// Bottom left tri
	1.0, -1.0, 0.0, 1.0, 0.0, // br
	-1.0, -1.0, 0.0, 0.0, 0.0, // bl
	-1.0, 1.0, 0.0, 0.0, 1.0, // tl
}

const quadStride = 5 * 4 // bytes per vertex: vec3 position + vec2 texcoord

// RenderResultDisplay presents a texture by sampling it over a
// fullscreen quad.
type RenderResultDisplay struct {
	display *opengl.Program
	quadVAO *opengl.VertexArray
	quadVBO *opengl.Buffer

	// Dithering is forwarded to the display kernel as a uniform; the
	// CPU side performs no dithering itself.
	Dithering bool
}

// NewRenderResultDisplay links the display program and uploads the
// screen quad once.
func NewRenderResultDisplay() (*RenderResultDisplay, error) {
	vert, err := opengl.NewShader(gl.VERTEX_SHADER, displayVertSrc)
	if err != nil {
		return nil, fmt.Errorf("display vertex: %w", err)
	}
	defer vert.Destroy()
	frag, err := opengl.NewShader(gl.FRAGMENT_SHADER, displayFragSrc)
	if err != nil {
		return nil, fmt.Errorf("display fragment: %w", err)
	}
	defer frag.Destroy()

	prog, err := opengl.NewProgram(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	d := &RenderResultDisplay{
		display: prog,
		quadVAO: opengl.NewVertexArray(),
		quadVBO: opengl.NewBuffer(gl.ARRAY_BUFFER),
	}

	unbindVAO := d.quadVAO.Bind()
	unbindVBO := d.quadVBO.Bind()
	d.quadVBO.Upload(gl.STATIC_DRAW, floatBytes(screenQuadVertices))
	d.quadVAO.Attrib(0, 3, gl.FLOAT, quadStride, 0)
	d.quadVAO.Attrib(1, 2, gl.FLOAT, quadStride, 3*4)
	unbindVBO()
	unbindVAO()

	return d, nil
}

// Draw clears the target surface and draws result over it. The caller
// is responsible for the result being fully written first; after
// ComputeRaytracer.Render that ordering is already established by its
// memory barrier.
func (d *RenderResultDisplay) Draw(result *opengl.Texture) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	d.display.Use()
	unbindVAO := d.quadVAO.Bind()
	defer unbindVAO()

	unbindTex := result.ActiveBind(0)
	defer unbindTex()
	d.setInt("tex", 0)
	dither := int32(0)
	if d.Dithering {
		dither = 1
	}
	d.setInt("dithering", dither)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(screenQuadVertices)/5))
}

// Destroy releases the display program and the quad's GPU state.
func (d *RenderResultDisplay) Destroy() {
	d.display.Destroy()
	d.quadVAO.Destroy()
	d.quadVBO.Destroy()
}

func (d *RenderResultDisplay) setInt(name string, v int32) {
	if err := d.display.SetInt(name, v); err != nil {
		fmt.Printf("WARNING: %v\n", err)
	}
}

// floatBytes reinterprets a float32 slice as the raw byte image
// glBufferData consumes.
func floatBytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

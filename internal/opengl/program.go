package opengl

import (
	"strings"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program owns a linked pipeline. Uniform locations are resolved once and
// cached for the program's lifetime; they stay valid because the program
// is never relinked.
type Program struct {
	handle
	uniforms map[string]int32
}

// NewProgram links the given shaders into a program. The shaders are
// detached again on every path — callers keep ownership and should
// Destroy them once linking is done. A failed link deletes the program
// and returns a *ResourceCreationError with the link log; there is no
// usable zero-value Program.
func NewProgram(shaders ...*Shader) (*Program, error) {
	id := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(id, s.ID())
	}
	gl.LinkProgram(id)
	for _, s := range shaders {
		gl.DetachShader(id, s.ID())
	}

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, &ResourceCreationError{Kind: "program link", Log: strings.TrimRight(log, "\x00")}
	}

	return &Program{
		handle:   handle{id: id, delete: gl.DeleteProgram},
		uniforms: make(map[string]int32),
	}, nil
}

// Use makes the program the active pipeline for subsequent draw and
// dispatch calls.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// uniformLocation resolves name against the linked program, caching the
// result. A miss is cached too — drivers strip unused uniforms and the
// answer cannot change without relinking.
func (p *Program) uniformLocation(name string) (int32, error) {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.uniforms[name] = loc
	}
	if loc < 0 {
		return 0, &UnknownUniformError{Name: name}
	}
	return loc, nil
}

// SetFloat sets a scalar float uniform on the program (which must be in
// use). Returns *UnknownUniformError when the program has no active
// uniform of that name; no other uniform is touched.
func (p *Program) SetFloat(name string, value float32) error {
	loc, err := p.uniformLocation(name)
	if err != nil {
		return err
	}
	gl.Uniform1f(loc, value)
	return nil
}

// SetInt sets a scalar int uniform; also used for sampler and image units.
func (p *Program) SetInt(name string, value int32) error {
	loc, err := p.uniformLocation(name)
	if err != nil {
		return err
	}
	gl.Uniform1i(loc, value)
	return nil
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, value mgl32.Vec3) error {
	loc, err := p.uniformLocation(name)
	if err != nil {
		return err
	}
	gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	return nil
}

// ResourceIndex resolves a shader storage block name to the binding
// index the linked program assigned it. This is the hook that wires
// CPU-side buffers to kernel-declared block names without recompiling
// either side; the program must already be linked. Returns
// *UnknownStorageBlockError when the block is absent.
func (p *Program) ResourceIndex(block string) (uint32, error) {
	idx := gl.GetProgramResourceIndex(p.id, gl.SHADER_STORAGE_BLOCK, gl.Str(block+"\x00"))
	if idx == gl.INVALID_INDEX {
		return 0, &UnknownStorageBlockError{Block: block}
	}
	// The resource index names the block; the buffer attaches at the
	// block's binding point, which is a separate number.
	prop := uint32(gl.BUFFER_BINDING)
	var binding int32
	gl.GetProgramResourceiv(p.id, gl.SHADER_STORAGE_BLOCK, idx, 1, &prop, 1, nil, &binding)
	return uint32(binding), nil
}

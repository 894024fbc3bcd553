package opengl

import (
	"strings"

	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// Shader owns one compiled shader stage. A Shader only ever exists in
// compiled form: a rejected compile fails construction outright.
type Shader struct {
	handle
	stage uint32
}

// NewShader compiles source for the given stage (gl.VERTEX_SHADER,
// gl.FRAGMENT_SHADER or gl.COMPUTE_SHADER). On a compile error the new
// object is deleted and a *ResourceCreationError carries the info log.
func NewShader(stage uint32, source string) (*Shader, error) {
	id := gl.CreateShader(stage)

	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteShader(id)
		return nil, &ResourceCreationError{Kind: "shader compile", Log: strings.TrimRight(log, "\x00")}
	}

	return &Shader{
		handle: handle{id: id, delete: gl.DeleteShader},
		stage:  stage,
	}, nil
}

// Stage returns the stage the shader was compiled for.
func (s *Shader) Stage() uint32 {
	return s.stage
}

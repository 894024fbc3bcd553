package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// EnableDebugOutput installs a callback that prints driver debug
// messages. GL errors are otherwise silent; with 4.3 debug output the
// driver reports them as they happen.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(debugMessage, nil)
}

func debugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	if gltype == gl.DEBUG_TYPE_ERROR {
		fmt.Printf("OpenGL: ** GL ERROR ** %s\n", message)
		return
	}
	fmt.Printf("OpenGL: %s\n", message)
}

package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// handle owns one GL object name together with its delete call.
// Destroy releases the object at most once: the name is zeroed on the
// first call and 0 never refers to a live object, so every later call
// is a no-op. Wrapper types embed handle and are passed by pointer —
// aliases share the single name and the single destruction.
type handle struct {
	id     uint32
	delete func(uint32)
}

// ID returns the raw GL object name, 0 after Destroy.
func (h *handle) ID() uint32 {
	return h.id
}

// Destroy releases the GL object. Safe to call more than once.
func (h *handle) Destroy() {
	if h.id != 0 {
		h.delete(h.id)
		h.id = 0
	}
}

// Init loads the OpenGL function pointers for the current context and
// prints the version the driver handed back. Call once after the context
// is made current and before constructing any wrapper object.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	fmt.Printf("OpenGL version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

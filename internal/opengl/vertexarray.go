package opengl

import (
	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// VertexArray owns vertex-attribute binding state. Each Attrib call
// captures the buffer bound to gl.ARRAY_BUFFER at that moment.
type VertexArray struct {
	handle
}

// NewVertexArray creates an empty vertex array object.
func NewVertexArray() *VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArray{
		handle: handle{id: id, delete: func(id uint32) { gl.DeleteVertexArrays(1, &id) }},
	}
}

// Bind makes the vertex array current and returns the unbind.
func (va *VertexArray) Bind() func() {
	gl.BindVertexArray(va.id)
	return func() { gl.BindVertexArray(0) }
}

// Attrib registers and enables one attribute slot against the currently
// bound array buffer. stride and offset are in bytes. The vertex array
// must be bound.
func (va *VertexArray) Attrib(index uint32, size int32, xtype uint32, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, false, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

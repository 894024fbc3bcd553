package opengl

import (
	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// Buffer owns a GPU memory block created against a fixed target
// (gl.ARRAY_BUFFER or gl.SHADER_STORAGE_BUFFER). The byte image uploaded
// into a storage buffer must match the consuming kernel's block layout
// field-for-field; nothing on the GL side checks that.
type Buffer struct {
	handle
	target uint32
}

// NewBuffer creates an empty buffer for the given target.
func NewBuffer(target uint32) *Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return &Buffer{
		handle: handle{id: id, delete: func(id uint32) { gl.DeleteBuffers(1, &id) }},
		target: target,
	}
}

// Target returns the target class the buffer was created for.
func (b *Buffer) Target() uint32 {
	return b.target
}

// Bind makes the buffer current for its target and returns the unbind:
//
//	defer buf.Bind()()
//
// keeps the bind scoped to the surrounding call.
func (b *Buffer) Bind() func() {
	gl.BindBuffer(b.target, b.id)
	return func() { gl.BindBuffer(b.target, 0) }
}

// Upload replaces the buffer's entire contents with data, sized to
// data's byte length. Not an offset write: prior contents are gone.
// The buffer must be bound.
func (b *Buffer) Upload(usage uint32, data []byte) {
	if len(data) == 0 {
		gl.BufferData(b.target, 0, nil, usage)
		return
	}
	gl.BufferData(b.target, len(data), gl.Ptr(data), usage)
}

// BindBase attaches the buffer to an indexed binding point on its
// target. For storage buffers the index comes from
// Program.ResourceIndex, which requires the program to be linked first.
func (b *Buffer) BindBase(index uint32) {
	gl.BindBufferBase(b.target, index, b.id)
}

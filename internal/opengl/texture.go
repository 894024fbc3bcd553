package opengl

import (
	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// Texture owns a GPU image of a fixed type (gl.TEXTURE_2D and friends).
// All parameter and storage calls target that type.
type Texture struct {
	handle
	xtype  uint32
	width  int32
	height int32
}

// NewTexture creates an unallocated texture of the given type.
func NewTexture(xtype uint32) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	return &Texture{
		handle: handle{id: id, delete: func(id uint32) { gl.DeleteTextures(1, &id) }},
		xtype:  xtype,
	}
}

// Type returns the texture type fixed at construction.
func (t *Texture) Type() uint32 {
	return t.xtype
}

// Width returns the allocated storage width in pixels, 0 before Allocate.
func (t *Texture) Width() int32 { return t.width }

// Height returns the allocated storage height in pixels.
func (t *Texture) Height() int32 { return t.height }

// Bind makes the texture current on its type's binding point and
// returns the unbind, for use as defer tex.Bind()().
func (t *Texture) Bind() func() {
	gl.BindTexture(t.xtype, t.id)
	return func() { gl.BindTexture(t.xtype, 0) }
}

// ActiveBind selects the given texture unit and binds the texture there,
// making it a sampler input. The returned func unbinds from that unit.
func (t *Texture) ActiveBind(unit uint32) func() {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.xtype, t.id)
	return func() {
		gl.ActiveTexture(gl.TEXTURE0 + unit)
		gl.BindTexture(t.xtype, 0)
	}
}

// SetParameter sets a wrap or filter parameter. The texture must be bound.
func (t *Texture) SetParameter(pname uint32, value int32) {
	gl.TexParameteri(t.xtype, pname, value)
}

// Allocate (re)allocates float-pixel storage at the given size,
// discarding any previous contents. Called once at construction and
// again on every resize; reallocating at an unchanged size is allowed
// and simply yields the same dimensions. The texture must be bound.
func (t *Texture) Allocate(internalFormat int32, width, height int32) {
	gl.TexImage2D(t.xtype, 0, internalFormat, width, height, 0, gl.RGBA, gl.FLOAT, nil)
	t.width = width
	t.height = height
}

// BindImage attaches the texture to an image unit so a compute kernel
// can read and write its storage directly. Image units are a separate
// binding namespace from sampler units.
func (t *Texture) BindImage(unit uint32, access uint32, format uint32) {
	gl.BindImageTexture(unit, t.id, 0, false, 0, access, format)
}

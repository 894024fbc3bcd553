package scene

import (
	"unsafe"
)

// Mirror structs for the compute kernel's std430 storage blocks.
//
// This is the one place where CPU and GPU must agree byte-for-byte:
// field order, padding and alignment below match the Sphere, Material
// and OmniLight struct declarations in the kernel. std430 aligns vec3
// to 16 bytes and rounds each struct to a multiple of its largest
// member alignment, hence the explicit padding fields. No compiler
// checks any of this — pack_test.go pins the offsets instead.

type materialStd430 struct {
	Specular  float32
	Diffuse   float32
	Ambient   float32
	Shininess float32
	Color     [3]float32
	_pad      float32
}

type sphereStd430 struct {
	Position [3]float32
	Radius   float32 // packs into the vec3's trailing scalar slot
	Material int32
	_pad     [3]int32
}

type omniLightStd430 struct {
	Position [3]float32
	_pad0    float32
	Color    [3]float32
	_pad1    float32
}

// PackMaterials lays the scene's materials out as the kernel's
// Materials block expects them. Empty input yields an empty slice,
// which uploads as a zero-size buffer.
func PackMaterials(materials []Material) []byte {
	packed := make([]materialStd430, len(materials))
	for i, m := range materials {
		packed[i] = materialStd430{
			Specular:  m.Specular,
			Diffuse:   m.Diffuse,
			Ambient:   m.Ambient,
			Shininess: m.Shininess,
			Color:     [3]float32{m.Color.R, m.Color.G, m.Color.B},
		}
	}
	return toBytes(packed, unsafe.Sizeof(materialStd430{}))
}

// PackSpheres lays the scene's spheres out for the Spheres block.
func PackSpheres(spheres []Sphere) []byte {
	packed := make([]sphereStd430, len(spheres))
	for i, s := range spheres {
		packed[i] = sphereStd430{
			Position: s.Position,
			Radius:   s.Radius,
			Material: int32(s.Material),
		}
	}
	return toBytes(packed, unsafe.Sizeof(sphereStd430{}))
}

// PackLights lays the scene's lights out for the Lights block.
func PackLights(lights []OmniLight) []byte {
	packed := make([]omniLightStd430, len(lights))
	for i, l := range lights {
		packed[i] = omniLightStd430{
			Position: l.Position,
			Color:    [3]float32{l.Color.R, l.Color.G, l.Color.B},
		}
	}
	return toBytes(packed, unsafe.Sizeof(omniLightStd430{}))
}

// toBytes reinterprets a packed element slice as its raw byte image,
// native endianness, exactly as glBufferData will consume it.
func toBytes[T any](elems []T, size uintptr) []byte {
	if len(elems) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&elems[0])), len(elems)*int(size))
}

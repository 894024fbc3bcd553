package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"compute-raytracer/core"
)

// Material describes how a surface reflects light under Phong shading.
type Material struct {
	Specular  float32    // specular reflection constant
	Diffuse   float32    // diffuse reflection constant
	Ambient   float32    // ambient reflection constant
	Shininess float32    // higher values give a smaller specular highlight
	Color     core.Color // surface color
}

// Sphere is a scene primitive. Material indexes the scene's material
// list; there are no other cross-references between scene elements.
type Sphere struct {
	Position mgl32.Vec3
	Radius   float32
	Material int
}

// OmniLight is a point light radiating equally in all directions.
type OmniLight struct {
	Position mgl32.Vec3
	Color    core.Color
}

// Scene is everything a renderer needs to draw one image. It is plain
// CPU data; the renderer uploads it to GPU buffers at construction.
type Scene struct {
	Materials []Material
	Spheres   []Sphere
	Lights    []OmniLight
}

func NewScene() *Scene {
	return &Scene{}
}

// AddMaterial appends a material and returns its index for use in
// Sphere.Material.
func (s *Scene) AddMaterial(m Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

func (s *Scene) AddSphere(sp Sphere) {
	s.Spheres = append(s.Spheres, sp)
}

func (s *Scene) AddLight(l OmniLight) {
	s.Lights = append(s.Lights, l)
}

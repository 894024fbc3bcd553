package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"

	"compute-raytracer/core"
)

// LoadGLTF imports a sphere scene from a .gltf or .glb file.
//
// The raytracer has no triangle meshes, so the mapping is by convention:
//
//   - a node with a mesh becomes a Sphere at the node's translation,
//     with radius = the X component of the node's scale and the material
//     taken from the mesh's first primitive (base color factor,
//     metallic → specular, roughness → shininess);
//   - a node whose name starts with "light" becomes an OmniLight at the
//     node's translation, colored by its mesh material's base color
//     (white when it has none);
//   - a node whose name starts with "camera" or "eye" places the
//     returned camera at its translation, looking at the origin.
//
// The returned camera is nil when no such node exists.
func LoadGLTF(path string) (*Scene, *Camera, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	s := NewScene()
	var cam *Camera

	// One scene material per glTF material, same order, so primitive
	// material indices carry over directly.
	for _, gm := range doc.Materials {
		mat := Material{
			Specular:  0.5,
			Diffuse:   1,
			Ambient:   1,
			Shininess: 32,
			Color:     core.ColorWhite,
		}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Color = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
			// Metallic-roughness to Phong: metal raises the specular
			// constant, smoothness tightens the highlight.
			roughness := float32(pbr.RoughnessFactorOrDefault())
			metallic := float32(pbr.MetallicFactorOrDefault())
			mat.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
			mat.Specular = 0.3 + metallic*0.7
		}
		s.AddMaterial(mat)
	}
	if len(s.Materials) == 0 {
		// Spheres need something to reference.
		s.AddMaterial(Material{Specular: 0.5, Diffuse: 1, Ambient: 1, Shininess: 32, Color: core.ColorWhite})
	}

	for i, gn := range doc.Nodes {
		t := gn.TranslationOrDefault()
		pos := mgl32.Vec3{float32(t[0]), float32(t[1]), float32(t[2])}
		name := strings.ToLower(gn.Name)

		switch {
		case strings.HasPrefix(name, "light"):
			s.AddLight(OmniLight{Position: pos, Color: nodeColor(doc, gn, s)})

		case strings.HasPrefix(name, "camera") || strings.HasPrefix(name, "eye"):
			if cam == nil {
				cam = DefaultCamera()
				cam.Position = pos
				cam.LookAt(mgl32.Vec3{})
			}

		case gn.Mesh != nil:
			sc := gn.ScaleOrDefault()
			mat := 0
			if m := nodeMaterial(doc, gn); m != nil {
				mat = *m
			}
			if mat >= len(s.Materials) {
				return nil, nil, fmt.Errorf("gltf node %d: material index %d out of range", i, mat)
			}
			s.AddSphere(Sphere{
				Position: pos,
				Radius:   float32(sc[0]),
				Material: mat,
			})
		}
	}

	return s, cam, nil
}

// nodeMaterial returns the material index of the node's first mesh
// primitive, or nil.
func nodeMaterial(doc *gltf.Document, gn *gltf.Node) *int {
	if gn.Mesh == nil || int(*gn.Mesh) >= len(doc.Meshes) {
		return nil
	}
	prims := doc.Meshes[*gn.Mesh].Primitives
	if len(prims) == 0 || prims[0].Material == nil {
		return nil
	}
	idx := int(*prims[0].Material)
	return &idx
}

// nodeColor resolves a light node's color from its mesh material,
// falling back to white.
func nodeColor(doc *gltf.Document, gn *gltf.Node, s *Scene) core.Color {
	if m := nodeMaterial(doc, gn); m != nil && *m < len(s.Materials) {
		return s.Materials[*m].Color
	}
	return core.ColorWhite
}

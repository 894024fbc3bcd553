package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"compute-raytracer/core"
)

// ── JSON data structures ──────────────────────────────────────────────────────

type vec3JSON struct {
	X, Y, Z float32
}

type colorJSON struct {
	R, G, B float32
}

type materialJSON struct {
	Specular  float32
	Diffuse   float32
	Ambient   float32
	Shininess float32
	Color     colorJSON
}

type sphereJSON struct {
	Position vec3JSON
	Radius   float32
	Material int
}

type lightJSON struct {
	Position vec3JSON
	Color    colorJSON
}

type cameraJSON struct {
	Position vec3JSON
	Forward  vec3JSON
	Up       vec3JSON
	FOV      float32
}

type sceneJSON struct {
	Version   int
	Materials []materialJSON
	Spheres   []sphereJSON
	Lights    []lightJSON
	Camera    *cameraJSON
}

// ── Save ──────────────────────────────────────────────────────────────────────

// SaveScene serialises the scene, and the camera if non-nil, to a JSON
// file at path.
func SaveScene(s *Scene, cam *Camera, path string) error {
	js := sceneJSON{Version: 1}

	for _, m := range s.Materials {
		js.Materials = append(js.Materials, materialJSON{
			Specular:  m.Specular,
			Diffuse:   m.Diffuse,
			Ambient:   m.Ambient,
			Shininess: m.Shininess,
			Color:     colorToJSON(m.Color),
		})
	}
	for _, sp := range s.Spheres {
		js.Spheres = append(js.Spheres, sphereJSON{
			Position: vec3ToJSON(sp.Position),
			Radius:   sp.Radius,
			Material: sp.Material,
		})
	}
	for _, l := range s.Lights {
		js.Lights = append(js.Lights, lightJSON{
			Position: vec3ToJSON(l.Position),
			Color:    colorToJSON(l.Color),
		})
	}
	if cam != nil {
		js.Camera = &cameraJSON{
			Position: vec3ToJSON(cam.Position),
			Forward:  vec3ToJSON(cam.Forward),
			Up:       vec3ToJSON(cam.Up),
			FOV:      cam.FOV,
		}
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene %q: %w", path, err)
	}
	return nil
}

// ── Load ──────────────────────────────────────────────────────────────────────

// LoadScene reads a JSON file saved by SaveScene. A sphere referencing
// a material index outside the material list is rejected here rather
// than handed to the kernel. The returned camera is nil when the file
// has none.
func LoadScene(path string) (*Scene, *Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	var js sceneJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, nil, fmt.Errorf("unmarshal scene: %w", err)
	}

	s := NewScene()
	for _, mj := range js.Materials {
		s.AddMaterial(Material{
			Specular:  mj.Specular,
			Diffuse:   mj.Diffuse,
			Ambient:   mj.Ambient,
			Shininess: mj.Shininess,
			Color:     jsonToColor(mj.Color),
		})
	}
	for i, sj := range js.Spheres {
		if sj.Material < 0 || sj.Material >= len(s.Materials) {
			return nil, nil, fmt.Errorf("sphere %d: material index %d out of range (%d materials)",
				i, sj.Material, len(s.Materials))
		}
		s.AddSphere(Sphere{
			Position: jsonToVec3(sj.Position),
			Radius:   sj.Radius,
			Material: sj.Material,
		})
	}
	for _, lj := range js.Lights {
		s.AddLight(OmniLight{
			Position: jsonToVec3(lj.Position),
			Color:    jsonToColor(lj.Color),
		})
	}

	var cam *Camera
	if js.Camera != nil {
		cam = &Camera{
			Position: jsonToVec3(js.Camera.Position),
			Forward:  jsonToVec3(js.Camera.Forward),
			Up:       jsonToVec3(js.Camera.Up),
			FOV:      js.Camera.FOV,
		}
	}
	return s, cam, nil
}

// ── conversion helpers ────────────────────────────────────────────────────────

func vec3ToJSON(v mgl32.Vec3) vec3JSON   { return vec3JSON{v.X(), v.Y(), v.Z()} }
func jsonToVec3(v vec3JSON) mgl32.Vec3   { return mgl32.Vec3{v.X, v.Y, v.Z} }
func colorToJSON(c core.Color) colorJSON { return colorJSON{c.R, c.G, c.B} }
func jsonToColor(c colorJSON) core.Color { return core.Color{R: c.R, G: c.G, B: c.B, A: 1} }

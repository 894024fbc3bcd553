package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"compute-raytracer/core"
	"compute-raytracer/internal/opengl"
	"compute-raytracer/renderer"
	"compute-raytracer/scene"
)

// defaultScene is three spheres over a large floor sphere, lit by two
// colored omni lights.
func defaultScene() *scene.Scene {
	s := scene.NewScene()

	matte := s.AddMaterial(scene.Material{
		Specular: 0.2, Diffuse: 1, Ambient: 1, Shininess: 4,
		Color: core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1},
	})
	shiny := s.AddMaterial(scene.Material{
		Specular: 1, Diffuse: 0.8, Ambient: 1, Shininess: 64,
		Color: core.ColorRed,
	})
	glossy := s.AddMaterial(scene.Material{
		Specular: 0.7, Diffuse: 1, Ambient: 1, Shininess: 24,
		Color: core.ColorBlue,
	})

	s.AddSphere(scene.Sphere{Position: mgl32.Vec3{0, -101, -5}, Radius: 100, Material: matte})
	s.AddSphere(scene.Sphere{Position: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: shiny})
	s.AddSphere(scene.Sphere{Position: mgl32.Vec3{2.2, -0.3, -4.5}, Radius: 0.7, Material: glossy})
	s.AddSphere(scene.Sphere{Position: mgl32.Vec3{-2, 0.4, -6}, Radius: 1.4, Material: matte})

	s.AddLight(scene.OmniLight{Position: mgl32.Vec3{0, 5, -1}, Color: core.ColorWhite})
	s.AddLight(scene.OmniLight{Position: mgl32.Vec3{-4, 2, -2}, Color: core.Color{R: 0.3, G: 0.6, B: 0.3, A: 1}})

	return s
}

// loadScene picks the loader from the file extension.
func loadScene(path string) (*scene.Scene, *scene.Camera, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return scene.LoadGLTF(path)
	default:
		return scene.LoadScene(path)
	}
}

func run() error {
	scenePath := flag.String("scene", "", "scene file to load (.json, .gltf or .glb)")
	width := flag.Int("width", 640, "initial window width")
	height := flag.Int("height", 480, "initial window height")
	orbit := flag.Bool("orbit", true, "orbit the camera around the scene")
	flag.Parse()

	config := core.DefaultWindowConfig()
	config.Width = *width
	config.Height = *height
	window, err := core.NewWindow(config)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := opengl.Init(); err != nil {
		return err
	}
	opengl.EnableDebugOutput()
	gl.Viewport(0, 0, int32(*width), int32(*height))

	sc := defaultScene()
	cam := scene.DefaultCamera()
	cam.Position = mgl32.Vec3{0, 1, 2}
	cam.LookAt(mgl32.Vec3{0, 0, -5})
	if *scenePath != "" {
		loaded, loadedCam, err := loadScene(*scenePath)
		if err != nil {
			return err
		}
		sc = loaded
		if loadedCam != nil {
			cam = loadedCam
		}
	}

	rt, err := renderer.NewComputeRaytracer(sc, int32(*width), int32(*height))
	if err != nil {
		return err
	}
	defer rt.Destroy()
	rt.AmbientColor = mgl32.Vec3{0.12, 0.12, 0.12}
	rt.BlankColor = mgl32.Vec3{0.1, 0.1, 0.18}
	rt.ApplyCamera(cam)

	display, err := renderer.NewRenderResultDisplay()
	if err != nil {
		return err
	}
	defer display.Destroy()

	window.SetKeyCallback(func(key glfw.Key) {
		switch key {
		case glfw.KeyD:
			display.Dithering = !display.Dithering
			fmt.Printf("dithering: %v\n", display.Dithering)
		case glfw.KeyS:
			if err := scene.SaveScene(sc, cam, "scene.json"); err != nil {
				fmt.Printf("WARNING: save scene: %v\n", err)
			} else {
				fmt.Println("scene saved to scene.json")
			}
		case glfw.KeyEscape:
			window.Handle.SetShouldClose(true)
		}
	})

	curW, curH := window.GetFramebufferSize()
	start := time.Now()
	center := mgl32.Vec3{0, 0, -5}

	for !window.ShouldClose() {
		window.PollEvents()

		// Viewport and output texture both track the framebuffer size.
		if w, h := window.GetFramebufferSize(); (w != curW || h != curH) && w > 0 && h > 0 {
			curW, curH = w, h
			gl.Viewport(0, 0, int32(w), int32(h))
			rt.SetRenderDimensions(int32(w), int32(h))
		}

		if *orbit {
			cam.Orbit(center, 6, 2, float32(time.Since(start).Seconds())*0.4)
			rt.ApplyCamera(cam)
		}

		rt.Render()
		display.Draw(rt.Result())

		window.SwapBuffers()
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		// Shader logs span several lines; print them whole.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

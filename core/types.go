package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color with float32 components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// Vec3 returns the RGB components as a vector, dropping alpha.
// Shader uniforms and storage-block fields carry colors as vec3.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// ColorFromVec3 builds an opaque Color from an RGB vector.
func ColorFromVec3(v mgl32.Vec3) Color {
	return Color{R: v.X(), G: v.Y(), B: v.Z(), A: 1}
}

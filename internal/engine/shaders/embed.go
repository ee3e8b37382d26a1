// Package shaders provides embedded GLSL shader sources.
package shaders

import (
	_ "embed"
	"strings"
)

// Rotate4 is the shared 4D rotation snippet. It declares the sines and
// cosines uniforms and the rotate4 function.
//
//go:embed rotate4.glsl
var Rotate4 string

// GroundVertexShader is the vertex shader for the ground plane.
//
//go:embed ground.vert
var GroundVertexShader string

//go:embed wireframe.vert
var wireframeVertex string

//go:embed solid.vert
var solidVertex string

// ColorFragmentShader passes the interpolated vertex colour through.
//
//go:embed color.frag
var ColorFragmentShader string

// WireframeVertexShader returns the wireframe vertex shader with the
// rotation snippet spliced in.
func WireframeVertexShader() string {
	return Compose(wireframeVertex, Rotate4)
}

// SolidVertexShader returns the solid face vertex shader with the rotation
// snippet spliced in.
func SolidVertexShader() string {
	return Compose(solidVertex, Rotate4)
}

// Compose inserts snippet directly after the #version line of src, which
// must stay first. Sources without a #version line get it prepended.
func Compose(src, snippet string) string {
	idx := strings.Index(src, "#version")
	if idx < 0 {
		return snippet + "\n" + src
	}
	end := strings.IndexByte(src[idx:], '\n')
	if end < 0 {
		return src + "\n" + snippet
	}
	end += idx + 1
	return src[:end] + "\n" + snippet + "\n" + src[end:]
}

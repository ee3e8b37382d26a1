package tesseract

import "github.com/Faultbox/tesseract4d/pkg/math"

// GroundVertexCount is the size of the ground triangle strip.
const GroundVertexCount = 4

// GroundPlane returns the static floor quad below the tesseract, drawn as a
// triangle strip. It is not affected by the 4D rotation.
func GroundPlane() *Mesh {
	m := NewMesh(GroundVertexCount, true)
	corners := [GroundVertexCount]math.Vec4{
		{X: -10.0, Y: -0.75, Z: -10.0, W: 1.0},
		{X: -10.0, Y: -0.75, Z: 10.0, W: 1.0},
		{X: 10.0, Y: -0.75, Z: -10.0, W: 1.0},
		{X: 10.0, Y: -0.75, Z: 10.0, W: 1.0},
	}
	colors := [GroundVertexCount]math.Vec4{
		{X: 1.0, Y: 1.0, Z: 1.0},
		{X: 1.0, Y: 0.0, Z: 1.0},
		{X: 1.0, Y: 1.0, Z: 0.0},
		{X: 0.0, Y: 1.0, Z: 1.0},
	}
	for i := range corners {
		m.AppendColored(colors[i], corners[i])
	}
	return m
}

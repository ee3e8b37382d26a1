package scene

import (
	"github.com/Faultbox/tesseract4d/internal/rotation"
	"github.com/Faultbox/tesseract4d/pkg/math"
)

// MeshID names one of the static vertex buffers.
type MeshID int

const (
	MeshGround MeshID = iota
	MeshWireframe
	MeshSolid
)

func (id MeshID) String() string {
	switch id {
	case MeshGround:
		return "ground"
	case MeshWireframe:
		return "wireframe"
	case MeshSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Primitive is the draw topology.
type Primitive int

const (
	Lines Primitive = iota
	Triangles
	TriangleStrip
)

// Uniforms is the per-frame state handed to every draw call. Rotation is
// ignored by programs that do not rotate (the ground plane).
type Uniforms struct {
	View       math.Mat4
	Projection math.Mat4
	Rotation   rotation.Trig
}

// Backend draws the static meshes. Upload is called once per mesh at start
// up; Begin, Draw and End are called every frame from the same goroutine.
type Backend interface {
	Upload(id MeshID, positions, colors []math.Vec4) error
	Begin()
	Draw(id MeshID, prim Primitive, count int, u Uniforms)
	End()
}

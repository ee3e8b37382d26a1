package tesseract

import "github.com/Faultbox/tesseract4d/pkg/math"

// Mesh is an append-only vertex sequence with optional per-vertex colours.
// Its capacity is fixed when it is created; appending past it panics, which
// can only happen if the face table and the size constants disagree.
type Mesh struct {
	positions []math.Vec4
	colors    []math.Vec4
	colored   bool
}

// NewMesh allocates a mesh for exactly capacity vertices.
func NewMesh(capacity int, colored bool) *Mesh {
	m := &Mesh{
		positions: make([]math.Vec4, 0, capacity),
		colored:   colored,
	}
	if colored {
		m.colors = make([]math.Vec4, 0, capacity)
	}
	return m
}

// Append adds uncoloured vertices.
func (m *Mesh) Append(vs ...math.Vec4) {
	if m.colored {
		panic("tesseract: Append on a coloured mesh")
	}
	m.grow(len(vs))
	m.positions = append(m.positions, vs...)
}

// AppendColored adds vertices sharing one colour.
func (m *Mesh) AppendColored(color math.Vec4, vs ...math.Vec4) {
	if !m.colored {
		panic("tesseract: AppendColored on an uncoloured mesh")
	}
	m.grow(len(vs))
	m.positions = append(m.positions, vs...)
	for range vs {
		m.colors = append(m.colors, color)
	}
}

func (m *Mesh) grow(n int) {
	if len(m.positions)+n > cap(m.positions) {
		panic("tesseract: mesh capacity exceeded")
	}
}

// Len returns the number of vertices.
func (m *Mesh) Len() int {
	return len(m.positions)
}

// Positions returns the vertex positions. The slice must not be modified.
func (m *Mesh) Positions() []math.Vec4 {
	return m.positions
}

// Colors returns the per-vertex colours, or nil for an uncoloured mesh.
func (m *Mesh) Colors() []math.Vec4 {
	return m.colors
}

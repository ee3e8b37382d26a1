// Package tesseract builds the solid and wireframe meshes of a 4D hypercube.
package tesseract

import "github.com/Faultbox/tesseract4d/pkg/math"

// Closed-form mesh sizes.
const (
	VertexCount      = 16
	FaceCount        = 24
	SolidVertexCount = FaceCount * 2 * 3 // two triangles per face
	WireVertexCount  = FaceCount * 4 * 2 // four edges per face
)

// FaceAlpha is written into the alpha channel of every solid-mesh colour.
const FaceAlpha = 0.3

// Vertex labels. The first eight corners sit on the w = +h cube, the last
// eight on the w = -h cube.
const (
	A = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
)

// corners holds the sign pattern of each labelled vertex.
var corners = [VertexCount][4]float32{
	A: {-1, -1, -1, +1},
	B: {+1, -1, -1, +1},
	C: {+1, +1, -1, +1},
	D: {-1, +1, -1, +1},
	E: {-1, +1, +1, +1},
	F: {+1, +1, +1, +1},
	G: {+1, -1, +1, +1},
	H: {-1, -1, +1, +1},
	I: {-1, -1, +1, -1},
	J: {+1, -1, +1, -1},
	K: {+1, +1, +1, -1},
	L: {-1, +1, +1, -1},
	M: {-1, +1, -1, -1},
	N: {+1, +1, -1, -1},
	O: {+1, -1, -1, -1},
	P: {-1, -1, -1, -1},
}

// Face is a quad given as four vertex labels in winding order.
type Face [4]int

// faces is the fixed face table. Winding decides which side of each
// triangle is the front, so the order here is load-bearing.
var faces = [FaceCount]Face{
	// w = +h cube
	{A, B, C, D},
	{D, C, F, E},
	{A, D, E, H},
	{H, E, F, G},
	{G, F, C, B},
	{B, A, H, G},

	// faces joining the y = -h edges of both cubes
	{A, P, O, B},
	{B, O, J, G},
	{G, J, I, H},
	{H, I, P, A},

	// faces joining the y = +h edges
	{C, N, M, D},
	{D, M, L, E},
	{E, L, K, F},
	{F, K, N, C},

	// faces joining the vertical edges
	{D, M, P, A},
	{E, L, I, H},
	{F, K, J, G},
	{C, N, O, B},

	// w = -h cube
	{O, P, M, N},
	{N, M, L, K},
	{K, L, I, J},
	{J, I, P, O},
	{M, P, I, L},
	{O, J, K, N},
}

// palette assigns one colour per face, indexed by face number.
var palette = [FaceCount]math.Vec4{
	{X: 1.0, Y: 0.0, Z: 0.0}, {X: 0.0, Y: 1.0, Z: 0.0}, {X: 0.0, Y: 0.0, Z: 1.0}, {X: 1.0, Y: 1.0, Z: 0.0},
	{X: 1.0, Y: 0.0, Z: 1.0}, {X: 0.0, Y: 1.0, Z: 1.0}, {X: 0.1, Y: 0.2, Z: 0.3}, {X: 0.2, Y: 0.1, Z: 0.3},
	{X: 0.1, Y: 0.3, Z: 0.2}, {X: 0.2, Y: 0.3, Z: 0.1}, {X: 0.3, Y: 0.2, Z: 0.1}, {X: 0.3, Y: 0.1, Z: 0.2},
	{X: 0.7, Y: 0.2, Z: 1.0}, {X: 0.7, Y: 1.0, Z: 0.2}, {X: 0.2, Y: 0.7, Z: 1.0}, {X: 0.2, Y: 1.0, Z: 0.7},
	{X: 1.0, Y: 0.2, Z: 0.7}, {X: 1.0, Y: 0.7, Z: 0.2}, {X: 0.5, Y: 0.3, Z: 0.0}, {X: 0.5, Y: 0.0, Z: 0.3},
	{X: 0.0, Y: 0.3, Z: 0.5}, {X: 0.0, Y: 0.5, Z: 0.3}, {X: 0.3, Y: 0.0, Z: 0.5}, {X: 0.3, Y: 0.5, Z: 0.0},
}

// Faces returns a copy of the face table.
func Faces() [FaceCount]Face {
	return faces
}

// FaceColor returns the solid-mesh colour of face i, alpha included.
func FaceColor(i int) math.Vec4 {
	c := palette[i%FaceCount]
	c.W = FaceAlpha
	return c
}

// Vertices returns the 16 corners of the hypercube centred at center with
// every coordinate offset by ±halfExtent.
func Vertices(center math.Vec4, halfExtent float32) [VertexCount]math.Vec4 {
	var v [VertexCount]math.Vec4
	for i, s := range corners {
		v[i] = center.Add(math.Vec4{
			X: s[0] * halfExtent,
			Y: s[1] * halfExtent,
			Z: s[2] * halfExtent,
			W: s[3] * halfExtent,
		})
	}
	return v
}

// Generate builds the solid and wireframe meshes. halfExtent may be zero, in
// which case every primitive collapses onto center. Identical arguments give
// identical meshes; no state survives between calls.
func Generate(center math.Vec4, halfExtent float32) (solid, wire *Mesh) {
	v := Vertices(center, halfExtent)
	solid = NewMesh(SolidVertexCount, true)
	wire = NewMesh(WireVertexCount, false)

	for i, f := range faces {
		a, b, c, d := v[f[0]], v[f[1]], v[f[2]], v[f[3]]
		color := FaceColor(i)

		solid.AppendColored(color, a, b, d)
		solid.AppendColored(color, d, b, c)

		wire.Append(a, b, b, c, c, d, d, a)
	}
	return solid, wire
}

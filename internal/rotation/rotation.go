// Package rotation tracks the six 4D rotation-plane angles that tumble the tesseract.
package rotation

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tesseract4d/pkg/math"
)

// PlaneCount is the number of coordinate planes in 4D.
const PlaneCount = 6

// Plane indexes a rotation plane. The order matches the sines/cosines
// uniform arrays consumed by the vertex shaders.
type Plane int

const (
	XY Plane = iota
	XZ
	XW
	YZ
	YW
	ZW
)

var planeNames = [PlaneCount]string{"xy", "xz", "xw", "yz", "yw", "zw"}

func (p Plane) String() string {
	if p < 0 || int(p) >= PlaneCount {
		return "invalid"
	}
	return planeNames[p]
}

// axes returns the two coordinate indices spanning the plane.
func (p Plane) axes() (int, int) {
	switch p {
	case XY:
		return 0, 1
	case XZ:
		return 0, 2
	case XW:
		return 0, 3
	case YZ:
		return 1, 2
	case YW:
		return 1, 3
	default:
		return 2, 3
	}
}

// Ratios are the per-plane multipliers of the shared base step. They are
// pairwise coprime so the planes rarely line up again.
var Ratios = [PlaneCount]float32{1, 2, 3, 5, 7, 11}

// Set holds one angle per plane, in degrees, each kept in [0, 360).
type Set struct {
	Angles [PlaneCount]float32
}

// Advance moves every angle by its ratio times baseStep and wraps it into
// [0, 360). A non-finite step leaves the angles untouched.
func (s *Set) Advance(baseStep float32) {
	if math32.IsNaN(baseStep) || math32.IsInf(baseStep, 0) {
		return
	}
	for i := range s.Angles {
		s.Angles[i] = math.WrapDegrees(s.Angles[i] + Ratios[i]*baseStep)
	}
}

// Trig holds the sine and cosine of every plane angle for one frame.
type Trig struct {
	Sin [PlaneCount]float32
	Cos [PlaneCount]float32
}

// SinCos converts the current angles. It is recomputed every frame.
func (s *Set) SinCos() Trig {
	var t Trig
	for i, a := range s.Angles {
		r := math.Radians(a)
		t.Sin[i] = math32.Sin(r)
		t.Cos[i] = math32.Cos(r)
	}
	return t
}

// Apply rotates v through every plane in order, mirroring the vertex shader.
func (t Trig) Apply(v math.Vec4) math.Vec4 {
	c := [4]float32{v.X, v.Y, v.Z, v.W}
	for p := XY; p <= ZW; p++ {
		i, j := p.axes()
		a, b := c[i], c[j]
		c[i] = t.Cos[p]*a - t.Sin[p]*b
		c[j] = t.Sin[p]*a + t.Cos[p]*b
	}
	return math.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}

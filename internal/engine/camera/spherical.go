package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tesseract4d/pkg/math"
)

// Spherical is a (radius, polar, azimuth, w) coordinate. Phi is measured down
// from +Y and Theta from +X towards +Z, both in degrees. W is carried through
// unchanged so the same type describes points (W=1) and directions (W=0).
type Spherical struct {
	R, Phi, Theta, W float32
}

// ToCartesian converts to a Cartesian vector.
func (s Spherical) ToCartesian() math.Vec4 {
	phi := math.Radians(s.Phi)
	theta := math.Radians(s.Theta)
	sinPhi := math32.Sin(phi)

	return math.Vec4{
		X: s.R * sinPhi * math32.Cos(theta),
		Y: s.R * math32.Cos(phi),
		Z: s.R * sinPhi * math32.Sin(theta),
		W: s.W,
	}
}

// Turn adds the given angle increments and wraps both angles into [0, 360).
func (s Spherical) Turn(dPhi, dTheta float32) Spherical {
	s.Phi = math.WrapDegrees(s.Phi + dPhi)
	s.Theta = math.WrapDegrees(s.Theta + dTheta)
	return s
}

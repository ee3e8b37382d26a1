// Package camera implements the spherical look camera used to view the tesseract.
package camera

import (
	"github.com/Faultbox/tesseract4d/pkg/math"
)

// Direction selects a strafe direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Settings holds the tunable camera parameters.
type Settings struct {
	FovY  float32 // degrees
	ZNear float32
	ZFar  float32

	Step          float32 // strafe distance per key press
	StepIncrement float32 // speed adjust amount
	Sensitivity   float32 // degrees per viewport height of pointer motion
	MaxLookStep   float32 // clamp for a single look increment, degrees
}

// DefaultSettings returns the stock camera settings.
func DefaultSettings() Settings {
	return Settings{
		FovY:          45.0,
		ZNear:         0.5,
		ZFar:          3.0,
		Step:          0.1,
		StepIncrement: 0.05,
		Sensitivity:   5.0,
		MaxLookStep:   45.0,
	}
}

// Default look parameters. The eye sits at the camera-space origin and the
// offset places the viewer in front of the tesseract.
var (
	EyeSpherical  = Spherical{R: 0, Phi: 0, Theta: 0, W: 1}
	DefaultAt     = Spherical{R: 1, Phi: 90, Theta: 270, W: 1}
	DefaultUp     = Spherical{R: 1, Phi: 0, Theta: 270, W: 0}
	DefaultOffset = math.Vec4{X: 0, Y: 0, Z: 1, W: 1}
)

// Camera keeps the look direction in spherical form and the position as a
// Cartesian offset added to it.
//
// At and Up are always turned together, so their polar angles stay 90
// degrees apart and Up is never parallel to the look direction.
type Camera struct {
	At     Spherical
	Up     Spherical
	Offset math.Vec4
	Step   float32

	settings Settings
}

// New creates a camera in its default pose.
func New(s Settings) *Camera {
	c := &Camera{settings: s}
	c.Reset()
	return c
}

// Settings returns the camera settings.
func (c *Camera) Settings() Settings {
	return c.settings
}

// Reset restores the look direction, offset and strafe step.
func (c *Camera) Reset() {
	c.At = DefaultAt
	c.Up = DefaultUp
	c.Offset = DefaultOffset
	c.Step = c.settings.Step
}

// Eye returns the eye position in world space.
func (c *Camera) Eye() math.Vec4 {
	return math.TranslateVec4(c.Offset).MulVec4(EyeSpherical.ToCartesian())
}

// Target returns the look-at point in world space.
func (c *Camera) Target() math.Vec4 {
	return math.TranslateVec4(c.Offset).MulVec4(c.At.ToCartesian())
}

// UpVector returns the up direction. It is not translated by the offset.
func (c *Camera) UpVector() math.Vec4 {
	return c.Up.ToCartesian()
}

// ViewMatrix returns the view matrix for the current pose.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye(), c.Target(), c.UpVector())
}

// ProjectionMatrix returns the perspective matrix for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.settings.FovY, aspect, c.settings.ZNear, c.settings.ZFar)
}

// Strafe moves the offset by one step. Left/right follow at × up, up/down
// follow the up direction. Offset.W is never touched.
func (c *Camera) Strafe(dir Direction) {
	var d math.Vec4
	switch dir {
	case Right:
		d = c.right()
	case Left:
		d = c.right().Scale(-1)
	case Up:
		d = c.UpVector().Direction().Normalize()
	case Down:
		d = c.UpVector().Direction().Normalize().Scale(-1)
	default:
		return
	}
	d = d.Scale(c.Step)
	c.Offset.X += d.X
	c.Offset.Y += d.Y
	c.Offset.Z += d.Z
}

func (c *Camera) right() math.Vec4 {
	return c.At.ToCartesian().Cross(c.UpVector()).Normalize()
}

// AdjustSpeed changes the strafe step by sign * StepIncrement, never below zero.
func (c *Camera) AdjustSpeed(sign int) {
	switch {
	case sign > 0:
		c.Step += c.settings.StepIncrement
	case sign < 0:
		c.Step -= c.settings.StepIncrement
		if c.Step < 0 {
			c.Step = 0
		}
	}
}

// Look turns the view by a pointer delta in pixels. Horizontal motion changes
// the azimuth, vertical motion the polar angle; height normalises the delta.
func (c *Camera) Look(dx, dy float32, height int) {
	if height <= 0 {
		return
	}
	h := float32(height)
	dTheta := clamp(c.settings.Sensitivity*dx/h, c.settings.MaxLookStep)
	dPhi := -clamp(c.settings.Sensitivity*dy/h, c.settings.MaxLookStep)

	c.At = c.At.Turn(dPhi, dTheta)
	c.Up = c.Up.Turn(dPhi, dTheta)
}

func clamp(v, limit float32) float32 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

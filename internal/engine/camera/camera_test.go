package camera

import (
	gomath "math"
	"testing"

	"pgregory.net/rapid"

	"github.com/Faultbox/tesseract4d/pkg/math"
)

func near(a, b, tol float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(tol)
}

func TestToCartesianAxes(t *testing.T) {
	tests := []struct {
		name string
		in   Spherical
		want math.Vec4
	}{
		{"pole", Spherical{R: 2, Phi: 0, Theta: 123, W: 0}, math.Vec4{X: 0, Y: 2, Z: 0, W: 0}},
		{"+x", Spherical{R: 1, Phi: 90, Theta: 0, W: 1}, math.Vec4{X: 1, Y: 0, Z: 0, W: 1}},
		{"+z", Spherical{R: 1, Phi: 90, Theta: 90, W: 1}, math.Vec4{X: 0, Y: 0, Z: 1, W: 1}},
		{"default target", DefaultAt, math.Vec4{X: 0, Y: 0, Z: -1, W: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToCartesian()
			if !near(got.X, tt.want.X, 1e-6) || !near(got.Y, tt.want.Y, 1e-6) ||
				!near(got.Z, tt.want.Z, 1e-6) || got.W != tt.want.W {
				t.Errorf("ToCartesian(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToCartesianPreservesRadius(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Spherical{
			R:     rapid.Float32Range(-100, 100).Draw(t, "r"),
			Phi:   rapid.Float32Range(-720, 720).Draw(t, "phi"),
			Theta: rapid.Float32Range(-720, 720).Draw(t, "theta"),
			W:     rapid.Float32Range(-1, 1).Draw(t, "w"),
		}
		v := s.ToCartesian()
		want := float32(gomath.Abs(float64(s.R)))
		if !near(v.Length3(), want, 1e-4*(1+want)) {
			t.Fatalf("|%+v| = %v, want %v", s, v.Length3(), want)
		}
		if v.W != s.W {
			t.Fatalf("W changed: got %v, want %v", v.W, s.W)
		}
	})
}

func TestDefaultPose(t *testing.T) {
	c := New(DefaultSettings())

	if c.Eye() != DefaultOffset {
		t.Errorf("Eye() = %v, want %v", c.Eye(), DefaultOffset)
	}
	target := c.Target()
	if !near(target.X, 0, 1e-6) || !near(target.Y, 0, 1e-6) || !near(target.Z, 0, 1e-6) {
		t.Errorf("Target() = %v, want the origin", target)
	}
	up := c.UpVector()
	if !near(up.Y, 1, 1e-6) || up.W != 0 {
		t.Errorf("UpVector() = %v, want +Y direction", up)
	}
}

func TestStrafeRight(t *testing.T) {
	c := New(DefaultSettings())
	before := c.Offset

	c.Strafe(Right)

	dir := c.At.ToCartesian().Cross(c.Up.ToCartesian()).Normalize().Scale(0.1)
	got := c.Offset.Sub(before)
	if !near(got.X, dir.X, 1e-6) || !near(got.Y, dir.Y, 1e-6) || !near(got.Z, dir.Z, 1e-6) {
		t.Errorf("offset delta = %v, want %v", got, dir)
	}
	if c.Offset.W != before.W {
		t.Errorf("offset W changed: got %v, want %v", c.Offset.W, before.W)
	}
	if !near(got.X, 0.1, 1e-6) {
		t.Errorf("default right should be +X, got delta %v", got)
	}
}

func TestStrafeOppositeDirectionsCancel(t *testing.T) {
	c := New(DefaultSettings())
	start := c.Offset

	c.Strafe(Left)
	c.Strafe(Right)
	c.Strafe(Up)
	c.Strafe(Down)

	d := c.Offset.Sub(start)
	if d.Length() > 1e-6 {
		t.Errorf("offset drifted by %v", d)
	}
}

func TestAdjustSpeedClampsAtZero(t *testing.T) {
	c := New(DefaultSettings())

	c.AdjustSpeed(1)
	if !near(c.Step, 0.15, 1e-6) {
		t.Errorf("step after increase = %v, want 0.15", c.Step)
	}
	for i := 0; i < 10; i++ {
		c.AdjustSpeed(-1)
	}
	if c.Step != 0 {
		t.Errorf("step after repeated decrease = %v, want 0", c.Step)
	}
}

func TestReset(t *testing.T) {
	c := New(DefaultSettings())
	c.Strafe(Right)
	c.AdjustSpeed(1)
	c.Look(100, 50, 512)

	c.Reset()

	if c.At != DefaultAt || c.Up != DefaultUp || c.Offset != DefaultOffset || c.Step != 0.1 {
		t.Errorf("Reset left %+v", c)
	}
}

func TestLookKeepsUpOrthogonal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(DefaultSettings())
		n := rapid.IntRange(1, 50).Draw(t, "moves")
		for i := 0; i < n; i++ {
			dx := rapid.Float32Range(-5000, 5000).Draw(t, "dx")
			dy := rapid.Float32Range(-5000, 5000).Draw(t, "dy")
			c.Look(dx, dy, 512)
		}

		for _, a := range []float32{c.At.Phi, c.At.Theta, c.Up.Phi, c.Up.Theta} {
			if a < 0 || a >= 360 {
				t.Fatalf("angle %v outside [0, 360)", a)
			}
		}
		dot := c.At.ToCartesian().Dot3(c.UpVector())
		if !near(dot, 0, 1e-3) {
			t.Fatalf("at·up = %v, want 0", dot)
		}
	})
}

func TestLookClampsIncrement(t *testing.T) {
	c := New(DefaultSettings())
	c.Look(1e6, 0, 100)

	if !near(c.At.Theta, math.WrapDegrees(270+45), 1e-4) {
		t.Errorf("theta = %v, want clamped turn of 45 degrees", c.At.Theta)
	}
}

func TestLookIgnoresEmptyViewport(t *testing.T) {
	c := New(DefaultSettings())
	c.Look(10, 10, 0)
	if c.At != DefaultAt {
		t.Errorf("Look with zero height changed At to %+v", c.At)
	}
}

func TestViewMatrixPutsEyeAtOrigin(t *testing.T) {
	c := New(DefaultSettings())
	c.Strafe(Right)
	p := c.ViewMatrix().MulVec4(c.Eye())
	if p.XYZ().Length() > 1e-5 {
		t.Errorf("eye in view space = %v, want origin", p)
	}
}

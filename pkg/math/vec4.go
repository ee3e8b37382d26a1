package math

import "github.com/chewxy/math32"

// Vec4 is a 4-component vector. It is used both as a Euclidean 4D point and,
// with W as the homogeneous coordinate, as a 3D point or direction.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + other on all four components.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other on all four components.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4D dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Dot3 returns the dot product of the XYZ parts.
func (v Vec4) Dot3(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length3 returns the magnitude of the XYZ part.
func (v Vec4) Length3() float32 {
	return math32.Sqrt(v.Dot3(v))
}

// Length returns the 4D magnitude.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize scales v by 1/|xyz|. Callers pass directions with W = 0; a zero
// XYZ part produces NaN components.
func (v Vec4) Normalize() Vec4 {
	return v.Scale(1 / v.Length3())
}

// Cross returns the cross product of the XYZ parts with W = 0.
func (v Vec4) Cross(other Vec4) Vec4 {
	c := v.XYZ().Cross(other.XYZ())
	return Vec4{c.X, c.Y, c.Z, 0}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Direction returns v with W cleared.
func (v Vec4) Direction() Vec4 {
	return Vec4{v.X, v.Y, v.Z, 0}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// WrapDegrees maps any finite angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

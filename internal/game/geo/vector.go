package geo

import "math"

// Axis identifies one of the three world axes.
// Collision resolution always handles Y before the horizontal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// HorizontalAxes is the fixed order horizontal collision passes run in.
var HorizontalAxes = [2]Axis{AxisX, AxisZ}

// Vec3 is a double-precision world-space vector. Value type, passed by value.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s on every axis.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// LengthSquared returns |v|² (no sqrt, for cheap zero/threshold checks).
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// HorizontalLengthSquared returns the squared length of the XZ projection.
func (v Vec3) HorizontalLengthSquared() float64 {
	return v.X*v.X + v.Z*v.Z
}

// Length returns |v|.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length, or the zero vector if |v| == 0.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Component returns the value of v along the given axis.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with the given axis replaced.
func (v Vec3) WithComponent(a Axis, val float64) Vec3 {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

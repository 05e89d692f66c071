package sim

import "math"

// Vec3 is a float32 3D vector. Every position, force and target point in the
// simulation is a Vec3; z is carried through but the cloth is laid out flat.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Inc adds o to v in place.
func (v *Vec3) Inc(o Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// Dec subtracts o from v in place.
func (v *Vec3) Dec(o Vec3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// Length returns the Euclidean length over all three axes.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Distance returns |a - b|.
func Distance(a, b Vec3) float32 {
	return a.Sub(b).Length()
}

// Clamp constrains each axis of v to the inclusive [min, max] range.
func (v Vec3) Clamp(min, max Vec3) Vec3 {
	return Vec3{
		X: clampScalar(v.X, min.X, max.X),
		Y: clampScalar(v.Y, min.Y, max.Y),
		Z: clampScalar(v.Z, min.Z, max.Z),
	}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func clampScalar(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

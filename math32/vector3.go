package math32

import (
	"fmt"
	"math"
)

// Vector3 represents a 3D vector.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec3 is shorthand for building a Vector3.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all components set to s.
func Splat(s float32) Vector3 {
	return Vector3{s, s, s}
}

// Add adds two vectors.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts two vectors.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies a vector by a scalar.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Scale scales a vector by a scalar.
func (v Vector3) Scale(s float32) Vector3 {
	return v.Mul(s)
}

// Div divides a vector by a scalar.
func (v Vector3) Div(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Neg returns the opposite vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Distance calculates the distance between two vectors.
func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

// LengthSquared calculates the squared length of a vector.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length calculates the length of a vector.
func (v Vector3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Dot calculates the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product of two vectors.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// MinComponents returns the componentwise minimum of two vectors.
func (v Vector3) MinComponents(other Vector3) Vector3 {
	return Vector3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// MaxComponents returns the componentwise maximum of two vectors.
func (v Vector3) MaxComponents(other Vector3) Vector3 {
	return Vector3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// Negative reports whether any component is below zero.
func (v Vector3) Negative() bool {
	return v.X < 0 || v.Y < 0 || v.Z < 0
}

// ApproxEqual compares two vectors componentwise with Feq.
func (v Vector3) ApproxEqual(other Vector3) bool {
	return Feq(v.X, other.X) && Feq(v.Y, other.Y) && Feq(v.Z, other.Z)
}

// Normalize normalizes a vector.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{0, 0, 0}
	}
	return v.Mul(1.0 / l)
}

// String returns a string representation of the vector.
func (v Vector3) String() string {
	return fmt.Sprintf("[%g,%g,%g]", v.X, v.Y, v.Z)
}

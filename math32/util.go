package math32

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used by Feq.
const Epsilon float32 = 1e-6

// Min returns the minimum of two values.
func Min[T constraints.Float | constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max[T constraints.Float | constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a float32.
func Abs(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt returns the square root of a float32.
func Sqrt(a float32) float32 {
	return float32(math.Sqrt(float64(a)))
}

// Feq reports whether a and b are equal within Epsilon.
func Feq(a, b float32) bool {
	return Abs(a-b) <= Epsilon
}

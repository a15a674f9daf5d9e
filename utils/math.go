package utils

import (
	"math"
	"math/cmplx"
)

// IsClose reports whether a and b are within tol of each other.
func IsClose(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// IsCloseC measures closeness on the complex modulus, so real and imaginary
// deviations are weighed together.
func IsCloseC(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

// Package matrix: scalar helpers shared by norms, validation and dumps.
// Scalar admits exactly float64 and complex128, so every helper dispatches
// with a two-case type switch; the trailing return is unreachable.
package matrix

import (
	"math"
	"math/cmplx"
)

// absOf returns the magnitude |v| as a real number: math.Abs for float64,
// the complex modulus for complex128. Complexity: O(1).
func absOf[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// absSq returns |v|² without the square root (the C++ std::norm of a
// scalar). Used by the Frobenius accumulation to avoid n sqrt calls.
// Complexity: O(1).
func absSq[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}
	return 0
}

// isNonFinite reports whether v contains a NaN or ±Inf component.
// For complex128 both the real and the imaginary part are inspected.
// Complexity: O(1).
func isNonFinite[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case complex128:
		return cmplx.IsNaN(x) || cmplx.IsInf(x)
	}
	return false
}

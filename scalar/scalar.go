// SPDX-License-Identifier: MIT

// Package scalar defines the numeric element type shared by vectors and
// matrices, plus the handful of generic helpers the kernels need on top of
// the built-in operators.
//
// Purpose:
//   - One capability bound (Scalar) instead of per-operation constraints.
//   - Widening to float64 so metrics (norms, angles) have a single return
//     type regardless of K.
//
// Notes:
//   - Ordering is required (pivot selection compares magnitudes), which is why
//     complex types are not part of the constraint.
package scalar

import "math"

// Scalar is the element type of vectors and matrices.
// It supports + - * /, ordering, and conversion from a float constant.
type Scalar interface {
	~float32 | ~float64
}

// One returns the multiplicative identity of K.
func One[K Scalar]() K { return 1 }

// Float64 widens v to float64.
// Complexity: O(1).
func Float64[K Scalar](v K) float64 { return float64(v) }

// Abs returns |v|. Negative zero maps to positive zero.
// Complexity: O(1).
func Abs[K Scalar](v K) K {
	if v < 0 {
		return -v
	}

	return v + 0 // -0 + 0 == +0
}

// Sum folds xs with + in index order. An empty slice sums to zero.
// Complexity: O(n).
func Sum[K Scalar](xs []K) K {
	var acc K
	for _, x := range xs {
		acc += x
	}

	return acc
}

// IsZero reports whether |v| ≤ eps.
// With eps == 0 this is exact equality against zero (both signed zeros match).
// Complexity: O(1).
func IsZero[K Scalar](v K, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return math.Abs(float64(v)) <= eps
}

// SPDX-License-Identifier: MIT

// Package vector - elementwise arithmetic.
//
// Purpose:
//   - Pure kernels (Add, Sub, Scale) allocate a fresh result and never touch operands.
//   - The *InPlace methods mutate the receiver; they are what the matrix
//     elimination engine uses for row operations on its private clone.
//
// Determinism:
//   - Fixed 0..n-1 loop order everywhere.

package vector

import "github.com/katalvlaran/linalg/scalar"

// addSub computes out = a + sign*b into a fresh vector.
// Shared by Add/Sub to keep validation and the loop in one place.
func addSub[K scalar.Scalar](a, b *Vector[K], sign K, tag string) (*Vector[K], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf(tag, err)
	}
	out := make([]K, len(a.data))
	for i := range out {
		out[i] = a.data[i] + sign*b.data[i]
	}

	return &Vector[K]{data: out}, nil
}

// Add returns a + b.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Add[K scalar.Scalar](a, b *Vector[K]) (*Vector[K], error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Sub[K scalar.Scalar](a, b *Vector[K]) (*Vector[K], error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*v.
// Errors: ErrNilVector.
// Complexity: O(n).
func Scale[K scalar.Scalar](v *Vector[K], alpha K) (*Vector[K], error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(opScale, err)
	}
	out := make([]K, len(v.data))
	for i, x := range v.data {
		out[i] = x * alpha
	}

	return &Vector[K]{data: out}, nil
}

// ---------- In-place layer ----------

// AddInPlace performs v += o.
// Errors: ErrNilVector, ErrDimensionMismatch (v is left untouched on error).
func (v *Vector[K]) AddInPlace(o *Vector[K]) error {
	return v.AddScaledInPlace(o, 1)
}

// SubInPlace performs v -= o.
// Errors: ErrNilVector, ErrDimensionMismatch (v is left untouched on error).
func (v *Vector[K]) SubInPlace(o *Vector[K]) error {
	return v.AddScaledInPlace(o, -1)
}

// ScaleInPlace performs v *= alpha.
func (v *Vector[K]) ScaleInPlace(alpha K) error {
	if err := ValidateNotNil(v); err != nil {
		return vectorErrorf(opScale, err)
	}
	for i := range v.data {
		v.data[i] *= alpha
	}

	return nil
}

// AddScaledInPlace performs v += alpha*o (axpy).
// This is the elementary row operation "row_j -= ratio * row_p" with alpha = -ratio.
// Errors: ErrNilVector, ErrDimensionMismatch (v is left untouched on error).
// Complexity: O(n).
func (v *Vector[K]) AddScaledInPlace(o *Vector[K], alpha K) error {
	if err := ValidateSameLen(v, o); err != nil {
		return vectorErrorf(opAddScaled, err)
	}
	if alpha == 0 {
		return nil
	}
	for i := range v.data {
		v.data[i] += alpha * o.data[i]
	}

	return nil
}

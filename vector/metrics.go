// SPDX-License-Identifier: MIT

// Package vector - dot product, norms and geometric metrics.
//
// Norms return float64 regardless of K so callers can compare metrics of
// float32 and float64 vectors without extra conversions.

package vector

import (
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// Dot returns Σ a[i]*b[i].
// A length mismatch is a hard failure (ErrDimensionMismatch), never a truncation.
// Complexity: O(n).
func Dot[K scalar.Scalar](a, b *Vector[K]) (K, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	var acc K
	for i := range a.data {
		acc += a.data[i] * b.data[i]
	}

	return acc, nil
}

// Norm1 returns the Manhattan norm Σ|v[i]|. Empty and nil vectors yield 0.
// Complexity: O(n).
func Norm1[K scalar.Scalar](v *Vector[K]) float64 {
	if v == nil {
		return 0
	}
	var acc float64
	for _, x := range v.data {
		acc += math.Abs(scalar.Float64(x))
	}

	return acc
}

// Norm returns the Euclidean norm √Σv[i]². Empty and nil vectors yield 0.
// Complexity: O(n).
func Norm[K scalar.Scalar](v *Vector[K]) float64 {
	if v == nil {
		return 0
	}
	var acc, f float64
	for _, x := range v.data {
		f = scalar.Float64(x)
		acc += f * f
	}

	return math.Sqrt(acc)
}

// NormInf returns the supremum norm max|v[i]|.
// Errors: ErrNilVector, ErrEmptyVector (the maximum of nothing is undefined).
// Complexity: O(n).
func NormInf[K scalar.Scalar](v *Vector[K]) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, vectorErrorf(opNormInf, err)
	}
	if len(v.data) == 0 {
		return 0, vectorErrorf(opNormInf, ErrEmptyVector)
	}
	best := math.Abs(scalar.Float64(v.data[0]))
	for _, x := range v.data[1:] {
		best = math.Max(best, math.Abs(scalar.Float64(x)))
	}

	return best, nil
}

// AngleCos returns cos θ = ⟨a,b⟩ / (‖a‖·‖b‖).
// Errors: ErrNilVector, ErrDimensionMismatch, ErrZeroVector (either norm is 0,
// which also covers empty vectors).
// Complexity: O(n).
func AngleCos[K scalar.Scalar](a, b *Vector[K]) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, vectorErrorf(opAngleCos, err)
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, vectorErrorf(opAngleCos, ErrZeroVector)
	}

	return scalar.Float64(dot) / (na * nb), nil
}

// CrossProduct returns a × b for 3-vectors.
// Errors: ErrNilVector, ErrDimensionMismatch (either operand is not of length 3).
// Complexity: O(1).
func CrossProduct[K scalar.Scalar](a, b *Vector[K]) (*Vector[K], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opCross, err)
	}
	if len(a.data) != 3 {
		return nil, vectorErrorf(opCross, ErrDimensionMismatch)
	}
	u, w := a.data, b.data

	return New(
		u[1]*w[2]-u[2]*w[1],
		u[2]*w[0]-u[0]*w[2],
		u[0]*w[1]-u[1]*w[0],
	), nil
}

// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Thin, intention-revealing aliases over the canonical kernels. Every facade
// has exactly the semantics (and errors) of the function it forwards to.
//
// Determinism & Policy:
//   - No facade adds validation or state of its own.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[K scalar.Scalar](m *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return Zeros[K](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[K scalar.Scalar](m *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return Identity[K](m.Rows())
}

// Sum is an alias for Add: element-wise a + b.
func Sum[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) { return Sub(a, b) }

// Product is an alias for MulMat: matrix product a × b.
func Product[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) { return MulMat(a, b) }

// MatVecMul is an alias for MulVec: y = m·x.
func MatVecMul[K scalar.Scalar](m *Matrix[K], x *vector.Vector[K]) (*vector.Vector[K], error) {
	return MulVec(m, x)
}

// T is an alias for Transpose: returns mᵀ.
func T[K scalar.Scalar](m *Matrix[K]) (*Matrix[K], error) { return Transpose(m) }

// InverseOf is an alias for Inverse with default options.
func InverseOf[K scalar.Scalar](m *Matrix[K]) (*Matrix[K], error) { return Inverse(m) }

// RREF is an alias for ReducedRowEchelon.
func RREF[K scalar.Scalar](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	return ReducedRowEchelon(m, opts...)
}

// Det is an alias for Determinant.
func Det[K scalar.Scalar](m *Matrix[K], opts ...Option) (K, error) { return Determinant(m, opts...) }

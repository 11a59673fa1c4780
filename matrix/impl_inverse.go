// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Inverse computes A⁻¹ by Gauss-Jordan reduction of the augmented matrix [A | I].
//
// Implementation:
//   - Stage 1: ValidateSquare(A).
//   - Stage 2: for n within the determinant limit, reject det(A) = 0 (per eps)
//     with ErrSingular before doing any reduction.
//   - Stage 3: build [A | Iₙ], reduce it to RREF.
//   - Stage 4: a zero on the diagonal of the left block means A has rank < n
//     (ErrSingular); otherwise columns n..2n hold A⁻¹.
//
// Behavior highlights:
//   - Input A is never mutated (Augment and the engine both work on copies).
//   - Stage 4 alone decides singularity for matrices above the determinant limit.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Fixed pivot policy (see ReducedRowEchelon, WithPartialPivoting).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Results are approximate: check with AllClose(MulMat(A, inv), I, ...) rather
//     than Equal.
func Inverse[K scalar.Scalar](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := len(m.rows)

	// Stage 2: cheap singularity gate.
	if n <= o.maxDetDim {
		if det := determinant(m, o); scalar.IsZero(det, o.eps) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("det = %g: %w", det, ErrSingular))
		}
	}

	// Stage 3: [A | I] → RREF.
	id, err := Identity[K](n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	red := reducedRowEchelon(aug, o)

	// Stage 4: the left block must have become Iₙ.
	for i, r := range red.rows {
		if scalar.IsZero(r.Raw()[i], o.eps) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("zero pivot at row %d: %w", i, ErrSingular))
		}
	}

	inv, err := Columns(red, n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

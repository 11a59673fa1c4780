// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise layer: addition, subtraction,
// scaling, matrix×vector and matrix×matrix products, transpose and trace.
// All functions perform strict fail-fast validation and return fresh results;
// operands are never mutated. The *InPlace methods at the bottom of this file
// are the explicit opt-in mutating layer.
//
// Purpose:
//   - Define operation tags and the shared error wrapper for the package.
//   - Implement the pure kernels row by row on top of package vector.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew          = "New"
	opZeros        = "Zeros"
	opIdentity     = "Identity"
	opAt           = "At"
	opSet          = "Set"
	opRow          = "Row"
	opCol          = "Col"
	opSwapRows     = "SwapRows"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opMatVec       = "MulVec"
	opMul          = "MulMat"
	opTranspose    = "Transpose"
	opTrace        = "Trace"
	opLerp         = "Lerp"
	opAllClose     = "AllClose"
	opAugment      = "Augment"
	opColumns      = "Columns"
	opRowEchelon   = "RowEchelon"
	opRREF         = "ReducedRowEchelon"
	opRank         = "Rank"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opUnmarshal    = "Unmarshal"
	opIdentityLike = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, keeping err reachable via errors.Is.
// The wrapper keeps a stable "matrix.Op: underlying" shape, as vectorErrorf does.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: row by row, vector.Add / vector.Sub into fresh rows.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[K scalar.Scalar](a, b *Matrix[K], sign K, opTag string) (*Matrix[K], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Matrix[K]{rows: make([]*vector.Vector[K], len(a.rows)), cols: a.cols}
	var (
		i   int
		row *vector.Vector[K]
		err error
	)
	for i = range a.rows {
		if sign > 0 {
			row, err = vector.Add(a.rows[i], b.rows[i])
		} else {
			row, err = vector.Sub(a.rows[i], b.rows[i])
		}
		if err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
		}
		out.rows[i] = row
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[K scalar.Scalar](m *Matrix[K], alpha K) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	for _, r := range out.rows {
		_ = r.ScaleInPlace(alpha) // rows of a clone are never nil
	}

	return out, nil
}

// MulVec computes y = m·v where y[i] = ⟨row_i(m), v⟩.
//
// Implementation:
//   - Stage 1: ValidateVecLen(m, v) (len(v) must equal Cols).
//   - Stage 2: one vector.Dot per row.
//
// Returns:
//   - *vector.Vector[K] of length Rows.
//
// Errors:
//   - ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec[K scalar.Scalar](m *Matrix[K], v *vector.Vector[K]) (*vector.Vector[K], error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]K, len(m.rows))
	var err error
	for i, r := range m.rows {
		if out[i], err = vector.Dot(r, v); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
	}

	return vector.New(out...), nil
}

// MulMat computes the matrix product C = A × B, C[i][j] = ⟨row_i(A), col_j(B)⟩.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: transpose B once so every column is a contiguous row.
//   - Stage 3: C[i][j] = vector.Dot(A.row_i, Bᵀ.row_j).
//
// Behavior highlights:
//   - Deterministic i→j order; inputs remain immutable.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) (result plus the transposed copy).
func MulMat[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt := transpose(b)
	out := &Matrix[K]{rows: make([]*vector.Vector[K], len(a.rows)), cols: b.cols}

	var (
		i, j int
		dot  K
		err  error
	)
	for i = range a.rows {
		row := make([]K, b.cols)
		for j = range bt.rows {
			if dot, err = vector.Dot(a.rows[i], bt.rows[j]); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			row[j] = dot
		}
		out.rows[i] = vector.New(row...)
	}

	return out, nil
}

// Transpose returns mᵀ (r×c → c×r).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[K scalar.Scalar](m *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transpose(m), nil
}

// transpose assumes m is valid.
func transpose[K scalar.Scalar](m *Matrix[K]) *Matrix[K] {
	data := make([][]K, m.cols)
	for j := range data {
		data[j] = make([]K, len(m.rows))
	}
	for i, r := range m.rows {
		for j, x := range r.Raw() {
			data[j][i] = x
		}
	}
	rows := make([]*vector.Vector[K], m.cols)
	for j := range rows {
		rows[j] = vector.New(data[j]...)
	}

	return &Matrix[K]{rows: rows, cols: len(m.rows)}
}

// Trace returns Σ m[i][i].
// Errors: ErrNilMatrix, ErrNonSquare (the trace of a rectangular matrix is
// rejected rather than summed over the shorter diagonal).
// Complexity: O(n).
func Trace[K scalar.Scalar](m *Matrix[K]) (K, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	diag := make([]K, len(m.rows))
	for i, r := range m.rows {
		diag[i] = r.Raw()[i]
	}

	return scalar.Sum(diag), nil
}

// Lerp returns the element-wise linear interpolation a + (b − a)·t.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Lerp[K scalar.Scalar](a, b *Matrix[K], t K) (*Matrix[K], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opLerp, err)
	}
	out := &Matrix[K]{rows: make([]*vector.Vector[K], len(a.rows)), cols: a.cols}
	var err error
	for i := range a.rows {
		if out.rows[i], err = vector.Lerp(a.rows[i], b.rows[i], t); err != nil {
			return nil, matrixErrorf(opLerp, err)
		}
	}

	return out, nil
}

// AllClose reports whether every |a[i][j] − b[i][j]| ≤ atol + rtol·|b[i][j]|.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose[K scalar.Scalar](a, b *Matrix[K], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a.rows {
		ok, err := vector.AllClose(a.rows[i], b.rows[i], rtol, atol)
		if err != nil {
			return false, matrixErrorf(opAllClose, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// ---------- In-place layer ----------

// AddInPlace performs m += o.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is left untouched on error).
func (m *Matrix[K]) AddInPlace(o *Matrix[K]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for i, r := range m.rows {
		_ = r.AddInPlace(o.rows[i]) // shapes validated above
	}

	return nil
}

// SubInPlace performs m -= o.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is left untouched on error).
func (m *Matrix[K]) SubInPlace(o *Matrix[K]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opSub, err)
	}
	for i, r := range m.rows {
		_ = r.SubInPlace(o.rows[i])
	}

	return nil
}

// ScaleInPlace performs m *= alpha.
// Errors: ErrNilMatrix.
func (m *Matrix[K]) ScaleInPlace(alpha K) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for _, r := range m.rows {
		_ = r.ScaleInPlace(alpha)
	}

	return nil
}

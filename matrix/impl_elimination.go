// SPDX-License-Identifier: MIT
// Package matrix: the elimination engine.
//
// Purpose:
//   - RowEchelon: Gaussian elimination with partial pivoting.
//   - ReducedRowEchelon: Gauss-Jordan reduction.
//   - Rank: number of non-zero rows of the reduced form.
//   - Augment / Columns: the shape helpers Inverse is built from.
//
// Invariants:
//   - Every engine call reduces a private Clone; the input is never mutated.
//   - Row operations are the in-place vector layer: SwapRows (header swap),
//     ScaleInPlace (normalise) and AddScaledInPlace (row_j -= ratio*row_p).
//   - Entries the algorithm defines to be 0 or 1 (eliminated entries, the
//     normalised pivot) are written exactly, not left to rounding.
//
// Determinism:
//   - Pivot ties resolve to the first (lowest-index) row.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// RowEchelon returns a row echelon form of m computed with partial pivoting.
//
// Implementation:
//   - Stage 1: clone m; set pivot row pr = 0, pivot column pc = 0.
//   - Stage 2: while pr < rows-1 and pc < cols:
//     pick the first row ≥ pr with the largest |value| in column pc;
//     if that value is zero (per eps) advance pc only and retry;
//     otherwise swap it into pr and subtract multiples of row pr from every
//     row below, then advance both pr and pc.
//
// Behavior highlights:
//   - An all-zero pivot column never consumes a pivot row.
//   - Rows below each pivot are exactly 0 in the pivot column.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c) for the clone.
func RowEchelon[K scalar.Scalar](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	out, _ := rowEchelon(m.Clone(), gatherOptions(opts...))

	return out, nil
}

// rowEchelon reduces a in place and returns it with the number of row swaps
// performed; the swap parity is the determinant sign correction.
func rowEchelon[K scalar.Scalar](a *Matrix[K], o Options) (*Matrix[K], int) {
	r, c := len(a.rows), a.cols
	var (
		pr, pc, best, i, swaps int
		bestAbs, cur, ratio, p K
	)
	for pr < r-1 && pc < c {
		// Stage 2a: partial pivot search in column pc.
		best, bestAbs = pr, scalar.Abs(a.rows[pr].Raw()[pc])
		for i = pr + 1; i < r; i++ {
			if cur = scalar.Abs(a.rows[i].Raw()[pc]); cur > bestAbs {
				best, bestAbs = i, cur
			}
		}
		if scalar.IsZero(bestAbs, o.eps) {
			pc++ // zero column: the same pivot row retries on the next column
			continue
		}
		if best != pr {
			a.rows[pr], a.rows[best] = a.rows[best], a.rows[pr]
			swaps++
		}

		// Stage 2b: eliminate below the pivot.
		p = a.rows[pr].Raw()[pc]
		for i = pr + 1; i < r; i++ {
			ratio = a.rows[i].Raw()[pc] / p
			if ratio == 0 {
				continue
			}
			_ = a.rows[i].AddScaledInPlace(a.rows[pr], -ratio)
			a.rows[i].Raw()[pc] = 0
		}
		pr++
		pc++
	}

	return a, swaps
}

// ReducedRowEchelon returns the reduced row echelon form (RREF) of m.
//
// Implementation:
//   - Stage 1: clone m; lead = 0.
//   - Stage 2: for each row: find a pivot in column lead at or below the row,
//     moving lead right while the column is zero below; stop when no column
//     remains.
//   - Stage 3: swap the pivot row up, divide it by the pivot (pivot becomes
//     exactly 1) and eliminate column lead from every other row.
//
// Behavior highlights:
//   - Default pivot: the first non-zero entry (classic Gauss-Jordan).
//     WithPartialPivoting selects the largest |value| instead.
//   - Terminates early once every column has been consumed.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c) for the clone.
func ReducedRowEchelon[K scalar.Scalar](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	return reducedRowEchelon(m.Clone(), gatherOptions(opts...)), nil
}

// reducedRowEchelon reduces a in place and returns it.
func reducedRowEchelon[K scalar.Scalar](a *Matrix[K], o Options) *Matrix[K] {
	r, c := len(a.rows), a.cols
	var (
		row, lead, p, k int
		found           bool
		pivot, f        K
	)
	for row = 0; row < r && lead < c; row++ {
		// Stage 2: locate the next pivot column that is non-zero at or below row.
		for {
			if p, found = findPivot(a, row, lead, o); found {
				break
			}
			lead++
			if lead == c {
				return a
			}
		}

		// Stage 3: swap, normalise, eliminate.
		a.rows[row], a.rows[p] = a.rows[p], a.rows[row]
		pivot = a.rows[row].Raw()[lead]
		_ = a.rows[row].ScaleInPlace(1 / pivot)
		a.rows[row].Raw()[lead] = scalar.One[K]()
		for k = 0; k < r; k++ {
			if k == row {
				continue
			}
			if f = a.rows[k].Raw()[lead]; f == 0 {
				continue
			}
			_ = a.rows[k].AddScaledInPlace(a.rows[row], -f)
			a.rows[k].Raw()[lead] = 0
		}
		lead++
	}

	return a
}

// findPivot returns the pivot row for column col among rows [from, r).
// The pivot is the first non-zero entry, or the largest |value| under
// partial pivoting; found is false when the column is zero (per eps) there.
func findPivot[K scalar.Scalar](a *Matrix[K], from, col int, o Options) (int, bool) {
	best := -1
	var bestAbs, cur K
	for i := from; i < len(a.rows); i++ {
		cur = scalar.Abs(a.rows[i].Raw()[col])
		if scalar.IsZero(cur, o.eps) {
			continue
		}
		if !o.partialPivot {
			return i, true
		}
		if best < 0 || cur > bestAbs {
			best, bestAbs = i, cur
		}
	}

	return best, best >= 0
}

// Rank returns the number of rows of the RREF of m holding at least one
// non-zero (per eps) entry. 0 ≤ Rank ≤ min(rows, cols).
// Errors: ErrNilMatrix.
// Complexity: O(r²·c).
func Rank[K scalar.Scalar](m *Matrix[K], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)
	red := reducedRowEchelon(m.Clone(), o)

	rank := 0
	for _, r := range red.rows {
		for _, x := range r.Raw() {
			if !scalar.IsZero(x, o.eps) {
				rank++
				break
			}
		}
	}

	return rank, nil
}

// Augment returns the horizontal concatenation [a | b].
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
// Complexity: O(r*(ca+cb)).
func Augment[K scalar.Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	out := a.Clone()
	for i, r := range out.rows {
		r.Append(b.rows[i].Raw()...)
	}
	out.cols += b.cols

	return out, nil
}

// Columns returns the sub-matrix of columns [lo, hi) of m.
// Errors: ErrNilMatrix, ErrOutOfRange (unless 0 ≤ lo < hi ≤ Cols).
// Complexity: O(r*(hi-lo)).
func Columns[K scalar.Scalar](m *Matrix[K], lo, hi int) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	if lo < 0 || hi > m.cols || lo >= hi {
		return nil, matrixErrorf(opColumns, fmt.Errorf("[%d,%d) of %d columns: %w", lo, hi, m.cols, ErrOutOfRange))
	}
	rows := make([]*vector.Vector[K], len(m.rows))
	for i, r := range m.rows {
		rows[i] = vector.New(r.Raw()[lo:hi]...)
	}

	return &Matrix[K]{rows: rows, cols: hi - lo}, nil
}

// SPDX-License-Identifier: MIT
// Package matrix defines Matrix[K], a dense row-major matrix of vector rows.
//
// What & Why:
//
//	A Matrix[K] is an ordered list of *vector.Vector[K] rows that all share one
//	length. Rectangularity is established once, at construction (New, FromRows,
//	Collect, decoding), so no kernel ever needs to re-check for jagged rows.
//	Rows are owned exclusively by the matrix: constructors copy, accessors
//	return copies, Clone is deep.
//
// Complexity:
//
//	Rows(), Cols(), Shape(), At() and Set() run in O(1) time.
//	Row() copies in O(cols), Col() in O(rows).
//	Clone(), Equal() and String() are O(rows*cols).
package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a rectangular r×c matrix with r, c ≥ 1.
type Matrix[K scalar.Scalar] struct {
	rows []*vector.Vector[K] // len(rows) ≥ 1; every row has length cols
	cols int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New builds a matrix from row-major data, copying every row.
// Errors: ErrInvalidDimensions (no rows, or zero-length rows), ErrJaggedRows.
// Complexity: O(r*c).
func New[K scalar.Scalar](data [][]K) (*Matrix[K], error) {
	rows := make([]*vector.Vector[K], len(data))
	for i, r := range data {
		rows[i] = vector.New(r...)
	}
	m, err := fromOwnedRows(rows)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// FromRows builds a matrix whose rows are copies of the given vectors.
// Errors: ErrNilVector (nil row), ErrInvalidDimensions, ErrJaggedRows.
// Complexity: O(r*c).
func FromRows[K scalar.Scalar](rows ...*vector.Vector[K]) (*Matrix[K], error) {
	owned := make([]*vector.Vector[K], len(rows))
	for i, r := range rows {
		if r == nil {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d: %w", i, vector.ErrNilVector))
		}
		owned[i] = r.Clone()
	}
	m, err := fromOwnedRows(owned)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// Collect builds a matrix from every row produced by seq, in order.
// Same validation as FromRows.
func Collect[K scalar.Scalar](seq iter.Seq[*vector.Vector[K]]) (*Matrix[K], error) {
	var rows []*vector.Vector[K]
	for r := range seq {
		rows = append(rows, r)
	}

	return FromRows(rows...)
}

// fromOwnedRows validates rows the caller already owns and wraps them.
func fromOwnedRows[K scalar.Scalar](rows []*vector.Vector[K]) (*Matrix[K], error) {
	if len(rows) == 0 || rows[0].Len() == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := rows[0].Len()
	for i, r := range rows {
		if r.Len() != cols {
			return nil, fmt.Errorf("row %d has %d elements, want %d: %w", i, r.Len(), cols, ErrJaggedRows)
		}
	}

	return &Matrix[K]{rows: rows, cols: cols}, nil
}

// Zeros returns an r×c matrix of zeros.
// Errors: ErrInvalidDimensions if r ≤ 0 or c ≤ 0.
// Complexity: O(r*c).
func Zeros[K scalar.Scalar](r, c int) (*Matrix[K], error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opZeros, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}
	rows := make([]*vector.Vector[K], r)
	for i := range rows {
		rows[i] = vector.Zeros[K](c)
	}

	return &Matrix[K]{rows: rows, cols: c}, nil
}

// Identity returns Iₙ (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions if n ≤ 0.
// Complexity: O(n²).
func Identity[K scalar.Scalar](n int) (*Matrix[K], error) {
	m, err := Zeros[K](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.rows[i].Raw()[i] = scalar.One[K]()
	}

	return m, nil
}

// Rows returns the number of rows. A nil matrix has 0 rows.
func (m *Matrix[K]) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Cols returns the number of columns. A nil matrix has 0 columns.
func (m *Matrix[K]) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Shape returns (rows, cols).
func (m *Matrix[K]) Shape() (int, int) { return m.Rows(), m.Cols() }

// IsSquare reports rows == cols for a non-nil matrix.
func (m *Matrix[K]) IsSquare() bool { return m != nil && len(m.rows) == m.cols }

// At returns the element at (i, j).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K]) At(i, j int) (K, error) {
	if err := m.checkIndex(i, j); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.rows[i].Raw()[j], nil
}

// Set assigns x at (i, j).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K]) Set(i, j int, x K) error {
	if err := m.checkIndex(i, j); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.rows[i].Raw()[j] = x

	return nil
}

// checkIndex validates (i, j) against the shape.
func (m *Matrix[K]) checkIndex(i, j int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, len(m.rows), m.cols, ErrOutOfRange)
	}

	return nil
}

// Row returns a copy of row i.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix[K]) Row(i int) (*vector.Vector[K], error) {
	if err := m.checkIndex(i, 0); err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	return m.rows[i].Clone(), nil
}

// Col returns a copy of column j.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix[K]) Col(j int) (*vector.Vector[K], error) {
	if err := m.checkIndex(0, j); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	out := make([]K, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Raw()[j]
	}

	return vector.New(out...), nil
}

// All yields (row index, row copy) pairs in order.
func (m *Matrix[K]) All() iter.Seq2[int, *vector.Vector[K]] {
	return func(yield func(int, *vector.Vector[K]) bool) {
		if m == nil {
			return
		}
		for i, r := range m.rows {
			if !yield(i, r.Clone()) {
				return
			}
		}
	}
}

// Data returns a row-major copy of the elements.
// Complexity: O(r*c).
func (m *Matrix[K]) Data() [][]K {
	if m == nil {
		return nil
	}
	out := make([][]K, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Elements()
	}

	return out
}

// Clone returns a deep copy. Cloning nil yields nil.
// Complexity: O(r*c).
func (m *Matrix[K]) Clone() *Matrix[K] {
	if m == nil {
		return nil
	}
	rows := make([]*vector.Vector[K], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[K]{rows: rows, cols: m.cols}
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1) (row headers are swapped, not elements).
func (m *Matrix[K]) SwapRows(i, j int) error {
	if err := m.checkIndex(i, 0); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := m.checkIndex(j, 0); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// Equal reports exact structural equality: same shape, same elements.
// No tolerance; see AllClose.
func (m *Matrix[K]) Equal(o *Matrix[K]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.rows) != len(o.rows) || m.cols != o.cols {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Complexity: O(r*c).
func (m *Matrix[K]) String() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j, x := range r.Raw() {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

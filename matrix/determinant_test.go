// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// fourByFour is a non-trivial 4×4 fixture with det = 1032.
var fourByFour = [][]float64{
	{8, 5, -2, 4},
	{4, 2.5, 20, 4},
	{8, 5, 1, 4},
	{28, -4, 17, 1},
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3.5}}, -3.5},
		{"2x2 singular", [][]float64{{1, -1}, {-1, 1}}, 0},
		{"2x2", [][]float64{{3, 8}, {4, 6}}, -14},
		{"3x3 diagonal", [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, 8},
		{"3x3", [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}}, -174},
		{"4x4 identity", [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 1},
		{"4x4", fourByFour, 1032},
		{"4x4 singular", [][]float64{{1, 2, 3, 4}, {2, 4, 6, 8}, {0, 1, 0, 1}, {1, 0, 1, 0}}, 0},
		{"4x4 zero first column", [][]float64{{0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}, {0, 1, 1, 1}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(mustMatrix(t, tc.m))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

// TestDeterminantRowSwapNegates checks that exchanging two rows flips the
// sign, on every closed-form size and on the elimination path.
func TestDeterminantRowSwapNegates(t *testing.T) {
	fixtures := [][][]float64{
		{{3, 8}, {4, 6}},
		{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}},
		fourByFour,
	}
	for _, data := range fixtures {
		a := mustMatrix(t, data)
		base, err := matrix.Determinant(a)
		require.NoError(t, err)

		n := a.Rows()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b := a.Clone()
				require.NoError(t, b.SwapRows(i, j))
				got, err := matrix.Determinant(b)
				require.NoError(t, err)
				require.InDelta(t, -base, got, 1e-9, "n=%d swap(%d,%d)", n, i, j)
			}
		}
	}
}

// TestDeterminantPermutationParity checks the sign bookkeeping on permutation
// matrices, whose echelon form needs several swaps.
func TestDeterminantPermutationParity(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
		want float64
	}{
		{"two transpositions", [][]float64{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}}, 1},
		{"three-cycle", [][]float64{{0, 1, 0, 0}, {0, 0, 1, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}}, 1},
		{"single transposition", [][]float64{{0, 0, 0, 1}, {0, 1, 0, 0}, {0, 0, 1, 0}, {1, 0, 0, 0}}, -1},
		{"four-cycle", [][]float64{{0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}, {1, 0, 0, 0}}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(mustMatrix(t, tc.m))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminantErrors(t *testing.T) {
	_, err := matrix.Determinant(mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(mustIdentity(t, 5))
	require.ErrorIs(t, err, matrix.ErrUnsupportedShape)

	_, err = matrix.Determinant[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// a zero-value Matrix has no rows and is not a 0×0 determinant of 1
	var empty matrix.Matrix[float64]
	_, err = matrix.Determinant(&empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// a lowered limit also rejects the closed forms
	_, err = matrix.Determinant(mustIdentity(t, 3), matrix.WithMaxDeterminantDim(2))
	require.ErrorIs(t, err, matrix.ErrUnsupportedShape)
}

func TestDeterminantRaisedLimit(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{2, 0, 0, 0, 1},
		{0, 3, 0, 0, 0},
		{0, 0, 4, 0, 0},
		{0, 0, 0, 5, 0},
		{1, 0, 0, 0, 2},
	})
	got, err := matrix.Det(m, matrix.WithMaxDeterminantDim(5))
	require.NoError(t, err)
	require.InDelta(t, 180.0, got, 1e-9)
}

func TestDeterminantFloat32(t *testing.T) {
	m, err := matrix.New([][]float32{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})
	require.NoError(t, err)
	got, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.InDelta(t, -174.0, float64(got), 1e-3)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// inverseTol is the tolerance of the A·A⁻¹ ≈ I property.
const inverseTol = 1e-4

func TestInverseReference(t *testing.T) {
	a := mustMatrix(t, [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	want := mustMatrix(t, [][]float64{
		{0.649425287, 0.097701149, -0.655172414},
		{-0.781609195, -0.126436782, 0.965517241},
		{0.143678161, 0.074712644, -0.206896552},
	})
	requireClose(t, want, inv, 1e-8)
	require.Equal(t, [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}}, a.Data(), "input must not change")
}

func TestInverseSimple(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
		want [][]float64
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"diagonal", [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, [][]float64{{0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5}}},
		{"1x1", [][]float64{{4}}, [][]float64{{0.25}}},
		{"needs a swap", [][]float64{{0, 1}, {1, 0}}, [][]float64{{0, 1}, {1, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.InverseOf(mustMatrix(t, tc.m))
			require.NoError(t, err)
			requireClose(t, mustMatrix(t, tc.want), got, closeTol)
		})
	}
}

// TestInverseProductIsIdentity checks A·A⁻¹ ≈ I within inverseTol for the
// closed-form sizes, the elimination size and one size above the limit.
func TestInverseProductIsIdentity(t *testing.T) {
	fixtures := []*matrix.Matrix[float64]{
		mustMatrix(t, [][]float64{{3, 8}, {4, 6}}),
		mustMatrix(t, [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}}),
		mustMatrix(t, fourByFour),
		randomMatrix(t, 6, 6, 2024),
	}
	for _, a := range fixtures {
		for _, opts := range [][]matrix.Option{nil, {matrix.WithPartialPivoting()}} {
			inv, err := matrix.Inverse(a, opts...)
			require.NoError(t, err)
			prod, err := matrix.MulMat(a, inv)
			require.NoError(t, err)
			requireClose(t, mustIdentity(t, a.Rows()), prod, inverseTol)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
		opts []matrix.Option
	}{
		{"2x2 by determinant", [][]float64{{1, -1}, {-1, 1}}, nil},
		{"3x3 by determinant", [][]float64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}, nil},
		{"4x4 zero row", [][]float64{{1, 2, 3, 4}, {0, 0, 0, 0}, {0, 1, 0, 1}, {1, 0, 1, 0}}, nil},
		{
			"5x5 by reduced pivots",
			[][]float64{{1, 2, 3, 4, 5}, {2, 4, 6, 8, 10}, {0, 1, 0, 0, 0}, {0, 0, 1, 0, 0}, {0, 0, 0, 1, 1}},
			nil,
		},
		{
			"pivot check alone",
			[][]float64{{1, 2}, {2, 4}},
			[]matrix.Option{matrix.WithMaxDeterminantDim(1)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Inverse(mustMatrix(t, tc.m), tc.opts...)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestInverseEpsilon shows a near-singular matrix is invertible under exact
// zero testing and singular under a tolerance.
func TestInverseEpsilon(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 1e-12}, {1, 0}})

	_, err := matrix.Inverse(a)
	require.NoError(t, err)

	_, err = matrix.Inverse(a, matrix.WithEpsilon(1e-9))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverseErrors(t *testing.T) {
	_, err := matrix.Inverse(mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverseErrorMessage(t *testing.T) {
	_, err := matrix.Inverse(mustMatrix(t, [][]float64{{1, 2}, {2, 4}}))
	require.EqualError(t, err, "matrix.Inverse: det = 0: matrix: singular matrix")
}

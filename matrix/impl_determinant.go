// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Determinant returns det(m) for a square matrix of dimension up to the
// configured limit (DefaultMaxDeterminantDim = 4).
//
// Implementation:
//   - n = 1: the single entry.
//   - n = 2: ad − bc.
//   - n = 3: cofactor expansion along the first row via 2×2 minors.
//   - n ≥ 4: RowEchelon, then the product of the diagonal, negated once per
//     row swap.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedShape (n above the limit).
//
// Complexity:
//   - O(1) for n ≤ 3, O(n³) by elimination.
func Determinant[K scalar.Scalar](m *Matrix[K], opts ...Option) (K, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	n := len(m.rows)
	if n > o.maxDetDim {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("%dx%d exceeds %d: %w", n, n, o.maxDetDim, ErrUnsupportedShape))
	}

	return determinant(m, o), nil
}

// determinant assumes m is square and within the limit.
func determinant[K scalar.Scalar](m *Matrix[K], o Options) K {
	switch len(m.rows) {
	case 1:
		return m.rows[0].Raw()[0]
	case 2:
		r0, r1 := m.rows[0].Raw(), m.rows[1].Raw()

		return det2(r0[0], r0[1], r1[0], r1[1])
	case 3:
		a, b, c := m.rows[0].Raw(), m.rows[1].Raw(), m.rows[2].Raw()

		return a[0]*det2(b[1], b[2], c[1], c[2]) -
			a[1]*det2(b[0], b[2], c[0], c[2]) +
			a[2]*det2(b[0], b[1], c[0], c[1])
	default:
		return eliminationDeterminant(m, o)
	}
}

// det2 is the 2×2 determinant |a b; c d|.
func det2[K scalar.Scalar](a, b, c, d K) K { return a*d - b*c }

// eliminationDeterminant reduces a clone to echelon form and multiplies its
// diagonal. Each row swap flips the sign.
func eliminationDeterminant[K scalar.Scalar](m *Matrix[K], o Options) K {
	ech, swaps := rowEchelon(m.Clone(), o)
	det := K(1)
	for i, r := range ech.rows {
		det *= r.Raw()[i]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det
}

// SPDX-License-Identifier: MIT

// Package vector - linear combinations and interpolation.

package vector

import "github.com/katalvlaran/linalg/scalar"

// LinearCombination returns Σ coefs[k] * vs[k].
//
// Implementation:
//   - Stage 1: validate len(vs) == len(coefs) > 0 and that every vector has the length of vs[0].
//   - Stage 2: accumulate in float64, fused (math.FMA) when FMAEnabled(), then narrow to K.
//
// Errors:
//   - ErrEmptyVector (no vectors), ErrDimensionMismatch (count or length mismatch),
//     ErrNilVector (nil entry).
//
// Complexity:
//   - Time O(k*n), Space O(n).
func LinearCombination[K scalar.Scalar](vs []*Vector[K], coefs []K) (*Vector[K], error) {
	if len(vs) == 0 {
		return nil, vectorErrorf(opLinComb, ErrEmptyVector)
	}
	if len(vs) != len(coefs) {
		return nil, vectorErrorf(opLinComb, ErrDimensionMismatch)
	}
	for _, v := range vs {
		if err := ValidateSameLen(vs[0], v); err != nil {
			return nil, vectorErrorf(opLinComb, err)
		}
	}

	n := len(vs[0].data)
	acc := make([]float64, n)
	fused := fmaEnabled
	var c float64
	for k, v := range vs {
		c = float64(coefs[k])
		for i, x := range v.data {
			acc[i] = mulAdd(float64(x), c, acc[i], fused)
		}
	}

	out := make([]K, n)
	for i, x := range acc {
		out[i] = K(x)
	}

	return &Vector[K]{data: out}, nil
}

// Lerp returns the linear interpolation u + (v - u)*t.
// t = 0 yields u, t = 1 yields v; t outside [0,1] extrapolates.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Lerp[K scalar.Scalar](u, v *Vector[K], t K) (*Vector[K], error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}
	out := make([]K, len(u.data))
	for i := range out {
		out[i] = u.data[i] + (v.data[i]-u.data[i])*t
	}

	return &Vector[K]{data: out}, nil
}

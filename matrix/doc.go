// SPDX-License-Identifier: MIT
// Package matrix offers a generic dense matrix and the elimination engine.
//
// The matrix package provides:
//
//   - Matrix[K]: rectangular rows of vector.Vector[K], validated once at
//     construction (New, FromRows, Collect, Zeros, Identity, decoding).
//   - The elementwise layer: Add, Sub, Scale, MulVec, MulMat, Transpose,
//     Trace, Lerp, plus the opt-in *InPlace methods.
//   - The elimination engine: RowEchelon (partial pivoting),
//     ReducedRowEchelon (Gauss-Jordan), Determinant (closed forms up to 3×3,
//     elimination with row-swap sign tracking for 4×4), Rank and Inverse.
//   - Projection, a 4×4 perspective projection builder.
//
// Every engine call works on a private clone; inputs are never mutated, so
// concurrent read-only use of one matrix needs no locking. Zero tests are exact
// unless WithEpsilon is passed.
//
//	a, _ := matrix.New([][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})
//	d, _ := matrix.Determinant(a) // -174
//	inv, _ := matrix.Inverse(a)
//
// Errors are sentinels (ErrNonSquare, ErrSingular, ErrUnsupportedShape, ...)
// wrapped with the operation name; ErrDimensionMismatch and ErrEmptyVector are
// shared with package vector.
package matrix

// SPDX-License-Identifier: MIT
// Package linalg is a small, generic linear-algebra toolkit for float32 and
// float64: dense vectors, dense matrices and an exact-by-default elimination
// engine.
//
// What is inside:
//
//   - scalar/     the Scalar constraint (~float32 | ~float64) and numeric helpers
//   - vector/     Vector[K]: elementwise ops, dot, norms, cross product, Lerp,
//     linear combinations, YAML/JSON codec
//   - matrix/     Matrix[K]: elementwise layer, products, transpose, trace,
//     RowEchelon, ReducedRowEchelon, Determinant, Rank, Inverse, Projection
//   - converters/ copies to and from gonum's *mat.Dense and *mat.VecDense
//
// Values are immutable under the pure operations; every function returning a
// new value leaves its inputs untouched. The *InPlace methods mutate their
// receiver only.
//
// Zero tests are exact unless matrix.WithEpsilon is passed, so integer-valued
// inputs reduce exactly:
//
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Determinant(a) // -2
//	r, _ := matrix.Rank(a)        // 2
//
// Errors are package sentinels wrapped with the failing operation
// ("matrix.Inverse: det = 0: matrix: singular matrix"); test them with errors.Is.
//
//	go get github.com/katalvlaran/linalg
package linalg

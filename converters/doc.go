// SPDX-License-Identifier: MIT
// Package converters provides two-way adapters between linalg types and
// gonum's dense types:
//   - matrix.Matrix[K] <-> *mat.Dense (any mat.Matrix on input)
//   - vector.Vector[K] <-> *mat.VecDense (any mat.Vector on input)
//
// Use converters to hand data to gonum routines (decompositions, solvers,
// BLAS-backed products) and to bring results back. Conversions always copy;
// neither side aliases the other's storage.
package converters

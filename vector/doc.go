// SPDX-License-Identifier: MIT

// Package vector implements a fixed-length, generic numeric vector.
//
// A Vector[K] owns its element buffer exclusively: constructors copy their
// input and Clone returns an independent buffer. Arithmetic is pure by default
// (Add, Sub, Scale return new vectors); the *InPlace methods form an explicit
// opt-in layer for callers that want to mutate a receiver, such as the row
// operations of the matrix elimination engine.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrEmptyVector, ...)
// wrapped with the operation name; match them with errors.Is.
//
//	u := vector.New(1.0, 2, 3)
//	v := vector.New(4.0, 5, 6)
//	d, err := vector.Dot(u, v) // 32, nil
//
// Complexity: every operation is O(n) in the vector length.
package vector

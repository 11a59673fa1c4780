// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these (wrapped with an operation tag) and tests
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linalg/vector"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message owned by this package is prefixed with "matrix: ...".
// The two shared conditions (dimension mismatch, empty vector) are the very
// same values as in package vector, so a caller matches one sentinel no
// matter which layer detected the problem.
//
// ERROR PRIORITY (enforced by validators, covered in tests):
// nil -> construction shape -> dimension mismatch -> squareness -> size limit
// -> numeric degeneracy (singular).

var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, MulMat with a.Cols != b.Rows, or MulVec with len(v) != Cols.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrEmptyVector is re-exported for reductions over empty rows or columns.
	ErrEmptyVector = vector.ErrEmptyVector

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (no rows, or rows without columns).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrJaggedRows indicates construction input whose rows have unequal lengths.
	// It is only ever returned by constructors and decoders.
	ErrJaggedRows = errors.New("matrix: rows have unequal lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the matrix has no inverse (zero determinant
	// or a zero pivot left after Gauss-Jordan reduction).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnsupportedShape signals a square matrix larger than the configured
	// determinant limit (see WithMaxDeterminantDim).
	ErrUnsupportedShape = errors.New("matrix: unsupported shape")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

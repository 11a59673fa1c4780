// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/squareness checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and holds at least
// one row. Only a zero-value Matrix can be empty; constructors never build one.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(1).
func ValidateNotNil[K scalar.Scalar](m *Matrix[K]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if len(m.rows) == 0 {
		return validatorErrorf("ValidateNotNil", fmt.Errorf("0x%d: %w", m.cols, ErrInvalidDimensions))
	}

	return nil
}

// validatePair runs ValidateNotNil on both operands of a binary kernel.
func validatePair[K scalar.Scalar](tag string, a, b *Matrix[K]) error {
	if a == nil || b == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[K scalar.Scalar](a, b *Matrix[K]) error {
	if err := validatePair("ValidateSameShape", a, b); err != nil {
		return err
	}
	if len(a.rows) != len(b.rows) {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[K scalar.Scalar](m *Matrix[K]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if len(m.rows) != m.cols {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", len(m.rows), m.cols, ErrNonSquare))
	}

	return nil
}

// ValidateVecLen checks that v is non-nil and has exactly m.Cols() elements.
//
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[K scalar.Scalar](m *Matrix[K], v *vector.Vector[K]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if v == nil {
		return validatorErrorf("ValidateVecLen", vector.ErrNilVector)
	}
	if v.Len() != m.cols {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, cols %d: %w", v.Len(), m.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[K scalar.Scalar](a, b *Matrix[K]) error {
	if err := validatePair("ValidateMulCompatible", a, b); err != nil {
		return err
	}
	if a.cols != len(b.rows) {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", len(a.rows), a.cols, len(b.rows), b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameRows ensures a and b are non-nil and have the same number of rows,
// the precondition for horizontal concatenation.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameRows[K scalar.Scalar](a, b *Matrix[K]) error {
	if err := validatePair("ValidateSameRows", a, b); err != nil {
		return err
	}
	if len(a.rows) != len(b.rows) {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

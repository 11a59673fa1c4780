// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/scalar"

// ValidateNotNil returns ErrNilVector when v is nil.
// Complexity: O(1).
func ValidateNotNil[K scalar.Scalar](v *Vector[K]) error {
	if v == nil {
		return ErrNilVector
	}

	return nil
}

// ValidateSameLen is the composite NotNil(a) → NotNil(b) → equal length check
// used by every binary kernel.
// Complexity: O(1).
func ValidateSameLen[K scalar.Scalar](a, b *Vector[K]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}

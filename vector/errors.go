// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "vector: ".
var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmptyVector indicates a reduction that is undefined on a zero-length vector.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrNilVector indicates a nil *Vector argument or receiver.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrZeroVector indicates a direction-dependent metric (angle) on a zero-norm vector.
	ErrZeroVector = errors.New("vector: zero vector has no direction")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// Operation tags used when wrapping sentinels.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opAddScaled = "AddScaled"
	opDot       = "Dot"
	opNormInf   = "NormInf"
	opAngleCos  = "AngleCos"
	opCross     = "CrossProduct"
	opLinComb   = "LinearCombination"
	opLerp      = "Lerp"
	opAllClose  = "AllClose"
	opAt        = "At"
	opSet       = "Set"
	opUnmarshal = "Unmarshal"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("vector.%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT

// Package vector - storage, constructors & safe accessors.
//
// Purpose:
//   - Keep one contiguous []K per vector; Len() is always len(data).
//   - Public accessors return errors instead of panicking on bad indices.
//
// Complexity quicksheet:
//   - New/Zeros/Collect/Clone: O(n); Len/At/Set: O(1); Equal/String: O(n).

package vector

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-length sequence of K values.
// The zero value is an empty vector ready to use.
type Vector[K scalar.Scalar] struct {
	data []K // owned by the vector; exposed only through Raw
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a vector holding a copy of elems.
// New() with no arguments yields an empty vector.
// Complexity: O(n).
func New[K scalar.Scalar](elems ...K) *Vector[K] {
	return &Vector[K]{data: slices.Clone(elems)}
}

// Zeros returns a vector of n zeros. Negative n is treated as 0.
// Complexity: O(n).
func Zeros[K scalar.Scalar](n int) *Vector[K] {
	if n < 0 {
		n = 0
	}

	return &Vector[K]{data: make([]K, n)}
}

// Collect builds a vector from every value produced by seq, in order.
// Complexity: O(n).
func Collect[K scalar.Scalar](seq iter.Seq[K]) *Vector[K] {
	return &Vector[K]{data: slices.Collect(seq)}
}

// Len returns the number of elements. A nil vector has length 0.
// Complexity: O(1).
func (v *Vector[K]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns the i-th element or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[K]) At(i int) (K, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, vectorErrorf(opAt, err)
	}
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set assigns x to the i-th element or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[K]) Set(i int, x K) error {
	if err := ValidateNotNil(v); err != nil {
		return vectorErrorf(opSet, err)
	}
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(opSet, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	v.data[i] = x

	return nil
}

// Elements returns a copy of the underlying elements.
// Complexity: O(n).
func (v *Vector[K]) Elements() []K {
	if v == nil {
		return nil
	}

	return slices.Clone(v.data)
}

// Raw returns the backing slice without copying, in the manner of gonum's
// RawVector. Writes through it are visible to v. Kernels in sibling packages
// (the matrix engine) use it for O(1) element access; other callers should
// prefer At/Set/Elements.
func (v *Vector[K]) Raw() []K {
	if v == nil {
		return nil
	}

	return v.data
}

// All yields (index, value) pairs in order.
func (v *Vector[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		if v == nil {
			return
		}
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Cloning nil yields nil.
// Complexity: O(n).
func (v *Vector[K]) Clone() *Vector[K] {
	if v == nil {
		return nil
	}

	return &Vector[K]{data: slices.Clone(v.data)}
}

// Append grows the vector in place with xs. This is the only operation
// that changes a vector's length; augmentation is built on it.
// Complexity: amortised O(len(xs)).
func (v *Vector[K]) Append(xs ...K) {
	v.data = append(v.data, xs...)
}

// Equal reports element-wise equality using K's native ==.
// No tolerance is applied; see AllClose for approximate comparison.
// Complexity: O(n).
func (v *Vector[K]) Equal(o *Vector[K]) bool {
	if v == nil || o == nil {
		return v == o
	}

	return slices.Equal(v.data, o.data)
}

// AllClose reports whether |a[i]-b[i]| ≤ atol + rtol*|b[i]| for every i.
// Lengths must match (ErrDimensionMismatch). Negative tolerances are abs-ed.
// Complexity: O(n).
func AllClose[K scalar.Scalar](a, b *Vector[K], rtol, atol float64) (bool, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return false, vectorErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	var diff, absb float64
	for i := range a.data {
		diff = float64(scalar.Abs(a.data[i] - b.data[i]))
		absb = float64(scalar.Abs(b.data[i]))
		if diff > atol+rtol*absb {
			return false, nil // early exit on the first violation
		}
	}

	return true, nil
}

// String renders the vector as "[x0, x1, ...]" using %g.
// Complexity: O(n).
func (v *Vector[K]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	if v != nil {
		for i, x := range v.data {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", x)
		}
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

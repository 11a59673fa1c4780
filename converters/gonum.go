// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Operation tags.
const (
	opToDense    = "ToDense"
	opFromDense  = "FromDense"
	opToVecDense = "ToVecDense"
	opFromVector = "FromVector"
)

func convertErrorf(tag string, err error) error {
	return fmt.Errorf("converters.%s: %w", tag, err)
}

// ToDense copies m into a new *mat.Dense (float64, row-major).
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func ToDense[K scalar.Scalar](m *matrix.Matrix[K]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convertErrorf(opToDense, err)
	}
	r, c := m.Shape()
	flat := make([]float64, 0, r*c)
	for _, row := range m.Data() {
		for _, x := range row {
			flat = append(flat, float64(x))
		}
	}

	return mat.NewDense(r, c, flat), nil
}

// FromDense copies any gonum matrix into a Matrix[K], narrowing to K.
// A nil interface yields matrix.ErrNilMatrix; an empty (zero-value) gonum
// matrix yields matrix.ErrInvalidDimensions.
// Complexity: O(r*c).
func FromDense[K scalar.Scalar](a mat.Matrix) (*matrix.Matrix[K], error) {
	if a == nil {
		return nil, convertErrorf(opFromDense, matrix.ErrNilMatrix)
	}
	if e, ok := a.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return nil, convertErrorf(opFromDense, matrix.ErrInvalidDimensions)
	}
	r, c := a.Dims()
	data := make([][]K, r)
	for i := range data {
		data[i] = make([]K, c)
		for j := range data[i] {
			data[i][j] = K(a.At(i, j))
		}
	}
	m, err := matrix.New(data)
	if err != nil {
		return nil, convertErrorf(opFromDense, err)
	}

	return m, nil
}

// ToVecDense copies v into a new *mat.VecDense.
// Errors: vector.ErrNilVector, vector.ErrEmptyVector (gonum has no
// zero-length dense vector).
// Complexity: O(n).
func ToVecDense[K scalar.Scalar](v *vector.Vector[K]) (*mat.VecDense, error) {
	if err := vector.ValidateNotNil(v); err != nil {
		return nil, convertErrorf(opToVecDense, err)
	}
	if v.Len() == 0 {
		return nil, convertErrorf(opToVecDense, vector.ErrEmptyVector)
	}
	xs := make([]float64, v.Len())
	for i, x := range v.All() {
		xs[i] = float64(x)
	}

	return mat.NewVecDense(len(xs), xs), nil
}

// FromVector copies any gonum vector into a Vector[K], narrowing to K.
// A zero-value gonum vector converts to an empty Vector.
// Errors: vector.ErrNilVector.
// Complexity: O(n).
func FromVector[K scalar.Scalar](v mat.Vector) (*vector.Vector[K], error) {
	if v == nil {
		return nil, convertErrorf(opFromVector, vector.ErrNilVector)
	}
	if e, ok := v.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return vector.New[K](), nil
	}
	xs := make([]K, v.Len())
	for i := range xs {
		xs[i] = K(v.AtVec(i))
	}

	return vector.New(xs...), nil
}

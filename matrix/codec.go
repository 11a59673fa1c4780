// SPDX-License-Identifier: MIT

// Package matrix - YAML/JSON encoding as a sequence of row sequences.
//
// Decoding goes through New, so an encoded matrix is subject to exactly the
// construction rules: no empty input, no jagged rows.

package matrix

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for codec conformance.
var (
	_ yaml.Marshaler   = (*Matrix[float64])(nil)
	_ yaml.Unmarshaler = (*Matrix[float64])(nil)
	_ json.Marshaler   = (*Matrix[float64])(nil)
	_ json.Unmarshaler = (*Matrix[float64])(nil)
)

// MarshalYAML encodes m as [[row0...], [row1...], ...].
func (m *Matrix[K]) MarshalYAML() (any, error) {
	if m == nil {
		return nil, nil
	}

	return m.Data(), nil
}

// UnmarshalYAML decodes a sequence of row sequences into m.
// Errors: decoding errors, ErrInvalidDimensions, ErrJaggedRows.
func (m *Matrix[K]) UnmarshalYAML(node *yaml.Node) error {
	var data [][]K
	if err := node.Decode(&data); err != nil {
		return matrixErrorf(opUnmarshal, err)
	}

	return m.assign(data)
}

// MarshalJSON encodes m as a JSON array of row arrays.
func (m *Matrix[K]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	return json.Marshal(m.Data())
}

// UnmarshalJSON decodes a JSON array of row arrays into m.
// Errors: decoding errors, ErrInvalidDimensions, ErrJaggedRows.
func (m *Matrix[K]) UnmarshalJSON(b []byte) error {
	var data [][]K
	if err := json.Unmarshal(b, &data); err != nil {
		return matrixErrorf(opUnmarshal, err)
	}

	return m.assign(data)
}

// assign validates data through New and replaces m's contents on success.
func (m *Matrix[K]) assign(data [][]K) error {
	dec, err := New(data)
	if err != nil {
		return matrixErrorf(opUnmarshal, err)
	}
	*m = *dec

	return nil
}

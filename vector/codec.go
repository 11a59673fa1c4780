// SPDX-License-Identifier: MIT

// Package vector - YAML/JSON encoding as a flat sequence of numbers.

package vector

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for codec conformance.
var (
	_ yaml.Marshaler   = (*Vector[float64])(nil)
	_ yaml.Unmarshaler = (*Vector[float64])(nil)
	_ json.Marshaler   = (*Vector[float64])(nil)
	_ json.Unmarshaler = (*Vector[float64])(nil)
)

// MarshalYAML encodes the vector as a sequence, e.g. [1, 2, 3].
func (v *Vector[K]) MarshalYAML() (any, error) {
	if v == nil {
		return nil, nil
	}
	if v.data == nil {
		return []K{}, nil // keep "[]" rather than null for an empty vector
	}

	return v.data, nil
}

// UnmarshalYAML decodes a sequence of numbers into v, replacing its contents.
func (v *Vector[K]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return vectorErrorf(opUnmarshal, fmt.Errorf("line %d: expected a sequence, got %s", node.Line, nodeKind(node)))
	}
	var xs []K
	if err := node.Decode(&xs); err != nil {
		return vectorErrorf(opUnmarshal, err)
	}
	v.data = xs

	return nil
}

// MarshalJSON encodes the vector as a JSON array.
func (v *Vector[K]) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	if v.data == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(v.data)
}

// UnmarshalJSON decodes a JSON array of numbers into v, replacing its contents.
func (v *Vector[K]) UnmarshalJSON(b []byte) error {
	var xs []K
	if err := json.Unmarshal(b, &xs); err != nil {
		return vectorErrorf(opUnmarshal, err)
	}
	if xs == nil {
		xs = []K{} // "null" decodes to an empty vector
	}
	v.data = xs

	return nil
}

// nodeKind names a yaml node kind for error messages.
func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

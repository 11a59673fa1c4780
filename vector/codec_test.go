// SPDX-License-Identifier: MIT
package vector_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/vector"
)

func TestYAMLEncoding(t *testing.T) {
	out, err := yaml.Marshal(vector.New(1.0, -2.5, 3))
	require.NoError(t, err)
	require.Equal(t, "- 1\n- -2.5\n- 3\n", string(out))

	empty, err := yaml.Marshal(vector.New[float64]())
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(empty))
}

func TestYAMLDecoding(t *testing.T) {
	var doc struct {
		Point *vector.Vector[float64] `yaml:"point"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("point: [4, 5.5, -6]\n"), &doc))
	require.True(t, vector.New(4.0, 5.5, -6).Equal(doc.Point))

	err := yaml.Unmarshal([]byte("point: {x: 1}\n"), &doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a sequence, got mapping")

	err = yaml.Unmarshal([]byte("point: [1, two]\n"), &doc)
	require.Error(t, err)
}

func TestJSONEncoding(t *testing.T) {
	b, err := json.Marshal(vector.New[float32](0.5, 2))
	require.NoError(t, err)
	require.JSONEq(t, "[0.5, 2]", string(b))

	b, err = json.Marshal(vector.New[float64]())
	require.NoError(t, err)
	require.Equal(t, "[]", string(b))

	var v vector.Vector[float64]
	require.NoError(t, json.Unmarshal([]byte("[7, 8]"), &v))
	require.Equal(t, []float64{7, 8}, v.Elements())

	require.NoError(t, json.Unmarshal([]byte("null"), &v))
	require.Equal(t, 0, v.Len())

	require.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &v))
}

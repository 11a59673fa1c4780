// SPDX-License-Identifier: MIT
package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMulAddPaths checks both accumulation paths agree on exactly representable input.
func TestMulAddPaths(t *testing.T) {
	require.Equal(t, 7.0, mulAdd(2, 3, 1, true))
	require.Equal(t, 7.0, mulAdd(2, 3, 1, false))
	require.Equal(t, fmaEnabled, FMAEnabled())
}

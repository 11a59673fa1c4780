// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed so numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// closeTol is the absolute tolerance used for results that went through division.
const closeTol = 1e-9

// mustMatrix builds a float64 matrix or fails the test (fatal on error).
func mustMatrix(tb testing.TB, data [][]float64) *matrix.Matrix[float64] {
	tb.Helper()
	m, err := matrix.New(data)
	require.NoError(tb, err)

	return m
}

// mustIdentity returns Iₙ or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Matrix[float64] {
	tb.Helper()
	m, err := matrix.Identity[float64](n)
	require.NoError(tb, err)

	return m
}

// vec is a terse float64 vector constructor.
func vec(xs ...float64) *vector.Vector[float64] { return vector.New(xs...) }

// requireClose asserts same shape and element-wise |want-got| ≤ tol.
func requireClose(tb testing.TB, want, got *matrix.Matrix[float64], tol float64) {
	tb.Helper()
	require.NotNil(tb, got)
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(tb, err)
	require.True(tb, ok, "want:\n%v\ngot:\n%v", want, got)
}

// randomMatrix fills an r×c matrix from a seeded source with values in [-10, 10).
func randomMatrix(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, r)
	for i := range data {
		data[i] = make([]float64, c)
		for j := range data[i] {
			data[i][j] = rng.Float64()*20 - 10
		}
	}

	return mustMatrix(tb, data)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice (copied).
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "fixture length must equal r*c")
	buf := make([]float64, len(vals))
	copy(buf, vals)
	m, err := matrix.NewDenseFrom(r, c, buf)
	require.NoError(t, err)

	return m
}

// FillRand fills m with values uniform in [-1, 1) from a seeded source.
func FillRand(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
}

// FillInts fills m with small integers in [-9, 9] so sums and differences
// stay exact in float64.
func FillInts(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = float64(rng.Intn(19) - 9)
	}
}

// Compare asserts m equals want element by element (exact).
func Compare(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "col count at row %d", i)
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want[i][j], v, "mismatch at (%d,%d)", i, j)
		}
	}
}

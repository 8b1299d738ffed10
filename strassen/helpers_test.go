// SPDX-License-Identifier: MIT

package strassen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// filled builds an r×c *Dense from a row-major slice (copied).
func filled(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "fixture length must equal r*c")
	m := mustDense(t, r, c)
	copy(m.RawData(), vals)

	return m
}

// randDense returns an r×c *Dense with entries uniform in [-1, 1).
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := mustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

// rows renders m as [][]float64 for readable assertions.
func rows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

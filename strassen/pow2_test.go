// SPDX-License-Identifier: MIT
package strassen_test

import (
	"testing"

	"github.com/katalvlaran/matmul/strassen"
	"github.com/stretchr/testify/require"
)

// TestNextPowerOfTwo_Table checks hand-picked values, zero and negatives included.
func TestNextPowerOfTwo_Table(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8},
		{8, 8}, {9, 16}, {1023, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, strassen.NextPowerOfTwo(tc.in), "NextPowerOfTwo(%d)", tc.in)
	}
}

// TestNextPowerOfTwo_Properties checks idempotence and d ≤ r < 2d.
func TestNextPowerOfTwo_Properties(t *testing.T) {
	for d := 1; d <= 4096; d++ {
		r := strassen.NextPowerOfTwo(d)
		require.True(t, strassen.IsPowerOfTwo(r), "d=%d r=%d", d, r)
		require.Equal(t, r, strassen.NextPowerOfTwo(r), "idempotent at d=%d", d)
		require.GreaterOrEqual(t, r, d)
		require.Less(t, r, 2*d)
	}
}

// TestIsPowerOfTwo covers the boundary values.
func TestIsPowerOfTwo(t *testing.T) {
	for _, d := range []int{1, 2, 4, 64, 1 << 20} {
		require.True(t, strassen.IsPowerOfTwo(d), "d=%d", d)
	}
	for _, d := range []int{-4, 0, 3, 6, 12, 1<<20 + 1} {
		require.False(t, strassen.IsPowerOfTwo(d), "d=%d", d)
	}
}

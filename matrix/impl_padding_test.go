// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestPad_ZeroFills checks the copied corner and the zero border.
func TestPad_ZeroFills(t *testing.T) {
	a := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	p, err := matrix.Pad(a, 4, 4)
	require.NoError(t, err)
	Compare(t, [][]float64{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{5, 6, 0, 0},
		{0, 0, 0, 0},
	}, p)

	// generic path yields the same layout
	p2, err := matrix.Pad(hide{a}, 4, 4)
	require.NoError(t, err)
	eq, err := matrix.Equal(p, p2)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestPadCrop_RoundTrip checks Crop(Pad(A)) == A bit for bit.
func TestPadCrop_RoundTrip(t *testing.T) {
	a := MustDense(t, 5, 3)
	FillRand(t, a, 99)

	p, err := matrix.Pad(a, 8, 4)
	require.NoError(t, err)
	back, err := matrix.Crop(p, 5, 3)
	require.NoError(t, err)

	eq, err := matrix.Equal(a, back)
	require.NoError(t, err)
	require.True(t, eq)

	// no aliasing between source and padded copy
	require.NoError(t, p.Set(0, 0, 123))
	v, _ := a.At(0, 0)
	require.NotEqual(t, 123.0, v)
}

// TestPadCrop_Errors checks shape guards.
func TestPadCrop_Errors(t *testing.T) {
	a := MustDense(t, 3, 3)

	_, err := matrix.Pad(a, 2, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Crop(a, 4, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Crop(a, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Pad(nil, 4, 4)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

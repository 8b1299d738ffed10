// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the elementary kernels:
// Add, Sub, AddTo, Mul and MulAdd.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub_Concrete checks hand-computed sums and differences.
func TestAddSub_Concrete(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{6, 8}, {10, 12}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{-4, -4}, {-4, -4}}, diff)

	// operands untouched
	Compare(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestAddSub_Properties checks sub(add(A,B),B) == A and add(A, sub(B,B)) == A exactly.
func TestAddSub_Properties(t *testing.T) {
	t.Parallel()
	shapes := [][2]int{{1, 1}, {2, 3}, {4, 4}, {8, 2}}
	for idx, sh := range shapes {
		sh := sh
		t.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(t *testing.T) {
			a := MustDense(t, sh[0], sh[1])
			b := MustDense(t, sh[0], sh[1])
			FillInts(t, a, int64(10+idx))
			FillInts(t, b, int64(20+idx))

			ab, err := matrix.Add(a, b)
			require.NoError(t, err)
			back, err := matrix.Sub(ab, b)
			require.NoError(t, err)
			eq, err := matrix.Equal(back, a)
			require.NoError(t, err)
			require.True(t, eq, "sub(add(A,B),B) must equal A")

			zero, err := matrix.Sub(b, b)
			require.NoError(t, err)
			same, err := matrix.Add(a, zero)
			require.NoError(t, err)
			eq, err = matrix.Equal(same, a)
			require.NoError(t, err)
			require.True(t, eq, "add(A, B-B) must equal A")
		})
	}
}

// TestAddSub_FallbackMatchesFastPath forces the At/Set path with hide{}.
func TestAddSub_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 3, 5)
	b := MustDense(t, 3, 5)
	FillRand(t, a, 1)
	FillRand(t, b, 2)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	eq, err := matrix.Equal(fast, slow)
	require.NoError(t, err)
	require.True(t, eq)

	fast, err = matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err = matrix.Sub(a, hide{b})
	require.NoError(t, err)
	eq, err = matrix.Equal(fast, slow)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestAddSub_Errors checks nil and shape validation.
func TestAddSub_Errors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.Add(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddTo accumulates in place, through both paths.
func TestAddTo(t *testing.T) {
	t.Parallel()
	dst := NewFilledDense(t, 2, 2, []float64{1, 1, 1, 1})
	src := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	require.NoError(t, matrix.AddTo(dst, src))
	Compare(t, [][]float64{{2, 3}, {4, 5}}, dst)

	require.NoError(t, matrix.AddTo(dst, hide{src}))
	Compare(t, [][]float64{{3, 5}, {7, 9}}, dst)

	require.ErrorIs(t, matrix.AddTo(dst, MustDense(t, 1, 2)), matrix.ErrDimensionMismatch)
}

// TestMul_Concrete checks the 2×2 scenario and a rectangular product.
func TestMul_Concrete(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{19, 22}, {43, 50}}, c)

	// (3×2)·(2×3)
	a = NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	b = NewFilledDense(t, 2, 3, []float64{7, 8, 9, 10, 11, 12})
	c, err = matrix.Product(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{27, 30, 33}, {61, 68, 75}, {95, 106, 117}}, c)
}

// TestMul_FallbackMatchesFastPath compares both loop orders on random data.
func TestMul_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 4, 6)
	b := MustDense(t, 6, 3)
	FillRand(t, a, 7)
	FillRand(t, b, 8)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	ok, err := matrix.AllClose(fast, slow, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestMul_Identity checks A·I = A.
func TestMul_Identity(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 3, 3)
	FillRand(t, a, 3)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	c, err := matrix.Mul(a, id)
	require.NoError(t, err)
	eq, err := matrix.Equal(a, c)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestMul_DimensionMismatch checks the inner-dimension guard.
func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulAdd_Accumulates checks dst += A·B keeps prior contents.
func TestMulAdd_Accumulates(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 1, 1, []float64{3})
	b := NewFilledDense(t, 1, 1, []float64{4})
	dst := NewFilledDense(t, 1, 1, []float64{5})

	require.NoError(t, matrix.MulAdd(dst, a, b))
	Compare(t, [][]float64{{17}}, dst) // 5 + 3*4

	require.NoError(t, matrix.MulAdd(dst, hide{a}, b))
	Compare(t, [][]float64{{29}}, dst) // fallback path accumulates too

	err := matrix.MulAdd(MustDense(t, 2, 1), a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	err = matrix.MulAdd(nil, a, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

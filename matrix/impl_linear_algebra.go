// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, in-place accumulation and the naive
// (triple loop) matrix product. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical elementary kernels recursive multipliers are built on.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with the same loop order.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opAddTo  = "AddTo"
	opMul    = "Mul"
	opMulAdd = "MulAdd"
)

// Combination signs for addSub.
const (
	signPlus  = 1.0
	signMinus = -1.0
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation), allocation errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs for the single flat loop.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, signPlus, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, signMinus, opSub) }

// AddTo accumulates src into dst in place: dst[i,j] += src[i,j].
// Implementation:
//   - Stage 1: ValidateBinarySameShape(dst, src).
//   - Stage 2: flat loop when src is *Dense, i→j At loop otherwise.
//
// Behavior highlights:
//   - No allocation. dst's numeric policy is not re-checked on this path.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddTo(dst *Dense, src Matrix) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opAddTo, err)
	}
	if ds, ok := src.(*Dense); ok {
		for idx, v := range ds.data {
			dst.data[idx] += v
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(opAddTo, err)
			}
			dst.data[i*dst.c+j] += v
		}
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B (the naive O(m·n·p)
// baseline). C is zero-initialized before accumulation.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate zeroed C and delegate to the additive kernel.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = mulAdd(res, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulAdd accumulates the product into dst: dst += A × B.
// Existing contents of dst are preserved and added to, never overwritten.
//
// Implementation:
//   - Stage 1: ValidateProductTarget(dst, a, b).
//   - Stage 2: i→k→j accumulation over flat buffers (skipping zero A[i,k]),
//     or the generic i→j→k dot-product loop when an operand is not *Dense.
//
// Behavior highlights:
//   - For 1×1 operands this is exactly dst[0,0] += a[0,0]*b[0,0], the base
//     case of recursive multipliers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*n*p), Space O(1).
//
// AI-Hints:
//   - Zero dst first (Dense.Zero) to obtain a plain product in reused storage.
func MulAdd(dst *Dense, a, b Matrix) error {
	if err := ValidateProductTarget(dst, a, b); err != nil {
		return matrixErrorf(opMulAdd, err)
	}
	if err := mulAdd(dst, a, b); err != nil {
		return matrixErrorf(opMulAdd, err)
	}

	return nil
}

// mulAdd is the shared accumulation kernel; shapes are already validated.
func mulAdd(dst *Dense, a, b Matrix) error {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k     int
		av, bv, sum float64
		err         error
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowA, rowB, rowC int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowC = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // skip zero; padded operands are mostly zeros at the edges
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						dst.data[rowC+j] += av * db.data[rowB+j]
					}
				}
			}

			return nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return err
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return err
				}
				sum += av * bv
			}
			dst.data[i*bCols+j] += sum
		}
	}

	return nil
}

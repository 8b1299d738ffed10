// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison kernels used to check one multiplication
//     strategy against another (Strassen vs naive, padded vs unpadded).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j otherwise).
//   - No allocations; early exit on the first violating element.

package matrix

import "math"

const (
	opAllClose = "AllClose"
	opEqual    = "Equal"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return allMatch(a, b, func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}), nil
}

// ApproxEqual is AllClose with rtol = atol = eps, eps taken from options
// (DefaultEpsilon unless WithEpsilon is given).
// Complexity: O(r*c).
func ApproxEqual(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, o.eps, o.eps)
}

// Equal reports bit-exact equality of two same-shaped matrices.
// Intended for copy-only transformations (pad/crop, partition/merge).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return allMatch(a, b, func(av, bv float64) bool { return av == bv }), nil
}

// allMatch applies pred pairwise; shapes are already validated.
func allMatch(a, b Matrix, pred func(av, bv float64) bool) bool {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !pred(da.data[idx], db.data[idx]) {
					return false
				}
			}

			return true
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // bounds proven by the shape check
			bv, _ = b.At(i, j)
			if !pred(av, bv) {
				return false
			}
		}
	}

	return true
}

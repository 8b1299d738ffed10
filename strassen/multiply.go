// SPDX-License-Identifier: MIT
package strassen

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// Multiply returns a×b computed by the Strassen recursion.
//
// Implementation:
//   - Stage 1: validate a (m×n) and b (n×p), with m, n and p powers of two.
//   - Stage 2: allocate a zeroed m×p result and accumulate into it.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrShapeMismatch when a.Cols() != b.Rows();
//     ErrNotPowerOfTwo for any other dimension; ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(n^2.81) for n×n operands, Space O(n^2).
//
// AI-Hints:
//   - Operands of arbitrary shape go through MultiplyPadded.
//   - matrix.Mul is the cubic baseline; results agree within rounding.
func Multiply(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	dst, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	if err = run(dst, a, b, gatherOptions(opts...)); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	return dst, nil
}

// MultiplyInto accumulates a×b into dst (dst += a×b). Every recursion level
// honors the same additive contract, down to the base case.
//
// dst may alias a or b; aliased operands are copied first.
// On error dst may hold a partial sum.
//
// Errors:
//   - as Multiply; ErrShapeMismatch when dst is not a.Rows()×b.Cols().
func MultiplyInto(dst *matrix.Dense, a, b matrix.Matrix, opts ...Option) error {
	if err := validateOperands(a, b); err != nil {
		return strassenErrorf(opMultiplyInto, err)
	}
	if err := matrix.ValidateNotNil(dst); err != nil {
		return strassenErrorf(opMultiplyInto, err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return strassenErrorf(opMultiplyInto, fmt.Errorf("dst %dx%d, want %dx%d: %w",
			dst.Rows(), dst.Cols(), a.Rows(), b.Cols(), ErrShapeMismatch))
	}
	if err := run(dst, a, b, gatherOptions(opts...)); err != nil {
		return strassenErrorf(opMultiplyInto, err)
	}

	return nil
}

// MultiplyPadded multiplies operands of any compatible shape: each dimension
// is rounded up with NextPowerOfTwo, both operands are zero-padded, the
// padded product is computed and the result is cropped back to m×p.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrShapeMismatch when a.Cols() != b.Rows();
//     ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(N^2.81) with N the largest padded dimension, Space O(N^2).
func MultiplyPadded(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := validateShapes(a, b); err != nil {
		return nil, strassenErrorf(opMultiplyPadded, err)
	}
	m, n, p := a.Rows(), a.Cols(), b.Cols()
	pm, pn, pp := NextPowerOfTwo(m), NextPowerOfTwo(n), NextPowerOfTwo(p)

	ap, err := matrix.Pad(a, pm, pn)
	if err != nil {
		return nil, strassenErrorf(opMultiplyPadded, err)
	}
	bp, err := matrix.Pad(b, pn, pp)
	if err != nil {
		return nil, strassenErrorf(opMultiplyPadded, err)
	}
	c, err := Multiply(ap, bp, opts...)
	if err != nil {
		return nil, strassenErrorf(opMultiplyPadded, err)
	}
	if pm == m && pp == p {
		return c, nil
	}
	if c, err = matrix.Crop(c, m, p); err != nil {
		return nil, strassenErrorf(opMultiplyPadded, err)
	}

	return c, nil
}

// validateShapes checks nil operands and the inner dimension.
func validateShapes(a, b matrix.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%dx%d by %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}

	return nil
}

// validateOperands adds the power-of-two requirement to validateShapes.
func validateOperands(a, b matrix.Matrix) error {
	if err := validateShapes(a, b); err != nil {
		return err
	}
	for _, d := range [3]int{a.Rows(), a.Cols(), b.Cols()} {
		if !IsPowerOfTwo(d) {
			return fmt.Errorf("%dx%d by %dx%d: %d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), d, ErrNotPowerOfTwo)
		}
	}

	return nil
}

// run drives the engine from level 0; shapes are validated.
func run(dst *matrix.Dense, a, b matrix.Matrix, o Options) error {
	ad, err := operand(a, dst)
	if err != nil {
		return err
	}
	bd, err := operand(b, dst)
	if err != nil {
		return err
	}

	return newEngine(o).mulAdd(o.Ctx, dst, ad, bd, 0)
}

// operand returns m as a *Dense the engine may read while dst is written.
// Other implementations and m == dst are copied.
func operand(m matrix.Matrix, dst *matrix.Dense) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok && d != dst {
		return d, nil
	}

	return matrix.Pad(m, m.Rows(), m.Cols())
}

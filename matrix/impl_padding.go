// SPDX-License-Identifier: MIT

// Package matrix - zero padding and cropping.
//
// Purpose:
//   - Let shape-restricted algorithms (power-of-two recursion) run on arbitrary
//     operands: Pad enlarges with zero rows/columns, Crop restores the true extent.
//   - Zero padding never changes the product inside the original extent:
//     [A 0; 0 0]·[B 0; 0 0] = [AB 0; 0 0].

package matrix

import "fmt"

const (
	opPad  = "Pad"
	opCrop = "Crop"
)

// Pad returns a fresh rows×cols Dense holding m in its top-left corner and
// zeros everywhere else.
// Implementation:
//   - Stage 1: validate m non-nil and rows ≥ m.Rows(), cols ≥ m.Cols().
//   - Stage 2: allocate the zeroed target, copy row by row.
//
// Behavior highlights:
//   - Padding to the same shape is a plain copy; m is never aliased.
//   - The numeric policy of a *Dense source is preserved.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for non-positive targets;
//     ErrBadShape when the target is smaller than m in either dimension.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Pad(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	srcR, srcC := m.Rows(), m.Cols()
	if rows < srcR || cols < srcC {
		return nil, matrixErrorf(opPad, fmt.Errorf("%dx%d into %dx%d: %w", srcR, srcC, rows, cols, ErrBadShape))
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if err = copyBlock(out, m, srcR, srcC); err != nil {
		return nil, matrixErrorf(opPad, err)
	}

	return out, nil
}

// Crop returns a fresh rows×cols Dense holding the top-left block of m.
// It is the inverse of Pad on the original extent.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for non-positive targets;
//     ErrBadShape when the target exceeds m in either dimension.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Crop(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCrop, err)
	}
	if rows > m.Rows() || cols > m.Cols() {
		return nil, matrixErrorf(opCrop, fmt.Errorf("%dx%d from %dx%d: %w", rows, cols, m.Rows(), m.Cols(), ErrBadShape))
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opCrop, err)
	}
	if err = copyBlock(out, m, rows, cols); err != nil {
		return nil, matrixErrorf(opCrop, err)
	}

	return out, nil
}

// copyBlock copies the top-left rows×cols block of src into the top-left of dst.
// Both shapes are validated by the caller.
func copyBlock(dst *Dense, src Matrix, rows, cols int) error {
	if ds, ok := src.(*Dense); ok {
		dst.validateNaNInf = ds.validateNaNInf
		for i := 0; i < rows; i++ {
			copy(dst.data[i*dst.c:i*dst.c+cols], ds.data[i*ds.c:i*ds.c+cols])
		}

		return nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			dst.data[i*dst.c+j] = v
		}
	}

	return nil
}

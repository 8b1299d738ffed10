// SPDX-License-Identifier: MIT
package strassen

import (
	"errors"
	"fmt"
)

var (
	// ErrOddDimension indicates a split of a matrix with an odd row or column
	// count. Inside the recursion it means the operands were not padded.
	ErrOddDimension = errors.New("strassen: odd dimension at recursion")

	// ErrShapeMismatch indicates incompatible operand, target or quadrant shapes.
	ErrShapeMismatch = errors.New("strassen: shape mismatch")

	// ErrNotPowerOfTwo indicates an operand dimension that is not a power of two
	// at an entry point which requires pre-padded operands.
	ErrNotPowerOfTwo = errors.New("strassen: dimension is not a power of two")
)

// Operation tags used as error prefixes.
const (
	opMultiply       = "Multiply"
	opMultiplyInto   = "MultiplyInto"
	opMultiplyPadded = "MultiplyPadded"
	opPartition      = "Partition"
	opMerge          = "Merge"
)

// strassenErrorf prefixes err with an operation tag, keeping it matchable by errors.Is.
func strassenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

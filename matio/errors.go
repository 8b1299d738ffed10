// SPDX-License-Identifier: MIT
package matio

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a token that is not a valid dimension or number.
	ErrSyntax = errors.New("matio: syntax error")

	// ErrShortData indicates input that ends before a header or block is complete.
	ErrShortData = errors.New("matio: unexpected end of data")

	// ErrDimensionMismatch indicates operands whose inner dimensions disagree.
	ErrDimensionMismatch = errors.New("matio: matrices dimension error")
)

const (
	opReadMatrix  = "ReadMatrix"
	opReadPair    = "ReadPair"
	opWriteMatrix = "WriteMatrix"
	opWriteTiming = "WriteTiming"
)

func matioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT
package matio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/matmul/matrix"
)

// MaxElements bounds rows*cols for any block read from text input.
const MaxElements = 1 << 28

// tokenReader yields whitespace-separated tokens and counts them for error context.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next token, ErrShortData at EOF, or the underlying read error.
func (tr *tokenReader) next() (string, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("after token %d: %w", tr.pos, ErrShortData)
	}
	tr.pos++

	return tr.sc.Text(), nil
}

func (tr *tokenReader) dim() (int, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, err
	}
	d, err := strconv.Atoi(tok)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("token %d %q: want positive dimension: %w", tr.pos, tok, ErrSyntax)
	}

	return d, nil
}

func (tr *tokenReader) value() (float64, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("token %d %q: %w", tr.pos, tok, matrix.ErrNaNInf)
		}
		return 0, fmt.Errorf("token %d %q: %w", tr.pos, tok, ErrSyntax)
	}

	return v, nil
}

// header reads a "rows cols" pair.
func (tr *tokenReader) header() (rows, cols int, err error) {
	if rows, err = tr.dim(); err != nil {
		return 0, 0, err
	}
	if cols, err = tr.dim(); err != nil {
		return 0, 0, err
	}
	if rows > MaxElements/cols {
		return 0, 0, fmt.Errorf("header %dx%d exceeds %d elements: %w",
			rows, cols, MaxElements, matrix.ErrInvalidDimensions)
	}

	return rows, cols, nil
}

// values reads rows*cols values into a new matrix.
func (tr *tokenReader) values(rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = tr.value(); err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err // NaN/Inf under the default policy
			}
		}
	}

	return m, nil
}

// block reads a header followed by its values.
func (tr *tokenReader) block() (*matrix.Dense, error) {
	rows, cols, err := tr.header()
	if err != nil {
		return nil, err
	}

	return tr.values(rows, cols)
}

// ReadMatrix reads one "rows cols" block from r.
//
// Errors:
//   - ErrSyntax for malformed or non-positive dimensions and malformed values.
//   - ErrShortData when r ends early.
//   - matrix.ErrNaNInf for NaN, ±Inf or out-of-range values.
//   - matrix.ErrInvalidDimensions when rows*cols exceeds MaxElements.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	m, err := newTokenReader(r).block()
	if err != nil {
		return nil, matioErrorf(opReadMatrix, err)
	}

	return m, nil
}

// ReadPair reads the two operands of a product, A then B, at their true extents.
// The header of B is checked against A before any of B's values are read.
//
// Errors:
//   - as ReadMatrix; ErrDimensionMismatch when A's cols differ from B's rows.
func ReadPair(r io.Reader) (a, b *matrix.Dense, err error) {
	tr := newTokenReader(r)
	if a, err = tr.block(); err != nil {
		return nil, nil, matioErrorf(opReadPair, fmt.Errorf("A: %w", err))
	}

	rows, cols, err := tr.header()
	if err != nil {
		return nil, nil, matioErrorf(opReadPair, fmt.Errorf("B: %w", err))
	}
	if a.Cols() != rows {
		return nil, nil, matioErrorf(opReadPair, fmt.Errorf("%dx%d by %dx%d: %w",
			a.Rows(), a.Cols(), rows, cols, ErrDimensionMismatch))
	}
	if b, err = tr.values(rows, cols); err != nil {
		return nil, nil, matioErrorf(opReadPair, fmt.Errorf("B: %w", err))
	}

	return a, b, nil
}

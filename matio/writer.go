// SPDX-License-Identifier: MIT
package matio

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/matmul/matrix"
)

// WriteMatrix writes m as a "rows cols" header line followed by one line per
// row, each value formatted as "%8.2f ".
//
// Errors:
//   - matrix.ErrNilMatrix; write errors from w.
//
// Complexity:
//   - Time O(rows*cols), Space O(1) beyond the output buffer.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return matioErrorf(opWriteMatrix, err)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.Rows(), m.Cols()); err != nil {
		return matioErrorf(opWriteMatrix, err)
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matioErrorf(opWriteMatrix, err)
			}
			if _, err = fmt.Fprintf(bw, "%8.2f ", v); err != nil {
				return matioErrorf(opWriteMatrix, err)
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return matioErrorf(opWriteMatrix, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return matioErrorf(opWriteMatrix, err)
	}

	return nil
}

// WriteTiming writes a "<label> cost <duration>" line.
func WriteTiming(w io.Writer, label string, d time.Duration) error {
	if _, err := fmt.Fprintf(w, "%s cost %s\n", label, d); err != nil {
		return matioErrorf(opWriteTiming, err)
	}

	return nil
}

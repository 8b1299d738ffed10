// SPDX-License-Identifier: MIT
package strassen

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// Quadrants holds the four equal-shaped blocks of a matrix split at the
// midpoint of each dimension: M11 top-left, M12 top-right, M21 bottom-left,
// M22 bottom-right.
type Quadrants struct {
	M11, M12, M21, M22 *matrix.Dense
}

// blocks lists the quadrants in row-major order, matching blockOffset.
func (q Quadrants) blocks() [4]*matrix.Dense {
	return [4]*matrix.Dense{q.M11, q.M12, q.M21, q.M22}
}

// blockOffset returns the top-left corner of quadrant idx (0..3, row-major)
// for quadrants of shape h×w.
func blockOffset(idx, h, w int) (r0, c0 int) {
	return (idx / 2) * h, (idx % 2) * w
}

// Partition splits m into four fresh (rows/2)×(cols/2) quadrants that cover
// m exactly with no overlap.
//
// Implementation:
//   - Stage 1: validate m and require both dimensions even.
//   - Stage 2: allocate each quadrant and copy its block row by row
//     (strided copy for *Dense, At for other implementations).
//
// Errors:
//   - matrix.ErrNilMatrix; ErrOddDimension when rows or cols is odd.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Partition(m matrix.Matrix) (Quadrants, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Quadrants{}, strassenErrorf(opPartition, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows%2 != 0 || cols%2 != 0 {
		return Quadrants{}, strassenErrorf(opPartition, fmt.Errorf("%dx%d: %w", rows, cols, ErrOddDimension))
	}
	h, w := rows/2, cols/2

	var q Quadrants
	targets := [4]**matrix.Dense{&q.M11, &q.M12, &q.M21, &q.M22}
	for idx, target := range targets {
		block, err := matrix.NewDense(h, w)
		if err != nil {
			return Quadrants{}, strassenErrorf(opPartition, err)
		}
		r0, c0 := blockOffset(idx, h, w)
		if err = extractFrom(block, m, r0, c0); err != nil {
			return Quadrants{}, strassenErrorf(opPartition, err)
		}
		*target = block
	}

	return q, nil
}

// Merge writes the four quadrants into dst, which must be (2h)×(2w) for
// h×w quadrants. It is the exact inverse of Partition.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil dst or quadrant.
//   - ErrShapeMismatch when quadrants disagree in shape or dst does not fit.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func Merge(dst matrix.Matrix, q Quadrants) error {
	h, w, err := quadrantShape(q)
	if err != nil {
		return strassenErrorf(opMerge, err)
	}
	if err = matrix.ValidateNotNil(dst); err != nil {
		return strassenErrorf(opMerge, err)
	}
	if dst.Rows() != 2*h || dst.Cols() != 2*w {
		return strassenErrorf(opMerge, fmt.Errorf("dst %dx%d for %dx%d quadrants: %w",
			dst.Rows(), dst.Cols(), h, w, ErrShapeMismatch))
	}

	for idx, block := range q.blocks() {
		r0, c0 := blockOffset(idx, h, w)
		if err = injectInto(dst, block, r0, c0); err != nil {
			return strassenErrorf(opMerge, err)
		}
	}

	return nil
}

// NewMerged allocates a fresh matrix and merges q into it.
func NewMerged(q Quadrants) (*matrix.Dense, error) {
	h, w, err := quadrantShape(q)
	if err != nil {
		return nil, strassenErrorf(opMerge, err)
	}
	out, err := matrix.NewDense(2*h, 2*w)
	if err != nil {
		return nil, strassenErrorf(opMerge, err)
	}
	if err = Merge(out, q); err != nil {
		return nil, err
	}

	return out, nil
}

// quadrantShape validates that all quadrants are present and equal-shaped.
func quadrantShape(q Quadrants) (h, w int, err error) {
	blocks := q.blocks()
	for _, b := range blocks {
		if err = matrix.ValidateNotNil(b); err != nil {
			return 0, 0, err
		}
	}
	h, w = blocks[0].Rows(), blocks[0].Cols()
	for idx, b := range blocks[1:] {
		if b.Rows() != h || b.Cols() != w {
			return 0, 0, fmt.Errorf("quadrant %d is %dx%d, want %dx%d: %w", idx+1, b.Rows(), b.Cols(), h, w, ErrShapeMismatch)
		}
	}

	return h, w, nil
}

// extractFrom copies the block of src at (r0,c0) with the shape of dst into dst.
func extractFrom(dst *matrix.Dense, src matrix.Matrix, r0, c0 int) error {
	if sd, ok := src.(*matrix.Dense); ok {
		extract(dst, sd, r0, c0)
		return nil
	}

	var v float64
	var err error
	for i := 0; i < dst.Rows(); i++ {
		for j := 0; j < dst.Cols(); j++ {
			if v, err = src.At(r0+i, c0+j); err != nil {
				return err
			}
			if err = dst.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// injectInto copies src into dst at (r0,c0).
func injectInto(dst matrix.Matrix, src *matrix.Dense, r0, c0 int) error {
	if dd, ok := dst.(*matrix.Dense); ok {
		inject(dd, src, r0, c0)
		return nil
	}

	data, w := src.RawData(), src.Cols()
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < w; j++ {
			if err := dst.Set(r0+i, c0+j, data[i*w+j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// extract is the strided row copy behind extractFrom; shapes are trusted.
func extract(dst, src *matrix.Dense, r0, c0 int) {
	d, s := dst.RawData(), src.RawData()
	h, w, stride := dst.Rows(), dst.Cols(), src.Cols()
	var base int
	for i := 0; i < h; i++ {
		base = (r0+i)*stride + c0
		copy(d[i*w:(i+1)*w], s[base:base+w])
	}
}

// inject is the strided row copy behind injectInto; shapes are trusted.
func inject(dst, src *matrix.Dense, r0, c0 int) {
	d, s := dst.RawData(), src.RawData()
	h, w, stride := src.Rows(), src.Cols(), dst.Cols()
	var base int
	for i := 0; i < h; i++ {
		base = (r0+i)*stride + c0
		copy(d[base:base+w], s[i*w:(i+1)*w])
	}
}

// SPDX-License-Identifier: MIT
package strassen

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matmul/matrix"
)

const (
	plus  = 1.0
	minus = -1.0
)

// term is one signed operand of a linear combination.
type term struct {
	m    *matrix.Dense
	sign float64
}

func pos(m *matrix.Dense) term { return term{m: m, sign: plus} }
func neg(m *matrix.Dense) term { return term{m: m, sign: minus} }

// combo is a signed sum of up to four operands, stored by value so every
// frame owns its own term lists.
type combo struct {
	terms [4]term
	n     int
}

func one(t0 term) combo {
	var c combo
	c.terms[0] = t0
	c.n = 1

	return c
}

func two(t0, t1 term) combo {
	var c combo
	c.terms[0], c.terms[1] = t0, t1
	c.n = 2

	return c
}

func four(t0, t1, t2, t3 term) combo {
	var c combo
	c.terms[0], c.terms[1], c.terms[2], c.terms[3] = t0, t1, t2, t3
	c.n = 4

	return c
}

func (c *combo) list() []term { return c.terms[:c.n] }

// engine holds the resolved options of one multiplication. It is shared
// read-only by every frame, including frames running on other goroutines.
type engine struct {
	leafSize   int
	parDepth   int
	maxWorkers int
	stats      *Stats
	pool       *densePool
}

func newEngine(o Options) *engine {
	return &engine{
		leafSize:   o.LeafSize,
		parDepth:   o.ParallelDepth,
		maxWorkers: o.MaxWorkers,
		stats:      o.Stats,
		pool:       scratch,
	}
}

// frame is the working set of one recursion level: operand quadrants,
// operand sums and the seven products. Everything acquired through a frame
// goes back to the pool in release.
type frame struct {
	e    *engine
	held []*matrix.Dense
}

func (f *frame) acquire(rows, cols int) (*matrix.Dense, error) {
	start := time.Now()
	m, err := f.e.pool.get(rows, cols)
	if err != nil {
		return nil, err
	}
	f.e.stats.alloc(time.Since(start))
	f.held = append(f.held, m)

	return m, nil
}

func (f *frame) release() {
	for _, m := range f.held {
		f.e.pool.put(m)
	}
	f.held = nil
}

// split copies the four h×w quadrants of src into fresh scratch matrices.
func (f *frame) split(src *matrix.Dense, h, w int) ([4]*matrix.Dense, error) {
	var out [4]*matrix.Dense
	for idx := range out {
		q, err := f.acquire(h, w)
		if err != nil {
			return out, err
		}
		r0, c0 := blockOffset(idx, h, w)
		extract(q, src, r0, c0)
		out[idx] = q
	}

	return out, nil
}

// combine returns Σ sign·m over c. A single positive term is returned
// as-is; products only read their operands.
func (f *frame) combine(rows, cols int, c *combo) (*matrix.Dense, error) {
	terms := c.list()
	if len(terms) == 1 && terms[0].sign == plus {
		return terms[0].m, nil
	}
	out, err := f.acquire(rows, cols)
	if err != nil {
		return nil, err
	}
	dst := out.RawData()
	copy(dst, terms[0].m.RawData())
	if terms[0].sign == minus {
		for i := range dst {
			dst[i] = -dst[i]
		}
	}
	for _, t := range terms[1:] {
		src := t.m.RawData()
		for i := range dst {
			dst[i] += t.sign * src[i]
		}
	}

	return out, nil
}

// mulAdd computes dst += a×b.
//
// Implementation:
//   - Stage 1: honor cancellation, record the frame.
//   - Stage 2 (base case): m, n or p ≤ leafSize → matrix.MulAdd.
//   - Stage 3: split a and b into quadrants and build the seven operand pairs.
//   - Stage 4: compute P..V into zeroed scratch, sequentially or through an
//     errgroup for the first parDepth levels.
//   - Stage 5: accumulate the recombined C quadrants into their blocks of dst.
//
// Errors:
//   - ctx.Err() on cancellation; ErrOddDimension when a split is impossible.
//
// Complexity:
//   - Time O(n^log2(7)) for n×n operands, Space O(n^2) scratch across live frames.
func (e *engine) mulAdd(ctx context.Context, dst, a, b *matrix.Dense, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.stats.enter(depth)

	m, n, p := a.Rows(), a.Cols(), b.Cols()
	if m <= e.leafSize || n <= e.leafSize || p <= e.leafSize {
		e.stats.leaf()
		return matrix.MulAdd(dst, a, b)
	}
	if m%2 != 0 || n%2 != 0 || p%2 != 0 {
		return fmt.Errorf("%dx%d by %dx%d at depth %d: %w", m, n, n, p, depth, ErrOddDimension)
	}
	h, k, w := m/2, n/2, p/2

	f := &frame{e: e}
	defer f.release()

	aq, err := f.split(a, h, k)
	if err != nil {
		return err
	}
	bq, err := f.split(b, k, w)
	if err != nil {
		return err
	}
	a11, a12, a21, a22 := aq[0], aq[1], aq[2], aq[3]
	b11, b12, b21, b22 := bq[0], bq[1], bq[2], bq[3]

	// P, Q, R, S, T, U, V
	lhsTerms := [7]combo{
		two(pos(a11), pos(a22)),
		two(pos(a21), pos(a22)),
		one(pos(a11)),
		one(pos(a22)),
		two(pos(a11), pos(a12)),
		two(pos(a21), neg(a11)),
		two(pos(a12), neg(a22)),
	}
	rhsTerms := [7]combo{
		two(pos(b11), pos(b22)),
		one(pos(b11)),
		two(pos(b12), neg(b22)),
		two(pos(b21), neg(b11)),
		one(pos(b22)),
		two(pos(b11), pos(b12)),
		two(pos(b21), pos(b22)),
	}

	var lhs, rhs, prod [7]*matrix.Dense
	for i := range prod {
		if lhs[i], err = f.combine(h, k, &lhsTerms[i]); err != nil {
			return err
		}
		if rhs[i], err = f.combine(k, w, &rhsTerms[i]); err != nil {
			return err
		}
		if prod[i], err = f.acquire(h, w); err != nil {
			return err
		}
	}

	if err = e.products(ctx, &prod, &lhs, &rhs, depth); err != nil {
		return err
	}

	pP, pQ, pR, pS, pT, pU, pV := prod[0], prod[1], prod[2], prod[3], prod[4], prod[5], prod[6]
	quadrants := [4]combo{
		four(pos(pP), pos(pS), neg(pT), pos(pV)), // C11
		two(pos(pR), pos(pT)),                    // C12
		two(pos(pQ), pos(pS)),                    // C21
		four(pos(pP), pos(pR), neg(pQ), pos(pU)), // C22
	}
	for idx := range quadrants {
		r0, c0 := blockOffset(idx, h, w)
		accumulate(dst, r0, c0, h, w, &quadrants[idx])
	}

	return nil
}

// products fills prod[i] += lhs[i]×rhs[i] for the seven products of a level.
func (e *engine) products(ctx context.Context, prod, lhs, rhs *[7]*matrix.Dense, depth int) error {
	if depth >= e.parDepth {
		for i := range prod {
			if err := e.mulAdd(ctx, prod[i], lhs[i], rhs[i], depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if e.maxWorkers > 0 {
		g.SetLimit(e.maxWorkers)
	}
	for i := range prod {
		g.Go(func() error {
			return e.mulAdd(gctx, prod[i], lhs[i], rhs[i], depth+1)
		})
	}

	return g.Wait()
}

// accumulate adds Σ sign·m over c into the h×w block of dst at (r0,c0).
func accumulate(dst *matrix.Dense, r0, c0, h, w int, c *combo) {
	terms := c.list()
	d, stride := dst.RawData(), dst.Cols()
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < h; i++ {
		base = (r0+i)*stride + c0
		for j = 0; j < w; j++ {
			sum = 0
			for _, t := range terms {
				sum += t.sign * t.m.RawData()[i*w+j]
			}
			d[base+j] += sum
		}
	}
}

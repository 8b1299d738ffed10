// SPDX-License-Identifier: MIT
package strassen

import (
	"sync"

	"github.com/katalvlaran/matmul/matrix"
)

// densePool recycles float64 backing buffers keyed by element count,
// one sync.Pool per size.
type densePool struct {
	mu    sync.RWMutex
	pools map[int]*sync.Pool
}

// scratch is shared by all engines.
var scratch = newDensePool()

func newDensePool() *densePool {
	return &densePool{pools: make(map[int]*sync.Pool)}
}

// poolFor returns the pool for buffers of exactly size elements.
func (dp *densePool) poolFor(size int) *sync.Pool {
	dp.mu.RLock()
	p, ok := dp.pools[size]
	dp.mu.RUnlock()
	if ok {
		return p
	}

	dp.mu.Lock()
	defer dp.mu.Unlock()
	if p, ok = dp.pools[size]; ok {
		return p // created by another goroutine meanwhile
	}
	p = &sync.Pool{
		New: func() any {
			buf := make([]float64, size)
			return &buf
		},
	}
	dp.pools[size] = p

	return p
}

// get returns a zeroed rows×cols Dense over a recycled buffer.
func (dp *densePool) get(rows, cols int) (*matrix.Dense, error) {
	buf := dp.poolFor(rows * cols).Get().(*[]float64)
	clear(*buf)

	return matrix.NewDenseFrom(rows, cols, *buf)
}

// put hands the backing buffer of m back for reuse. m must not be used afterwards.
func (dp *densePool) put(m *matrix.Dense) {
	buf := m.RawData()
	dp.poolFor(len(buf)).Put(&buf)
}

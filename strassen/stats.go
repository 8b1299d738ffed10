// SPDX-License-Identifier: MIT
package strassen

import (
	"sync/atomic"
	"time"
)

// Stats collects engine counters for one or more multiplications.
// The zero value is ready to use; all methods are safe for concurrent use
// and a nil *Stats ignores updates.
type Stats struct {
	frames      atomic.Int64
	baseCases   atomic.Int64
	allocations atomic.Int64
	allocNanos  atomic.Int64
	maxDepth    atomic.Int64
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Frames      int64         // recursion frames entered, base cases included
	BaseCases   int64         // frames resolved by direct accumulation
	Allocations int64         // scratch matrices acquired
	AllocTime   time.Duration // time spent acquiring scratch matrices
	MaxDepth    int           // deepest level reached; the top call is level 0
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}

	return Snapshot{
		Frames:      s.frames.Load(),
		BaseCases:   s.baseCases.Load(),
		Allocations: s.allocations.Load(),
		AllocTime:   time.Duration(s.allocNanos.Load()),
		MaxDepth:    int(s.maxDepth.Load()),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	s.frames.Store(0)
	s.baseCases.Store(0)
	s.allocations.Store(0)
	s.allocNanos.Store(0)
	s.maxDepth.Store(0)
}

func (s *Stats) enter(depth int) {
	if s == nil {
		return
	}
	s.frames.Add(1)
	d := int64(depth)
	for {
		cur := s.maxDepth.Load()
		if d <= cur || s.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

func (s *Stats) leaf() {
	if s == nil {
		return
	}
	s.baseCases.Add(1)
}

func (s *Stats) alloc(d time.Duration) {
	if s == nil {
		return
	}
	s.allocations.Add(1)
	s.allocNanos.Add(int64(d))
}

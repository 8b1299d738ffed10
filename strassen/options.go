// SPDX-License-Identifier: MIT

// Package strassen: functional options for the recursive engine.
// Consumers:
//   - Multiply, MultiplyInto and MultiplyPadded resolve them via gatherOptions.
package strassen

import "context"

const (
	// DefaultLeafSize recurses all the way down to one row, column or inner index.
	DefaultLeafSize = 1

	// DefaultParallelDepth runs every level sequentially.
	DefaultParallelDepth = 0

	// DefaultMaxWorkers places no limit on concurrent products of one level.
	DefaultMaxWorkers = 0
)

const (
	panicLeafSizeInvalid      = "strassen: WithLeafSize: size must be >= 1"
	panicParallelDepthInvalid = "strassen: WithParallelDepth: depth must be >= 0"
	panicMaxWorkersInvalid    = "strassen: WithMaxWorkers: n must be >= 0"
)

// Option configures optional behavior of the engine.
// Use with Multiply(a, b, opts...).
type Option func(*Options)

// Options holds the resolved engine configuration.
type Options struct {
	// Ctx allows cancellation; checked on entry to every recursion frame.
	// Defaults to context.Background().
	Ctx context.Context

	// LeafSize is the base-case cutoff: a frame whose m, n or p is ≤ LeafSize
	// multiplies directly instead of splitting.
	LeafSize int

	// ParallelDepth is the number of top recursion levels whose seven products
	// run concurrently. Zero means sequential.
	ParallelDepth int

	// MaxWorkers bounds concurrent products per level; zero means unbounded.
	MaxWorkers int

	// Stats, if non-nil, receives frame, base-case and allocation counters.
	Stats *Stats
}

// DefaultOptions returns Options with:
//   - Background context
//   - LeafSize = DefaultLeafSize
//   - sequential products (ParallelDepth = 0, MaxWorkers = 0)
//   - no Stats
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		LeafSize:      DefaultLeafSize,
		ParallelDepth: DefaultParallelDepth,
		MaxWorkers:    DefaultMaxWorkers,
		Stats:         nil,
	}
}

// WithContext sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLeafSize sets the base-case cutoff. Panics if size < 1.
//
// AI-Hints:
//   - Values around 32..128 trade recursion overhead against the cubic kernel;
//     1 keeps the textbook recursion.
func WithLeafSize(size int) Option {
	if size < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.LeafSize = size }
}

// WithParallelDepth runs the seven products concurrently for the first depth
// levels. Level k spawns 7^k goroutines in total. Panics if depth < 0.
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic(panicParallelDepthInvalid)
	}

	return func(o *Options) { o.ParallelDepth = depth }
}

// WithMaxWorkers limits concurrent products per level (0 = unbounded).
// Panics if n < 0.
func WithMaxWorkers(n int) Option {
	if n < 0 {
		panic(panicMaxWorkersInvalid)
	}

	return func(o *Options) { o.MaxWorkers = n }
}

// WithStats installs an instrumentation sink. A nil s disables collection.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.Stats = s }
}

// gatherOptions applies user setters on top of DefaultOptions, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

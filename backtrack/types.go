// Package backtrack defines result types, sentinel errors, and options
// for the exact N-Queens node counter.
package backtrack

import (
	"errors"
	"time"
)

// Sentinel errors returned by Count.
var (
	// ErrNegativeSize indicates that a negative board size was requested.
	ErrNegativeSize = errors.New("backtrack: board size must be non-negative")

	// ErrTimeLimit indicates that a positive time budget expired before
	// the search completed. Partial counts are not returned.
	ErrTimeLimit = errors.New("backtrack: time limit exceeded")
)

// Result holds the outcome of one exhaustive search, exclusively owned by
// the invocation that produced it.
type Result struct {
	// Nodes is the number of search-tree nodes visited: one per recursive
	// call, including the root and the calls that complete a board.
	Nodes int64

	// Solutions is the number of complete, conflict-free placements found.
	Solutions int64

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// Option configures optional behavior of the exact search.
// Use with Count(n, opts...).
type Option func(*Options)

// Options holds configurable parameters for the exact search.
type Options struct {
	// TimeLimit, if positive, bounds the wall-clock duration of the search.
	// Expiry is detected by sparse checks (every 4096 nodes) and surfaces
	// as ErrTimeLimit. Zero means no limit (the default: the search is
	// finite and expected to terminate).
	TimeLimit time.Duration
}

// DefaultOptions returns an Options struct with no time limit.
func DefaultOptions() Options {
	return Options{TimeLimit: 0}
}

// WithTimeLimit returns an Option that sets a soft wall-clock budget.
// Non-positive d leaves the search unbounded.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// Package montecarlo defines result types, sentinel errors, and options
// for the randomized tree-size estimator.
package montecarlo

import (
	"errors"
	"time"
)

// Sentinel errors returned by Estimate.
var (
	// ErrNegativeSize indicates that a negative board size was requested.
	ErrNegativeSize = errors.New("montecarlo: board size must be non-negative")

	// ErrNoTrials indicates that the requested trial count is not positive.
	ErrNoTrials = errors.New("montecarlo: number of trials must be positive")

	// ErrBadWorkers indicates a non-positive worker count was configured.
	ErrBadWorkers = errors.New("montecarlo: worker count must be positive")
)

// Result holds the outcome of one estimation experiment.
type Result struct {
	// Average is the arithmetic mean of all per-trial estimates.
	Average float64

	// PerTrial lists every trial's estimate in trial order. Each value is
	// a finite, integer-valued float ≥ 1 (the root always contributes 1),
	// immutable after the call returns.
	PerTrial []float64

	// AvgTrialTime is the wall-clock time consumed per trial on average.
	AvgTrialTime time.Duration
}

// Option configures optional behavior of the estimator.
// Use with Estimate(n, trials, opts...).
type Option func(*Options)

// Options holds configurable parameters for the estimator.
type Options struct {
	// Seed drives all randomness of the experiment. Seed 0 selects a fixed
	// default seed; there are no time-based sources (see rng.go policy).
	Seed int64

	// Workers is the number of goroutines running trials. 1 (the default)
	// selects the sequential single-stream convention; values > 1 switch
	// to per-trial derived streams aggregated by trial index.
	Workers int
}

// DefaultOptions returns an Options struct with the fixed default seed and
// sequential execution.
func DefaultOptions() Options {
	return Options{Seed: 0, Workers: 1}
}

// WithSeed returns an Option that sets the experiment seed. Passing 0
// keeps the fixed default (rngFromSeed policy).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers returns an Option that runs trials on k goroutines.
// k ≤ 0 is rejected by Estimate with ErrBadWorkers.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// Package experiment defines configuration, sentinel errors, and report
// types for orchestrated estimation experiments.
package experiment

import (
	"errors"
	"time"

	"github.com/katalvlaran/treesize/backtrack"
	"github.com/katalvlaran/treesize/stats"
)

// Sentinel errors for experiment configuration.
var (
	// ErrBadSize indicates a negative board size in the configuration.
	ErrBadSize = errors.New("experiment: board size must be non-negative")

	// ErrBadTrials indicates a non-positive trial count per run.
	ErrBadTrials = errors.New("experiment: trials per run must be positive")

	// ErrBadRuns indicates fewer than 2 runs; the cross-run sample
	// statistics are undefined below that.
	ErrBadRuns = errors.New("experiment: need at least 2 runs")
)

// Config selects the experiment shape. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	// N is the board size (number of queens and rows).
	N int `mapstructure:"n"`

	// Trials is the number of Monte Carlo trials per run.
	Trials int `mapstructure:"trials"`

	// Runs is the number of independent estimator runs to aggregate.
	Runs int `mapstructure:"runs"`

	// Seed drives all randomness; run i derives its own stream from
	// (Seed, i). Seed 0 selects the estimator's fixed default.
	Seed int64 `mapstructure:"seed"`

	// Workers is the trial worker count handed to the estimator.
	// Values above 1 switch the estimator to per-trial derived streams.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the stock experiment: 12 queens, 1000 trials per
// run, 5 runs, seed 42, sequential trials.
func DefaultConfig() Config {
	return Config{N: 12, Trials: 1000, Runs: 5, Seed: 42, Workers: 1}
}

// validate fails fast on degenerate configurations.
func (c Config) validate() error {
	if c.N < 0 {
		return ErrBadSize
	}
	if c.Trials <= 0 {
		return ErrBadTrials
	}
	if c.Runs < 2 {
		return ErrBadRuns
	}

	return nil
}

// RunResult summarizes one estimator run.
type RunResult struct {
	// Average is the mean of the run's per-trial estimates.
	Average float64

	// Min and Max are the smallest and largest per-trial estimates.
	Min float64
	Max float64

	// AvgTrialTime is the wall-clock time consumed per trial on average.
	AvgTrialTime time.Duration
}

// Report is the aggregated outcome of one experiment.
type Report struct {
	// Config echoes the configuration that produced the report.
	Config Config

	// Exact is the ground-truth backtracking result for Config.N.
	Exact backtrack.Result

	// Runs holds one summary per estimator run, in run order.
	Runs []RunResult

	// Overall aggregates the run averages (mean, sample standard deviation).
	Overall stats.Stats

	// RelativeError is |Overall.Mean − Exact.Nodes| / Exact.Nodes.
	RelativeError float64

	// CoefVariation is Overall.StdDev / Overall.Mean.
	CoefVariation float64
}

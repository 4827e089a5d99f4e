// Package stats - sample statistics over estimate sequences.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for statistics computations.
var (
	// ErrTooFewSamples indicates fewer than 2 values were supplied; the
	// sample variance (divisor n−1) is undefined below that.
	ErrTooFewSamples = errors.New("stats: need at least 2 samples")

	// ErrZeroReference indicates a relative-error computation against a
	// zero reference, which is undefined.
	ErrZeroReference = errors.New("stats: reference must be non-zero")
)

// Stats is the derived aggregate over a sequence of samples. It is
// recomputed fresh from its input each time and holds no independent state.
type Stats struct {
	// Mean is the arithmetic average of the samples.
	Mean float64

	// StdDev is the sample standard deviation (variance divisor n−1).
	StdDev float64
}

// Summarize computes the mean and sample standard deviation of values.
//
// Contracts:
//   - len(values) ≥ 2; fewer fails fast with ErrTooFewSamples.
//   - A constant sequence yields StdDev exactly 0.
//
// Complexity: O(len(values)) time, O(1) space.
func Summarize(values []float64) (Stats, error) {
	if len(values) < 2 {
		return Stats{}, ErrTooFewSamples
	}

	return Stats{
		Mean:   stat.Mean(values, nil),
		StdDev: stat.StdDev(values, nil),
	}, nil
}

// RelativeError computes |estimate − reference| / |reference|.
//
// Contracts:
//   - reference != 0; zero fails fast with ErrZeroReference.
//
// Complexity: O(1).
func RelativeError(estimate, reference float64) (float64, error) {
	if reference == 0 {
		return 0, ErrZeroReference
	}

	return math.Abs(estimate-reference) / math.Abs(reference), nil
}

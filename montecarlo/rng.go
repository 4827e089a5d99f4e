// Package montecarlo - RNG utilities for the estimator.
//
// This file centralizes deterministic random generation for all trials.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//   - Performance: O(1) helpers outside the per-row sampling loop.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Parallel trials each construct their own stream via
//     DeriveSeed(seed, trialIndex).
package montecarlo

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the zero-seed policy: seed==0 ⇒ defaultRNGSeed;
// otherwise the provided seed verbatim.
//
// Complexity: O(1).
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns a deterministic *rand.Rand under the zero-seed policy.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(normalizeSeed(seed)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed.
//
// Rationale:
//   - Parallel trials (and multi-run experiments built on this package)
//     need independent substreams that depend only on the parent seed and
//     a stable index, never on scheduling.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     neighboring stream identifiers.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They
//     provide strong bit diffusion; small input changes produce large,
//     well-distributed output changes.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(normalizeSeed(parent)) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG creates the independent deterministic stream for one trial in
// parallel mode. The stream depends only on (seed, trial), so results are
// identical for every worker count.
//
// Complexity: O(1).
func trialRNG(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(seed, uint64(trial))))
}

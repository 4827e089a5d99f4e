// Package montecarlo implements the stochastic search-tree size estimator:
// one random descent per trial, extrapolated through the running product of
// branching factors (Knuth's method), averaged across trials.
//
// What:
//
//   - Estimate(n, trials, opts...): run independent randomized descents and
//     return Result{Average, PerTrial, AvgTrialTime}.
//   - Each trial starts from a fresh all-unplaced board, scans every row for
//     safe columns, adds the running product of branching factors to an
//     accumulator seeded at 1 (the root), then commits one safe column
//     chosen uniformly at random and moves to the next row.
//   - A row with zero safe columns ends the trial early; the partial sum is
//     a valid contribution (that branch of the true tree ends there).
//
// Why:
//   - The exact node count equals 1 + m1 + m1·m2 + … + m1·…·mn along the
//     paths of the real search; sampling one path per trial estimates the
//     whole tree at O(n²) cost per trial, regardless of the factorial
//     solution-space size.
//
// Key Types & Options:
//
//   - Result: Average, PerTrial ([]float64, one entry per trial, in trial
//     order), AvgTrialTime
//   - WithSeed(s): deterministic seeding; same (n, trials, seed) ⇒
//     identical PerTrial sequences. Seed 0 selects a fixed default.
//   - WithWorkers(k): parallel trials on k goroutines; per-trial RNG
//     streams derive from (seed, trial index), so PerTrial is identical
//     for every worker count.
//
// Determinism conventions:
//
//   - Sequential mode (the default) consumes ONE generator in trial order
//     then row order; the whole experiment replays from a single seed.
//   - Parallel mode derives an independent stream per trial via a
//     SplitMix64 mix of seed and trial index, and aggregates by trial
//     index rather than completion order. The two conventions produce
//     different (each bit-reproducible) sequences.
//
// Complexity:
//
//   - Time:   O(trials · n²); Memory: O(n) per concurrent trial plus the
//     O(trials) PerTrial slice.
//
// Errors:
//
//   - ErrNegativeSize  board size is negative
//   - ErrNoTrials      trial count is not positive
//   - ErrBadWorkers    worker count is not positive
package montecarlo

// Package stats provides the sample statistics used to judge Monte Carlo
// estimates against exact counts: mean, sample standard deviation, and
// relative error.
//
// What:
//
//   - Summarize(values): mean and sample standard deviation (divisor n−1)
//     of a sequence of estimates or run averages.
//   - RelativeError(estimate, reference): |estimate − reference| / |reference|.
//
// Why:
//   - The input is a sample from the population of possible runs, so the
//     unbiased (n−1) variance estimator applies; gonum's stat package
//     implements exactly that convention.
//
// Preconditions:
//
//   - Summarize requires at least 2 values (sample variance is undefined
//     below that); RelativeError requires a non-zero reference. Both fail
//     fast with sentinels rather than dividing by zero.
//
// All functions are pure: no side effects, no state retained between calls.
package stats

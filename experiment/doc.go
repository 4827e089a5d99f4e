// Package experiment orchestrates full estimation experiments: it runs the
// exact backtracking counter once as ground truth, repeats the Monte Carlo
// estimator over several independent runs, and aggregates everything into
// a printable report.
//
// What:
//
//   - Config: board size, trials per run, number of runs, seed, workers.
//     Loadable from a JSON file (LoadConfig) or built in code
//     (DefaultConfig + field edits).
//   - Run(cfg): execute the experiment and return a Report with the exact
//     result, per-run summaries (average, min, max, per-trial time), the
//     overall mean and sample standard deviation across run averages, the
//     relative error versus ground truth, and the coefficient of variation.
//   - Report.String(): the formatted text report consumed by cmd/treesize.
//
// Why:
//   - The core packages (backtrack, montecarlo, stats) are pure and silent;
//     selecting n and trial counts, seeding policy across runs, and display
//     formatting belong to this collaborator layer.
//
// Determinism:
//   - Run i uses the seed DeriveSeed(cfg.Seed, i), so the whole experiment
//     is reproducible from a single seed while runs stay independent.
//
// Errors:
//
//   - ErrBadSize, ErrBadTrials, ErrBadRuns  invalid configuration
//   - errors from backtrack, montecarlo and stats are propagated as-is
package experiment

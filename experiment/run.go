// Package experiment — run orchestration.
//
// Rationale (succinct):
//  1. Ground truth first: one exact count anchors every error figure.
//  2. Runs are independent estimator invocations with seeds derived from
//     (cfg.Seed, run index), so adding or removing runs never perturbs the
//     others and the whole experiment replays from one seed.
//  3. Cross-run aggregation treats run averages as a sample from the
//     population of possible runs (variance divisor n−1).
package experiment

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/treesize/backtrack"
	"github.com/katalvlaran/treesize/montecarlo"
	"github.com/katalvlaran/treesize/stats"
)

// Run executes the configured experiment: one exact backtracking count,
// cfg.Runs estimator runs, and the cross-run summary statistics.
//
// Errors:
//   - ErrBadSize / ErrBadTrials / ErrBadRuns for degenerate configurations.
//   - Errors from backtrack.Count, montecarlo.Estimate and stats.Summarize
//     are propagated unchanged.
//
// Complexity: one exhaustive search (exponential in N) plus
// O(Runs · Trials · N²) estimation.
func Run(cfg Config) (*Report, error) {
	// 1. Validate configuration.
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2. Ground truth.
	exact, err := backtrack.Count(cfg.N)
	if err != nil {
		return nil, err
	}

	// 3. Independent estimator runs with derived seeds.
	var (
		runs     = make([]RunResult, 0, cfg.Runs)
		averages = make([]float64, 0, cfg.Runs)
		i        int
	)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	for i = 0; i < cfg.Runs; i++ {
		res, eErr := montecarlo.Estimate(cfg.N, cfg.Trials,
			montecarlo.WithSeed(montecarlo.DeriveSeed(cfg.Seed, uint64(i))),
			montecarlo.WithWorkers(workers))
		if eErr != nil {
			return nil, eErr
		}

		runs = append(runs, RunResult{
			Average:      res.Average,
			Min:          lo.Min(res.PerTrial),
			Max:          lo.Max(res.PerTrial),
			AvgTrialTime: res.AvgTrialTime,
		})
		averages = append(averages, res.Average)
	}

	// 4. Cross-run aggregation.
	overall, err := stats.Summarize(averages)
	if err != nil {
		return nil, err
	}

	// Exact.Nodes ≥ 1 for every valid N, so the reference is never zero.
	relErr, err := stats.RelativeError(overall.Mean, float64(exact.Nodes))
	if err != nil {
		return nil, err
	}

	report := &Report{
		Config:        cfg,
		Exact:         exact,
		Runs:          runs,
		Overall:       overall,
		RelativeError: relErr,
	}
	if overall.Mean != 0 {
		report.CoefVariation = overall.StdDev / overall.Mean
	}

	return report, nil
}

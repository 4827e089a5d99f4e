// Package montecarlo — randomized single-path descents and extrapolation.
//
// Rationale (succinct):
//  1. One trial samples one root-to-leaf path of the true search tree:
//     at row i it measures the real branching factor mᵢ with the shared
//     validator, accumulates 1 + m₁ + m₁m₂ + …, and descends through one
//     uniformly chosen safe column.
//  2. A dead end simply truncates the sum; the partial value remains an
//     unbiased-in-expectation sample of the tree size.
//  3. Hot-path discipline: each concurrent trial loop reuses one board and
//     one safe-column buffer; only the PerTrial slice is allocated per call.
//  4. Aggregation is by trial index in both modes, so reported sequences
//     are reproducible regardless of scheduling.
package montecarlo

import (
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/treesize/board"
)

// sampleTrial performs one randomized descent on a reset board and returns
// the trial's tree-size estimate. buf is the reusable safe-column buffer.
func sampleTrial(b board.Board, rng *rand.Rand, buf []int) (float64, []int) {
	var (
		estimate = 1.0 // the root node
		product  = 1.0 // running product of branching factors
		row      int
		m        int
	)
	for row = 0; row < len(b); row++ {
		buf = b.SafeColumns(row, buf)
		m = len(buf)
		if m == 0 {
			// Dead end: the explored branch of the true tree ends here.
			break
		}
		product *= float64(m)
		estimate += product
		b.Place(row, buf[rng.Intn(m)])
	}

	return estimate, buf
}

// runSequential executes all trials on the calling goroutine, consuming a
// single continuously-advancing generator in trial order then row order.
func runSequential(n, trials int, seed int64, perTrial []float64) {
	var (
		rng = rngFromSeed(seed)
		b   = board.New(n)
		buf = make([]int, 0, n)
		t   int
	)
	for t = 0; t < trials; t++ {
		perTrial[t], buf = sampleTrial(b.Reset(), rng, buf)
	}
}

// runParallel executes trials on `workers` goroutines. Each trial owns an
// independent RNG stream derived from (seed, trial index) and writes its
// estimate to perTrial[trial], so the sequence never depends on scheduling
// or on the worker count.
func runParallel(n, trials, workers int, seed int64, perTrial []float64) {
	var (
		next = make(chan int)
		wg   sync.WaitGroup
		w    int
	)
	wg.Add(workers)
	for w = 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			// Per-worker board and buffer; trials never alias state.
			var (
				b   = board.New(n)
				buf = make([]int, 0, n)
				t   int
				est float64
			)
			for t = range next {
				est, buf = sampleTrial(b.Reset(), trialRNG(seed, t), buf)
				perTrial[t] = est
			}
		}()
	}

	var t int
	for t = 0; t < trials; t++ {
		next <- t
	}
	close(next)
	wg.Wait()
}

// Estimate runs `trials` independent randomized descents on an n×n board
// and returns their mean, the full per-trial sequence, and the average
// wall-clock time per trial.
//
// Contracts:
//   - n ≥ 0; trials ≥ 1; configured workers ≥ 1.
//   - Same (n, trials, seed) ⇒ bit-identical PerTrial in sequential mode;
//     same (n, trials, seed) ⇒ bit-identical PerTrial across all worker
//     counts in parallel mode.
//
// Errors:
//   - ErrNegativeSize, ErrNoTrials, ErrBadWorkers (fail fast, no partial
//     results).
//
// Complexity: O(trials · n²) time, O(trials + n·workers) space.
func Estimate(n, trials int, opts ...Option) (Result, error) {
	// 1. Validate input.
	if n < 0 {
		return Result{}, ErrNegativeSize
	}
	if trials <= 0 {
		return Result{}, ErrNoTrials
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Workers < 1 {
		return Result{}, ErrBadWorkers
	}

	// 3. Run all trials, timing the whole batch.
	perTrial := make([]float64, trials)
	start := time.Now()
	if o.Workers > 1 {
		runParallel(n, trials, o.Workers, o.Seed, perTrial)
	} else {
		runSequential(n, trials, o.Seed, perTrial)
	}
	elapsed := time.Since(start)

	// 4. Aggregate in trial order.
	var (
		sum float64
		t   int
	)
	for t = 0; t < trials; t++ {
		sum += perTrial[t]
	}

	return Result{
		Average:      sum / float64(trials),
		PerTrial:     perTrial,
		AvgTrialTime: elapsed / time.Duration(trials),
	}, nil
}

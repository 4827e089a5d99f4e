package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesize/backtrack"
	"github.com/katalvlaran/treesize/montecarlo"
)

func TestEstimate_Reproducible(t *testing.T) {
	first, err := montecarlo.Estimate(8, 250, montecarlo.WithSeed(42))
	require.NoError(t, err)
	second, err := montecarlo.Estimate(8, 250, montecarlo.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first.PerTrial, second.PerTrial)
	assert.Equal(t, first.Average, second.Average)
}

// TestEstimate_ZeroSeedDefault checks the seed==0 policy: omitting the seed
// still yields a fixed, reproducible stream.
func TestEstimate_ZeroSeedDefault(t *testing.T) {
	first, err := montecarlo.Estimate(6, 100)
	require.NoError(t, err)
	second, err := montecarlo.Estimate(6, 100)
	require.NoError(t, err)

	assert.Equal(t, first.PerTrial, second.PerTrial)
}

func TestEstimate_SeedsDiverge(t *testing.T) {
	first, err := montecarlo.Estimate(8, 100, montecarlo.WithSeed(1))
	require.NoError(t, err)
	second, err := montecarlo.Estimate(8, 100, montecarlo.WithSeed(2))
	require.NoError(t, err)

	assert.NotEqual(t, first.PerTrial, second.PerTrial)
}

// TestEstimate_TrialValues asserts the shape of every sample: a finite,
// integer-valued float ≥ 1 (the root always contributes 1). Individual
// samples may legitimately exceed the exact node count.
func TestEstimate_TrialValues(t *testing.T) {
	res, err := montecarlo.Estimate(8, 200, montecarlo.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, res.PerTrial, 200)

	for i, v := range res.PerTrial {
		assert.GreaterOrEqual(t, v, 1.0, "trial %d", i)
		assert.False(t, math.IsInf(v, 0), "trial %d", i)
		assert.False(t, math.IsNaN(v), "trial %d", i)
		assert.Equal(t, math.Trunc(v), v, "trial %d must be integer-valued", i)
	}
}

func TestEstimate_AverageMatchesPerTrial(t *testing.T) {
	res, err := montecarlo.Estimate(6, 123, montecarlo.WithSeed(3))
	require.NoError(t, err)

	var sum float64
	for _, v := range res.PerTrial {
		sum += v
	}
	assert.InEpsilon(t, sum/123, res.Average, 1e-12)
}

// TestEstimate_SingleQueen: one row, one column, always safe — every trial
// is exactly 1 (root) + 1 (the single placement), matching the exact count.
func TestEstimate_SingleQueen(t *testing.T) {
	res, err := montecarlo.Estimate(1, 50, montecarlo.WithSeed(42))
	require.NoError(t, err)

	exact, err := backtrack.Count(1)
	require.NoError(t, err)

	for _, v := range res.PerTrial {
		assert.Equal(t, float64(exact.Nodes), v)
	}
	assert.Equal(t, 2.0, res.Average)
}

// TestEstimate_ZeroBoard: the trivial board has no rows to descend; every
// trial is the root-only estimate 1.
func TestEstimate_ZeroBoard(t *testing.T) {
	res, err := montecarlo.Estimate(0, 10, montecarlo.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Average)
	for _, v := range res.PerTrial {
		assert.Equal(t, 1.0, v)
	}
}

// TestEstimate_DeadEnd: on the 2×2 board every descent dies at row 1
// (both columns attack), so each trial is exactly 1 + 2 = 3 — the exact
// node count.
func TestEstimate_DeadEnd(t *testing.T) {
	res, err := montecarlo.Estimate(2, 40, montecarlo.WithSeed(9))
	require.NoError(t, err)

	for i, v := range res.PerTrial {
		assert.Equal(t, 3.0, v, "trial %d", i)
	}
}

// TestEstimate_WithinFactorOfExact: a wide statistical-tolerance check
// that 1000 seeded trials land within a factor of two of the exact count.
func TestEstimate_WithinFactorOfExact(t *testing.T) {
	exact, err := backtrack.Count(4)
	require.NoError(t, err)

	res, err := montecarlo.Estimate(4, 1000, montecarlo.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, res.PerTrial, 1000)

	ref := float64(exact.Nodes)
	assert.Greater(t, res.Average, ref/2)
	assert.Less(t, res.Average, ref*2)
}

// TestEstimate_ParallelWorkerCountIndependent: in parallel mode each trial
// stream derives from (seed, trial index) only, so PerTrial must be
// bit-identical for every worker count.
func TestEstimate_ParallelWorkerCountIndependent(t *testing.T) {
	two, err := montecarlo.Estimate(8, 300,
		montecarlo.WithSeed(11), montecarlo.WithWorkers(2))
	require.NoError(t, err)
	four, err := montecarlo.Estimate(8, 300,
		montecarlo.WithSeed(11), montecarlo.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, two.PerTrial, four.PerTrial)
}

func TestEstimate_Errors(t *testing.T) {
	_, err := montecarlo.Estimate(-1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrNegativeSize)

	_, err = montecarlo.Estimate(4, 0)
	assert.ErrorIs(t, err, montecarlo.ErrNoTrials)

	_, err = montecarlo.Estimate(4, 10, montecarlo.WithWorkers(0))
	assert.ErrorIs(t, err, montecarlo.ErrBadWorkers)
}

func TestDeriveSeed_StableAndDiffuse(t *testing.T) {
	assert.Equal(t,
		montecarlo.DeriveSeed(42, 7),
		montecarlo.DeriveSeed(42, 7),
		"derivation must be a pure function")

	assert.NotEqual(t,
		montecarlo.DeriveSeed(42, 7),
		montecarlo.DeriveSeed(42, 8),
		"neighboring streams must decorrelate")
}

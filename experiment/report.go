// Package experiment — text report formatting.
package experiment

import (
	"fmt"
	"strings"
)

const ruleWidth = 70

// String renders the report as plain text: header, ground-truth block,
// one line per run, then the summary statistics against the exact count.
func (r *Report) String() string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	thin := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Monte Carlo Estimation for %d-Queens\n", r.Config.N)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Board size: %dx%d | trials/run: %d | runs: %d | seed: %d\n",
		r.Config.N, r.Config.N, r.Config.Trials, r.Config.Runs, r.Config.Seed)

	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Exact backtracking: %d nodes, %d solutions in %s\n",
		r.Exact.Nodes, r.Exact.Solutions, r.Exact.Elapsed)

	fmt.Fprintln(&b, thin)
	for i, run := range r.Runs {
		fmt.Fprintf(&b, "Run %d: avg=%.0f min=%.0f max=%.0f trial=%s\n",
			i+1, run.Average, run.Min, run.Max, run.AvgTrialTime)
	}

	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Overall average estimate: %.0f\n", r.Overall.Mean)
	fmt.Fprintf(&b, "Standard deviation:       %.0f\n", r.Overall.StdDev)
	fmt.Fprintf(&b, "Estimation error:         %.2f%%\n", r.RelativeError*100)
	fmt.Fprintf(&b, "Coefficient of variation: %.2f%%\n", r.CoefVariation*100)

	return b.String()
}

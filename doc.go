// Package treesize estimates the size of backtracking search trees by
// Monte Carlo path sampling, with the N-Queens placement problem as the
// reference instance — and verifies those estimates against exact counts.
//
// 🚀 What is treesize?
//
//	A small, deterministic library that brings together:
//		• Board primitives: per-row queen placement with O(row) safety checks
//		• Exact counting: exhaustive backtracking over all placements,
//		  reporting every visited search-tree node and every solution
//		• Monte Carlo estimation: one random descent per trial, extrapolated
//		  via the running product of branching factors (Knuth's method)
//		• Statistics: sample mean, standard deviation and relative error
//		  for comparing estimates against ground truth
//
// ✨ Why choose treesize?
//
//   - Reproducible – every random choice derives from a caller-supplied seed;
//     no time-based sources hidden anywhere
//   - Cheap – one trial costs O(n²) regardless of the factorial tree size
//   - Honest – the exact counter is always available as ground truth
//   - Extensible – functional options for seeding, time budgets and
//     parallel trial workers
//
// Everything is organized under five subpackages:
//
//	board/      — Board type, placement validator, safe-column scans
//	backtrack/  — exact node and solution counter (depth-first search)
//	montecarlo/ — randomized tree-size estimator with derived RNG streams
//	stats/      — sample statistics and relative-error helpers
//	experiment/ — run orchestration, config loading and report formatting
//
// Quick ASCII example (4×4, one of the two solutions):
//
//	. Q . .
//	. . . Q
//	Q . . .
//	. . Q .
//
// The exact 4-Queens search visits 17 nodes; a seeded estimator run
// converges on the same figure without ever enumerating the tree.
//
//	go get github.com/katalvlaran/treesize
package treesize

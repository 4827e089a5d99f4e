// Package backtrack implements the exact ground-truth counter: an
// exhaustive depth-first search over N-Queens placements that reports
// every search-tree node visited and every complete solution found.
//
// What:
//
//   - Count(n, opts...): run the full backtracking search for an n×n
//     board and return Result{Nodes, Solutions, Elapsed}.
//   - Every recursive invocation counts as one node — branching nodes,
//     dead ends, and the calls that complete a board alike.
//   - Columns are tried in ascending order, so repeated runs on the same
//     n produce identical node and solution counts.
//
// Why:
//   - The exact node count is the reference against which the Monte Carlo
//     estimator (package montecarlo) is judged; without ground truth the
//     estimates cannot be validated.
//
// Key Types & Options:
//
//   - Result: Nodes, Solutions (int64 counters), Elapsed (wall clock)
//   - Option: functional options for search behavior
//   - WithTimeLimit(d): soft time budget with sparse deadline checks;
//     expiry aborts the search with ErrTimeLimit
//
// Complexity:
//
//   - Time:   exponential in n (exhaustive search); per node O(n²) worst
//     case for the column scan with O(row) safety checks.
//   - Memory: O(n) for the board and recursion stack.
//
// Errors:
//
//   - ErrNegativeSize  board size is negative
//   - ErrTimeLimit     positive time budget exceeded before completion
//
// Edge cases:
//
//   - n == 0: the root call is the trivially complete empty placement;
//     Count returns Nodes=1, Solutions=1.
package backtrack

// Package board defines the per-row queen placement model shared by the
// exact counter and the Monte Carlo estimator.
//
// What:
//
//   - Board: an ordered per-row column assignment. Board[row] holds the
//     column of the queen committed in that row, or Unplaced.
//   - Safe: decides whether a candidate (row, col) is attacked by any
//     queen committed in an earlier row (same column or same diagonal).
//   - SafeColumns: scans a full row and collects every safe column in
//     ascending order, reusing a caller-supplied buffer.
//   - Place / Unplace / Reset: scoped placement primitives for the
//     backtracking discipline (commit, recurse, restore).
//
// Why:
//   - Both search routines (exact and stochastic) need the same conflict
//     predicate; keeping it in one leaf package guarantees they agree.
//   - The board is exclusively owned by whichever search routine is
//     running; it is a plain slice with no locking by contract.
//
// Invariants:
//
//   - During any search, only rows 0..currentRow-1 hold committed queens;
//     all later rows are Unplaced.
//   - Safe inspects only rows strictly below the candidate row; values at
//     or beyond it are ignored.
//
// Complexity:
//
//   - Safe:        Time O(row), Memory O(1)
//   - SafeColumns: Time O(n·row), Memory O(1) beyond the result buffer
//   - Place/Unplace/Reset: O(1)/O(1)/O(n)
//
// Concurrency:
//   - A Board is NOT goroutine-safe. Give each worker its own Board.
package board

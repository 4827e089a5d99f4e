// Package board - placement model and conflict predicate for N-Queens search.
//
// Design principles:
//   - Hot-path discipline: no hidden allocations; SafeColumns appends into a
//     caller-owned buffer.
//   - Safety: no panics beyond ordinary slice bounds; no logging.
//   - Exclusivity: a Board belongs to exactly one search routine at a time.
package board

// Unplaced is the sentinel column value for a row that holds no queen.
const Unplaced = -1

// Board is an ordered per-row column assignment: Board[row] is the column
// of the queen committed in that row, or Unplaced.
//
// The zero-length Board is the valid 0-Queens board.
type Board []int

// New returns a fully unplaced Board for an n×n instance.
//
// Contracts:
//   - n ≥ 0 (negative n must be rejected by the caller; see backtrack and
//     montecarlo sentinels).
//
// Complexity: O(n) time, O(n) space.
func New(n int) Board {
	b := make(Board, n)
	var row int
	for row = 0; row < n; row++ {
		b[row] = Unplaced
	}

	return b
}

// Reset restores every row to Unplaced, making b equivalent to New(len(b)).
//
// Complexity: O(n) time, O(1) space.
func (b Board) Reset() Board {
	var row int
	for row = range b {
		b[row] = Unplaced
	}

	return b
}

// Safe reports whether a queen at (row, col) is attacked by any queen
// committed in rows 0..row-1: a shared column, or a shared diagonal in
// either direction (|b[i] − col| == |i − row|). Rows at or beyond row are
// ignored, so Safe may be called mid-search on a partially filled board.
//
// Contracts:
//   - 0 ≤ row ≤ len(b); 0 ≤ col < len(b).
//
// Pure: no side effects. Complexity: O(row) time, O(1) space.
func (b Board) Safe(row, col int) bool {
	var (
		i    int
		diff int
	)
	for i = 0; i < row; i++ {
		// Column conflict.
		if b[i] == col {
			return false
		}
		// Diagonal conflict, either direction.
		diff = b[i] - col
		if diff < 0 {
			diff = -diff
		}
		if diff == row-i {
			return false
		}
	}

	return true
}

// SafeColumns appends every column of the given row that Safe approves,
// in ascending order, to dst[:0] and returns the result. Passing a buffer
// with capacity len(b) makes repeated scans allocation-free.
//
// Complexity: O(n·row) time, O(1) extra space beyond dst.
func (b Board) SafeColumns(row int, dst []int) []int {
	dst = dst[:0]
	var col int
	for col = 0; col < len(b); col++ {
		if b.Safe(row, col) {
			dst = append(dst, col)
		}
	}

	return dst
}

// Place commits a queen at (row, col). The caller must Unplace before
// exploring a sibling column, preserving the invariant that only rows
// strictly below the current search depth are populated.
//
// Complexity: O(1).
func (b Board) Place(row, col int) {
	b[row] = col
}

// Unplace restores the Unplaced sentinel at row on every exit path of a
// recursive step — the stack-discipline release paired with Place.
//
// Complexity: O(1).
func (b Board) Unplace(row int) {
	b[row] = Unplaced
}

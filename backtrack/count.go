// Package backtrack — exhaustive depth-first node counting.
//
// Rationale (succinct):
//  1. A dedicated engine struct (instead of closures over shared counters)
//     keeps hot-path state predictable and testing simple.
//  2. Every recursive call increments the node counter unconditionally,
//     so the count equals the size of the search tree a plain
//     backtracking solver would visit.
//  3. Deterministic branching: columns ascend, no randomness, identical
//     counts on every run.
//  4. Soft time limit: rare deadline checks (every 4096 nodes) keep
//     overhead negligible.
package backtrack

import (
	"time"

	"github.com/katalvlaran/treesize/board"
)

// engine holds all search state for a single Count invocation.
type engine struct {
	n     int
	brd   board.Board
	nodes int64
	sols  int64

	// Time budget.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter
	expired     bool
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// dfs visits one search-tree node at the given row and recurses into every
// safe column. Placements are fully reversed before sibling exploration.
func (e *engine) dfs(row int) {
	// Every call site counts as one node, terminal or not.
	e.nodes++

	if e.deadlineCheck() {
		e.expired = true

		return
	}

	// Terminal state: full placement reached, no further branching.
	if row == e.n {
		e.sols++

		return
	}

	var col int
	for col = 0; col < e.n; col++ {
		if e.expired {
			return
		}
		if e.brd.Safe(row, col) {
			e.brd.Place(row, col)
			e.dfs(row + 1)
			e.brd.Unplace(row)
		}
	}
}

// Count runs the exhaustive backtracking search for an n×n board and
// returns the exact number of search-tree nodes and solutions, plus the
// elapsed wall-clock time. The board and both counters are exclusively
// owned by this invocation; concurrent Count calls never interact.
//
// Contracts:
//   - n ≥ 0; negative n fails fast with ErrNegativeSize.
//   - n == 0 returns Nodes=1, Solutions=1 (the root is the trivially
//     complete empty placement).
//
// Errors:
//   - ErrNegativeSize for n < 0.
//   - ErrTimeLimit if a positive WithTimeLimit budget expires mid-search.
//
// Complexity: exponential in n; O(n) memory.
func Count(n int, opts ...Option) (Result, error) {
	// 1. Validate input.
	if n < 0 {
		return Result{}, ErrNegativeSize
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Engine initialization.
	var e engine
	e.n = n
	e.brd = board.New(n)
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	// 4. Run the search.
	start := time.Now()
	e.dfs(0)
	elapsed := time.Since(start)

	// 5. Finalization.
	if e.expired {
		return Result{}, ErrTimeLimit
	}

	return Result{Nodes: e.nodes, Solutions: e.sols, Elapsed: elapsed}, nil
}

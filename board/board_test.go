package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treesize/board"
)

func TestNew_AllUnplaced(t *testing.T) {
	b := board.New(5)
	assert.Len(t, b, 5)
	for row := range b {
		assert.Equal(t, board.Unplaced, b[row])
	}
}

func TestNew_ZeroSize(t *testing.T) {
	b := board.New(0)
	assert.Len(t, b, 0)
}

func TestSafe_EmptyBoard(t *testing.T) {
	b := board.New(4)
	// With no queens committed, every column of row 0 is safe.
	for col := 0; col < 4; col++ {
		assert.True(t, b.Safe(0, col))
	}
}

func TestSafe_ColumnConflict(t *testing.T) {
	b := board.New(4)
	b.Place(0, 2)
	assert.False(t, b.Safe(2, 2), "same column must conflict")
	assert.True(t, b.Safe(2, 1), "adjacent column two rows down is off-diagonal")
}

func TestSafe_DiagonalConflicts(t *testing.T) {
	b := board.New(4)
	b.Place(0, 1)
	// Both diagonal directions from (0,1).
	assert.False(t, b.Safe(1, 0))
	assert.False(t, b.Safe(1, 2))
	assert.False(t, b.Safe(2, 3))
	// Knight-style offsets do not conflict.
	assert.True(t, b.Safe(2, 0))
}

func TestSafe_IgnoresLaterRows(t *testing.T) {
	b := board.New(4)
	b.Place(3, 1)
	// The queen in row 3 is beyond row 1 and must be invisible to it.
	assert.True(t, b.Safe(1, 1))
}

// TestSafe_ReflectionSymmetry checks that relabeling columns c → n−1−c,
// applied consistently to the board and the candidate, never changes the
// verdict of Safe.
func TestSafe_ReflectionSymmetry(t *testing.T) {
	const n = 6
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 200; iter++ {
		// Arbitrary partial assignment of rows 0..depth-1; Safe does not
		// require prior placements to be mutually consistent.
		depth := rng.Intn(n)
		b := board.New(n)
		mirror := board.New(n)
		for row := 0; row < depth; row++ {
			col := rng.Intn(n)
			b.Place(row, col)
			mirror.Place(row, n-1-col)
		}

		for col := 0; col < n; col++ {
			assert.Equal(t,
				b.Safe(depth, col),
				mirror.Safe(depth, n-1-col),
				"iter=%d depth=%d col=%d", iter, depth, col)
		}
	}
}

func TestSafeColumns_MatchesSafe(t *testing.T) {
	b := board.New(5)
	b.Place(0, 0)
	b.Place(1, 2)

	got := b.SafeColumns(2, nil)

	want := make([]int, 0, 5)
	for col := 0; col < 5; col++ {
		if b.Safe(2, col) {
			want = append(want, col)
		}
	}
	assert.Equal(t, want, got)
	assert.IsIncreasing(t, got)
}

func TestSafeColumns_ReusesBuffer(t *testing.T) {
	b := board.New(4)
	buf := make([]int, 0, 4)

	got := b.SafeColumns(0, buf)
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	// A second scan through the same buffer must not retain stale entries.
	b.Place(0, 0)
	got = b.SafeColumns(1, got)
	assert.Equal(t, []int{2, 3}, got)
}

func TestPlaceUnplaceReset(t *testing.T) {
	b := board.New(3)
	b.Place(1, 2)
	assert.Equal(t, 2, b[1])

	b.Unplace(1)
	assert.Equal(t, board.Unplaced, b[1])

	b.Place(0, 1)
	b.Place(2, 0)
	b.Reset()
	assert.Equal(t, board.New(3), b)
}

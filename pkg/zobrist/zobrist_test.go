package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/zobrist"
)

func newPosition(t *testing.T, size int, moves ...board.Move) *board.Board {
	t.Helper()
	b, err := board.NewBoard(size, size)
	require.NoError(t, err)
	for _, m := range moves {
		require.NoError(t, b.Play(m))
	}
	return b
}

func TestHashIsDeterministic(t *testing.T) {
	table := zobrist.NewTable(9)
	b := newPosition(t, 9, board.Move{Color: board.Black, X: 2, Y: 3})

	h1 := table.Hash(b)
	h2 := table.Hash(b)
	assert.Equal(t, h1, h2)
}

func TestHashDistinguishesDifferentPositions(t *testing.T) {
	table := zobrist.NewTable(9)
	empty := newPosition(t, 9)
	occupied := newPosition(t, 9, board.Move{Color: board.Black, X: 4, Y: 4})

	assert.NotEqual(t, table.Hash(empty), table.Hash(occupied))
}

func TestHashIsInvariantUnderRotationAndMirror(t *testing.T) {
	table := zobrist.NewTable(9)

	original := newPosition(t, 9,
		board.Move{Color: board.Black, X: 2, Y: 3},
		board.Move{Color: board.White, X: 6, Y: 2},
	)
	// Rotate the same position 90 degrees: (x,y) -> (size-1-y, x).
	rotated := newPosition(t, 9,
		board.Move{Color: board.Black, X: 9 - 1 - 3, Y: 2},
		board.Move{Color: board.White, X: 9 - 1 - 2, Y: 6},
	)
	// Mirror left-right: (x,y) -> (size-1-x, y).
	mirrored := newPosition(t, 9,
		board.Move{Color: board.Black, X: 9 - 1 - 2, Y: 3},
		board.Move{Color: board.White, X: 9 - 1 - 6, Y: 2},
	)

	want := table.Hash(original)
	assert.Equal(t, want, table.Hash(rotated))
	assert.Equal(t, want, table.Hash(mirrored))
}

func TestHashIsInvariantUnderColorSwap(t *testing.T) {
	table := zobrist.NewTable(9)

	original := newPosition(t, 9,
		board.Move{Color: board.Black, X: 2, Y: 3},
		board.Move{Color: board.White, X: 6, Y: 2},
	)
	// A color swap also swaps the side to move: black opens with a pass so
	// that white is to move once the swapped stones are down.
	swapped := newPosition(t, 9,
		board.Move{Color: board.Pass},
		board.Move{Color: board.White, X: 2, Y: 3},
		board.Move{Color: board.Black, X: 6, Y: 2},
	)

	assert.Equal(t, table.Hash(original), table.Hash(swapped))
}

func TestHashDistinguishesPassStateAtSameStones(t *testing.T) {
	table := zobrist.NewTable(9)

	// Both positions have an empty board; passing changes neither the
	// tile grid nor the ko cell, so any hash difference must come from
	// the turn tag (side to move and pending-pass state both flip).
	noPass := newPosition(t, 9)
	afterPass := newPosition(t, 9, board.Move{Color: board.Pass})

	assert.NotEqual(t, table.Hash(noPass), table.Hash(afterPass))
}

func TestHashOfCenterStoneIsSelfSymmetric(t *testing.T) {
	table := zobrist.NewTable(9)
	center := newPosition(t, 9, board.Move{Color: board.Black, X: 4, Y: 4})
	quarterTurn := newPosition(t, 9, board.Move{Color: board.Black, X: 9 - 1 - 4, Y: 4})

	assert.Equal(t, table.Hash(center), table.Hash(quarterTurn))
}

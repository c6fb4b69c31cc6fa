package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/game"
)

func TestPlainDelegatesToBoard(t *testing.T) {
	g, err := game.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.Play(board.Move{Color: board.Black, X: 2, Y: 2}))
	assert.Equal(t, board.White, g.ToMove())
	assert.False(t, g.GameOver())
}

func TestPlainHasNoHistory(t *testing.T) {
	g, err := game.New(5, 5)
	require.NoError(t, err)
	assert.True(t, g.IsCurrent())
	assert.False(t, g.Undo())
	assert.False(t, g.Redo())
}

func TestWithHistoryUndoRedo(t *testing.T) {
	base, err := game.New(5, 5)
	require.NoError(t, err)
	h := game.NewWithHistory(base)

	require.NoError(t, h.Play(board.Move{Color: board.Black, X: 0, Y: 0}))
	require.NoError(t, h.Play(board.Move{Color: board.White, X: 1, Y: 1}))
	assert.True(t, h.IsCurrent())

	assert.True(t, h.Undo())
	assert.False(t, h.IsCurrent())
	assert.Equal(t, board.White, h.ToMove()) // back to right after the first move

	assert.True(t, h.Undo())
	assert.Equal(t, board.Black, h.ToMove()) // back to the empty board
	assert.False(t, h.Undo())                // nothing further to undo

	assert.True(t, h.Redo())
	assert.True(t, h.Redo())
	assert.True(t, h.IsCurrent())
	assert.False(t, h.Redo())
	assert.Equal(t, board.Black, h.ToMove())
}

func TestWithHistoryPlayTruncatesRedoTail(t *testing.T) {
	base, err := game.New(5, 5)
	require.NoError(t, err)
	h := game.NewWithHistory(base)

	require.NoError(t, h.Play(board.Move{Color: board.Black, X: 0, Y: 0}))
	require.NoError(t, h.Play(board.Move{Color: board.White, X: 1, Y: 1}))
	h.Undo()

	require.NoError(t, h.Play(board.Move{Color: board.White, X: 4, Y: 4}))
	assert.True(t, h.IsCurrent())
	assert.False(t, h.Redo())
}

func TestWithRecordingCapturesPlayedMoves(t *testing.T) {
	base, err := game.New(5, 5)
	require.NoError(t, err)
	r := game.NewWithRecording(base)

	m1 := board.Move{Color: board.Black, X: 0, Y: 0}
	m2 := board.Move{Color: board.White, X: 1, Y: 1}
	require.NoError(t, r.Play(m1))
	require.NoError(t, r.Play(m2))

	assert.Equal(t, []board.Move{m1, m2}, r.Moves())

	// A rejected move (off-turn) must not be recorded.
	err = r.Play(board.Move{Color: board.White, X: 2, Y: 2})
	assert.Error(t, err)
	assert.Equal(t, []board.Move{m1, m2}, r.Moves())
}

func TestWithRecordingOnPlainHasNoUndo(t *testing.T) {
	base, err := game.New(5, 5)
	require.NoError(t, err)
	r := game.NewWithRecording(base)
	require.NoError(t, r.Play(board.Move{Color: board.Black, X: 0, Y: 0}))
	assert.False(t, r.Undo()) // Plain never has history to undo
	assert.Equal(t, []board.Move{{Color: board.Black, X: 0, Y: 0}}, r.Moves())
}

func TestWithNamesReturnsConfiguredNames(t *testing.T) {
	base, err := game.New(9, 9)
	require.NoError(t, err)
	n := game.NewWithNames(base, "Lee Sedol", "AlphaGo")

	assert.Equal(t, "Lee Sedol", n.Name(board.Black))
	assert.Equal(t, "AlphaGo", n.Name(board.White))
}

func TestDecoratorsCompose(t *testing.T) {
	base, err := game.New(5, 5)
	require.NoError(t, err)
	g := game.NewWithNames(game.NewWithRecording(game.NewWithHistory(base)), "B", "W")

	require.NoError(t, g.Play(board.Move{Color: board.Black, X: 0, Y: 0}))
	assert.Equal(t, "B", g.Name(board.Black))
	assert.True(t, g.Undo())
	assert.Equal(t, board.Black, g.ToMove())
}

func TestCloneIsIndependent(t *testing.T) {
	base, err := game.New(5, 5)
	require.NoError(t, err)
	g := game.NewWithHistory(base)
	require.NoError(t, g.Play(board.Move{Color: board.Black, X: 0, Y: 0}))

	clone := g.Clone().(*game.WithHistory)
	require.NoError(t, clone.Play(board.Move{Color: board.White, X: 1, Y: 1}))

	assert.Equal(t, board.White, g.ToMove())
	assert.Equal(t, board.Black, clone.ToMove())
}

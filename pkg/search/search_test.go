package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/game"
	"github.com/sumiyama/weiqi/pkg/search"
)

func TestFindMoveRejectsFinishedGame(t *testing.T) {
	g, err := game.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Play(board.Move{Color: board.Pass}))
	require.NoError(t, g.Play(board.Move{Color: board.Pass}))
	require.True(t, g.GameOver())

	_, _, err = search.Searcher{MaxDepth: 2}.FindMove(context.Background(), g)
	assert.ErrorIs(t, err, search.ErrGameOver)
}

func TestFindMoveDepthZeroReturnsALegalMoveWithoutExpanding(t *testing.T) {
	// Depth 0 evaluates only the root position itself — one node — and
	// still must hand back a playable move rather than the zero Move.
	g, err := game.New(5, 5)
	require.NoError(t, err)

	move, nodes, err := search.Searcher{MaxDepth: 0}.FindMove(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, search.NodeCount(1), nodes)
	require.NoError(t, g.Clone().Play(move), "FindMove must return a legal move")
}

func TestFindMoveIsDeterministic(t *testing.T) {
	g, err := game.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.Play(board.Move{Color: board.Black, X: 2, Y: 2}))

	s := search.Searcher{MaxDepth: 2}
	m1, n1, err := s.FindMove(context.Background(), g.Clone())
	require.NoError(t, err)
	m2, n2, err := s.FindMove(context.Background(), g.Clone())
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
	assert.Equal(t, n1, n2)
}

// TestFindMoveFindsAvailableCapture sets up a position where black has
// exactly one legal move that captures a stone versus several that
// don't, then checks the searcher's chosen move is the capture: with
// MaxDepth=1 the comparison is a direct one-ply evaluation, and a
// capture strictly increases the mover's score here (it removes an
// opposing stone and converts the board's only other empty region from
// neutral to bordered by a single color), so it must be the unique
// maximizer.
func TestFindMoveFindsAvailableCapture(t *testing.T) {
	g, err := game.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.Play(board.Move{Color: board.Black, X: 1, Y: 2}))
	require.NoError(t, g.Play(board.Move{Color: board.White, X: 2, Y: 2})) // 1 liberty: (2,1)
	require.NoError(t, g.Play(board.Move{Color: board.Black, X: 0, Y: 0}))
	require.NoError(t, g.Play(board.Move{Color: board.Pass}))

	move, _, err := search.Searcher{MaxDepth: 1}.FindMove(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, board.Move{Color: board.Black, X: 2, Y: 1}, move)
}

func TestFindMoveHonorsCancellation(t *testing.T) {
	g, err := game.New(9, 9)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, _, err = search.Searcher{MaxDepth: 6}.FindMove(ctx, g)
	assert.Error(t, err)
}

// Package search implements a fixed-depth minimax searcher with
// alpha-beta pruning over any game.Game.
package search

import (
	"context"
	"errors"
	"math"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/game"
)

// ErrGameOver is returned by FindMove when the game has already ended.
var ErrGameOver = errors.New("weiqi/search: game is already over")

// NodeCount is the number of positions visited during a search.
type NodeCount uint64

// Searcher finds a move by alpha-beta minimax search to a fixed depth.
// It keeps no transposition table: a fresh search runs from scratch on
// every call.
type Searcher struct {
	// MaxDepth is the number of plies to search. A MaxDepth of 0 does
	// not look at any candidate move at all: it evaluates the current
	// position once and FindMove returns an arbitrary legal move.
	MaxDepth int
}

// resMask returns, as a uint32 bit pattern, the operand that turns the
// XOR-then-add-minPlayer idiom below into a conditional negation: all
// ones when White (the minimizing player) is to move, zero when Black
// is. (x ^ 0xffffffff) + 1 is two's complement negation of x, so this
// flips sign exactly when minPlayer is true and is the identity
// otherwise, without the "negating the most negative value overflows"
// hazard that motivates this trick in a language with fixed-width
// wraparound integers.
func resMask(toMove board.Color) uint32 {
	if toMove == board.White {
		return 0xffffffff
	}
	return 0
}

// orient reorients a board.Score()-style value (always from Black's
// point of view) into "higher is better for toMove", or back again —
// (v ^ -1) + 1 is exact negation, so the transform is its own inverse,
// matching how one level of search both consumes a child's
// returned value and produces its own in the same convention.
func orient(v int, toMove board.Color) int {
	mask := resMask(toMove)
	minPlayer := 0
	if mask != 0 {
		minPlayer = 1
	}
	return int(int32(v)^int32(mask)) + minPlayer
}

// FindMove searches the lines reachable from g to MaxDepth plies, skipping
// those alpha-beta cutoffs prune, and returns the best move for the side
// to move together with the number of positions visited. g is never mutated: every recursive step operates
// on a freshly cloned position, since board.Board intentionally has no
// generic single-ply undo (see game.WithHistory for multi-step undo via
// whole-position snapshots). The search polls ctx for cancellation
// between sibling moves at every ply.
//
// At MaxDepth 0 the root itself is the only position evaluated — the
// explored-node count is 1 — and moveSearch's leaf branch returns the
// zero Move along with that evaluation, since a leaf has no reason to
// pick among its own children. FindMove recognizes that zero Move and
// substitutes an arbitrary legal one, so the contract at the top level
// is always "return a legal move", never "return a move only if the
// search went at least one ply deep".
func (s Searcher) FindMove(ctx context.Context, g game.Game) (board.Move, NodeCount, error) {
	if g.GameOver() {
		return board.Move{}, 0, ErrGameOver
	}

	var cnt uint64
	var cancelled error
	best, _ := moveSearch(ctx, g, math.MinInt32, math.MaxInt32, s.MaxDepth, &cnt, &cancelled)
	if cancelled != nil {
		return board.Move{}, NodeCount(cnt), cancelled
	}
	if best.Color == board.Empty {
		best = firstLegalMove(g)
	}

	logw.Debugf(ctx, "search: explored %d nodes, chose %v", cnt, best)
	return best, NodeCount(cnt), nil
}

// firstLegalMove returns the first move ForEachLegalMove offers. g must
// have at least one legal move, which holds for any game that is not
// GameOver, since passing is always legal.
func firstLegalMove(g game.Game) board.Move {
	var m board.Move
	g.ForEachLegalMove(func(candidate board.Move) bool {
		m = candidate
		return false
	})
	return m
}

// moveSearch mirrors a classic minimax/alpha-beta walk: at each node it
// tries every legal move, recurses with the window negated the way
// negamax does, then reorients the child's return value into this
// node's own perspective before comparing. It returns the best move
// found at this node (the zero Move if depth is exhausted or the game
// is over, since a leaf has nothing to choose among) and its value.
func moveSearch(ctx context.Context, g game.Game, alpha, beta, depth int, cnt *uint64, cancelled *error) (board.Move, int) {
	if depth <= 0 || g.GameOver() {
		*cnt++
		return board.Move{}, g.Score()
	}
	if *cancelled == nil && contextx.IsCancelled(ctx) {
		*cancelled = ctx.Err()
	}

	toMove := g.ToMove()
	bestVal := math.MinInt32
	var bestMove board.Move
	haveMove := false

	g.ForEachLegalMove(func(m board.Move) bool {
		if *cancelled != nil {
			return false
		}
		child := g.Clone()
		if err := child.Play(m); err != nil {
			// A candidate from ForEachLegalMove must be playable; a
			// rejection here means legality checking and move
			// application disagree with each other.
			panic(err)
		}

		_, childVal := moveSearch(ctx, child, -beta, -alpha, depth-1, cnt, cancelled)
		res := orient(childVal, toMove)

		if res > bestVal {
			if res > alpha {
				alpha = res
			}
			bestVal = res
			bestMove = m
			haveMove = true
		}
		return alpha < beta && *cancelled == nil
	})

	if !haveMove {
		// No legal move was offered at all; fall back to the static
		// score so a game that is somehow not GameOver but also has no
		// candidates (should not happen given pass is always legal)
		// still returns a sane value.
		return board.Move{}, g.Score()
	}
	return bestMove, orient(bestVal, toMove)
}

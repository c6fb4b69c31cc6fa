// Package game provides a facade over pkg/board with optional,
// independently composable add-ons: move history with undo/redo, SGF
// move recording, and player names. Each add-on wraps another Game by
// holding a reference to it (has-a), not by embedding or inheriting, so
// any combination can be layered in any order.
package game

import "github.com/sumiyama/weiqi/pkg/board"

// Game is the common interface implemented by a plain board-backed game
// and by every decorator in this package.
type Game interface {
	Width() int
	Height() int
	Turn() int
	ToMove() board.Color
	GameOver() bool
	Score() int
	Play(m board.Move) error

	// Undo and Redo step backward and forward through move history, if
	// any is kept. They report whether the step happened: an
	// implementation with no history (Plain) always returns false. Undo
	// leaves the current position unreachable for Play purposes until a
	// matching Redo, but a subsequent Play instead discards the
	// abandoned redo tail.
	Undo() bool
	Redo() bool
	// IsCurrent reports whether the game is at the most recent position
	// it has ever reached, i.e. whether Redo would return false.
	IsCurrent() bool

	ForEachLegalMove(visit func(board.Move) bool)
	Clone() Game
	ConsistencyCheck() error
	String() string
}

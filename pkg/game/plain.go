package game

import "github.com/sumiyama/weiqi/pkg/board"

// Plain is a Game backed directly by a *board.Board, with no history,
// recording, or naming add-ons. It has nothing to undo or redo.
type Plain struct {
	b *board.Board
}

// NewPlain wraps an already-constructed board.
func NewPlain(b *board.Board) *Plain {
	return &Plain{b: b}
}

// New allocates a fresh board of the given size and wraps it.
func New(width, height int) (*Plain, error) {
	b, err := board.NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return NewPlain(b), nil
}

func (p *Plain) Width() int                                  { return p.b.Width() }
func (p *Plain) Height() int                                 { return p.b.Height() }
func (p *Plain) Turn() int                                   { return p.b.Turn() }
func (p *Plain) ToMove() board.Color                         { return p.b.ToMove() }
func (p *Plain) GameOver() bool                              { return p.b.GameOver() }
func (p *Plain) Score() int                                  { return p.b.Score() }
func (p *Plain) Play(m board.Move) error                     { return p.b.Play(m) }
func (p *Plain) Undo() bool                                  { return false }
func (p *Plain) Redo() bool                                  { return false }
func (p *Plain) IsCurrent() bool                              { return true }
func (p *Plain) ForEachLegalMove(visit func(board.Move) bool) { p.b.ForEachLegalMove(visit) }
func (p *Plain) ConsistencyCheck() error                      { return p.b.ConsistencyCheck() }
func (p *Plain) String() string                               { return p.b.String() }

// Clone returns an independent copy.
func (p *Plain) Clone() Game {
	return &Plain{b: p.b.Clone()}
}

// Board exposes the underlying board for callers that need board-level
// detail (TileAt, Captures, KoVertex) not part of the Game interface.
func (p *Plain) Board() *board.Board { return p.b }

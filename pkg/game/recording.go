package game

import "github.com/sumiyama/weiqi/pkg/board"

// WithRecording wraps a Game and keeps the move list played through it,
// in order, suitable for writing out as an SGF move sequence.
type WithRecording struct {
	parent Game
	moves  []board.Move
}

// NewWithRecording wraps parent with an empty move log.
func NewWithRecording(parent Game) *WithRecording {
	return &WithRecording{parent: parent}
}

// Play delegates m to the wrapped game and records it only once the
// wrapped game accepts it, so a rejected move is never recorded. Undo pops the most recently recorded move from the
// log to stay in sync with the wrapped game's own undo.
func (r *WithRecording) Play(m board.Move) error {
	if err := r.parent.Play(m); err != nil {
		return err
	}
	r.moves = append(r.moves, m)
	return nil
}

func (r *WithRecording) Undo() bool {
	if !r.parent.Undo() {
		return false
	}
	if len(r.moves) > 0 {
		r.moves = r.moves[:len(r.moves)-1]
	}
	return true
}

// Moves returns the sequence of moves played so far, oldest first. The
// returned slice is a copy; callers may retain and mutate it freely.
func (r *WithRecording) Moves() []board.Move {
	out := make([]board.Move, len(r.moves))
	copy(out, r.moves)
	return out
}

func (r *WithRecording) Width() int                                 { return r.parent.Width() }
func (r *WithRecording) Height() int                                { return r.parent.Height() }
func (r *WithRecording) Turn() int                                  { return r.parent.Turn() }
func (r *WithRecording) ToMove() board.Color                        { return r.parent.ToMove() }
func (r *WithRecording) GameOver() bool                             { return r.parent.GameOver() }
func (r *WithRecording) Score() int                                 { return r.parent.Score() }
func (r *WithRecording) Redo() bool                                 { return r.parent.Redo() }
func (r *WithRecording) IsCurrent() bool                            { return r.parent.IsCurrent() }
func (r *WithRecording) ForEachLegalMove(visit func(board.Move) bool) { r.parent.ForEachLegalMove(visit) }
func (r *WithRecording) ConsistencyCheck() error                    { return r.parent.ConsistencyCheck() }
func (r *WithRecording) String() string                             { return r.parent.String() }

// Clone copies both the wrapped game and the move log recorded so far.
func (r *WithRecording) Clone() Game {
	out := &WithRecording{parent: r.parent.Clone(), moves: make([]board.Move, len(r.moves))}
	copy(out.moves, r.moves)
	return out
}

package game

import "github.com/sumiyama/weiqi/pkg/board"

// WithHistory adds undo/redo navigation over a sequence of cloned
// snapshots to any Game. Moves played while not at the most recent
// snapshot truncate the redo tail before recording the new move, the
// usual "branching history" behavior of an editor's undo stack.
type WithHistory struct {
	current Game
	history []Game
	hIdx    int
}

// NewWithHistory wraps parent, recording its current state as the first
// history entry.
func NewWithHistory(parent Game) *WithHistory {
	return &WithHistory{current: parent, history: []Game{parent.Clone()}, hIdx: 0}
}

// IsCurrent reports whether the wrapped game is at the most recent
// recorded snapshot (i.e. there is nothing to redo).
func (h *WithHistory) IsCurrent() bool {
	return h.hIdx+1 == len(h.history)
}

// Play plays m on the underlying game. If history had been rewound by
// Undo, the abandoned future is discarded before the new move and its
// resulting snapshot are appended.
func (h *WithHistory) Play(m board.Move) error {
	if err := h.current.Play(m); err != nil {
		return err
	}
	h.history = append(h.history[:h.hIdx+1], h.current.Clone())
	h.hIdx++
	return nil
}

// Undo steps back one move. It returns false and does nothing at the
// start of history.
func (h *WithHistory) Undo() bool {
	if h.hIdx == 0 {
		return false
	}
	h.hIdx--
	h.current = h.history[h.hIdx].Clone()
	return true
}

// Redo re-applies a previously undone move. It returns false and does
// nothing when IsCurrent.
func (h *WithHistory) Redo() bool {
	if h.hIdx+1 >= len(h.history) {
		return false
	}
	h.hIdx++
	h.current = h.history[h.hIdx].Clone()
	return true
}

func (h *WithHistory) Width() int                                 { return h.current.Width() }
func (h *WithHistory) Height() int                                { return h.current.Height() }
func (h *WithHistory) Turn() int                                  { return h.current.Turn() }
func (h *WithHistory) ToMove() board.Color                        { return h.current.ToMove() }
func (h *WithHistory) GameOver() bool                             { return h.current.GameOver() }
func (h *WithHistory) Score() int                                 { return h.current.Score() }
func (h *WithHistory) ForEachLegalMove(visit func(board.Move) bool) { h.current.ForEachLegalMove(visit) }
func (h *WithHistory) ConsistencyCheck() error                    { return h.current.ConsistencyCheck() }
func (h *WithHistory) String() string                             { return h.current.String() }

// Clone copies the current position and the full undo/redo history.
func (h *WithHistory) Clone() Game {
	out := &WithHistory{current: h.current.Clone(), hIdx: h.hIdx}
	out.history = make([]Game, len(h.history))
	for i, g := range h.history {
		out.history[i] = g.Clone()
	}
	return out
}

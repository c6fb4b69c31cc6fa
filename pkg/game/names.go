package game

import "github.com/sumiyama/weiqi/pkg/board"

// WithNames attaches player names to a Game for display and SGF export.
// It is a has-a wrapper rather than the original's subclass, consistent
// with every other add-on in this package: holding names alongside a
// game, not inheriting from one, is what makes it composable with
// WithHistory and WithRecording in any order.
type WithNames struct {
	parent Game
	black  string
	white  string
}

// NewWithNames wraps parent with the given player names. An empty name
// means "unknown" to callers that format it for display.
func NewWithNames(parent Game, black, white string) *WithNames {
	return &WithNames{parent: parent, black: black, white: white}
}

// Name returns the name recorded for c, which must be board.Black or
// board.White.
func (n *WithNames) Name(c board.Color) string {
	switch c {
	case board.Black:
		return n.black
	case board.White:
		return n.white
	default:
		panic("weiqi/game: Name requires a stone color")
	}
}

func (n *WithNames) Width() int                                 { return n.parent.Width() }
func (n *WithNames) Height() int                                { return n.parent.Height() }
func (n *WithNames) Turn() int                                  { return n.parent.Turn() }
func (n *WithNames) ToMove() board.Color                        { return n.parent.ToMove() }
func (n *WithNames) GameOver() bool                             { return n.parent.GameOver() }
func (n *WithNames) Score() int                                 { return n.parent.Score() }
func (n *WithNames) Play(m board.Move) error                    { return n.parent.Play(m) }
func (n *WithNames) Undo() bool                                 { return n.parent.Undo() }
func (n *WithNames) Redo() bool                                 { return n.parent.Redo() }
func (n *WithNames) IsCurrent() bool                             { return n.parent.IsCurrent() }
func (n *WithNames) ForEachLegalMove(visit func(board.Move) bool) { n.parent.ForEachLegalMove(visit) }
func (n *WithNames) ConsistencyCheck() error                    { return n.parent.ConsistencyCheck() }
func (n *WithNames) String() string                             { return n.parent.String() }

// Clone copies the wrapped game; names are immutable and shared as-is.
func (n *WithNames) Clone() Game {
	return &WithNames{parent: n.parent.Clone(), black: n.black, white: n.white}
}

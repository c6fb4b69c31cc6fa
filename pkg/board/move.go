package board

import "fmt"

// Move is a single play: a stone of Color at (X, Y), or a pass when
// Color is Pass (in which case X and Y are ignored).
type Move struct {
	Color Color
	X, Y  int
}

// IsPass reports whether m represents a pass.
func (m Move) IsPass() bool {
	return m.Color == Pass
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%s(%d,%d)", m.Color, m.X, m.Y)
}

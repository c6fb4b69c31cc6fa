package board

import (
	"fmt"
	"strings"
)

// String renders the board as plain text, one row per line from the top
// (y = 0) down, '.' for empty, 'X' for black, 'O' for white.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			switch b.TileAt(x, y) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DumpLiberties returns a debug string naming each string's color, size,
// and current liberty count. Intended for tests, not for SGF or UI
// output.
func (b *Board) DumpLiberties() string {
	var sb strings.Builder
	for sid, g := range b.strings {
		if g.size == 0 {
			continue
		}
		fmt.Fprintf(&sb, "string %d: %s size=%d liberties=%d tracked=%v\n", sid, g.color, g.size, g.liberties, g.tracked)
	}
	return sb.String()
}

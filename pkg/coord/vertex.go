// Package coord parses and formats board coordinates the way a human
// types them at a prompt: a column letter (skipping "I", the Go
// convention that avoids confusion with "1") followed by a 1-based row
// number, or the literal "pass".
package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sumiyama/weiqi/pkg/board"
)

// ErrMalformed is returned by ParseVertex when s is neither "pass" nor
// a recognizable column-letter/row-number coordinate.
var ErrMalformed = errors.New("weiqi/coord: malformed vertex")

// columnLetters lists valid column letters in order; index 0 is unused
// so that a letter's index in this string equals its 1-based column.
const columnLetters = "_ABCDEFGHJKLMNOPQRSTUVWXYZ"

// Vertex is a 1-based board coordinate, or the zero value to mean pass.
type Vertex struct {
	X, Y int
}

// Pass is the vertex representing a pass.
var Pass = Vertex{}

// IsPass reports whether v represents a pass.
func (v Vertex) IsPass() bool {
	return v.X == 0 && v.Y == 0
}

// IsValid reports whether v is a legal coordinate on a board of the
// given size, or a pass.
func (v Vertex) IsValid(size int) bool {
	return v.IsPass() || (v.X >= 1 && v.X <= size && v.Y >= 1 && v.Y <= size)
}

// String formats v the way it is typed at a prompt, e.g. "Q16".
func (v Vertex) String() string {
	if v.IsPass() {
		return "pass"
	}
	if v.X < 1 || v.X >= len(columnLetters) || v.Y < 1 {
		return fmt.Sprintf("invalid(%d,%d)", v.X, v.Y)
	}
	return fmt.Sprintf("%c%d", columnLetters[v.X], v.Y)
}

// ParseVertex reads a vertex from its human-typed form: a column letter
// (case-insensitive, "I" excluded) and a row number, or "pass". boardSize
// bounds the row/column range a non-pass vertex must fall within.
func ParseVertex(boardSize int, s string) (Vertex, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "PASS" {
		return Pass, nil
	}
	if len(up) < 2 {
		return Vertex{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	x := strings.IndexByte(columnLetters, up[0])
	if x < 1 {
		return Vertex{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	y, err := strconv.Atoi(up[1:])
	if err != nil || y < 1 {
		return Vertex{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	v := Vertex{X: x, Y: y}
	if !v.IsValid(boardSize) {
		return Vertex{}, fmt.Errorf("%w: %q is outside a %d-wide board", ErrMalformed, s, boardSize)
	}
	return v, nil
}

// ToMove converts v to a board.Move of the given color on a board of
// height, translating from this package's 1-based, bottom-origin row
// numbering to the board package's 0-based, top-origin (X, Y).
func (v Vertex) ToMove(color board.Color, height int) board.Move {
	if v.IsPass() {
		return board.Move{Color: board.Pass}
	}
	return board.Move{Color: color, X: v.X - 1, Y: height - v.Y}
}

// FromXY converts 0-based board coordinates, as used by board.Board,
// into this package's 1-based, bottom-origin Vertex.
func FromXY(x, y, height int) Vertex {
	return Vertex{X: x + 1, Y: height - y}
}

// Package sgf reads and writes the small subset of SGF (Smart Game
// Format) needed to record a move sequence: the PB/PW player-name
// properties and a flat list of B[xy]/W[xy] moves, where x and y are
// each a single lowercase letter giving a 0-based board coordinate
// ('a' is column/row 0). An empty bracket, e.g. B[], is a pass.
package sgf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sumiyama/weiqi/pkg/board"
)

// Record is the parsed content of an SGF file: optional player names
// and the ordered list of moves that follow them.
type Record struct {
	Black string
	White string
	Moves []board.Move
}

// Read parses SGF game text from r. Only PB, PW, B, and W properties
// are recognized; any other property is ignored, matching a lenient
// reader that tolerates SGF produced by other tools. Properties are
// scanned with a small hand-written cursor rather than a single regular
// expression, since SGF property values may themselves contain an
// escaped "]" that a naive `[^\]]*` class would stop short of.
func Read(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("weiqi/sgf: read: %w", err)
	}

	g := &Record{}
	for i := 0; i < len(data); {
		for i < len(data) && !isPropertyStart(data[i]) {
			i++
		}
		keyStart := i
		for i < len(data) && data[i] >= 'A' && data[i] <= 'Z' {
			i++
		}
		key := string(data[keyStart:i])
		if key == "" || i >= len(data) || data[i] != '[' {
			if i < len(data) {
				i++
			}
			continue
		}

		i++ // skip '['
		valStart := i
		for i < len(data) && data[i] != ']' {
			if data[i] == '\\' && i+1 < len(data) {
				i++
			}
			i++
		}
		val := unescape(string(data[valStart:i]))
		if i < len(data) {
			i++ // skip ']'
		}

		switch key {
		case "PB":
			g.Black = val
		case "PW":
			g.White = val
		case "B", "W":
			mv, err := decodeMove(key, val)
			if err != nil {
				return nil, err
			}
			g.Moves = append(g.Moves, mv)
		}
	}
	return g, nil
}

// isPropertyStart reports whether c could begin an SGF property key.
func isPropertyStart(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func unescape(s string) string {
	return strings.NewReplacer(`\]`, "]", `\\`, `\`).Replace(s)
}

func decodeMove(prop, val string) (board.Move, error) {
	color := board.Black
	if prop == "W" {
		color = board.White
	}
	if val == "" {
		return board.Move{Color: board.Pass}, nil
	}
	if len(val) != 2 {
		return board.Move{}, fmt.Errorf("weiqi/sgf: malformed coordinate %q", val)
	}
	x, y := int(val[0]-'a'), int(val[1]-'a')
	if x < 0 || y < 0 {
		return board.Move{}, fmt.Errorf("weiqi/sgf: malformed coordinate %q", val)
	}
	return board.Move{Color: color, X: x, Y: y}, nil
}

// Write emits rec as an SGF game record to w. Each move's coordinate is
// a single lowercase letter per axis, taken directly from board.Move's
// 0-based (X, Y); a pass is an empty bracket. Played, if non-zero,
// overrides the DT header; a zero value writes the Unix epoch rather
// than depending on the current time, which a deterministic library
// function should never read implicitly.
func Write(w io.Writer, rec *Record, played time.Time) error {
	bw := bufio.NewWriter(w)

	black, white := rec.Black, rec.White
	if black == "" {
		black = "?"
	}
	if white == "" {
		white = "?"
	}
	if played.IsZero() {
		played = time.Unix(0, 0).UTC()
	}

	fmt.Fprintf(bw, "(;\nEV[weiqi]\nPB[%s]\nPW[%s]\nDT[%s]\n\n",
		escape(black), escape(white), played.Format("2006-01-02 15:04:05"))

	// A pass move carries board.Pass as its Color, not the color of the
	// player who passed, so whose turn it was is tracked here instead by
	// alternating from black; a stone move is written with its own color.
	turn := board.Black
	for _, m := range rec.Moves {
		if m.Color == board.Black || m.Color == board.White {
			turn = m.Color
		}
		tag := "B"
		if turn == board.White {
			tag = "W"
		}
		if m.IsPass() {
			fmt.Fprintf(bw, ";%s[]", tag)
		} else {
			fmt.Fprintf(bw, ";%s[%c%c]", tag, byte('a'+m.X), byte('a'+m.Y))
		}
		turn = turn.Opponent()
	}
	bw.WriteString(")\n")
	return bw.Flush()
}

func escape(s string) string {
	return strings.NewReplacer("]", "\\]", "\\", "\\\\").Replace(s)
}

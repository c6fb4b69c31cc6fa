package board

import "fmt"

// MaxDimension is the largest board width or height this implementation
// will allocate. It exists to keep the preallocated string pool (capacity
// W*H) and the padded tile grid ((W+2)*(H+2)) bounded; it is well above
// any board size played in practice.
const MaxDimension = 25

type lastMoveKind int

const (
	lastMoveNone lastMoveKind = iota
	lastMoveOrdinary
	lastMoveOnePass
	lastMoveTwoPass
)

type lastMoveState struct {
	kind lastMoveKind
	idx  int
}

// Board is the mutable state of a single Go position: the tile grid, the
// string pool, whose turn it is, and the simple-ko cell (if any).
//
// Board is not safe for concurrent use. Use Clone to take independent
// snapshots, e.g. for search or undo history.
type Board struct {
	width, height, stride int

	tiles   []tile
	strings []group
	free    []int // stack of unallocated string-pool slots

	turn           int
	lastMove       lastMoveState
	koIdx          int
	blackCaptures  int
	whiteCaptures  int
	iterating      bool
}

// NewBoard allocates an empty board of the given size. Width and height
// must be at least 1 and at most MaxDimension.
func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("weiqi/board: invalid dimensions %dx%d", width, height)
	}
	b := &Board{
		width:  width,
		height: height,
		stride: width + 2,
	}
	b.tiles = make([]tile, (width+2)*(height+2))
	b.strings = make([]group, width*height)
	b.free = make([]int, width*height)
	b.reset()
	return b, nil
}

// reset restores an allocated board to the empty starting position,
// reusing its backing arrays.
func (b *Board) reset() {
	for idx := range b.tiles {
		x, y := b.fromIdx(idx)
		if b.inBounds(x, y) {
			b.tiles[idx] = tile{color: Empty}
		} else {
			b.tiles[idx] = tile{color: Gray}
		}
	}
	n := len(b.strings)
	for i := range b.free {
		b.free[i] = n - 1 - i
	}
	b.turn = 0
	b.lastMove = lastMoveState{kind: lastMoveNone}
	b.koIdx = -1
	b.blackCaptures = 0
	b.whiteCaptures = 0
	b.iterating = false
}

// Clone returns an independent deep copy of b.
func (b *Board) Clone() *Board {
	out := &Board{
		width:         b.width,
		height:        b.height,
		stride:        b.stride,
		turn:          b.turn,
		lastMove:      b.lastMove,
		koIdx:         b.koIdx,
		blackCaptures: b.blackCaptures,
		whiteCaptures: b.whiteCaptures,
	}
	out.tiles = append([]tile(nil), b.tiles...)
	out.strings = append([]group(nil), b.strings...)
	out.free = append([]int(nil), b.free...)
	return out
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Turn() int   { return b.turn }

// TileAt returns the color of the tile at (x, y), one of Empty, Black,
// White, or Gray. x and y must be in range [0,Width) x [0,Height).
func (b *Board) TileAt(x, y int) Color {
	if !b.inBounds(x, y) {
		panic(fmt.Sprintf("weiqi/board: TileAt out of bounds (%d,%d)", x, y))
	}
	return b.tiles[b.toIdx(x, y)].color
}

// ToMove returns the color of the side that moves next.
func (b *Board) ToMove() Color {
	if b.turn%2 == 0 {
		return Black
	}
	return White
}

// GameOver reports whether two consecutive passes have ended the game.
func (b *Board) GameOver() bool {
	return b.lastMove.kind == lastMoveTwoPass
}

// PassPending reports whether the previous move was a single pass, i.e.
// the side to move now would end the game by passing again.
func (b *Board) PassPending() bool {
	return b.lastMove.kind == lastMoveOnePass
}

// Captures returns the number of opposing stones black and white have
// captured so far.
func (b *Board) Captures() (black, white int) {
	return b.blackCaptures, b.whiteCaptures
}

// KoVertex reports the forbidden simple-ko cell, if any, as (x, y, ok).
func (b *Board) KoVertex() (x, y int, ok bool) {
	if b.koIdx < 0 {
		return 0, 0, false
	}
	x, y = b.fromIdx(b.koIdx)
	return x, y, true
}

func (b *Board) allocString() int {
	n := len(b.free)
	if n == 0 {
		panic(&InvariantViolationError{Detail: "string pool exhausted"})
	}
	sid := b.free[n-1]
	b.free = b.free[:n-1]
	return sid
}

func (b *Board) freeString(sid int) {
	b.free = append(b.free, sid)
}

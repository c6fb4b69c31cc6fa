// Package zobrist builds and applies a symmetry-aware Zobrist hash for
// square Go boards: a single 64-bit value per position such that any of
// the board's eight dihedral symmetries, composed with swapping the two
// stone colors, maps to a position with the same hash. The hash also folds in a
// turn tag so that positions with identical stones and ko but different
// side to move or pending-pass state never collide.
package zobrist

import (
	"math/bits"

	"lukechampine.com/frand"

	"github.com/sumiyama/weiqi/pkg/board"
)

// numStates is the number of per-cell tile states the table indexes:
// empty, black, white, and the ko marker (tracked independently of the
// board's gray border sentinel, which never needs a hash contribution).
const numStates = 4

const (
	stateEmpty = 0
	stateBlack = 1
	stateWhite = 2
	stateKo    = 3
)

// Table holds one freshly generated random value per (cell, state) pair,
// constrained so the whole table is invariant (up to a known byte
// permutation) under the board's rotations, reflections, and color swap.
// It also holds four turn tags — {black to move, white to move, black to
// move after one pass, white to move after one pass} — XORed into every
// hash so positions that differ only in whose turn it is or in pending
// pass state never collide.
type Table struct {
	size  int // board is size x size
	table []uint64

	// turnTag[afterPass][colorIdx] holds the four turn tags, where
	// afterPass is 1 if the previous move was a single pending pass and
	// colorIdx is 0 for black to move, 1 for white.
	turnTag [2][2]uint64
}

// NewTable builds a Table for a square board of the given size. Table
// construction is the only place this package calls into a random
// source; once built, Hash is a pure function of board content.
func NewTable(size int) *Table {
	if size < 1 {
		panic("weiqi/zobrist: size must be positive")
	}
	t := &Table{size: size, table: make([]uint64, size*size*numStates)}
	t.initialize()
	return t
}

func (t *Table) at(x, y, state int) uint64 {
	return t.table[numStates*(x+t.size*y)+state]
}

func (t *Table) set(x, y, state int, v uint64) {
	t.table[numStates*(x+t.size*y)+state] = v
}

// rotateBytes implements the board's 90-degree rotation at the byte
// level: each half of the 64-bit word (bytes 0-3 and bytes 4-7) is
// cycled by one byte position, so that a table value assigned under one
// cell's orbit reproduces the hash contribution of the rotated cell.
func rotateBytes(h uint64) uint64 {
	lo := h & 0x00ffffff00ffffff
	hi := h & 0xff000000ff000000
	return (lo << 8) | (hi >> 24)
}

// mirrorBytes implements the board's left-right reflection at the byte
// level: each 4-byte half is fully reversed.
func mirrorBytes(h uint64) uint64 {
	h = ((h & 0x00ff00ff00ff00ff) << 8) | ((h & 0xff00ff00ff00ff00) >> 8)
	h = ((h & 0x0000ffff0000ffff) << 16) | ((h & 0xffff0000ffff0000) >> 16)
	return h
}

// SwapColors maps a hash computed for one position to the hash that
// would result from exchanging every black and white stone on the
// board, by swapping the table's two 4-byte halves. Useful to callers
// (e.g. a transposition table) that want to treat color-swapped
// positions as equivalent without recomputing a hash from scratch.
func SwapColors(h uint64) uint64 {
	return bits.RotateLeft64(h, 32)
}

// orbit classifies a cell by how the board's symmetry group acts on it,
// which determines what byte-repetition pattern its random value must
// carry so that rotateBytes/mirrorBytes/SwapColors correctly produce
// the hash of the transformed position.
type orbit int

const (
	orbitGeneric orbit = iota
	orbitTengen          // board center, fixed by the whole group
	orbitVerticalAxis    // fixed by left-right mirror
	orbitHorizontalAxis  // fixed by top-bottom mirror
	orbitDiagNE
	orbitDiagNW
)

func classify(size, x, y int) orbit {
	mid := float64(size-1) / 2
	cx, cy := float64(x), float64(y)
	onVertical := cx == mid
	onHorizontal := cy == mid
	onNE := cx+cy == float64(size-1)
	onNW := cx == cy

	switch {
	case onVertical && onHorizontal:
		return orbitTengen
	case onVertical:
		return orbitVerticalAxis
	case onHorizontal:
		return orbitHorizontalAxis
	case onNE:
		return orbitDiagNE
	case onNW:
		return orbitDiagNW
	default:
		return orbitGeneric
	}
}

// shapeForOrbit forces rand into the byte-repetition pattern required by
// o so the finished table value is consistent with its own image under
// the symmetries that fix this cell.
func shapeForOrbit(o orbit, rand uint64) uint64 {
	switch o {
	case orbitTengen:
		// Fixed by rotation and mirror both: every byte must be equal.
		rand &= 0x00000000000000ff
		rand |= rand << 8
		rand |= rand << 16
		rand |= rand << 32
		return rand
	case orbitVerticalAxis, orbitHorizontalAxis:
		// Fixed by one mirror: each 4-byte half is a palindrome.
		rand &= 0x000000ff000000ff
		rand |= rand << 16
		rand |= rand << 8
		return rand
	case orbitDiagNW:
		// Fixed by the x == y reflection, which at the byte level swaps
		// bytes 0 and 2 of each 4-byte half: those two must match.
		rand &^= 0x00ff000000ff0000
		rand |= (rand & 0x000000ff000000ff) << 16
		return rand
	case orbitDiagNE:
		// Fixed by the x+y == size-1 reflection, which at the byte level
		// swaps bytes 1 and 3 of each 4-byte half: those two must match.
		rand &^= 0xff000000ff000000
		rand |= (rand & 0x0000ff000000ff00) << 16
		return rand
	default:
		return rand
	}
}

// shapeTurnTag forces raw into a value whose low 4 bytes are one
// repeated byte and whose high 4 bytes are another repeated byte, so
// rotateBytes and mirrorBytes (which only permute bytes within each
// half) leave it unchanged — a turn tag carries no geometric position,
// so it must be invariant under every board rotation and reflection —
// while SwapColors (which exchanges the two halves) still turns it into
// a different value, which is exactly what lets the black and white
// turn tags differ while swapping into each other under a color swap.
func shapeTurnTag(raw uint64) uint64 {
	lo := raw & 0xff
	hi := (raw >> 32) & 0xff
	if hi == lo {
		hi ^= 0xff
	}
	loRep := lo | lo<<8 | lo<<16 | lo<<24
	hiRep := hi | hi<<8 | hi<<16 | hi<<24
	return loRep | hiRep<<32
}

// initialize fills the table by generating one random value per cell in
// the fundamental domain for each of the black and ko states, and
// propagating each to every cell in that orbit via the rotate/mirror
// byte permutations so symmetric cells end up with table values related
// exactly as Hash needs. White's table is never drawn independently: it
// is derived from black's via SwapColors, which is what makes Hash
// invariant under exchanging the two stone colors.
func (t *Table) initialize() {
	visited := make([]bool, t.size*t.size)
	idx := func(x, y int) int { return x + t.size*y }

	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			if visited[idx(x, y)] {
				continue
			}
			o := classify(t.size, x, y)
			for _, state := range [2]int{stateBlack, stateKo} {
				raw := frand.Uint64n(1<<63-2) + 1
				v := shapeForOrbit(o, raw)
				if state == stateKo {
					// The ko marker has no color, so its value must be
					// fixed by SwapColors: both 4-byte halves are equal.
					v = v&0x00000000ffffffff | v<<32
				}
				t.propagate(x, y, state, v, visited)
			}
		}
	}

	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			t.set(x, y, stateWhite, SwapColors(t.at(x, y, stateBlack)))
		}
	}

	for _, afterPass := range [2]int{0, 1} {
		black := shapeTurnTag(frand.Uint64n(1<<63-2) + 1)
		t.turnTag[afterPass][0] = black
		t.turnTag[afterPass][1] = SwapColors(black)
	}
}

// propagate writes v (already shaped for this cell's orbit) and its
// images under the board's symmetries to every cell in the same orbit,
// marking them visited.
func (t *Table) propagate(x, y, state int, v uint64, visited []bool) {
	type placement struct {
		x, y int
		v    uint64
	}
	size := t.size
	seen := map[[2]int]bool{}
	queue := []placement{{x, y, v}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[[2]int{p.x, p.y}] {
			continue
		}
		seen[[2]int{p.x, p.y}] = true
		t.set(p.x, p.y, state, p.v)
		visited[p.x+size*p.y] = true

		// rotate 90 degrees: (x,y) -> (size-1-y, x)
		rx, ry := size-1-p.y, p.x
		queue = append(queue, placement{rx, ry, rotateBytes(p.v)})
		// mirror left-right: (x,y) -> (size-1-x, y)
		mx, my := size-1-p.x, p.y
		queue = append(queue, placement{mx, my, mirrorBytes(p.v)})
	}
}

// Hash computes the symmetric Zobrist hash of b's current position,
// including the ko cell if one is set. Hash is invariant, up to the
// group element applied, under any combination of the board's
// rotations, reflections, and a black/white color swap: the table's
// per-orbit construction makes each such transform of the raw
// XOR-accumulated hash equal to the raw hash of the transformed
// position, and canonicalize folds all sixteen group images together so
// the final value does not depend on which symmetric copy you started
// from.
func (t *Table) Hash(b *board.Board) uint64 {
	if b.Width() != t.size || b.Height() != t.size {
		panic("weiqi/zobrist: table size does not match board")
	}
	var h uint64
	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			switch b.TileAt(x, y) {
			case board.Black:
				h ^= t.at(x, y, stateBlack)
			case board.White:
				h ^= t.at(x, y, stateWhite)
			}
		}
	}
	if kx, ky, ok := b.KoVertex(); ok {
		h ^= t.at(kx, ky, stateKo)
	}

	afterPass := 0
	if b.PassPending() {
		afterPass = 1
	}
	colorIdx := 0
	if b.ToMove() == board.White {
		colorIdx = 1
	}
	h ^= t.turnTag[afterPass][colorIdx]

	return canonicalize(h)
}

// canonicalize multiplies together the sixteen images of h under the
// dihedral-4 group (rotate/mirror) crossed with color swap. The product
// is a running one seeded with the golden-ratio constant so the all-
// zero position still yields a nonzero hash; multiplication over
// uint64 is commutative, so the product is the same no matter which of
// the sixteen equivalent starting hashes was fed in. A final shift
// discards the low bit.
func canonicalize(h uint64) uint64 {
	const goldenRatio64 = 0x9e3779b97f4a7c13
	acc := uint64(goldenRatio64)
	cur := h
	for rot := 0; rot < 4; rot++ {
		for _, v := range [2]uint64{cur, mirrorBytes(cur)} {
			acc *= v | 1
			acc *= SwapColors(v) | 1
		}
		cur = rotateBytes(cur)
	}
	return acc >> 1
}

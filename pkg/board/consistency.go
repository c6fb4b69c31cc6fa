package board

import (
	"fmt"
	"sort"
)

// ConsistencyCheck re-derives the board's structural invariants from
// scratch and reports the first violation found, or nil if the board is
// well formed. It is intended for tests and debugging, not hot paths.
func (b *Board) ConsistencyCheck() error {
	if err := b.checkBorder(); err != nil {
		return err
	}
	if err := b.checkStrings(); err != nil {
		return err
	}
	if err := b.checkAdjacency(); err != nil {
		return err
	}
	if err := b.checkFreeList(); err != nil {
		return err
	}
	if err := b.checkKo(); err != nil {
		return err
	}
	return nil
}

func (b *Board) checkBorder() error {
	for idx, t := range b.tiles {
		x, y := b.fromIdx(idx)
		if b.inBounds(x, y) {
			continue
		}
		if t.color != Gray {
			return &InvariantViolationError{Detail: fmt.Sprintf("border tile (%d,%d) is %s, want gray", x, y, t.color)}
		}
	}
	return nil
}

func (b *Board) checkStrings() error {
	for sid := range b.strings {
		g := &b.strings[sid]
		if g.size == 0 {
			continue // unallocated slot
		}

		seen := map[int]bool{}
		cur := g.firstTile
		for i := 0; i < g.size; i++ {
			if seen[cur] {
				return &InvariantViolationError{Detail: fmt.Sprintf("string %d tile list has a cycle shorter than size %d", sid, g.size)}
			}
			seen[cur] = true
			t := b.tiles[cur]
			if t.color != g.color || t.stringIdx != sid {
				return &InvariantViolationError{Detail: fmt.Sprintf("tile %d claims string %d but string %d owns it", cur, t.stringIdx, sid)}
			}
			cur = t.nextTile
		}
		if cur != g.firstTile {
			return &InvariantViolationError{Detail: fmt.Sprintf("string %d tile list does not close after size %d steps", sid, g.size)}
		}
		if g.firstTile != min(seen) {
			return &InvariantViolationError{Detail: fmt.Sprintf("string %d firstTile is not the minimum tile index", sid)}
		}

		wantLibs := map[int]bool{}
		for t := range seen {
			for _, n := range b.neighbors(t) {
				if b.tiles[n].color == Empty {
					wantLibs[n] = true
				}
			}
		}
		if g.liberties != len(wantLibs) {
			return &InvariantViolationError{Detail: fmt.Sprintf("string %d liberties=%d, recomputed=%d", sid, g.liberties, len(wantLibs))}
		}
		if g.tracked {
			var got []int
			for i := 0; i < g.liberties; i++ {
				got = append(got, g.libertyList[i])
			}
			sort.Ints(got)
			var want []int
			for l := range wantLibs {
				want = append(want, l)
			}
			sort.Ints(want)
			for i := range got {
				if got[i] != want[i] {
					return &InvariantViolationError{Detail: fmt.Sprintf("string %d tracked liberty list does not match recomputed set", sid)}
				}
			}
		}
	}
	return nil
}

func (b *Board) checkAdjacency() error {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := b.toIdx(x, y)
			t := b.tiles[idx]
			if t.color != Black && t.color != White {
				continue
			}
			for _, n := range []int{idx + b.stride, idx + 1} {
				nt := b.tiles[n]
				if nt.color == t.color && nt.stringIdx != t.stringIdx {
					return &InvariantViolationError{Detail: fmt.Sprintf("adjacent same-color stones at %d,%d belong to different strings", idx, n)}
				}
			}
		}
	}
	return nil
}

func (b *Board) checkFreeList() error {
	n := len(b.strings)
	inFree := make([]bool, n)
	for _, sid := range b.free {
		if sid < 0 || sid >= n {
			return &InvariantViolationError{Detail: "free list contains out-of-range slot"}
		}
		if inFree[sid] {
			return &InvariantViolationError{Detail: "free list contains duplicate slot"}
		}
		inFree[sid] = true
	}
	for sid, g := range b.strings {
		allocated := g.size > 0
		if allocated == inFree[sid] {
			return &InvariantViolationError{Detail: fmt.Sprintf("string slot %d allocation state disagrees with free list", sid)}
		}
	}
	return nil
}

func (b *Board) checkKo() error {
	if b.koIdx < 0 {
		return nil
	}
	if b.tiles[b.koIdx].color != Empty {
		return &InvariantViolationError{Detail: "ko cell is not empty"}
	}
	return nil
}

func min(set map[int]bool) int {
	first := true
	best := 0
	for k := range set {
		if first || k < best {
			best = k
			first = false
		}
	}
	return best
}

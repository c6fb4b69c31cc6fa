package board

import "sort"

// placeLoneTile allocates a new singleton string for a stone with no
// same-color neighbor, and returns its string-pool slot.
func (b *Board) placeLoneTile(idx int, color Color) int {
	sid := b.allocString()
	g := &b.strings[sid]
	*g = group{color: color, size: 1, firstTile: idx, tracked: true}

	b.tiles[idx] = tile{color: color, stringIdx: sid, nextTile: idx, prevTile: idx}

	var libs []int
	for _, n := range b.neighbors(idx) {
		if b.tiles[n].color == Empty {
			libs = append(libs, n)
		}
	}
	sort.Ints(libs)
	g.liberties = len(libs)
	copy(g.libertyList[:], libs)
	return sid
}

// appendTile splices idx into the sorted circular tile list of string sid
// and accounts for the liberties idx's empty neighbors newly contribute.
func (b *Board) appendTile(idx int, color Color, sid int) {
	g := &b.strings[sid]
	first := g.firstTile
	if idx < first {
		last := b.tiles[first].prevTile
		b.tiles[last].nextTile = idx
		b.tiles[first].prevTile = idx
		b.tiles[idx].nextTile = first
		b.tiles[idx].prevTile = last
		g.firstTile = idx
	} else {
		cur := first
		for {
			next := b.tiles[cur].nextTile
			if next == first || next > idx {
				break
			}
			cur = next
		}
		next := b.tiles[cur].nextTile
		b.tiles[cur].nextTile = idx
		b.tiles[idx].prevTile = cur
		b.tiles[idx].nextTile = next
		b.tiles[next].prevTile = idx
	}

	for _, e := range b.neighbors(idx) {
		if b.tiles[e].color != Empty {
			continue
		}
		if b.cellAlreadyLibertyOf(e, sid, idx) {
			continue
		}
		b.addLiberty(sid, e)
	}

	b.tiles[idx].color = color
	b.tiles[idx].stringIdx = sid
	g.size++
}

// cellAlreadyLibertyOf reports whether the empty cell at idx is already
// counted as a liberty of string sid via a neighbor other than exclude.
func (b *Board) cellAlreadyLibertyOf(cell, sid, exclude int) bool {
	for _, n := range b.neighbors(cell) {
		if n == exclude {
			continue
		}
		t := b.tiles[n]
		if t.color == b.strings[sid].color && t.stringIdx == sid {
			return true
		}
	}
	return false
}

func (b *Board) addLiberty(sid, cell int) {
	g := &b.strings[sid]
	if g.tracked {
		if g.liberties < maxTrackedLiberties {
			i := g.liberties
			for i > 0 && g.libertyList[i-1] > cell {
				g.libertyList[i] = g.libertyList[i-1]
				i--
			}
			g.libertyList[i] = cell
			g.liberties++
			return
		}
		g.tracked = false
	}
	g.liberties++
}

func (b *Board) removeLiberty(sid, cell int) {
	g := &b.strings[sid]
	if g.tracked {
		pos := -1
		for i := 0; i < g.liberties; i++ {
			if g.libertyList[i] == cell {
				pos = i
				break
			}
		}
		if pos >= 0 {
			copy(g.libertyList[pos:g.liberties-1], g.libertyList[pos+1:g.liberties])
		}
		g.liberties--
		return
	}
	g.liberties--
	if g.liberties <= maxTrackedLiberties {
		b.recomputeFromScratch(sid)
	}
}

// recomputeFromScratch rebuilds a string's exact liberty set by walking
// its tile list and marking each distinct empty neighbor. Marking reuses
// the otherwise-unused nextTile field of empty tiles as a scratch linked
// list, and their color field as a transient visited flag, so no extra
// memory is allocated.
func (b *Board) recomputeFromScratch(sid int) {
	g := &b.strings[sid]
	first := g.firstTile
	count := 0
	var libs []int
	chainHead := -1

	cur := first
	for {
		for _, n := range b.neighbors(cur) {
			if b.tiles[n].color != Empty {
				continue
			}
			b.tiles[n].color = Gray // transient marker, never a real tile at this index
			b.tiles[n].nextTile = chainHead
			chainHead = n
			count++
			if count <= maxTrackedLiberties {
				libs = append(libs, n)
			}
		}
		cur = b.tiles[cur].nextTile
		if cur == first {
			break
		}
	}

	for chainHead >= 0 {
		next := b.tiles[chainHead].nextTile
		b.tiles[chainHead].color = Empty
		chainHead = next
	}

	g.liberties = count
	g.tracked = count <= maxTrackedLiberties
	if g.tracked {
		sort.Ints(libs)
		copy(g.libertyList[:], libs)
	}
}

// joinStrings merges string src into string dst: splices their circular
// tile lists, retags every absorbed tile's stringIdx, and recomputes dst's
// liberties from the merged shape. Frees src's pool slot.
func (b *Board) joinStrings(dst, src int) {
	dg := &b.strings[dst]
	sg := &b.strings[src]

	var tiles []int
	cur := dg.firstTile
	for {
		tiles = append(tiles, cur)
		cur = b.tiles[cur].nextTile
		if cur == dg.firstTile {
			break
		}
	}
	cur = sg.firstTile
	for {
		tiles = append(tiles, cur)
		b.tiles[cur].stringIdx = dst
		cur = b.tiles[cur].nextTile
		if cur == sg.firstTile {
			break
		}
	}
	sort.Ints(tiles)

	n := len(tiles)
	for i, t := range tiles {
		b.tiles[t].nextTile = tiles[(i+1)%n]
		b.tiles[t].prevTile = tiles[(i-1+n)%n]
	}

	dg.firstTile = tiles[0]
	dg.size += sg.size

	b.freeString(src)
	*sg = group{}

	b.recomputeFromScratch(dst)
}

// eraseString removes every stone of string sid from the board, credits
// its freed cells as new liberties to any surviving adjacent strings, and
// returns the string's size (the number of stones captured) along with
// the position of its sole tile if it was a singleton.
func (b *Board) eraseString(sid int) (size, onlyTile int) {
	g := &b.strings[sid]
	size = g.size
	onlyTile = g.firstTile

	var freed []int
	cur := g.firstTile
	for {
		freed = append(freed, cur)
		next := b.tiles[cur].nextTile
		b.tiles[cur] = tile{color: Empty}
		cur = next
		if len(freed) == size {
			break
		}
	}

	for _, f := range freed {
		var credited []int
		for _, n := range b.neighbors(f) {
			t := b.tiles[n]
			if t.color != Black && t.color != White {
				continue
			}
			dup := false
			for _, s := range credited {
				if s == t.stringIdx {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			credited = append(credited, t.stringIdx)
			b.addLiberty(t.stringIdx, f)
		}
	}

	b.freeString(sid)
	*g = group{}
	return size, onlyTile
}

package board

// isSuicide reports whether placing a stone of color at idx (currently
// empty) would leave the placing string with zero liberties with no
// compensating capture.
func (b *Board) isSuicide(idx int, color Color) bool {
	opp := color.Opponent()
	for _, n := range b.neighbors(idx) {
		c := b.tiles[n].color
		switch {
		case c == Empty:
			return false
		case c == color:
			if b.strings[b.tiles[n].stringIdx].liberties >= 2 {
				return false
			}
		case c == opp:
			if b.strings[b.tiles[n].stringIdx].liberties == 1 {
				return false
			}
		}
	}
	return true
}

// Play applies a move to the board, mutating it in place. It returns a
// *MoveError describing why the move was rejected, or nil on success.
func (b *Board) Play(m Move) error {
	if b.GameOver() {
		return &MoveError{Move: m, Reason: ReasonGameOver}
	}

	if m.IsPass() {
		b.commitPass()
		return nil
	}

	if m.Color != Black && m.Color != White {
		return &MoveError{Move: m, Reason: ReasonOffTurn}
	}
	if m.Color != b.ToMove() {
		return &MoveError{Move: m, Reason: ReasonOffTurn}
	}
	if !b.inBounds(m.X, m.Y) {
		return &MoveError{Move: m, Reason: ReasonOutOfBounds}
	}

	idx := b.toIdx(m.X, m.Y)
	if b.tiles[idx].color != Empty {
		return &MoveError{Move: m, Reason: ReasonOccupied}
	}
	if idx == b.koIdx {
		return &MoveError{Move: m, Reason: ReasonKo}
	}
	if b.isSuicide(idx, m.Color) {
		return &MoveError{Move: m, Reason: ReasonSuicide}
	}

	captured, koIdx := b.commitStone(idx, m.Color)
	if m.Color == Black {
		b.blackCaptures += captured
	} else {
		b.whiteCaptures += captured
	}
	b.koIdx = koIdx
	b.turn++
	b.lastMove = lastMoveState{kind: lastMoveOrdinary, idx: idx}
	return nil
}

func (b *Board) commitPass() {
	if b.lastMove.kind == lastMoveOnePass {
		b.lastMove = lastMoveState{kind: lastMoveTwoPass}
	} else {
		b.lastMove = lastMoveState{kind: lastMoveOnePass}
	}
	b.koIdx = -1
	b.turn++
}

// commitStone places a stone of color at idx (already validated legal),
// merging it into neighboring same-color strings, removing it as a
// liberty of every adjacent string, and capturing any opposing string
// whose liberties fall to zero. It returns the number of stones captured
// and the new simple-ko cell, or -1 if none.
func (b *Board) commitStone(idx int, color Color) (captured, koIdx int) {
	var sameIDs []int
	for _, n := range b.neighbors(idx) {
		if b.tiles[n].color == color {
			sid := b.tiles[n].stringIdx
			seen := false
			for _, s := range sameIDs {
				if s == sid {
					seen = true
					break
				}
			}
			if !seen {
				sameIDs = append(sameIDs, sid)
			}
		}
	}

	switch len(sameIDs) {
	case 0:
		b.placeLoneTile(idx, color)
	case 1:
		b.appendTile(idx, color, sameIDs[0])
	default:
		rep := sameIDs[0]
		for _, sid := range sameIDs[1:] {
			b.joinStrings(rep, sid)
		}
		b.appendTile(idx, color, rep)
	}

	var handled []int
	singletonCount := 0
	singletonCell := -1
	for _, n := range b.neighbors(idx) {
		c := b.tiles[n].color
		if c != Black && c != White {
			continue
		}
		sid := b.tiles[n].stringIdx
		dup := false
		for _, h := range handled {
			if h == sid {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		handled = append(handled, sid)

		b.removeLiberty(sid, idx)
		if c != color && b.strings[sid].liberties == 0 {
			size, only := b.eraseString(sid)
			captured += size
			if size == 1 {
				singletonCount++
				singletonCell = only
			}
		}
	}

	koIdx = -1
	if len(sameIDs) == 0 && captured == 1 && singletonCount == 1 {
		koIdx = singletonCell
	}
	return captured, koIdx
}

package board

// ForEachLegalMove visits every legal move for the side to move, in
// row-major order (y ascending, x ascending within each row), followed
// always by a trailing pass, stopping early if visit returns false.
//
// Must not be called reentrantly on the same Board (e.g. from within the
// visitor itself); doing so panics.
func (b *Board) ForEachLegalMove(visit func(Move) bool) {
	if b.iterating {
		panic("weiqi/board: reentrant ForEachLegalMove")
	}
	b.iterating = true
	defer func() { b.iterating = false }()

	if b.GameOver() {
		return
	}

	color := b.ToMove()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := b.toIdx(x, y)
			if b.tiles[idx].color != Empty {
				continue
			}
			if idx == b.koIdx {
				continue
			}
			if b.isSuicide(idx, color) {
				continue
			}
			if !visit(Move{Color: color, X: x, Y: y}) {
				return
			}
		}
	}
	visit(Move{Color: Pass})
}

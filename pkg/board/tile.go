package board

// maxTrackedLiberties is the size of a string's inline liberty list. Up to
// and including this many liberties the list is exact and sorted; above
// it, only the count is trusted and the list contents are stale.
const maxTrackedLiberties = 8

// tile is one cell of the padded board. When color is Black or White,
// stringIdx names the owning string and nextTile/prevTile thread the
// string's circular, ascending-by-index tile list. When color is Empty,
// nextTile is reused as scratch during recomputeFromScratch's mark-and-walk.
type tile struct {
	color     Color
	stringIdx int
	nextTile  int
	prevTile  int
}

// group is a maximally connected run of same-color stones: a "string" in
// the game's terminology. Liberties are tracked exactly up to
// maxTrackedLiberties; beyond that only the count is trusted.
type group struct {
	color       Color
	size        int
	firstTile   int
	liberties   int
	tracked     bool
	libertyList [maxTrackedLiberties]int
}

func (b *Board) toIdx(x, y int) int {
	return (y+1)*b.stride + (x + 1)
}

func (b *Board) fromIdx(idx int) (x, y int) {
	return idx%b.stride - 1, idx/b.stride - 1
}

func (b *Board) neighbors(idx int) [4]int {
	return [4]int{idx + b.stride, idx - b.stride, idx - 1, idx + 1}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

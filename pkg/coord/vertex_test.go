package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/coord"
)

func TestParseVertexAccepts(t *testing.T) {
	cases := []string{"A1", "q16", "T19", "PASS", "pass"}
	for _, s := range cases {
		v, err := coord.ParseVertex(19, s)
		require.NoError(t, err, s)
		_ = v.String()
	}
}

func TestParseVertexSkipsILetter(t *testing.T) {
	_, err := coord.ParseVertex(19, "I5")
	assert.Error(t, err)

	v, err := coord.ParseVertex(19, "J5")
	require.NoError(t, err)
	assert.Equal(t, 9, v.X) // A=1..H=8,J=9
}

func TestParseVertexRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "5", "Z", "A0", "@3"} {
		_, err := coord.ParseVertex(19, s)
		assert.Error(t, err, s)
	}
}

func TestParseVertexRejectsOutOfBounds(t *testing.T) {
	_, err := coord.ParseVertex(9, "J15")
	assert.Error(t, err)
}

func TestVertexStringFormatsPass(t *testing.T) {
	assert.Equal(t, "pass", coord.Pass.String())
}

func TestToMoveTranslatesBottomOriginToTopOrigin(t *testing.T) {
	// On a 19-tall board, row 19 (the top row as typed) is board Y=0.
	v := coord.Vertex{X: 1, Y: 19}
	m := v.ToMove(board.Black, 19)
	assert.Equal(t, board.Move{Color: board.Black, X: 0, Y: 0}, m)

	// Row 1 (the bottom row as typed) is board Y=height-1.
	v2 := coord.Vertex{X: 1, Y: 1}
	m2 := v2.ToMove(board.Black, 19)
	assert.Equal(t, board.Move{Color: board.Black, X: 0, Y: 18}, m2)
}

func TestFromXYIsInverseOfToMove(t *testing.T) {
	v := coord.Vertex{X: 5, Y: 12}
	m := v.ToMove(board.White, 19)
	back := coord.FromXY(m.X, m.Y, 19)
	assert.Equal(t, v, back)
}

func TestPassToMove(t *testing.T) {
	assert.Equal(t, board.Move{Color: board.Pass}, coord.Pass.ToMove(board.Black, 19))
}

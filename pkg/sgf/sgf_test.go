package sgf_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumiyama/weiqi/pkg/board"
	"github.com/sumiyama/weiqi/pkg/sgf"
)

func TestWriteThenReadRoundTripsMoves(t *testing.T) {
	rec := &sgf.Record{
		Black: "Lee Sedol",
		White: "AlphaGo",
		Moves: []board.Move{
			{Color: board.Black, X: 3, Y: 3},
			{Color: board.White, X: 15, Y: 3},
			{Color: board.Pass},
			{Color: board.Black, X: 4, Y: 4},
		},
	}

	var buf strings.Builder
	require.NoError(t, sgf.Write(&buf, rec, time.Time{}))

	got, err := sgf.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, "Lee Sedol", got.Black)
	assert.Equal(t, "AlphaGo", got.White)
	assert.Equal(t, rec.Moves, got.Moves)
}

func TestReadIgnoresUnknownProperties(t *testing.T) {
	src := "(;\nEV[Test]\nPB[A]\nPW[B]\nKM[6.5]\n\n;B[cc];W[]\n)"
	g, err := sgf.Read(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "A", g.Black)
	assert.Equal(t, "B", g.White)
	require.Len(t, g.Moves, 2)
	assert.Equal(t, board.Move{Color: board.Black, X: 2, Y: 2}, g.Moves[0])
	assert.Equal(t, board.Move{Color: board.Pass}, g.Moves[1])
}

func TestReadRejectsMalformedCoordinate(t *testing.T) {
	_, err := sgf.Read(strings.NewReader("(;B[c]\n)"))
	assert.Error(t, err)
}

func TestWriteEscapesBrackets(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, sgf.Write(&buf, &sgf.Record{Black: "A]B"}, time.Time{}))
	assert.Contains(t, buf.String(), `A\]B`)
}

func TestReadHandlesEscapedBracketInValue(t *testing.T) {
	src := `(;PB[A\]B]PW[X];B[aa])`
	g, err := sgf.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "A]B", g.Black)
	assert.Equal(t, "X", g.White)
	require.Len(t, g.Moves, 1)
}

package board_test

import (
	"testing"

	"github.com/herohde/starlight/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovesTable(t *testing.T) {
	moves := board.Moves()
	require.Len(t, moves, board.NumMoves)

	// Block boundaries of the canonical enumeration order.
	assert.Equal(t, board.Move{Kind: board.KindAttack, Piece: 0}, moves[0])
	assert.Equal(t, board.Move{Kind: board.KindAttack, Piece: 35}, moves[35])
	assert.Equal(t, board.Move{Kind: board.KindConstruct, Piece: 0}, moves[36])
	assert.Equal(t, board.Move{Kind: board.KindTransform, Piece: 0, Color: board.Yellow}, moves[72])
	assert.Equal(t, board.Move{Kind: board.KindTransform, Piece: 0, Color: board.Blue}, moves[74])
	assert.Equal(t, board.Move{Kind: board.KindTransform, Piece: 9, Color: board.Red}, moves[99])
	assert.Equal(t, board.Move{Kind: board.KindSacrifice, Piece: 0}, moves[180])
	assert.Equal(t, board.Move{Kind: board.KindMoveInit, Piece: 0}, moves[216])
	assert.Equal(t, board.Move{Kind: board.KindMoveFinish, System: 0}, moves[252])
	assert.Equal(t, board.Move{Kind: board.KindSelect, Size: board.Small, Color: board.Red}, moves[288])
	assert.Equal(t, board.Move{Kind: board.KindSelect, Size: board.Large, Color: board.Blue}, moves[299])
	assert.Equal(t, board.Move{Kind: board.KindCatastrophe, Piece: 0}, moves[300])
	assert.Equal(t, board.Move{Kind: board.KindPass}, moves[336])
	assert.Equal(t, board.Move{Kind: board.KindPass}, moves[337])
}

func TestLegalMovesFreshGame(t *testing.T) {
	g := board.NewGame()

	legal := g.LegalMoves()
	require.Len(t, legal, 12)
	for _, m := range legal {
		assert.Equal(t, board.KindSelect, m.Kind)
	}
}

func TestLegalMovesDryRun(t *testing.T) {
	g := board.NewGame()

	// Enumeration must not mutate the game.
	before := *g
	_ = g.LegalMoves()
	assert.Equal(t, before, *g)
}

package board_test

import (
	"testing"

	"github.com/herohde/starlight/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	assert.True(t, board.Small.IsValid())
	assert.True(t, board.Large.IsValid())
	assert.False(t, board.Size(3).IsValid())

	assert.Equal(t, "small", board.Small.String())
	assert.Equal(t, "large", board.Large.String())

	assert.EqualValues(t, 1, board.Small.SacrificeTurns())
	assert.EqualValues(t, 2, board.Medium.SacrificeTurns())
	assert.EqualValues(t, 3, board.Large.SacrificeTurns())

	s, ok := board.ParseSize("medium")
	assert.True(t, ok)
	assert.Equal(t, board.Medium, s)

	_, ok = board.ParseSize("tiny")
	assert.False(t, ok)
}

func TestColor(t *testing.T) {
	assert.True(t, board.Red.IsValid())
	assert.True(t, board.Blue.IsValid())
	assert.False(t, board.Color(4).IsValid())

	assert.Equal(t, board.AbilityAttack, board.Red.Ability())
	assert.Equal(t, board.AbilityMove, board.Yellow.Ability())
	assert.Equal(t, board.AbilityConstruct, board.Green.Ability())
	assert.Equal(t, board.AbilityTransform, board.Blue.Ability())

	c, ok := board.ParseColor("yellow")
	assert.True(t, ok)
	assert.Equal(t, board.Yellow, c)

	_, ok = board.ParseColor("purple")
	assert.False(t, ok)
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Equal(t, board.White, board.Black.Opponent())
	assert.Equal(t, "w", board.White.String())
	assert.Equal(t, "b", board.Black.String())
}

func TestKey(t *testing.T) {
	tests := []struct {
		key   board.Key
		size  board.Size
		color board.Color
	}{
		{0, board.Small, board.Red},
		{2, board.Small, board.Red},
		{3, board.Medium, board.Red},
		{6, board.Large, board.Red},
		{9, board.Small, board.Yellow},
		{15, board.Large, board.Yellow},
		{21, board.Medium, board.Green},
		{27, board.Small, board.Blue},
		{35, board.Large, board.Blue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.key.Size(), "size of %v", tt.key)
		assert.Equal(t, tt.color, tt.key.Color(), "color of %v", tt.key)
	}

	assert.True(t, board.Key(35).IsValid())
	assert.False(t, board.Key(36).IsValid())
}

func TestPieceCode(t *testing.T) {
	pc := board.NewPieceCode(board.Medium, board.RoleBlackShip, board.Green)
	assert.Equal(t, board.Medium, pc.Size())
	assert.Equal(t, board.RoleBlackShip, pc.Role())
	assert.Equal(t, board.Green, pc.Color())
}

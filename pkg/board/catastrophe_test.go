package board_test

import (
	"testing"

	"github.com/herohde/starlight/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatastropheRequiresShip(t *testing.T) {
	g := board.NewGame()
	apply(t, g,
		"select small red", "select medium red", "select large yellow",
		"select small blue", "select medium blue", "select large green")

	reject(t, g, "catastrophe 0")  // a star
	reject(t, g, "catastrophe 5")  // banked
	reject(t, g, "catastrophe 15") // a ship, but only one yellow piece here
}

func TestForcedSweepOnTurnFlip(t *testing.T) {
	g := board.NewGame()
	// White home {small green, medium red} with a large yellow ship; green
	// star1 lets white construct freely.
	apply(t, g,
		"select small green", "select medium red", "select large yellow",
		"select large blue", "select large green", "select small blue")

	apply(t, g, "construct 15", "pass", "construct 9", "pass")
	assert.Equal(t, board.Ship, g.At(10).Kind)

	// The third construct makes four yellows at the system. The turn flip
	// runs the forced sweep, which wipes the whole cluster.
	apply(t, g, "construct 9")

	for _, k := range []board.Key{9, 10, 11, 15} {
		assert.Equal(t, board.Empty, g.At(k).Kind, "yellow %v should be swept", k)
	}
	assert.EqualValues(t, 3, g.Bank().Count(board.Small, board.Yellow))
	assert.EqualValues(t, 3, g.Bank().Count(board.Large, board.Yellow))

	// The stars were not part of the cluster and survive.
	assert.Equal(t, board.BinaryFirst, g.At(18).Kind)
	assert.Equal(t, board.BinarySecond, g.At(3).Kind)
	_, ok := g.At(18).Child.V()
	assert.False(t, ok)

	assert.Equal(t, board.Turn{Player: board.Black, Phase: board.Action}, g.Turn())
	assert.True(t, g.Eliminated(board.White))
	assert.False(t, g.Eliminated(board.Black))
}

func TestSweepIdempotent(t *testing.T) {
	g := board.NewGame()
	apply(t, g,
		"select small green", "select medium red", "select large yellow",
		"select large blue", "select large green", "select small blue")
	apply(t, g, "construct 15", "pass", "construct 9", "pass", "construct 9")

	// A pass re-runs the sweep: nothing further may change but the turn.
	var before [board.NumKeys]board.Slot
	for k := board.ZeroKey; k < board.NumKeys; k++ {
		before[k] = g.At(k)
	}
	bank := g.Bank()

	apply(t, g, "pass")

	for k := board.ZeroKey; k < board.NumKeys; k++ {
		assert.Equal(t, before[k], g.At(k), "slot %v changed", k)
	}
	assert.Equal(t, bank, g.Bank())
	assert.Equal(t, board.White, g.Turn().Player)
}

func TestCatastropheDuringSacrifice(t *testing.T) {
	g := board.NewGame()
	// White home: small blue star plus a large RED partner star, with a
	// large green workhorse ship. Black keeps to itself.
	apply(t, g,
		"select small blue", "select large red", "select large green",
		"select small yellow", "select medium yellow", "select small green")

	// Build up red ships at the white home: construct an escort, turn it
	// red, clone it once.
	apply(t, g, "construct 24", "pass")
	apply(t, g, "transform 19 red", "pass")
	assert.Equal(t, board.Ship, g.At(0).Kind)
	apply(t, g, "construct 0", "pass")
	require.Equal(t, board.Ship, g.At(1).Kind)

	// Sacrifice the large green for three constructs and overload red
	// without ever flipping the turn.
	apply(t, g, "sacrifice 24", "construct 0", "construct 0")
	require.Equal(t, board.Ship, g.At(2).Kind)
	require.Equal(t, board.Ship, g.At(3).Kind)
	require.Equal(t, board.Turn{
		Player:  board.White,
		Phase:   board.Sacrifice,
		Count:   1,
		Ability: board.AbilityConstruct,
	}, g.Turn())

	// Four red ships under a red star: five pieces go back to the bank.
	apply(t, g, "catastrophe 0")

	for _, k := range []board.Key{0, 1, 2, 3, 6} {
		assert.Equal(t, board.Empty, g.At(k).Kind, "red %v should be removed", k)
	}
	assert.EqualValues(t, 3, g.Bank().Count(board.Small, board.Red))
	assert.EqualValues(t, 3, g.Bank().Count(board.Medium, board.Red))
	assert.EqualValues(t, 3, g.Bank().Count(board.Large, board.Red))

	// The home survives as a lone star, widowed and empty.
	assert.Equal(t, board.BinaryFirst, g.At(27).Kind)
	_, ok := g.At(27).Pair.V()
	assert.False(t, ok)
	_, ok = g.At(27).Child.V()
	assert.False(t, ok)

	// A catastrophe never advances the turn; with no ships left, white has
	// no way to spend the remaining sacrifice action.
	assert.Equal(t, board.Sacrifice, g.Turn().Phase)
	assert.Empty(t, g.LegalMoves())
}

func TestCatastrophePromotesBinaryPartner(t *testing.T) {
	g := board.NewGame()
	// White home: green star1 + blue star2, large green ship. Black: a
	// yellow traveler that parks at the white home.
	apply(t, g,
		"select small green", "select medium blue", "select large green",
		"select large blue", "select large yellow", "select small yellow")

	apply(t, g, "pass", "moveinit 9", "movefinish 18")
	require.Equal(t, board.Key(18), g.At(9).Parent)

	apply(t, g, "construct 24", "pass")

	// The next construct makes star 18 plus three green ships: the flip
	// sweeps the cluster, the blue partner inherits the system and the
	// black ship stays put.
	apply(t, g, "construct 19")

	assert.Equal(t, board.Empty, g.At(18).Kind)
	for _, k := range []board.Key{19, 20, 24} {
		assert.Equal(t, board.Empty, g.At(k).Kind, "green %v should be swept", k)
	}

	assert.Equal(t, board.BinaryFirst, g.At(30).Kind)
	_, ok := g.At(30).Pair.V()
	assert.False(t, ok)
	c, ok := g.At(30).Child.V()
	require.True(t, ok)
	assert.Equal(t, board.Key(9), c)
	assert.Equal(t, board.Key(30), g.At(9).Parent)
	assert.Equal(t, board.Black, g.At(9).Owner)
	assert.Equal(t, board.Key(9), g.At(9).Next)

	// The home reference follows the surviving star.
	assert.Equal(t, board.Key(30), homeKey(t, g, board.White))
	assert.True(t, g.Eliminated(board.White))
	assert.EqualValues(t, 3, g.Bank().Count(board.Small, board.Green))
}

package game

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/internal/bot"
	"snakebot/internal/core"
	"snakebot/internal/cycle"
)

func newBotGame(t *testing.T, g core.Grid, s cycle.Strategy, preset string, seed int64) *Game {
	t.Helper()
	c, err := cycle.Generate(g, seed, s)
	require.NoError(t, err)
	tn, err := bot.Preset(preset)
	require.NoError(t, err)
	ctl, err := bot.New(c, tn)
	require.NoError(t, err)
	game, err := New(Config{Grid: g, Wrap: c.Wrap(), Window: ctl.Tuning().LoopWindow}, ctl, seed)
	require.NoError(t, err)
	return game
}

func TestBotFillsBoard(t *testing.T) {
	grids := []core.Grid{{W: 4, H: 4}, {W: 6, H: 4}, {W: 5, H: 5}, {W: 8, H: 8}, {W: 9, H: 6}}
	for _, g := range grids {
		for _, s := range cycle.Strategies() {
			for _, preset := range bot.PresetNames() {
				t.Run(fmt.Sprintf("%dx%d/%v/%s", g.W, g.H, s, preset), func(t *testing.T) {
					game := newBotGame(t, g, s, preset, 11)
					limit := g.Len() * g.Len()
					for game.Outcome() == Running && game.Ticks() < limit {
						game.Step()
					}
					require.Equal(t, Won, game.Outcome(), "after %d ticks with score %d", game.Ticks(), game.Score())
					assert.Equal(t, g.Len()-1, game.Score())
				})
			}
		}
	}
}

func TestBotIsDeterministic(t *testing.T) {
	g := core.Grid{W: 10, H: 10}
	a := newBotGame(t, g, cycle.Maze, "aggressive", 5)
	b := newBotGame(t, g, cycle.Maze, "aggressive", 5)
	for i := 0; i < 500; i++ {
		a.Step()
		b.Step()
		require.Equal(t, a.State().Body(), b.State().Body())
		require.Equal(t, a.Apple(), b.Apple())
	}
}

func TestHumanQueueBuffersTwoTurns(t *testing.T) {
	game, err := New(Config{Grid: core.Grid{W: 10, H: 10}, Wrap: true, Window: 1}, nil, 3)
	require.NoError(t, err)
	game.dir = core.Right

	assert.False(t, game.Queue(core.Right), "repeat is dropped")
	assert.True(t, game.Queue(core.Up))
	assert.True(t, game.Queue(core.Left))
	assert.False(t, game.Queue(core.Down), "buffer holds two turns")

	start := game.State().Head()
	game.apple = core.Cell{X: 9, Y: 9}
	game.Step()
	assert.Equal(t, core.Cell{X: start.X, Y: start.Y - 1}, game.State().Head())
	game.Step()
	assert.Equal(t, core.Cell{X: start.X - 1, Y: start.Y - 1}, game.State().Head())
}

func TestNewRejectsOversizedGrid(t *testing.T) {
	_, err := New(Config{Grid: core.Grid{W: math.MaxInt/2 + 1, H: 3}, Window: 1}, nil, 1)
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestWallCrash(t *testing.T) {
	game, err := New(Config{Grid: core.Grid{W: 4, H: 4}, Window: 1}, nil, 3)
	require.NoError(t, err)
	game.dir = core.Left
	game.apple = core.Cell{X: 3, Y: 3}
	for i := 0; i < 4 && game.Outcome() == Running; i++ {
		game.Step()
	}
	assert.Equal(t, Crashed, game.Outcome())
	assert.Contains(t, game.Cells(), CellCrash)
}

func TestWrapCarriesAcrossEdge(t *testing.T) {
	game, err := New(Config{Grid: core.Grid{W: 4, H: 4}, Wrap: true, Window: 1}, nil, 3)
	require.NoError(t, err)
	game.dir = core.Left
	game.apple = core.Cell{X: 3, Y: 3}
	for i := 0; i < 4; i++ {
		game.Step()
	}
	assert.Equal(t, Running, game.Outcome())
	assert.Equal(t, core.Cell{X: 2, Y: 2}, game.State().Head())
}

func TestApplePlacementAvoidsBody(t *testing.T) {
	game := newBotGame(t, core.Grid{W: 6, H: 6}, cycle.Spiral, "safe", 9)
	for game.Outcome() == Running {
		game.Step()
		if game.Outcome() == Running {
			require.False(t, game.State().Occupied(game.Apple()))
		}
	}
	assert.Equal(t, Won, game.Outcome())
}

func TestHumanTPS(t *testing.T) {
	assert.Equal(t, 7, HumanTPS(0))
	assert.Equal(t, 8, HumanTPS(3))
	assert.Equal(t, 20, HumanTPS(1000))
}

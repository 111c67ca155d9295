package cycle

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/internal/core"
)

var generatorSizes = [][2]int{
	{2, 2}, {2, 3}, {3, 2}, {2, 7}, {4, 4}, {5, 4}, {4, 5}, {6, 6},
	{3, 3}, {5, 5}, {7, 9}, {9, 3}, {16, 9}, {20, 20}, {31, 17}, {64, 48},
}

func TestGenerateProducesValidCycles(t *testing.T) {
	for _, s := range Strategies() {
		for _, dims := range generatorSizes {
			t.Run(fmt.Sprintf("%v/%dx%d", s, dims[0], dims[1]), func(t *testing.T) {
				g := core.Grid{W: dims[0], H: dims[1]}
				c, err := Generate(g, 7, s)
				require.NoError(t, err)
				require.Equal(t, g.Len(), c.Len())
				require.NoError(t, Validate(g, c.Cells(), c.Wrap()))
				require.NoError(t, ValidateDirs(g, c.Dirs(), c.Wrap()))
				assert.Equal(t, core.Cell{}, c.At(0))
				assert.Equal(t, dims[0]%2 == 1 && dims[1]%2 == 1, c.Wrap())
				for r := 0; r < c.Len(); r++ {
					require.Equal(t, r, c.Rank(c.At(r)))
				}
			})
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := core.Grid{W: 18, H: 12}
	for _, s := range Strategies() {
		a, err := Generate(g, 99, s)
		require.NoError(t, err)
		b, err := Generate(g, 99, s)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "%v differs between identical runs", s)
	}
}

func TestMazeDependsOnSeed(t *testing.T) {
	g := core.Grid{W: 20, H: 20}
	a, err := Generate(g, 1, Maze)
	require.NoError(t, err)
	b, err := Generate(g, 2, Maze)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestScrambledPerturbsSerpentine(t *testing.T) {
	g := core.Grid{W: 8, H: 8}
	base, err := Generate(g, 5, Serpentine)
	require.NoError(t, err)
	mixed, err := Generate(g, 5, Scrambled)
	require.NoError(t, err)
	assert.False(t, base.Equal(mixed))
}

func TestScrambledWithoutFlipsReturnsBase(t *testing.T) {
	g := core.Grid{W: 2, H: 2}
	base, err := Generate(g, 5, Serpentine)
	require.NoError(t, err)
	mixed, err := Generate(g, 5, Scrambled)
	require.NoError(t, err)
	assert.True(t, base.Equal(mixed))
}

func TestSerpentineOrder(t *testing.T) {
	c, err := Generate(core.Grid{W: 4, H: 4}, 0, Serpentine)
	require.NoError(t, err)
	want := []core.Cell{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{3, 1}, {2, 1}, {1, 1},
		{1, 2}, {2, 2}, {3, 2},
		{3, 3}, {2, 3}, {1, 3},
		{0, 3}, {0, 2}, {0, 1},
	}
	assert.Equal(t, want, c.Cells())
}

func TestOddGridUsesSingleSeamCorridor(t *testing.T) {
	g := core.Grid{W: 5, H: 7}
	c, err := Generate(g, 3, Serpentine)
	require.NoError(t, err)
	seams := 0
	for r := 0; r < c.Len(); r++ {
		if !g.Adjacent(c.At(r), c.At(r+1), false) {
			seams++
		}
	}
	assert.Equal(t, 1, seams)
	assert.Error(t, Validate(g, c.Cells(), false))
}

func TestGenerateRejectsUnsupportedGrids(t *testing.T) {
	for _, g := range []core.Grid{{W: 1, H: 8}, {W: 8, H: 1}, {W: 200, H: 200}, {W: math.MaxInt/2 + 1, H: 3}} {
		_, err := Generate(g, 0, Maze)
		require.True(t, errors.Is(err, core.ErrUnsupportedGrid), "grid %v: %v", g, err)
	}
	_, err := Generate(core.Grid{W: 4, H: 4}, 0, Strategy(42))
	require.ErrorIs(t, err, core.ErrUnsupportedGrid)
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"":           Maze,
		"maze":       Maze,
		"maze-based": Maze,
		"Spiral":     Spiral,
		"serpentine": Serpentine,
		" scrambled": Scrambled,
	}
	for name, want := range cases {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseStrategy("zigzag")
	require.ErrorIs(t, err, core.ErrUnsupportedGrid)
}

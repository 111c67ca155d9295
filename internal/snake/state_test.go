package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/internal/core"
)

func TestNewValidatesBody(t *testing.T) {
	g := core.Grid{W: 4, H: 4}
	_, err := New(g, false, nil, 4)
	require.Error(t, err)
	_, err = New(g, false, []core.Cell{{0, 0}, {2, 0}}, 4)
	require.Error(t, err)
	_, err = New(g, false, []core.Cell{{0, 0}, {1, 0}, {0, 0}}, 4)
	require.Error(t, err)
	_, err = New(g, false, []core.Cell{{0, 0}, {-1, 0}}, 4)
	require.Error(t, err)
	_, err = New(g, true, []core.Cell{{3, 0}, {0, 0}}, 4)
	require.NoError(t, err)
}

func TestAdvanceMovesAndGrows(t *testing.T) {
	g := core.Grid{W: 5, H: 5}
	s, err := New(g, false, []core.Cell{{0, 0}, {1, 0}}, 8)
	require.NoError(t, err)

	s.Advance(core.Cell{X: 2, Y: 0}, false)
	assert.Equal(t, []core.Cell{{1, 0}, {2, 0}}, s.Body())
	assert.False(t, s.Occupied(core.Cell{}))

	s.Advance(core.Cell{X: 2, Y: 1}, true)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, core.Cell{X: 1}, s.Tail())
	assert.Equal(t, core.Cell{X: 2, Y: 1}, s.Head())

	for i := 0; i < 20; i++ {
		head := s.Head()
		next := core.Cell{X: head.X, Y: (head.Y + 1) % g.H}
		if s.Occupied(next) {
			next = core.Cell{X: (head.X + 1) % g.W, Y: head.Y}
		}
		s.Advance(next, false)
		require.Equal(t, 3, s.Len())
	}
}

func TestRecentAgeWindow(t *testing.T) {
	g := core.Grid{W: 6, H: 2}
	s, err := New(g, false, []core.Cell{{0, 0}}, 3)
	require.NoError(t, err)
	for x := 1; x <= 4; x++ {
		s.Advance(core.Cell{X: x}, false)
	}
	age, ok := s.RecentAge(core.Cell{X: 4})
	assert.True(t, ok)
	assert.Equal(t, 0, age)
	age, ok = s.RecentAge(core.Cell{X: 2})
	assert.True(t, ok)
	assert.Equal(t, 2, age)
	_, ok = s.RecentAge(core.Cell{X: 1})
	assert.False(t, ok, "cell older than the window must be forgotten")
}

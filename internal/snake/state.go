// Package snake holds the body and recent history of a snake on a grid.
package snake

import (
	"fmt"

	"snakebot/internal/core"
)

// State is owned and mutated by the game driver; controllers only read it.
type State struct {
	grid     core.Grid
	wrap     bool
	body     []core.Cell // ring buffer, tail at start
	start    int
	length   int
	occupied []bool

	recent    []int // ring of head cell indices, newest at recentPos-1
	recentPos int
	recentLen int
}

// New places a snake whose body is listed tail first. Consecutive segments
// must be unit steps apart and no cell may repeat. window sets how many
// recent head positions are remembered.
func New(g core.Grid, wrap bool, body []core.Cell, window int) (*State, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("snake body is empty")
	}
	if len(body) > g.Len() {
		return nil, fmt.Errorf("snake of length %d does not fit a %dx%d grid", len(body), g.W, g.H)
	}
	s := &State{
		grid:     g,
		wrap:     wrap,
		body:     make([]core.Cell, g.Len()),
		occupied: make([]bool, g.Len()),
		recent:   make([]int, max(1, window)),
	}
	for i, c := range body {
		if !g.Contains(c) {
			return nil, fmt.Errorf("segment %d at %v is off the grid", i, c)
		}
		if s.occupied[g.Index(c)] {
			return nil, fmt.Errorf("segment %d at %v overlaps the body", i, c)
		}
		if i > 0 && !g.Adjacent(body[i-1], c, wrap) {
			return nil, fmt.Errorf("segments %d and %d are not adjacent", i-1, i)
		}
		s.occupied[g.Index(c)] = true
		s.body[i] = c
	}
	s.length = len(body)
	s.remember(s.Head())
	return s, nil
}

// Grid returns the grid the snake lives on.
func (s *State) Grid() core.Grid { return s.grid }

// Len is the number of body segments.
func (s *State) Len() int { return s.length }

// At returns segment i counted from the tail.
func (s *State) At(i int) core.Cell { return s.body[(s.start+i)%len(s.body)] }

// Head returns the leading segment.
func (s *State) Head() core.Cell { return s.At(s.length - 1) }

// Tail returns the trailing segment.
func (s *State) Tail() core.Cell { return s.At(0) }

// Body returns a copy of the segments, tail first.
func (s *State) Body() []core.Cell {
	out := make([]core.Cell, s.length)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Occupied reports whether any segment covers c.
func (s *State) Occupied(c core.Cell) bool {
	return s.grid.Contains(c) && s.occupied[s.grid.Index(c)]
}

// Advance moves the head onto next. The tail is released unless grow is set.
// Callers check legality first.
func (s *State) Advance(next core.Cell, grow bool) {
	if !grow {
		tail := s.Tail()
		s.occupied[s.grid.Index(tail)] = false
		s.start = (s.start + 1) % len(s.body)
		s.length--
	}
	s.body[(s.start+s.length)%len(s.body)] = next
	s.length++
	s.occupied[s.grid.Index(next)] = true
	s.remember(next)
}

func (s *State) remember(c core.Cell) {
	s.recent[s.recentPos] = s.grid.Index(c)
	s.recentPos = (s.recentPos + 1) % len(s.recent)
	if s.recentLen < len(s.recent) {
		s.recentLen++
	}
}

// RecentAge reports how many ticks ago the head last stood on c, looking back
// at most the window given to New. The current head has age 0.
func (s *State) RecentAge(c core.Cell) (int, bool) {
	if !s.grid.Contains(c) {
		return 0, false
	}
	idx := s.grid.Index(c)
	n := len(s.recent)
	for age := 0; age < s.recentLen; age++ {
		if s.recent[(s.recentPos-1-age+n)%n] == idx {
			return age, true
		}
	}
	return 0, false
}

package game

import (
	"snakebot/internal/core"
	"snakebot/internal/snake"
)

// randomProbes bounds the rejection sampling before the scan fallback.
const randomProbes = 64

// placeApple picks a free cell uniformly by probing, then scans from a random
// offset once the board is too crowded for probing to land quickly. A full
// board yields the head cell, which never matches a move target.
func placeApple(s *snake.State, rng *core.RNG) core.Cell {
	g := s.Grid()
	n := g.Len()
	for i := 0; i < randomProbes; i++ {
		c := g.CellAt(rng.IntN(n))
		if !s.Occupied(c) {
			return c
		}
	}
	start := rng.IntN(n)
	for i := 0; i < n; i++ {
		c := g.CellAt((start + i) % n)
		if !s.Occupied(c) {
			return c
		}
	}
	return s.Head()
}

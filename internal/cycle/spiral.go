package cycle

import (
	"fmt"

	"snakebot/internal/core"
)

// spiral lays concentric rings, chains each ring to the next through a 2×2
// flip at the inner ring's top-left edge, then folds the 1-wide core left
// over by the rings into the innermost ring two cells at a time.
func spiral(g core.Grid, _ *core.RNG) (*links, error) {
	if g.W%2 == 1 && g.H%2 == 1 {
		return nil, errOddGrid
	}
	l := newLinks(g)
	rings := 0
	for {
		x0, y0, x1, y1 := rings, rings, g.W-1-rings, g.H-1-rings
		if x1-x0 < 1 || y1-y0 < 1 {
			break
		}
		ring := ringCells(x0, y0, x1, y1)
		for i, c := range ring {
			l.connect(c, ring[(i+1)%len(ring)])
		}
		rings++
	}
	for k := 0; k+1 < rings; k++ {
		l.flip(squareAt(k+1, k))
	}

	x0, y0, x1, y1 := rings, rings, g.W-1-rings, g.H-1-rings
	rw, rh := x1-x0+1, y1-y0+1
	switch {
	case rw <= 0 || rh <= 0:
	case rw == 1 && rh%2 == 0:
		for y := y0; y < y1; y += 2 {
			l.replace(core.Cell{X: x0 - 1, Y: y}, core.Cell{X: x0 - 1, Y: y + 1},
				core.Cell{X: x0, Y: y}, core.Cell{X: x0, Y: y + 1})
		}
	case rh == 1 && rw%2 == 0:
		for x := x0; x < x1; x += 2 {
			l.replace(core.Cell{X: x, Y: y0 + 1}, core.Cell{X: x + 1, Y: y0 + 1},
				core.Cell{X: x, Y: y0}, core.Cell{X: x + 1, Y: y0})
		}
	default:
		return nil, fmt.Errorf("spiral leaves a %dx%d core", rw, rh)
	}
	return l, nil
}

// ringCells lists the boundary of a rectangle clockwise from its top-left.
func ringCells(x0, y0, x1, y1 int) []core.Cell {
	var ring []core.Cell
	for x := x0; x <= x1; x++ {
		ring = append(ring, core.Cell{X: x, Y: y0})
	}
	for y := y0 + 1; y <= y1; y++ {
		ring = append(ring, core.Cell{X: x1, Y: y})
	}
	for x := x1 - 1; x >= x0; x-- {
		ring = append(ring, core.Cell{X: x, Y: y1})
	}
	for y := y1 - 1; y > y0; y-- {
		ring = append(ring, core.Cell{X: x0, Y: y})
	}
	return ring
}

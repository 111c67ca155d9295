package cycle

import (
	"errors"

	"snakebot/internal/core"
)

var errOddGrid = errors.New("both dimensions are odd")

// serpentine sweeps rows back and forth over columns 1..w-1 and returns up
// column 0. With an odd height the sweep runs over columns instead.
func serpentine(g core.Grid, _ *core.RNG) (*links, error) {
	switch {
	case g.H%2 == 0:
		return linksFromOrder(g, serpentineOrder(g.W, g.H, false)), nil
	case g.W%2 == 0:
		return linksFromOrder(g, serpentineOrder(g.H, g.W, true)), nil
	}
	return nil, errOddGrid
}

// serpentineOrder lays out a w×h sweep; h must be even. transpose swaps the
// coordinates of every emitted cell.
func serpentineOrder(w, h int, transpose bool) []core.Cell {
	order := make([]core.Cell, 0, w*h)
	add := func(x, y int) {
		if transpose {
			x, y = y, x
		}
		order = append(order, core.Cell{X: x, Y: y})
	}
	for x := 0; x < w; x++ {
		add(x, 0)
	}
	for y := 1; y < h; y++ {
		if y%2 == 1 {
			for x := w - 1; x >= 1; x-- {
				add(x, y)
			}
			continue
		}
		for x := 1; x < w; x++ {
			add(x, y)
		}
	}
	for y := h - 1; y >= 1; y-- {
		add(0, y)
	}
	return order
}

// Package cycle builds, validates and indexes Hamiltonian cycles over a
// rectangular grid.
package cycle

import (
	"slices"

	"snakebot/internal/core"
)

// Cycle is a validated Hamiltonian cycle. Rank 0 is always cell (0,0) and the
// value is immutable, so it may be shared across goroutines.
type Cycle struct {
	grid  core.Grid
	wrap  bool
	order []core.Cell
	rank  []int
}

// New validates order and returns it as a Cycle starting at (0,0).
func New(g core.Grid, order []core.Cell, wrap bool) (*Cycle, error) {
	if err := Validate(g, order, wrap); err != nil {
		return nil, err
	}
	start := slices.Index(order, core.Cell{})
	canon := make([]core.Cell, 0, len(order))
	canon = append(canon, order[start:]...)
	canon = append(canon, order[:start]...)
	return build(g, canon, wrap), nil
}

// FromDirs builds a cycle from a per-cell direction grid in row-major order.
func FromDirs(g core.Grid, dirs []core.Move, wrap bool) (*Cycle, error) {
	if err := ValidateDirs(g, dirs, wrap); err != nil {
		return nil, err
	}
	order := make([]core.Cell, g.Len())
	cur := core.Cell{}
	for i := range order {
		order[i] = cur
		cur, _ = g.Step(cur, dirs[g.Index(cur)], wrap)
	}
	return build(g, order, wrap), nil
}

func build(g core.Grid, order []core.Cell, wrap bool) *Cycle {
	rank := make([]int, g.Len())
	for i, c := range order {
		rank[g.Index(c)] = i
	}
	return &Cycle{grid: g, wrap: wrap, order: order, rank: rank}
}

// Grid returns the grid the cycle covers.
func (c *Cycle) Grid() core.Grid { return c.grid }

// Wrap reports whether steps of the cycle may cross the torus seam.
func (c *Cycle) Wrap() bool { return c.wrap }

// Len is the number of cells, N.
func (c *Cycle) Len() int { return len(c.order) }

// At returns the cell at rank r modulo N.
func (c *Cycle) At(r int) core.Cell {
	n := len(c.order)
	return c.order[((r%n)+n)%n]
}

// Rank returns the position of cell in the cycle.
func (c *Cycle) Rank(cell core.Cell) int { return c.rank[c.grid.Index(cell)] }

// Next returns the successor of cell.
func (c *Cycle) Next(cell core.Cell) core.Cell { return c.At(c.Rank(cell) + 1) }

// Dir returns the move from cell to its successor.
func (c *Cycle) Dir(cell core.Cell) core.Move {
	m, _ := c.grid.MoveBetween(cell, c.Next(cell), c.wrap)
	return m
}

// Distance is the forward rank distance from a to b, in [0, N).
func (c *Cycle) Distance(a, b core.Cell) int {
	n := len(c.order)
	return ((c.Rank(b)-c.Rank(a))%n + n) % n
}

// Cells returns a copy of the visiting order.
func (c *Cycle) Cells() []core.Cell { return slices.Clone(c.order) }

// Dirs returns the successor direction of every cell in row-major order.
func (c *Cycle) Dirs() []core.Move {
	dirs := make([]core.Move, c.grid.Len())
	for _, cell := range c.order {
		dirs[c.grid.Index(cell)] = c.Dir(cell)
	}
	return dirs
}

// Equal reports whether both cycles visit the same cells in the same order.
func (c *Cycle) Equal(o *Cycle) bool {
	return c.grid == o.grid && c.wrap == o.wrap && slices.Equal(c.order, o.order)
}

package core

import "fmt"

// Grid is an immutable W×H rectangle of cells addressed row-major.
type Grid struct {
	W, H int
}

// Cell identifies a grid position by value.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// NewGrid validates the dimensions. Both must be at least 2.
func NewGrid(w, h int) (Grid, error) {
	if w < 2 || h < 2 {
		return Grid{}, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	return Grid{W: w, H: h}, nil
}

// Size returns the grid dimensions in the render-facing form.
func (g Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len is the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// Exceeds reports whether the grid holds more than limit cells. It never
// forms W*H, so huge dimensions cannot overflow past the check.
func (g Grid) Exceeds(limit int) bool {
	if g.W <= 0 || g.H <= 0 {
		return false
	}
	return g.W > limit/g.H
}

// Index returns the row-major index of c.
func (g Grid) Index(c Cell) int { return c.Y*g.W + c.X }

// CellAt is the inverse of Index.
func (g Grid) CellAt(i int) Cell { return Cell{X: i % g.W, Y: i / g.W} }

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Step moves c one cell in direction m. Without wrap, stepping off the grid
// reports false.
func (g Grid) Step(c Cell, m Move, wrap bool) (Cell, bool) {
	dx, dy := m.Delta()
	x, y := c.X+dx, c.Y+dy
	if wrap {
		x, y = g.Wrap(x, y)
		return Cell{X: x, Y: y}, true
	}
	next := Cell{X: x, Y: y}
	return next, g.Contains(next)
}

// MoveBetween returns the move that takes a to b in one step. A direct step
// is preferred over one across the seam.
func (g Grid) MoveBetween(a, b Cell, wrap bool) (Move, bool) {
	for _, m := range Moves {
		if next, ok := g.Step(a, m, false); ok && next == b {
			return m, true
		}
	}
	if !wrap {
		return 0, false
	}
	for _, m := range Moves {
		if next, _ := g.Step(a, m, true); next == b {
			return m, true
		}
	}
	return 0, false
}

// Adjacent reports whether a and b are one unit step apart. With wrap the
// torus seam counts as a unit step.
func (g Grid) Adjacent(a, b Cell, wrap bool) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	_, ok := g.MoveBetween(a, b, wrap)
	return ok
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Set writes v at c.
func (g *ByteGrid) Set(c Cell, v uint8) { g.data[c.Y*g.W+c.X] = v }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

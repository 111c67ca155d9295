package cycle

import (
	"fmt"
	"strings"

	"snakebot/internal/core"
)

// MaxCells bounds the grids the generators accept.
const MaxCells = 16384

// Strategy selects a cycle construction.
type Strategy uint8

const (
	Serpentine Strategy = iota
	Spiral
	Maze
	Scrambled
)

// DefaultStrategy is used when no strategy is named.
const DefaultStrategy = Maze

var strategyNames = [...]string{
	Serpentine: "serpentine",
	Spiral:     "spiral",
	Maze:       "maze",
	Scrambled:  "scrambled",
}

// builder returns an undirected loop over g. g always has an even dimension.
type builder func(g core.Grid, rng *core.RNG) (*links, error)

var builders = [...]builder{
	Serpentine: serpentine,
	Spiral:     spiral,
	Maze:       maze,
	Scrambled:  scrambled,
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Strategies lists every construction in declaration order.
func Strategies() []Strategy {
	return []Strategy{Serpentine, Spiral, Maze, Scrambled}
}

// ParseStrategy resolves a strategy name. The empty string selects the
// default and "maze-based" is accepted for maze.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return DefaultStrategy, nil
	case "maze-based", "maze_based":
		return Maze, nil
	}
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cycle strategy %q: %w", name, core.ErrUnsupportedGrid)
}

// Generate builds a Hamiltonian cycle over g. Identical inputs always yield
// the identical cycle. When both dimensions are odd no cycle can avoid the
// torus seam, so the result wraps through the last column.
func Generate(g core.Grid, seed int64, s Strategy) (c *Cycle, err error) {
	if g.W < 2 || g.H < 2 {
		return nil, fmt.Errorf("grid %dx%d: %w", g.W, g.H, core.ErrUnsupportedGrid)
	}
	if g.Exceeds(MaxCells) {
		return nil, fmt.Errorf("grid %dx%d exceeds %d cells: %w", g.W, g.H, MaxCells, core.ErrUnsupportedGrid)
	}
	if int(s) >= len(builders) {
		return nil, fmt.Errorf("strategy %v: %w", s, core.ErrUnsupportedGrid)
	}
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("%v generator on %dx%d: %v: %w", s, g.W, g.H, r, core.ErrCycleInvariant)
		}
	}()

	rng := core.NewRNG(seed)
	build := builders[s]
	wrap := g.W%2 == 1 && g.H%2 == 1

	var l *links
	if wrap {
		l, err = withCorridor(g, rng, build)
	} else {
		l, err = build(g, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("%v generator on %dx%d: %w", s, g.W, g.H, err)
	}
	order, err := l.walk()
	if err != nil {
		return nil, fmt.Errorf("%v generator on %dx%d: %v: %w", s, g.W, g.H, err, core.ErrCycleInvariant)
	}
	c, err = New(g, order, wrap)
	if err != nil {
		return nil, fmt.Errorf("%v generator on %dx%d: %w", s, g.W, g.H, err)
	}
	return c, nil
}

// withCorridor builds on the (w-1)×h sub-grid and splices the last column in
// as a return corridor through the seam between rows 0 and h-1. The sub-grid
// corner (w-2,0) always links to (w-2,1), so the splice point exists.
func withCorridor(g core.Grid, rng *core.RNG, build builder) (*links, error) {
	sub := core.Grid{W: g.W - 1, H: g.H}
	inner, err := build(sub, rng)
	if err != nil {
		return nil, err
	}
	order, err := inner.walk()
	if err != nil {
		return nil, err
	}
	l := linksFromOrder(g, order)
	xc, xs := g.W-2, g.W-1
	via := make([]core.Cell, 0, g.H)
	via = append(via, core.Cell{X: xs, Y: 0})
	for y := g.H - 1; y >= 1; y-- {
		via = append(via, core.Cell{X: xs, Y: y})
	}
	l.replace(core.Cell{X: xc, Y: 0}, core.Cell{X: xc, Y: 1}, via...)
	return l, nil
}

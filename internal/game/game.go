// Package game runs a single snake session on a grid, either steered by a
// pilot each tick or by queued player input.
package game

import (
	"fmt"

	"snakebot/internal/core"
	"snakebot/internal/cycle"
	"snakebot/internal/snake"
)

// Cell palette indices written by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellApple
	CellCrash
)

// Outcome is the state of a session.
type Outcome uint8

const (
	Running Outcome = iota
	Crashed
	Won
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Crashed:
		return "crashed"
	case Won:
		return "won"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Pilot chooses a move every tick. bot.Controller satisfies it.
type Pilot interface {
	Decide(s *snake.State, apple core.Cell) core.Move
}

// Config describes the board. Window sizes the recent-head history kept for
// the pilot.
type Config struct {
	Grid   core.Grid
	Wrap   bool
	Window int
}

// inputBuffer is how many turns a player may queue ahead.
const inputBuffer = 2

// Game implements core.Sim for one snake and one apple.
type Game struct {
	cfg   Config
	pilot Pilot
	rng   *core.RNG
	seed  int64

	state   *snake.State
	apple   core.Cell
	dir     core.Move
	queue   []core.Move
	outcome Outcome
	score   int
	ticks   int
	cells   *core.ByteGrid
}

// New builds a session and places the snake and first apple from seed. A nil
// pilot leaves the snake to player input.
func New(cfg Config, pilot Pilot, seed int64) (*Game, error) {
	if _, err := core.NewGrid(cfg.Grid.W, cfg.Grid.H); err != nil {
		return nil, err
	}
	if cfg.Grid.Exceeds(cycle.MaxCells) {
		return nil, fmt.Errorf("grid %dx%d exceeds %d cells: %w", cfg.Grid.W, cfg.Grid.H, cycle.MaxCells, core.ErrInvalidDimensions)
	}
	g := &Game{
		cfg:   cfg,
		pilot: pilot,
		queue: make([]core.Move, 0, inputBuffer),
		cells: core.NewByteGrid(cfg.Grid.W, cfg.Grid.H),
	}
	g.Reset(seed)
	return g, nil
}

// Name identifies the session kind.
func (g *Game) Name() string {
	if g.pilot != nil {
		return "bot"
	}
	return "human"
}

// Size returns the board dimensions.
func (g *Game) Size() core.Size { return g.cfg.Grid.Size() }

// Reset starts over with a one-cell snake at the centre.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = core.NewRNG(seed)
	center := core.Cell{X: g.cfg.Grid.W / 2, Y: g.cfg.Grid.H / 2}
	g.state, _ = snake.New(g.cfg.Grid, g.cfg.Wrap, []core.Cell{center}, g.cfg.Window)
	g.dir = core.Moves[g.rng.IntN(len(core.Moves))]
	g.queue = g.queue[:0]
	g.outcome = Running
	g.score = 0
	g.ticks = 0
	g.apple = placeApple(g.state, g.rng)
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 { return g.seed }

// State exposes the snake for rendering and pilots.
func (g *Game) State() *snake.State { return g.state }

// Apple returns the current apple cell.
func (g *Game) Apple() core.Cell { return g.apple }

// Outcome reports whether the session is still running.
func (g *Game) Outcome() Outcome { return g.outcome }

// Score counts apples eaten.
func (g *Game) Score() int { return g.score }

// Ticks counts completed steps.
func (g *Game) Ticks() int { return g.ticks }

// Piloted reports whether a pilot steers the snake.
func (g *Game) Piloted() bool { return g.pilot != nil }

// Queue records a player turn. Turns that repeat or reverse the last queued
// direction are dropped, as are turns beyond the buffer.
func (g *Game) Queue(m core.Move) bool {
	last := g.dir
	if n := len(g.queue); n > 0 {
		last = g.queue[n-1]
	}
	if m == last || (m == last.Opposite() && g.state.Len() > 1) || len(g.queue) >= inputBuffer {
		return false
	}
	g.queue = append(g.queue, m)
	return true
}

// Step advances the session by one tick.
func (g *Game) Step() {
	if g.outcome != Running {
		return
	}
	switch {
	case g.pilot != nil:
		g.dir = g.pilot.Decide(g.state, g.apple)
	case len(g.queue) > 0:
		g.dir = g.queue[0]
		g.queue = append(g.queue[:0], g.queue[1:]...)
	}
	g.ticks++

	next, ok := g.cfg.Grid.Step(g.state.Head(), g.dir, g.cfg.Wrap)
	if !ok {
		g.outcome = Crashed
		return
	}
	eating := next == g.apple
	if g.state.Occupied(next) && (next != g.state.Tail() || eating) {
		g.outcome = Crashed
		return
	}
	g.state.Advance(next, eating)
	if !eating {
		return
	}
	g.score++
	if g.state.Len() == g.cfg.Grid.Len() {
		g.outcome = Won
		return
	}
	g.apple = placeApple(g.state, g.rng)
}

// Cells paints the board into palette indices.
func (g *Game) Cells() []uint8 {
	g.cells.Clear()
	for i := 0; i < g.state.Len(); i++ {
		g.cells.Set(g.state.At(i), CellBody)
	}
	head := CellHead
	if g.outcome == Crashed {
		head = CellCrash
	}
	g.cells.Set(g.state.Head(), head)
	if g.outcome == Running {
		g.cells.Set(g.apple, CellApple)
	}
	return g.cells.Cells()
}

// HumanTPS is the player tick rate: it speeds up by one tick per three
// apples, from 7 up to 20.
func HumanTPS(score int) int {
	return min(20, 7+score/3)
}

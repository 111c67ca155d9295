// Package bot steers a snake along a Hamiltonian cycle, taking shortcuts
// toward the apple only where the cycle order keeps them safe.
package bot

import (
	"fmt"
	"math"

	"snakebot/internal/core"
	"snakebot/internal/cycle"
	"snakebot/internal/snake"
)

// Controller decides one move per tick. It keeps no per-tick state, so a
// single instance may serve concurrent callers.
type Controller struct {
	cycle  *cycle.Cycle
	tuning Tuning
}

// New binds a controller to c. The cycle is checked again and rejected if it
// is not Hamiltonian; tuning is clamped silently (call Tuning.Clamp first to
// see what moved).
func New(c *cycle.Cycle, t Tuning) (*Controller, error) {
	if c == nil {
		return nil, fmt.Errorf("bot: no cycle: %w", core.ErrCycleInvariant)
	}
	if err := cycle.Validate(c.Grid(), c.Cells(), c.Wrap()); err != nil {
		return nil, fmt.Errorf("bot: refusing cycle: %w", err)
	}
	t, _ = t.Clamp()
	return &Controller{cycle: c, tuning: t}, nil
}

// Cycle returns the cycle the controller follows.
func (b *Controller) Cycle() *cycle.Cycle { return b.cycle }

// Tuning returns the clamped coefficients in use.
func (b *Controller) Tuning() Tuning { return b.tuning }

// NewState places a snake on the controller's grid with a history window
// matching the tuning.
func (b *Controller) NewState(body []core.Cell) (*snake.State, error) {
	return snake.New(b.cycle.Grid(), b.cycle.Wrap(), body, b.tuning.LoopWindow)
}

// plan is the per-tick view shared by every candidate.
type plan struct {
	n          int
	headRank   int
	appleRank  int
	hasApple   bool
	slack      int
	aggression float64
	maxSkip    int
}

func (b *Controller) forward(from, to int) int {
	n := b.cycle.Len()
	return ((to-from)%n + n) % n
}

func (b *Controller) plan(s *snake.State, apple core.Cell) plan {
	n := b.cycle.Len()
	p := plan{n: n, headRank: b.cycle.Rank(s.Head())}
	if s.Grid().Contains(apple) && !s.Occupied(apple) {
		p.hasApple = true
		p.appleRank = b.cycle.Rank(apple)
	}

	p.slack = n - 1
	if s.Len() > 1 {
		p.slack = max(0, b.forward(p.headRank, b.cycle.Rank(s.Tail()))-1)
	}

	p.aggression = (1 - float64(s.Len())/float64(n)) * b.tuning.AggressionScale
	p.aggression = math.Min(1, math.Max(0, p.aggression))

	p.maxSkip = 1
	if p.slack > 1 {
		p.maxSkip += int(p.aggression * float64(p.slack-1))
	}
	if b.tuning.MaxSkipCap > 0 {
		p.maxSkip = min(p.maxSkip, b.tuning.MaxSkipCap)
	}
	if p.slack > 0 {
		p.maxSkip = min(p.maxSkip, p.slack)
	}
	p.maxSkip = max(1, p.maxSkip)
	return p
}

// Decide returns the move for this tick. Candidates are tried in the order
// Up, Down, Left, Right; the cycle edge wins ties and is the fallback when no
// candidate is safe.
func (b *Controller) Decide(s *snake.State, apple core.Cell) core.Move {
	head := s.Head()
	fallback := b.cycle.Dir(head)
	p := b.plan(s, apple)

	best, bestScore, found := fallback, math.Inf(-1), false
	for _, m := range core.Moves {
		next, ok := s.Grid().Step(head, m, b.cycle.Wrap())
		if !ok {
			continue
		}
		d, ok := b.admissible(s, p, next, apple)
		if !ok {
			continue
		}
		score := b.score(s, p, next, d)
		if !found || score > bestScore || (score == bestScore && m == fallback) {
			best, bestScore, found = m, score, true
		}
	}
	return best
}

// admissible applies the safety envelope to a candidate cell and returns its
// forward rank distance from the head.
func (b *Controller) admissible(s *snake.State, p plan, next, apple core.Cell) (int, bool) {
	eating := p.hasApple && next == apple
	tail := s.Tail()
	if s.Len() > 1 && next == s.At(s.Len()-2) {
		return 0, false
	}
	if s.Occupied(next) && (next != tail || eating) {
		return 0, false
	}
	d := b.forward(p.headRank, b.cycle.Rank(next))
	if d < 1 || d > p.maxSkip {
		return 0, false
	}
	if d > 1 && p.hasApple && b.forward(p.headRank, p.appleRank) < d {
		return 0, false
	}
	for k := 1; k < d; k++ {
		if s.Occupied(b.cycle.At(p.headRank + k)) {
			return 0, false
		}
	}
	return d, true
}

func (b *Controller) score(s *snake.State, p plan, next core.Cell, d int) float64 {
	t := b.tuning
	progress := 0
	if p.hasApple {
		progress = b.forward(p.headRank, p.appleRank) - b.forward(b.cycle.Rank(next), p.appleRank)
	}
	score := t.KProgress * float64(progress)
	if progress < 0 {
		score -= t.KAway * float64(-progress)
	}
	if d > 1 && progress > 0 {
		score += t.KSkip * p.aggression * float64(d-1)
	}
	score -= t.KSlack / float64(max(0, p.slack-d)+1)
	if age, ok := s.RecentAge(next); ok && age < t.LoopWindow {
		score -= t.KLoop / float64(age+1)
	}
	return score
}

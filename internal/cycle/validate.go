package cycle

import (
	"fmt"

	"snakebot/internal/core"
)

// Rule names the invariant a rejected sequence broke.
type Rule string

const (
	RuleLength    Rule = "length"
	RuleCoverage  Rule = "coverage"
	RuleAdjacency Rule = "adjacency"
	RuleClosure   Rule = "closure"
)

// ViolationError describes the first invariant a candidate cycle fails.
type ViolationError struct {
	Rule   Rule
	Reason string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("cycle %s: %s", e.Rule, e.Reason)
}

func (e *ViolationError) Unwrap() error { return core.ErrCycleInvariant }

func violation(rule Rule, format string, args ...any) error {
	return &ViolationError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that cells visits every grid cell exactly once through unit
// steps and closes back to the first cell. Rules are checked in order: length,
// coverage, adjacency.
func Validate(g core.Grid, cells []core.Cell, wrap bool) error {
	n := g.Len()
	if len(cells) != n {
		return violation(RuleLength, "got %d cells, want %d", len(cells), n)
	}
	seen := make([]int, n)
	for i, c := range cells {
		if !g.Contains(c) {
			return violation(RuleCoverage, "cell %v at position %d is outside the %dx%d grid", c, i, g.W, g.H)
		}
		idx := g.Index(c)
		if seen[idx] != 0 {
			return violation(RuleCoverage, "cell %v repeated at positions %d and %d", c, seen[idx]-1, i)
		}
		seen[idx] = i + 1
	}
	for i, c := range cells {
		next := cells[(i+1)%n]
		if !g.Adjacent(c, next, wrap) {
			return violation(RuleAdjacency, "cells %v and %v at positions %d and %d are not adjacent", c, next, i, (i+1)%n)
		}
	}
	return nil
}

// ValidateDirs checks a per-cell successor grid: each step stays on the grid,
// every cell is entered exactly once, and the walk from (0,0) only returns to
// the start after covering all cells.
func ValidateDirs(g core.Grid, dirs []core.Move, wrap bool) error {
	n := g.Len()
	if len(dirs) != n {
		return violation(RuleLength, "got %d directions, want %d", len(dirs), n)
	}
	entered := make([]int, n)
	for i, m := range dirs {
		if m > core.Right {
			return violation(RuleAdjacency, "cell %v has invalid direction %d", g.CellAt(i), m)
		}
		next, ok := g.Step(g.CellAt(i), m, wrap)
		if !ok {
			return violation(RuleCoverage, "cell %v steps %s off the grid", g.CellAt(i), m)
		}
		idx := g.Index(next)
		if entered[idx] != 0 {
			return violation(RuleCoverage, "cell %v entered from both %v and %v", next, g.CellAt(entered[idx]-1), g.CellAt(i))
		}
		entered[idx] = i + 1
	}
	cur := core.Cell{}
	for steps := 1; steps <= n; steps++ {
		cur, _ = g.Step(cur, dirs[g.Index(cur)], wrap)
		if cur == (core.Cell{}) && steps < n {
			return violation(RuleClosure, "closes after %d of %d cells", steps, n)
		}
	}
	return nil
}

package cycle

import (
	"fmt"

	"snakebot/internal/core"
)

const unlinked = -1

// links is an undirected degree-≤2 adjacency over grid cells. Generators
// build and rewire loops here before fixing an orientation.
type links struct {
	g  core.Grid
	nb [][2]int
}

func newLinks(g core.Grid) *links {
	nb := make([][2]int, g.Len())
	for i := range nb {
		nb[i] = [2]int{unlinked, unlinked}
	}
	return &links{g: g, nb: nb}
}

func linksFromOrder(g core.Grid, order []core.Cell) *links {
	l := newLinks(g)
	for i, c := range order {
		l.connect(c, order[(i+1)%len(order)])
	}
	return l
}

func (l *links) id(c core.Cell) int { return l.g.Index(c) }

func (l *links) connect(a, b core.Cell) {
	l.attach(l.id(a), l.id(b))
	l.attach(l.id(b), l.id(a))
}

func (l *links) attach(a, b int) {
	switch {
	case l.nb[a][0] == unlinked:
		l.nb[a][0] = b
	case l.nb[a][1] == unlinked:
		l.nb[a][1] = b
	default:
		panic(fmt.Sprintf("cycle: cell %v already has two links", l.g.CellAt(a)))
	}
}

func (l *links) disconnect(a, b core.Cell) {
	l.detach(l.id(a), l.id(b))
	l.detach(l.id(b), l.id(a))
}

func (l *links) detach(a, b int) {
	switch b {
	case l.nb[a][0]:
		l.nb[a][0] = l.nb[a][1]
		l.nb[a][1] = unlinked
	case l.nb[a][1]:
		l.nb[a][1] = unlinked
	default:
		panic(fmt.Sprintf("cycle: cells %v and %v are not linked", l.g.CellAt(a), l.g.CellAt(b)))
	}
}

func (l *links) has(a, b core.Cell) bool {
	ia, ib := l.id(a), l.id(b)
	return l.nb[ia][0] == ib || l.nb[ia][1] == ib
}

// replace swaps edge a–b for the path a→via...→b.
func (l *links) replace(a, b core.Cell, via ...core.Cell) {
	l.disconnect(a, b)
	prev := a
	for _, c := range via {
		l.connect(prev, c)
		prev = c
	}
	l.connect(prev, b)
}

// walk orders the loop through (0,0), leaving toward the lower-indexed
// neighbour. It fails when a cell lacks two links or the loop closes early.
func (l *links) walk() ([]core.Cell, error) {
	n := l.g.Len()
	order := make([]core.Cell, 0, n)
	prev, cur := unlinked, 0
	for {
		nb := l.nb[cur]
		if nb[0] == unlinked || nb[1] == unlinked {
			return nil, fmt.Errorf("cell %v has fewer than two links", l.g.CellAt(cur))
		}
		order = append(order, l.g.CellAt(cur))
		next := nb[0]
		if prev == unlinked {
			next = min(nb[0], nb[1])
		} else if next == prev {
			next = nb[1]
		}
		prev, cur = cur, next
		if cur == 0 {
			break
		}
		if len(order) == n {
			return nil, fmt.Errorf("walk did not return to the start after %d cells", n)
		}
	}
	if len(order) != n {
		return nil, fmt.Errorf("loop closes after %d of %d cells", len(order), n)
	}
	return order, nil
}

// components labels each cell with the loop it belongs to.
func (l *links) components() ([]int, int) {
	labels := make([]int, l.g.Len())
	for i := range labels {
		labels[i] = unlinked
	}
	count := 0
	stack := make([]int, 0, 16)
	for start := range labels {
		if labels[start] != unlinked {
			continue
		}
		labels[start] = count
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range l.nb[cur] {
				if nb != unlinked && labels[nb] == unlinked {
					labels[nb] = count
					stack = append(stack, nb)
				}
			}
		}
		count++
	}
	return labels, count
}

// square names the 2×2 block with top-left corner (x, y).
type square struct{ tl, tr, bl, br core.Cell }

func squareAt(x, y int) square {
	return square{
		tl: core.Cell{X: x, Y: y},
		tr: core.Cell{X: x + 1, Y: y},
		bl: core.Cell{X: x, Y: y + 1},
		br: core.Cell{X: x + 1, Y: y + 1},
	}
}

// flippable reports whether the square carries exactly one pair of parallel
// edges, the precondition for a 2-opt flip.
func (l *links) flippable(s square) bool {
	horiz := l.has(s.tl, s.tr) && l.has(s.bl, s.br)
	vert := l.has(s.tl, s.bl) && l.has(s.tr, s.br)
	return horiz != vert
}

// flip swaps the square's parallel pair for the other orientation. Flipping
// edges of two loops merges them; flipping one loop may split it.
func (l *links) flip(s square) {
	if l.has(s.tl, s.tr) && l.has(s.bl, s.br) {
		l.disconnect(s.tl, s.tr)
		l.disconnect(s.bl, s.br)
		l.connect(s.tl, s.bl)
		l.connect(s.tr, s.br)
		return
	}
	l.disconnect(s.tl, s.bl)
	l.disconnect(s.tr, s.br)
	l.connect(s.tl, s.tr)
	l.connect(s.bl, s.br)
}

// bridges reports whether the square's parallel edges belong to different
// loops under labels.
func (l *links) bridges(s square, labels []int) bool {
	if l.has(s.tl, s.tr) && l.has(s.bl, s.br) {
		return labels[l.id(s.tl)] != labels[l.id(s.bl)]
	}
	return labels[l.id(s.tl)] != labels[l.id(s.tr)]
}

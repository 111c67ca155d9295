package cycle

import (
	"snakebot/internal/core"
)

// maze tiles the even part of the grid with 2×2 loops and merges them along a
// randomized depth-first spanning tree of the blocks. An odd trailing column
// or row is then stitched into the adjacent block edges two cells at a time.
func maze(g core.Grid, rng *core.RNG) (*links, error) {
	if g.W%2 == 1 && g.H%2 == 1 {
		return nil, errOddGrid
	}
	we, he := g.W&^1, g.H&^1
	bw, bh := we/2, he/2

	l := newLinks(g)
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			s := squareAt(2*bx, 2*by)
			l.connect(s.tl, s.tr)
			l.connect(s.tr, s.br)
			l.connect(s.br, s.bl)
			l.connect(s.bl, s.tl)
		}
	}

	visited := make([]bool, bw*bh)
	visited[0] = true
	stack := []int{0}
	var options [4]int
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		cx, cy := cur%bw, cur/bw
		n := 0
		for _, m := range core.Moves {
			dx, dy := m.Delta()
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= bw || ny < 0 || ny >= bh || visited[ny*bw+nx] {
				continue
			}
			options[n] = ny*bw + nx
			n++
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := options[rng.IntN(n)]
		visited[next] = true
		l.flip(blockJoin(cur, next, bw))
		stack = append(stack, next)
	}

	if g.W%2 == 1 {
		xc, xs := we-1, g.W-1
		for y := 0; y < he; y += 2 {
			l.replace(core.Cell{X: xc, Y: y}, core.Cell{X: xc, Y: y + 1},
				core.Cell{X: xs, Y: y}, core.Cell{X: xs, Y: y + 1})
		}
	}
	if g.H%2 == 1 {
		yc, ys := he-1, g.H-1
		for x := 0; x < we; x += 2 {
			l.replace(core.Cell{X: x, Y: yc}, core.Cell{X: x + 1, Y: yc},
				core.Cell{X: x, Y: ys}, core.Cell{X: x + 1, Y: ys})
		}
	}
	return l, nil
}

// blockJoin returns the square straddling the shared side of two neighbouring
// blocks. Flipping it splices the two block loops into one.
func blockJoin(a, b, bw int) square {
	a, b = min(a, b), max(a, b)
	ax, ay := a%bw, a/bw
	if b == a+1 && b/bw == ay {
		return squareAt(2*ax+1, 2*ay)
	}
	return squareAt(2*ax, 2*ay+1)
}

package cycle

import (
	"snakebot/internal/core"
)

// scrambled perturbs the serpentine with seeded 2-opt square flips. A flip
// that splits the loop is paired with a second flip that rejoins the halves;
// when no such flip exists the first is undone.
func scrambled(g core.Grid, rng *core.RNG) (*links, error) {
	l, err := serpentine(g, rng)
	if err != nil {
		return nil, err
	}
	n := g.Len()
	target := max(1, n/8)
	budget := n * 50
	for applied, attempt := 0, 0; applied < target && attempt < budget; attempt++ {
		s := squareAt(rng.IntN(g.W-1), rng.IntN(g.H-1))
		if !l.flippable(s) {
			continue
		}
		l.flip(s)
		labels, count := l.components()
		if count == 1 || l.rejoin(labels, s, rng) {
			applied++
			continue
		}
		l.flip(s)
	}
	return l, nil
}

// rejoin flips some square other than skip whose parallel edges belong to
// different loops, scanning from a random offset.
func (l *links) rejoin(labels []int, skip square, rng *core.RNG) bool {
	sw, sh := l.g.W-1, l.g.H-1
	total := sw * sh
	start := rng.IntN(total)
	for i := 0; i < total; i++ {
		k := (start + i) % total
		s := squareAt(k%sw, k/sw)
		if s == skip || !l.flippable(s) || !l.bridges(s, labels) {
			continue
		}
		l.flip(s)
		return true
	}
	return false
}

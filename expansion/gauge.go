package expansion

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/AG-Philipsen/hopping-large-nt/combinat"
	"github.com/AG-Philipsen/hopping-large-nt/position"
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

// GaugeIntegrate fills Terms on every path of c. Each path is split into
// closed colour loops; a loop visiting n steps becomes a segment W(n, m,
// pos) located at the site of its first step. When some loop visits more
// than two steps, every temporal ordering of the distinct loop times is
// enumerated and the ordering numbers m are weighted by how often each
// combination occurs.
func (c *Configuration) GaugeIntegrate() error {
	for _, p := range c.Paths {
		terms, err := p.integrate(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		p.Terms = terms
	}

	return nil
}

func (p *Path) integrate(c *Configuration) ([]*wilson.String, error) {
	loops, err := p.colourLoops(c.TraceBounds)
	if err != nil {
		return nil, err
	}

	times := make([][]int, len(loops))
	for l, loop := range loops {
		times[l] = make([]int, len(loop))
		for k, step := range loop {
			times[l][k] = abs(p.Links[step])
		}
	}

	base := make([]*wilson.String, 0, len(p.Spatials))
	for s := range p.Spatials {
		w := wilson.New(c.NumTraces())
		for _, loop := range loops {
			pos, err := p.siteOf(loop[0], s, c.TraceBounds)
			if err != nil {
				return nil, err
			}
			w.Segments = append(w.Segments, wilson.Segment{N: len(loop), M: 1, Pos: pos})
		}
		base = append(base, w)
	}

	branch := branchTimes(times)
	if len(branch) == 0 {
		for _, w := range base {
			finish(w, c.Prefactor)
		}

		return base, nil
	}

	var orderings combinat.CountedSet
	perm := slices.Clone(branch)
	rank := make(map[int]int, len(perm))
	tuple := make([]int, len(loops))
	for {
		for r, t := range perm {
			rank[t] = r
		}
		for l, ts := range times {
			if len(ts) <= 2 {
				tuple[l] = 1

				continue
			}
			m, err := orderingNumber(ts, rank)
			if err != nil {
				return nil, err
			}
			tuple[l] = m
		}
		orderings.Insert(tuple)
		if !combinat.NextPermutation(perm) {
			break
		}
	}

	weight := new(big.Rat).SetInt(combinat.Factorial(len(branch)))
	terms := make([]*wilson.String, 0, orderings.Len()*len(base))
	for _, o := range orderings.Entries() {
		for _, b := range base {
			w := b.Clone()
			for l := range w.Segments {
				w.Segments[l].M = o.Tuple[l]
			}
			w.Prefactor.SetInt64(int64(o.Count))
			w.Prefactor.Quo(w.Prefactor, weight)
			finish(w, c.Prefactor)
			terms = append(terms, w)
		}
	}

	return terms, nil
}

func finish(w *wilson.String, prefactor *big.Rat) {
	w.ApplyOrderingSign()
	w.Prefactor.Mul(w.Prefactor, prefactor)
	w.Canonicalize()
}

// orderingNumber counts the descents of a loop's times in the current
// permutation, closing the cycle from the last time back to the first.
func orderingNumber(ts []int, rank map[int]int) (int, error) {
	at := make([]int, len(ts))
	for k, t := range ts {
		r, ok := rank[t]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrTimeIndex, t)
		}
		at[k] = r
	}

	m := 0
	for k := 0; k+1 < len(at); k++ {
		if at[k+1] < at[k] {
			m++
		}
	}
	if at[0] < at[len(at)-1] {
		m++
	}

	return m, nil
}

// branchTimes returns the sorted distinct times of every loop longer than
// two steps.
func branchTimes(times [][]int) []int {
	var out []int
	for _, ts := range times {
		if len(ts) > 2 {
			out = append(out, ts...)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// colourLoops contracts the colour indices of every step and returns the
// resulting closed loops as step sequences in traversal order.
//
// Step i carries the index pair (2i, 2i+1). A link identifies the indices
// of its later end with the swapped indices of its earlier end; every trace
// then shifts its indices by one slot to close the trace.
func (p *Path) colourLoops(bounds []int) ([][]int, error) {
	n := p.Len()
	idx := make([]int, 2*n)
	for i := range idx {
		idx[i] = i + 1
	}
	for i := 0; i < n; i++ {
		j, err := p.Partner(i)
		if err != nil {
			return nil, err
		}
		if j < i {
			continue
		}
		idx[2*j+1] = idx[2*i]
		idx[2*j] = idx[2*i+1]
	}
	from := 0
	for _, to := range bounds {
		rotateRight(idx[2*from : 2*to])
		from = to
	}

	leftOf := make(map[int]int, n)
	for i := 0; i < n; i++ {
		leftOf[idx[2*i]] = i
	}

	var (
		loops [][]int
		used  = make([]bool, n)
	)
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		used[i] = true
		loop := []int{i}
		for right := idx[2*i+1]; right != idx[2*i]; {
			j, ok := leftOf[right]
			if !ok || used[j] {
				return nil, fmt.Errorf("%w: index %d after step %d", ErrIndexNotFound, right, loop[len(loop)-1])
			}
			used[j] = true
			loop = append(loop, j)
			right = idx[2*j+1]
		}
		loops = append(loops, loop)
	}

	return loops, nil
}

// siteOf returns the lattice site of step i under assignment s: the sum of
// all earlier steps, or for multi-trace paths the trace displacement plus
// the earlier steps of the same trace.
func (p *Path) siteOf(i, s int, bounds []int) (position.Pos, error) {
	sp := p.Spatials[s]
	if len(bounds) == 1 {
		var pos position.Pos
		pos.Walk(sp[:i])

		return pos, nil
	}

	t, err := traceIndex(bounds, i)
	if err != nil {
		return nil, err
	}
	pos := p.TraceDisp[s][t].Clone()
	pos.Walk(sp[lowerBound(bounds, i):i])

	return pos, nil
}

func rotateRight(xs []int) {
	if len(xs) < 2 {
		return
	}
	last := xs[len(xs)-1]
	copy(xs[1:], xs[:len(xs)-1])
	xs[0] = last
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

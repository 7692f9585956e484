package expansion

import (
	"slices"

	"github.com/AG-Philipsen/hopping-large-nt/position"
)

// ResolveSpatial imposes the Kronecker deltas of every path: trace closure
// and, for every link, that the two sites it connects coincide. Single-trace
// paths keep their branched spatial assignments; multi-trace paths also get
// trace displacements, and only the assignments with the most free spatial
// labels survive.
func (c *Configuration) ResolveSpatial() error {
	for _, p := range c.Paths {
		if c.IsSingleTrace() {
			p.imposeDelta(0, p.Len())
			p.imposeCrossings(0, p.Len())

			continue
		}

		from := 0
		for _, to := range c.TraceBounds {
			p.imposeDelta(from, to)
			p.imposeCrossings(from, to)
			from = to
		}
		if err := p.placeTraces(c.TraceBounds); err != nil {
			return err
		}
		p.keepMaxFreedom()
	}

	return nil
}

// imposeDelta forces the displacement summed over steps [from, to) to zero
// in every assignment, replacing each by all of its admissible relabelings.
func (p *Path) imposeDelta(from, to int) {
	var next [][]int
	for _, sp := range p.Spatials {
		var disp position.Pos
		disp.Walk(sp[from:to])
		next = append(next, imposeZero(disp, sp)...)
	}
	p.Spatials = dedupe(next)
}

// imposeCrossings imposes a delta for every link with both ends in
// [from, to): the steps strictly between its ends must cancel.
func (p *Path) imposeCrossings(from, to int) {
	for i := from; i < to; i++ {
		if j, ok := p.forwardPartner(i, to); ok {
			p.imposeDelta(i+1, j)
		}
	}
}

// imposeZero returns every relabeling of sp under which disp vanishes.
// The first non-zero axis is cancelled against each later axis of opposite
// sign by merging the later label into it; the remainder is solved
// recursively. An empty result means disp cannot vanish.
func imposeZero(disp position.Pos, sp []int) [][]int {
	start := -1
	for i, v := range disp {
		if v != 0 {
			start = i

			break
		}
	}
	if start < 0 {
		return [][]int{sp}
	}

	var out [][]int
	sign := sgn(disp[start])
	for i := start + 1; i < len(disp); i++ {
		if sgn(disp[i]) != -sign {
			continue
		}
		next := slices.Clone(sp)
		for k, v := range next {
			if v == i+1 || v == -(i+1) {
				next[k] = sgn(v) * (start + 1)
			}
		}

		moved := disp[i]
		disp[start] += moved
		disp[i] = 0
		out = append(out, imposeZero(disp, next)...)
		disp[i] = moved
		disp[start] -= moved
	}

	return out
}

// placeTraces computes the trace displacements of every assignment.
// Assignments that leave an offset between traces are repaired by imposing
// that offset to zero and queued again.
func (p *Path) placeTraces(bounds []int) error {
	queue := p.Spatials
	var (
		kept  [][]int
		disps [][]position.Pos
	)
	for head := 0; head < len(queue); head++ {
		sp := queue[head]
		rel, conflict, ok, err := traceDisplacements(p.Links, bounds, sp)
		if err != nil {
			return err
		}
		if ok {
			kept = append(kept, sp)
			disps = append(disps, rel)

			continue
		}
		if conflict.IsZero() {
			continue
		}
		queue = append(queue, imposeZero(conflict.Clone(), sp)...)
	}

	p.Spatials, p.TraceDisp = dedupeWith(kept, disps)

	return nil
}

// keepMaxFreedom drops every assignment with fewer distinct signed labels
// than the best one.
func (p *Path) keepMaxFreedom() {
	if len(p.Spatials) < 2 {
		return
	}
	best := 0
	free := make([]int, len(p.Spatials))
	for s, sp := range p.Spatials {
		free[s] = distinct(sp)
		best = max(best, free[s])
	}

	var (
		spatials [][]int
		disps    [][]position.Pos
	)
	for s, sp := range p.Spatials {
		if free[s] < best {
			continue
		}
		spatials = append(spatials, sp)
		disps = append(disps, p.TraceDisp[s])
	}
	p.Spatials, p.TraceDisp = spatials, disps
}

func distinct(sp []int) int {
	seen := make(map[int]struct{}, len(sp))
	for _, v := range sp {
		seen[v] = struct{}{}
	}

	return len(seen)
}

func dedupe(sps [][]int) [][]int {
	out, _ := dedupeWith(sps, nil)

	return out
}

// dedupeWith removes repeated assignments, keeping the first occurrence and
// the matching entry of disps when disps is non-nil.
func dedupeWith(sps [][]int, disps [][]position.Pos) ([][]int, [][]position.Pos) {
	var (
		out    [][]int
		outRel [][]position.Pos
	)
	for s, sp := range sps {
		if slices.ContainsFunc(out, func(o []int) bool { return slices.Equal(o, sp) }) {
			continue
		}
		out = append(out, sp)
		if disps != nil {
			outRel = append(outRel, disps[s])
		}
	}

	return out, outRel
}

func sgn(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}

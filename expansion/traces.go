package expansion

import (
	"github.com/AG-Philipsen/hopping-large-nt/position"
)

// traceDisplacements places every trace relative to trace 0 using the
// links that cross between traces. steps holds one signed axis label per
// step. The Backward end of a link contributes its own step.
//
// It returns the per-trace displacements and ok=true when every trace is
// placed without contradiction. On contradiction it returns the non-zero
// offset that must vanish for the traces to close. A trace that no link
// reaches yields ok=false with a zero conflict.
func traceDisplacements(links, bounds, steps []int) ([]position.Pos, position.Pos, bool, error) {
	nt := len(bounds)
	var (
		rel     = make([]position.Pos, nt)
		wrt     = make([]int, nt)
		placed  = make([]bool, nt)
		from, t = 0, 0
	)

	for i := range links {
		if i == bounds[t] {
			from = bounds[t]
			t++
		}

		lnk := -1
		for j := i + 1; j < len(links); j++ {
			if links[j] == -links[i] {
				lnk = j

				break
			}
		}
		if lnk < 0 || lnk < bounds[t] {
			continue
		}
		lt, err := traceIndex(bounds, lnk)
		if err != nil {
			return nil, nil, false, err
		}

		var cur, back position.Pos
		cur.Walk(steps[from:endOf(links, i)])
		back.Walk(steps[bounds[lt-1]:endOf(links, lnk)])
		cur.Sub(back)

		iRoot, lRoot := t, lt
		if placed[t] {
			iRoot = wrt[t]
		}
		if placed[lt] {
			lRoot = wrt[lt]
		}

		if iRoot == lRoot {
			cur.Add(rel[t])
			cur.Sub(rel[lt])
			if !cur.IsZero() {
				return nil, cur, false, nil
			}

			continue
		}

		var (
			total        position.Pos
			move, target int
		)
		if iRoot < lRoot {
			move, target = lRoot, iRoot
			total.Add(rel[t])
			total.Add(cur)
			total.Sub(rel[lt])
		} else {
			move, target = iRoot, lRoot
			total.Sub(rel[t])
			total.Sub(cur)
			total.Add(rel[lt])
		}
		rel[move] = total
		wrt[move] = target
		placed[move] = true
		for j := range wrt {
			if wrt[j] == move {
				wrt[j] = target
				rel[j].Add(total)
			}
		}
	}

	for j := 1; j < nt; j++ {
		if !placed[j] {
			return nil, nil, false, nil
		}
	}

	return rel, nil, true, nil
}

// endOf is the exclusive end of the walk up to the site of a link end:
// Backward ends include their own step.
func endOf(links []int, i int) int {
	if links[i] < 0 {
		return i + 1
	}

	return i
}

package expansion

import (
	"slices"
)

// EnumeratePaths fills c.Paths with every complete temporal link
// assignment. Inside a trace a step may only pair with a later opposite
// step while the steps in between are balanced; pairing into a later trace
// is always allowed. Multi-trace assignments whose traces cannot be placed
// consistently along the time axis are dropped.
func (c *Configuration) EnumeratePaths() error {
	n := c.Len()
	var (
		paths []*Path
		links = make([]int, n)
		used  = make([]bool, n)
	)

	mark := func(i, link int) (unmark func()) {
		used[i], links[i] = true, link

		return func() { used[i], links[i] = false, 0 }
	}

	var connect func(from, id int)
	connect = func(from, id int) {
		start := -1
		for i := from; i < n; i++ {
			if !used[i] {
				start = i

				break
			}
		}
		if start < 0 {
			paths = append(paths, newPath(links))

			return
		}

		defer mark(start, int(c.Symbols[start])*id)()
		pair := func(i int) {
			defer mark(i, -links[start])()
			connect(start+1, id+1)
		}

		upper := c.UpperTraceBound(start)
		forward, backward := 0, 0
		for i := start + 1; i < n; i++ {
			if c.Symbols[i] != c.Symbols[start] && !used[i] && (forward == backward || i >= upper) {
				pair(i)
			}
			if c.Symbols[i] == Forward {
				forward++
			} else {
				backward++
			}
		}
	}
	connect(0, 1)

	if !c.IsSingleTrace() {
		steps := c.Steps()
		feasible := paths[:0]
		for _, p := range paths {
			_, _, ok, err := traceDisplacements(p.Links, c.TraceBounds, steps)
			if err != nil {
				return err
			}
			if ok {
				feasible = append(feasible, p)
			}
		}
		paths = slices.Clip(feasible)
	}
	c.Paths = paths

	return nil
}

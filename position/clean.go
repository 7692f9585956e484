package position

import "sort"

// Clean removes every axis that is zero in all of ps and compacts the
// remaining axes to the front, preserving their order. Afterwards every
// position has exactly as many stored components as there are used axes.
// The slice is rewritten in place.
//
// Example: {0,1,0,2} and {0,0,0,-1} become {1,2} and {0,-1}.
func Clean(ps []Pos) {
	used := usedAxes(ps)
	for i, p := range ps {
		cleaned := make(Pos, len(used))
		for j, axis := range used {
			cleaned[j] = p.At(axis)
		}
		ps[i] = cleaned
	}
}

// usedAxes returns the sorted axes that are nonzero in at least one position.
func usedAxes(ps []Pos) []int {
	seen := make(map[int]struct{})
	for _, p := range ps {
		for i, v := range p {
			if v != 0 {
				seen[i] = struct{}{}
			}
		}
	}
	axes := make([]int, 0, len(seen))
	for axis := range seen {
		axes = append(axes, axis)
	}
	sort.Ints(axes)

	return axes
}

package expansion

import (
	"fmt"
	"slices"

	"github.com/AG-Philipsen/hopping-large-nt/position"
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

// Path is one complete temporal link assignment of a configuration.
//
// Links[i] = ±id pairs step i with the unique step holding ∓id; the sign
// follows the symbol at i. Spatials lists the surviving spatial
// assignments, each a vector of signed axis labels parallel to Links.
// For multi-trace paths TraceDisp[s][t] is the displacement of trace t
// relative to trace 0 under Spatials[s].
type Path struct {
	Links     []int
	Spatials  [][]int
	TraceDisp [][]position.Pos
	Terms     []*wilson.String
}

func newPath(links []int) *Path {
	return &Path{
		Links:    slices.Clone(links),
		Spatials: [][]int{slices.Clone(links)},
	}
}

// Len returns the number of steps.
func (p *Path) Len() int { return len(p.Links) }

// Partner returns the index of the step linked to step i.
func (p *Path) Partner(i int) (int, error) {
	if i < 0 || i >= len(p.Links) || p.Links[i] == 0 {
		return 0, fmt.Errorf("%w: step %d", ErrLinkNotFound, i)
	}
	for j, l := range p.Links {
		if j != i && l == -p.Links[i] {
			return j, nil
		}
	}

	return 0, fmt.Errorf("%w: step %d (link %d)", ErrLinkNotFound, i, p.Links[i])
}

// forwardPartner returns the first j in (i, to) linked to step i.
func (p *Path) forwardPartner(i, to int) (int, bool) {
	for j := i + 1; j < to; j++ {
		if p.Links[j] == -p.Links[i] {
			return j, true
		}
	}

	return 0, false
}

// RemoveSpecialSpatials drops every spatial assignment in which some label
// occurs more than twice inside a single trace, and returns how many were
// dropped.
func (p *Path) RemoveSpecialSpatials(bounds []int) int {
	kept := p.Spatials[:0]
	var disps [][]position.Pos
	dropped := 0
	for s, sp := range p.Spatials {
		if crowded(sp, bounds) {
			dropped++

			continue
		}
		kept = append(kept, sp)
		if p.TraceDisp != nil {
			disps = append(disps, p.TraceDisp[s])
		}
	}
	p.Spatials = kept
	if p.TraceDisp != nil {
		p.TraceDisp = disps
	}

	return dropped
}

func crowded(sp []int, bounds []int) bool {
	from := 0
	for _, to := range bounds {
		seen := make(map[int]int)
		for _, v := range sp[from:to] {
			seen[v]++
			if seen[v] > 2 {
				return true
			}
		}
		from = to
	}

	return false
}

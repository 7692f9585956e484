package wilson

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/AG-Philipsen/hopping-large-nt/position"
)

// Segment is one closed loop factor W(N, M, Pos).
type Segment struct {
	N   int
	M   int
	Pos position.Pos
}

// Compare orders segments by N, then M, then position (padded
// lexicographic). It returns -1, 0 or +1.
func (s Segment) Compare(o Segment) int {
	switch {
	case s.N != o.N:
		return cmp.Compare(s.N, o.N)
	case s.M != o.M:
		return cmp.Compare(s.M, o.M)
	}

	return s.Pos.Compare(o.Pos)
}

// String is a product of segments with an exact prefactor.
type String struct {
	Segments  []Segment
	Prefactor *big.Rat
	Traces    int
}

// New returns an empty string with prefactor 1.
func New(traces int) *String {
	return &String{Prefactor: big.NewRat(1, 1), Traces: traces}
}

// Clone deep-copies w.
func (w *String) Clone() *String {
	out := &String{
		Segments:  make([]Segment, len(w.Segments)),
		Prefactor: new(big.Rat).Set(w.Prefactor),
		Traces:    w.Traces,
	}
	for i, s := range w.Segments {
		out.Segments[i] = Segment{N: s.N, M: s.M, Pos: s.Pos.Clone()}
	}

	return out
}

// OrderingSum returns the sum of all ordering numbers M.
func (w *String) OrderingSum() int {
	sum := 0
	for _, s := range w.Segments {
		sum += s.M
	}

	return sum
}

// ApplyOrderingSign multiplies the prefactor by (-1)^OrderingSum.
func (w *String) ApplyOrderingSign() {
	if w.OrderingSum()%2 != 0 {
		w.Prefactor.Neg(w.Prefactor)
	}
}

// Canonicalize sorts the segments, re-bases every position so that the
// first segment sits at the origin and removes unused axes.
func (w *String) Canonicalize() {
	if len(w.Segments) == 0 {
		return
	}
	slices.SortStableFunc(w.Segments, Segment.Compare)

	origin := w.Segments[0].Pos.Clone()
	ps := make([]position.Pos, len(w.Segments))
	for i := range w.Segments {
		p := w.Segments[i].Pos.Clone()
		p.Sub(origin)
		ps[i] = p
	}
	position.Clean(ps)
	for i := range w.Segments {
		w.Segments[i].Pos = ps[i]
	}
}

// Compare is the strict total order over strings: trace count first, then
// lexicographic over segments (a proper prefix sorts first). Prefactors do
// not take part. It returns -1, 0 or +1.
func Compare(a, b *String) int {
	if a.Traces != b.Traces {
		return cmp.Compare(a.Traces, b.Traces)
	}

	return slices.CompareFunc(a.Segments, b.Segments, Segment.Compare)
}

// Less reports Compare(a, b) < 0.
func Less(a, b *String) bool {
	return Compare(a, b) < 0
}

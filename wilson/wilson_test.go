package wilson_test

import (
	"math/big"
	"testing"

	"github.com/AG-Philipsen/hopping-large-nt/position"
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func term(traces int, segs ...wilson.Segment) *wilson.String {
	w := wilson.New(traces)
	w.Segments = segs

	return w
}

// TestCanonicalize_SortsRebasesAndCleans checks the three normalization
// steps on a term whose first-sorted segment is not at the origin.
func TestCanonicalize_SortsRebasesAndCleans(t *testing.T) {
	w := term(1,
		wilson.Segment{N: 2, M: 1, Pos: position.Pos{0, 0, 1, 1}},
		wilson.Segment{N: 1, M: 1, Pos: position.Pos{0, 0, 1}},
		wilson.Segment{N: 1, M: 1, Pos: position.Pos{0, 0, 0}},
	)
	w.Canonicalize()

	require.Len(t, w.Segments, 3)
	assert.Equal(t, 1, w.Segments[0].N)
	assert.True(t, w.Segments[0].Pos.IsZero(), "first segment at the origin")
	assert.Equal(t, position.Pos{0, 0}, w.Segments[0].Pos)
	assert.Equal(t, position.Pos{1, 0}, w.Segments[1].Pos)
	assert.Equal(t, position.Pos{1, 1}, w.Segments[2].Pos)
}

// TestCanonicalize_TranslationInvariant verifies that translated copies of
// the same term become identical.
func TestCanonicalize_TranslationInvariant(t *testing.T) {
	a := term(1,
		wilson.Segment{N: 1, M: 1, Pos: position.Pos{3}},
		wilson.Segment{N: 1, M: 1, Pos: position.Pos{2}},
	)
	b := term(1,
		wilson.Segment{N: 1, M: 1, Pos: position.Pos{0, 5}},
		wilson.Segment{N: 1, M: 1, Pos: position.Pos{0, 6}},
	)
	a.Canonicalize()
	b.Canonicalize()

	assert.Equal(t, 0, wilson.Compare(a, b))
	assert.Equal(t, "{1}", a.Segments[1].Pos.String())
}

// TestCompare_StrictTotalOrder checks irreflexivity, asymmetry and
// transitivity over a small family of terms.
func TestCompare_StrictTotalOrder(t *testing.T) {
	terms := []*wilson.String{
		term(1, wilson.Segment{N: 1, M: 1, Pos: position.Pos{}}),
		term(1, wilson.Segment{N: 1, M: 1, Pos: position.Pos{}}, wilson.Segment{N: 1, M: 1, Pos: position.Pos{1}}),
		term(1, wilson.Segment{N: 2, M: 1, Pos: position.Pos{}}),
		term(1, wilson.Segment{N: 3, M: 2, Pos: position.Pos{}}),
		term(1, wilson.Segment{N: 3, M: 1, Pos: position.Pos{-1}}),
		term(2, wilson.Segment{N: 1, M: 1, Pos: position.Pos{}}),
	}
	for _, a := range terms {
		assert.False(t, wilson.Less(a, a), "irreflexive")
		for _, b := range terms {
			if wilson.Less(a, b) {
				assert.False(t, wilson.Less(b, a), "asymmetric")
			}
			for _, c := range terms {
				if wilson.Less(a, b) && wilson.Less(b, c) {
					assert.True(t, wilson.Less(a, c), "transitive")
				}
			}
		}
	}
	assert.True(t, wilson.Less(terms[0], terms[1]), "proper prefix first")
	assert.True(t, wilson.Less(terms[4], terms[3]), "M before position")
	assert.True(t, wilson.Less(terms[3], terms[5]), "trace count dominates")
}

func TestApplyOrderingSign(t *testing.T) {
	w := term(1,
		wilson.Segment{N: 3, M: 2},
		wilson.Segment{N: 1, M: 1},
	)
	w.Prefactor = big.NewRat(1, 3)
	w.ApplyOrderingSign()
	assert.Equal(t, 3, w.OrderingSum())
	assert.Equal(t, "-1/3", w.Prefactor.RatString())
}

func TestClone_IsDeep(t *testing.T) {
	w := term(2, wilson.Segment{N: 1, M: 1, Pos: position.Pos{1}})
	c := w.Clone()
	c.Segments[0].Pos[0] = 7
	c.Prefactor.SetInt64(5)

	assert.Equal(t, position.Pos{1}, w.Segments[0].Pos)
	assert.Equal(t, "1", w.Prefactor.RatString())
	assert.Equal(t, 2, c.Traces)
}

type recorder struct{ events []string }

func (r *recorder) EnterTerm(*wilson.String) { r.events = append(r.events, "enter") }
func (r *recorder) VisitSegment(wilson.Segment) { r.events = append(r.events, "segment") }
func (r *recorder) ExitTerm(*wilson.String) { r.events = append(r.events, "exit") }

func TestWalk_Order(t *testing.T) {
	r := &recorder{}
	wilson.Walk([]*wilson.String{
		term(1, wilson.Segment{N: 1, M: 1}, wilson.Segment{N: 1, M: 1}),
		term(1, wilson.Segment{N: 2, M: 1}),
	}, r)

	assert.Equal(t, []string{"enter", "segment", "segment", "exit", "enter", "segment", "exit"}, r.events)
}

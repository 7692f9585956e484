package combinat

import (
	"slices"
	"strconv"
	"strings"
)

// Counted is one distinct tuple of a CountedSet and how often it was
// inserted.
type Counted struct {
	Tuple []int
	Count int
}

// CountedSet is a set of integer tuples that keeps a multiplicity per tuple.
// The zero value is ready to use.
type CountedSet struct {
	index   map[string]int
	entries []Counted
}

// Insert adds one occurrence of tuple. The tuple is copied.
func (s *CountedSet) Insert(tuple []int) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	key := tupleKey(tuple)
	if at, ok := s.index[key]; ok {
		s.entries[at].Count++

		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Counted{Tuple: slices.Clone(tuple), Count: 1})
}

// Len returns the number of distinct tuples.
func (s *CountedSet) Len() int {
	return len(s.entries)
}

// Count returns the multiplicity of tuple (0 when absent).
func (s *CountedSet) Count(tuple []int) int {
	if at, ok := s.index[tupleKey(tuple)]; ok {
		return s.entries[at].Count
	}

	return 0
}

// Entries returns the distinct tuples in lexicographic tuple order.
func (s *CountedSet) Entries() []Counted {
	out := slices.Clone(s.entries)
	slices.SortFunc(out, func(a, b Counted) int {
		return slices.Compare(a.Tuple, b.Tuple)
	})

	return out
}

func tupleKey(tuple []int) string {
	var sb strings.Builder
	for i, v := range tuple {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

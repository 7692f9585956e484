// Package combinat collects the exact combinatorial primitives used by the
// expansion: big-integer factorials and binomials, subset-sum enumeration
// with repetition, in-place lexicographic permutation stepping and a set of
// integer tuples that counts repeated insertions.
//
// Every count is exact; nothing here ever falls back to floating point.
package combinat

// Package wilson defines the canonical output terms of the expansion.
//
// A Segment W(n, m, x) is one closed index loop: n contracted link steps,
// ordering number m (1 ≤ m ≤ n) fixing the relative temporal order of
// interleaved loops, and the lattice site x the loop sits at.
//
// A String is a product of segments with an exact rational prefactor and the
// number of colour traces it came from. Strings are canonicalized right after
// they are produced: segments sorted, the first segment moved to the origin
// and axes unused by every segment removed. Compare is a strict total order on
// canonical strings and is what the term collector uses to merge duplicates.
package wilson

// Package position implements relative lattice displacements.
//
// What:
//
//   - Pos is a sparse signed integer vector over an unbounded axis set.
//     Components beyond the stored length are implicitly zero, so two
//     positions of different stored length compare equal when they differ
//     only by trailing zeros.
//   - A unit step is encoded as a signed axis label ±k (k ≥ 1): +k moves one
//     unit along axis k-1, -k moves one unit back. Label 0 is "no move".
//   - Clean deletes axes unused by a whole family of positions, compacting
//     the remaining axes to the front while keeping their relative order.
//
// Orderings:
//
//   - Less / Compare    - lexicographic with implicit zero padding
//     (the canonical order used for term deduplication).
//   - StrictLess         - raw lexicographic over stored components, shorter
//     prefix first.
//   - AbsLess            - lexicographic on absolute component values.
//
// Rendering:
//
//   - String()           - "{1,0,-1}"
//   - Symbolic('x')      - "x + i - k" (axes named i, j, k, ...)
//   - Parse              - inverse of String.
//
// Complexity: all operations are O(len) in the stored length.
package position

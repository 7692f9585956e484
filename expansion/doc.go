// Package expansion enumerates and integrates the P/M hopping expansion of
// the heavy-quark determinant at a fixed even order N.
//
// What:
//
//   - Generate builds a Catalog: for every even sub-order k ≤ N, the
//     distinct (up to cyclic rotation) Forward/Backward sequences of length
//     k, each weighted by −2/k times its rotation-class multiplicity; and,
//     at order N only, every multi-trace composite of lower-order sequences
//     divided by the factorials of its repeat counts.
//   - Configuration.EnumeratePaths finds every complete temporal pairing of
//     opposite symbols (balanced inside a trace, or crossing into a later
//     trace) by depth-first backtracking, discarding multi-trace pairings
//     whose traces cannot be placed relative to each other.
//   - Configuration.ResolveSpatial imposes a Kronecker delta for every link
//     and for trace closure. Forcing a summed displacement to zero may be
//     possible in several ways, so one assignment can branch into many.
//     Multi-trace paths additionally get per-trace displacements and
//     conflicting offsets are repaired by a further delta.
//   - Configuration.GaugeIntegrate contracts the colour indices of every
//     path into closed loops and emits one wilson.String per spatial
//     assignment and distinct temporal ordering of the branching loops.
//   - Run drives the whole pipeline and hands every term to a Sink.
//
// Walk order (Catalog.Accept): catalog → configuration → its paths →
// each path's spatial assignments → each path's terms → each term's
// segments, with explicit enter/exit hooks.
//
// Errors:
//
//   - ErrInvalidOrder, ErrInvalidConfiguration, ErrOverflow: construction.
//   - ErrLinkNotFound, ErrTraceIndex, ErrIndexNotFound, ErrTimeIndex:
//     internal consistency faults; the run aborts.
//   - ErrBadWorkers, ErrNilSink, ErrNotGenerated: misuse of Run/Process.
//
// Infeasible spatial branches are never errors; they are pruned.
//
// Complexity: exhaustive, growing combinatorially with N. Orders beyond ~12
// are impractical.
package expansion

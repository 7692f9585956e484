// Package collector merges Wilson-line terms that differ only in their
// prefactor.
//
// A Collector keeps its terms sorted by wilson.Compare. Submitting a term
// that equals a stored one adds the prefactors; a sum of zero removes the
// stored term. Extract hands over the merged terms and empties the
// collector.
//
// All methods are safe for concurrent use; a sync.Mutex guards the sorted
// slice.
//
// Errors:
//
//	ErrNilTerm - Submit received a nil term or a term without a prefactor.
package collector

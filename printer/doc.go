// Package printer renders expansion results.
//
//   - DebugPrinter is an expansion.Visitor writing a human-readable trace
//     of configurations, link paths, spatial assignments and terms. Given
//     only terms (wilson.Walk) it prints one "W(n,m,pos)..." line each.
//   - TreePrinter is a wilson.Visitor building a Tree of terms that is
//     encoded as JSON (encoding/json) or YAML (gopkg.in/yaml.v3) under the
//     keys terms, pref, N_tr, factors, n, m and pos.
//
// Write errors are sticky: the first one is kept and reported by Err, and
// later writes are skipped.
package printer

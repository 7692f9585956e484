// Package hopping computes the hopping (large-Nt) expansion of the
// heavy-quark determinant as an exact symbolic sum of Wilson-line terms.
//
// For an even order N the pipeline runs five stages:
//
//	expansion.Generate       - weighted P/M configurations up to rotation,
//	                           plus multi-trace composites at order N
//	Configuration.EnumeratePaths  - temporal link pairings (backtracking)
//	Configuration.ResolveSpatial  - Kronecker deltas on spatial labels
//	Configuration.GaugeIntegrate  - colour loops → W(n, m, pos) terms
//	collector.Collector      - merge equal terms, drop cancellations
//
// Packages:
//
//	position/  - sparse lattice displacements, ordering, axis cleaning, text forms
//	combinat/  - factorial, binomial, subset sums, permutations, counted tuples
//	wilson/    - Segment and String (a term), canonical form, total order
//	expansion/ - catalog, paths, spatial resolver, gauge integrator, Run
//	collector/ - thread-safe sorted term accumulator
//	printer/   - debug text dump and JSON/YAML term trees
//	cmd/hopping - CLI writing Configurations/kappa<N>.{debug,terms,json,yaml}
//
// Quick start:
//
//	c := collector.New()
//	if _, err := expansion.Run(4, c); err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range c.Extract() {
//		fmt.Println(w.Prefactor.RatString(), w.Segments)
//	}
//
// All prefactors are exact rationals (math/big.Rat).
package hopping

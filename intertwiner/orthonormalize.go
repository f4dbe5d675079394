// Package intertwiner: joint orthonormalization of raw basis candidates.
package intertwiner

// orthonormalize runs modified Gram-Schmidt over the candidate states in
// order, dropping any vector whose residual norm falls below OrthoEpsilon
// (linearly dependent on its predecessors). The whole set is processed
// jointly — pairwise per-state cleanup would miss near-parallel vectors
// accumulated from distinct intermediate spins.
//
// Tags (IntermediateJ, Scheme, Normalization) follow their vectors: the
// k-th surviving state keeps the metadata of the k-th accepted candidate.
// Complexity: O(k²·d) for k candidates of dimension d.
func orthonormalize(states []BasisState) []BasisState {
	out := make([]BasisState, 0, len(states))
	for _, cand := range states {
		v := cand.Vector
		// Subtract projections onto every previously accepted state.
		for _, acc := range out {
			overlap, err := acc.Vector.InnerProduct(v)
			if err != nil {
				// Dimensions within one construction always agree; any
				// mismatch is a programmer error upstream.
				continue
			}
			reduced, err := v.Add(acc.Vector.Scale(-overlap))
			if err != nil {
				continue
			}
			v = reduced
		}
		if v.Norm() < OrthoEpsilon {
			continue
		}
		unit, err := v.Normalize()
		if err != nil {
			continue
		}
		cand.Vector = unit
		out = append(out, cand)
	}

	return out
}

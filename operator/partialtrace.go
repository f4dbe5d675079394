// Package operator: partial trace over one tensor factor.
//
// The index bookkeeping delegates entirely to hilbert.Shape — the single
// flattening convention — so the traced factor is identified by its axis
// in the same shape the state tensor products produce.
package operator

import "github.com/halfint/spinnet/hilbert"

// PartialTrace traces out the tensor factor at the given axis of shape,
// returning the reduced operator on the remaining factors.
//
// Inputs:
//   - shape: per-factor dimensions of the space O acts on; shape.Size()
//     must equal Dim(). Rank must be ≥ 2 (tracing the only factor of a
//     rank-1 shape would leave a scalar — use Trace for that).
//   - axis: index of the factor to trace out, in [0, rank).
//
// Returns ErrBadAxis on violations of the above.
//
// Semantics: for a bipartite ρ on H_A ⊗ H_B, PartialTrace(shape, 1)
// returns ρ_A with ρ_A[i][j] = Σ_k ρ[(i,k)][(j,k)].
// Complexity: O(d²) in the full dimension d.
func (o *Operator) PartialTrace(shape hilbert.Shape, axis int) (*Operator, error) {
	if o == nil {
		return nil, ErrNilOperator
	}
	if err := shape.Validate(); err != nil {
		return nil, ErrBadAxis
	}
	if shape.Size() != o.dim || len(shape) < 2 || axis < 0 || axis >= len(shape) {
		return nil, ErrBadAxis
	}

	// Reduced shape: the factors surviving the trace, in order.
	reduced := make(hilbert.Shape, 0, len(shape)-1)
	reduced = append(reduced, shape[:axis]...)
	reduced = append(reduced, shape[axis+1:]...)
	m := reduced.Size()
	traced := shape[axis]

	// expand reinserts the traced index k at axis into a reduced multi-index.
	expand := func(idx []int, k int) []int {
		full := make([]int, 0, len(shape))
		full = append(full, idx[:axis]...)
		full = append(full, k)
		full = append(full, idx[axis:]...)

		return full
	}

	data := make([]complex128, m*m)
	for r := 0; r < m; r++ {
		rIdx, err := reduced.MultiIndex(r)
		if err != nil {
			return nil, err
		}
		for c := 0; c < m; c++ {
			cIdx, err := reduced.MultiIndex(c)
			if err != nil {
				return nil, err
			}
			var sum complex128
			for k := 0; k < traced; k++ {
				fr, err := shape.FlatIndex(expand(rIdx, k))
				if err != nil {
					return nil, err
				}
				fc, err := shape.FlatIndex(expand(cIdx, k))
				if err != nil {
					return nil, err
				}
				v, err := o.At(fr, fc)
				if err != nil {
					return nil, err
				}
				sum += v
			}
			data[r*m+c] = sum
		}
	}

	return dense(m, data), nil
}

// Package hilbert: the canonical multi-index ↔ flat-index mapping.
//
// Purpose:
//   - Provide the ONE flattening convention shared by every tensor-product
//     consumer in spinnet (state tensor products, intertwiner index
//     calculation, operator partial traces).
//   - Convention: row-major — the LEFTMOST factor varies slowest, the
//     rightmost fastest. For dims (d₁,…,dₙ) and multi-index (i₁,…,iₙ):
//     flat = ((i₁·d₂ + i₂)·d₃ + i₃)·… + iₙ.
//
// Duplicating this convention independently risks silent row-major vs
// column-major mismatches; all reshaping goes through Shape.
package hilbert

// Shape is an ordered sequence of per-factor dimensions describing a
// tensor-product Hilbert space. Each entry must be ≥ 1.
type Shape []int

// Validate checks that every factor dimension is positive and the shape is
// non-empty. Returns ErrBadShape otherwise. Complexity: O(rank).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrBadShape
	}
	for _, d := range s {
		if d < 1 {
			return ErrBadShape
		}
	}

	return nil
}

// Size returns the total dimension ∏ dᵢ of the tensor-product space.
// Assumes Validate passed. Complexity: O(rank).
func (s Shape) Size() int {
	total := 1
	for _, d := range s {
		total *= d
	}

	return total
}

// FlatIndex maps a multi-index to its flat row-major index.
// Returns ErrBadShape if len(idx) != len(s), ErrIndexOutOfRange if any
// component is outside [0, dᵢ). Complexity: O(rank).
func (s Shape) FlatIndex(idx []int) (int, error) {
	if len(idx) != len(s) {
		return 0, ErrBadShape
	}
	flat := 0
	for k, d := range s {
		if idx[k] < 0 || idx[k] >= d {
			return 0, ErrIndexOutOfRange
		}
		flat = flat*d + idx[k]
	}

	return flat, nil
}

// MultiIndex maps a flat row-major index back to its multi-index.
// Returns ErrIndexOutOfRange if flat is outside [0, Size()).
// Complexity: O(rank).
func (s Shape) MultiIndex(flat int) ([]int, error) {
	if flat < 0 || flat >= s.Size() {
		return nil, ErrIndexOutOfRange
	}
	idx := make([]int, len(s))
	for k := len(s) - 1; k >= 0; k-- {
		idx[k] = flat % s[k]
		flat /= s[k]
	}

	return idx, nil
}

// Package intertwiner: sparse tensor views of basis states.
package intertwiner

import (
	"math"
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
)

// BasisToTensor exposes a basis state as a sparse, dimension-annotated
// tensor. Per-edge dimensions come from the state vector's shape metadata;
// a vector without metadata falls back to a rank-1 view over its whole
// dimension. Amplitudes below SparsityThreshold become exactly zero, and
// the result is deliberately NOT renormalized — thresholding is a storage
// optimization, not a renormalization step.
//
// Returns ErrNilState for a state without a vector. The originating basis
// state is never mutated. Complexity: O(d).
func BasisToTensor(bs BasisState) (*Tensor, error) {
	if bs.Vector == nil {
		return nil, ErrNilState
	}

	shape := bs.Vector.Shape()
	if shape == nil {
		shape = hilbert.Shape{bs.Vector.Dim()}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	amps := bs.Vector.Amplitudes()
	for i, a := range amps {
		if cmplx.Abs(a) < SparsityThreshold {
			amps[i] = 0
		}
	}
	sparse, err := hilbert.New(amps, hilbert.WithShape(shape))
	if err != nil {
		return nil, err
	}

	dims := make([]int, len(shape))
	copy(dims, shape)

	return &Tensor{Dims: dims, Vector: sparse, Source: bs}, nil
}

// NewTensor builds the sparse tensor for one specific intermediate spin of
// a 4-valent node. Returns ErrUnsupportedValence for any other valence,
// ErrBadSpin for off-grid spins, and (nil, nil) — not an error — when the
// requested intermediateJ is not an allowed coupling of the given edges.
// Complexity: that of ConstructBasis.
func NewTensor(edgeSpins []float64, intermediateJ float64) (*Tensor, error) {
	if len(edgeSpins) != 4 {
		return nil, ErrUnsupportedValence
	}
	space, err := ConstructBasis(edgeSpins)
	if err != nil {
		return nil, err
	}

	for _, bs := range space.States {
		if math.Abs(bs.IntermediateJ-intermediateJ) < CoefficientEpsilon {
			return BasisToTensor(bs)
		}
	}

	// Disallowed coupling: a normal nil result by contract.
	return nil, nil
}

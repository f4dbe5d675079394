// Package intertwiner: result types and numeric policy.
// All three types are immutable once returned; construction lives in
// basis.go and tensor.go.
package intertwiner

import "github.com/halfint/spinnet/hilbert"

// Numeric policy (single source of truth).
const (
	// CoefficientEpsilon discards negligible Clebsch-Gordan products during
	// basis accumulation and zero-norm raw candidates afterwards.
	CoefficientEpsilon = 1e-10

	// OrthoEpsilon is the residual-norm threshold under which a vector is
	// dropped during joint orthonormalization as linearly dependent.
	OrthoEpsilon = 1e-8

	// SparsityThreshold zeroes amplitudes in tensor views. Thresholding is
	// a storage optimization and never renormalizes: the threshold sits
	// far below normalization-relevant magnitudes.
	SparsityThreshold = 1e-10
)

// BasisState is one orthonormal intertwiner basis state, tagged with the
// intermediate spin of the recoupling scheme that produced it.
type BasisState struct {
	// IntermediateJ is the common intermediate spin J of the
	// (j₁⊗j₂)⊗(j₃⊗j₄) → 0 recoupling (0 for valence 2 and 3 schemes).
	IntermediateJ float64

	// Vector lives in the tensor-product space of all edges; its shape
	// metadata records the per-edge dimensions 2jᵢ+1.
	Vector *hilbert.StateVector

	// Scheme describes the recoupling order in human-readable form.
	Scheme string

	// Normalization is the norm of the raw coefficient vector before
	// normalization — a diagnostic of how degenerate the coupling was.
	Normalization float64
}

// Space is the full intertwiner space at a node.
//
// Invariants: len(States) == Dimension; States are pairwise orthonormal;
// Dimension == 0 implies empty States; TotalJ is always 0.
type Space struct {
	Dimension int
	States    []BasisState
	EdgeSpins []float64
	TotalJ    float64
}

// Tensor is a sparse, dimension-annotated view of a basis state.
//
// Invariant: product(Dims) == Vector.Dim(). The view is derived and
// read-only: it never mutates the originating basis state.
type Tensor struct {
	// Dims holds one entry 2jᵢ+1 per edge.
	Dims []int

	// Vector is the thresholded amplitude vector — entries below
	// SparsityThreshold are exactly zero, and the vector is NOT
	// renormalized afterwards.
	Vector *hilbert.StateVector

	// Source is the basis state this view was derived from.
	Source BasisState
}

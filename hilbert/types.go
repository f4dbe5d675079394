// Package hilbert: domain types and numeric policy constants.
// Errors live in errors.go; algebra in statevector.go; flattening in
// shape.go, per the package conventions.
package hilbert

// Numeric policy (single source of truth).
const (
	// DefaultTolerance is the non-negative tolerance used by equality and
	// structural checks throughout spinnet.
	DefaultTolerance = 1e-10

	// NormEpsilon is the threshold below which a vector norm is treated as
	// zero; Normalize fails with ErrZeroNorm under it.
	NormEpsilon = 1e-12
)

// StateVector is an ordered complex amplitude container over a
// fixed-dimension Hilbert space.
//
// Invariants:
//   - len(amps) == dim, dim ≥ 1, fixed at construction.
//   - Immutable: no method mutates the receiver; algebra returns new values.
//
// Normalization is NOT enforced at construction — callers invoke Normalize
// explicitly; factories document whether their output is pre-normalized.
//
// A StateVector optionally carries a basis label and a Shape recording the
// per-factor dimensions of the tensor-product space it lives in. The shape
// is metadata for derived views (intertwiner tensors); it never affects
// the algebra.
type StateVector struct {
	dim   int
	amps  []complex128
	basis string // optional human-readable basis label, "" when unset
	shape Shape  // optional per-factor dimensions, nil when unknown
}

// Dim returns the Hilbert-space dimension. Complexity: O(1).
func (v *StateVector) Dim() int { return v.dim }

// Basis returns the optional basis label ("" when unset). Complexity: O(1).
func (v *StateVector) Basis() string { return v.basis }

// Shape returns a copy of the per-factor dimension metadata, or nil when
// the vector carries none. Complexity: O(rank).
func (v *StateVector) Shape() Shape {
	if v.shape == nil {
		return nil
	}
	s := make(Shape, len(v.shape))
	copy(s, v.shape)

	return s
}

// At returns the amplitude at flat index i.
// Returns ErrIndexOutOfRange if i < 0 or i ≥ Dim(). Complexity: O(1).
func (v *StateVector) At(i int) (complex128, error) {
	if i < 0 || i >= v.dim {
		return 0, ErrIndexOutOfRange
	}

	return v.amps[i], nil
}

// Amplitudes returns a defensive copy of the amplitude slice.
// Complexity: O(d).
func (v *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, v.dim)
	copy(out, v.amps)

	return out
}

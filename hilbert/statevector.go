// Package hilbert: state-vector constructors and algebra.
//
// All binary operations are fail-fast: operand dimensions are validated
// first and ErrDimensionMismatch / ErrNilVector is returned before any
// allocation. Every operation returns a fresh vector; receivers are never
// mutated.
package hilbert

import (
	"math"
	"math/cmplx"
)

// Option configures optional StateVector metadata at construction.
type Option func(*StateVector)

// WithBasis attaches a human-readable basis label.
func WithBasis(label string) Option {
	return func(v *StateVector) { v.basis = label }
}

// WithShape attaches per-factor dimension metadata. The shape product must
// equal the vector dimension; New validates this and fails with
// ErrShapeMismatch-style ErrBadShape on violation.
func WithShape(s Shape) Option {
	return func(v *StateVector) {
		v.shape = make(Shape, len(s))
		copy(v.shape, s)
	}
}

// New constructs a StateVector from the given amplitudes (deep-copied).
// Returns ErrInvalidDimension if amps is empty, ErrBadShape if an attached
// shape does not multiply out to len(amps).
// The result is NOT normalized. Complexity: O(d).
func New(amps []complex128, opts ...Option) (*StateVector, error) {
	if len(amps) == 0 {
		return nil, ErrInvalidDimension
	}
	v := &StateVector{dim: len(amps), amps: make([]complex128, len(amps))}
	copy(v.amps, amps)
	for _, opt := range opts {
		opt(v)
	}
	if v.shape != nil {
		if err := v.shape.Validate(); err != nil {
			return nil, err
		}
		if v.shape.Size() != v.dim {
			return nil, ErrBadShape
		}
	}

	return v, nil
}

// BasisState returns the computational basis vector |i⟩ in dimension dim:
// amplitude 1 at index i, 0 elsewhere. Pre-normalized.
// Returns ErrInvalidDimension if dim < 1, ErrIndexOutOfRange if i is
// outside [0, dim). Complexity: O(d).
func BasisState(dim, i int) (*StateVector, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	if i < 0 || i >= dim {
		return nil, ErrIndexOutOfRange
	}
	amps := make([]complex128, dim)
	amps[i] = 1

	return &StateVector{dim: dim, amps: amps}, nil
}

// Uniform returns the equal-weight superposition (1/√dim)·Σ|i⟩.
// Pre-normalized. Returns ErrInvalidDimension if dim < 1. Complexity: O(d).
func Uniform(dim int) (*StateVector, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	amps := make([]complex128, dim)
	w := complex(1/math.Sqrt(float64(dim)), 0)
	for i := range amps {
		amps[i] = w
	}

	return &StateVector{dim: dim, amps: amps}, nil
}

// InnerProduct returns ⟨v|w⟩ = Σ conj(vᵢ)·wᵢ.
// Returns ErrNilVector on nil operand, ErrDimensionMismatch when the
// dimensions differ. Complexity: O(d).
func (v *StateVector) InnerProduct(w *StateVector) (complex128, error) {
	if v == nil || w == nil {
		return 0, ErrNilVector
	}
	if v.dim != w.dim {
		return 0, ErrDimensionMismatch
	}
	var sum complex128
	for i := 0; i < v.dim; i++ {
		sum += cmplx.Conj(v.amps[i]) * w.amps[i]
	}

	return sum, nil
}

// Norm returns √⟨v|v⟩, the Euclidean norm. Complexity: O(d).
func (v *StateVector) Norm() float64 {
	var sum float64
	for _, a := range v.amps {
		re, im := real(a), imag(a)
		sum += re*re + im*im
	}

	return math.Sqrt(sum)
}

// Normalize returns a fresh unit vector v/‖v‖, preserving metadata.
// Returns ErrZeroNorm when ‖v‖ < NormEpsilon. Complexity: O(d).
func (v *StateVector) Normalize() (*StateVector, error) {
	n := v.Norm()
	if n < NormEpsilon {
		return nil, ErrZeroNorm
	}

	return v.Scale(complex(1/n, 0)), nil
}

// Scale returns c·v as a fresh vector, preserving metadata. Complexity: O(d).
func (v *StateVector) Scale(c complex128) *StateVector {
	out := &StateVector{dim: v.dim, amps: make([]complex128, v.dim), basis: v.basis, shape: v.Shape()}
	for i, a := range v.amps {
		out.amps[i] = c * a
	}

	return out
}

// Add returns v + w as a fresh vector. Metadata is taken from v.
// Returns ErrNilVector / ErrDimensionMismatch on bad operands.
// Complexity: O(d).
func (v *StateVector) Add(w *StateVector) (*StateVector, error) {
	if v == nil || w == nil {
		return nil, ErrNilVector
	}
	if v.dim != w.dim {
		return nil, ErrDimensionMismatch
	}
	out := &StateVector{dim: v.dim, amps: make([]complex128, v.dim), basis: v.basis, shape: v.Shape()}
	for i := range v.amps {
		out.amps[i] = v.amps[i] + w.amps[i]
	}

	return out, nil
}

// TensorProduct returns v ⊗ w: dimension dim(v)·dim(w), amplitude at flat
// index i·dim(w)+j equal to vᵢ·wⱼ — the left operand varies slowest,
// matching Shape's row-major convention. The result's shape metadata is
// the concatenation of both operands' shapes (a bare vector contributes
// its dimension as a single factor). Complexity: O(d₁·d₂).
func (v *StateVector) TensorProduct(w *StateVector) *StateVector {
	amps := make([]complex128, v.dim*w.dim)
	for i := 0; i < v.dim; i++ {
		base := i * w.dim
		for j := 0; j < w.dim; j++ {
			amps[base+j] = v.amps[i] * w.amps[j]
		}
	}
	shape := make(Shape, 0, 2)
	if v.shape != nil {
		shape = append(shape, v.shape...)
	} else {
		shape = append(shape, v.dim)
	}
	if w.shape != nil {
		shape = append(shape, w.shape...)
	} else {
		shape = append(shape, w.dim)
	}

	return &StateVector{dim: v.dim * w.dim, amps: amps, shape: shape}
}

// Equal reports whether v and w agree amplitude-by-amplitude within tol
// (non-squared magnitude of the difference). Vectors of different
// dimensions are never equal. Complexity: O(d).
func (v *StateVector) Equal(w *StateVector, tol float64) bool {
	if v == nil || w == nil || v.dim != w.dim {
		return false
	}
	for i := range v.amps {
		if cmplx.Abs(v.amps[i]-w.amps[i]) > tol {
			return false
		}
	}

	return true
}

// Package hilbert: build-then-freeze amplitude accumulation.
//
// Construction of composite states (nested Clebsch-Gordan sums, operator
// applications assembled term by term) needs in-place accumulation, but
// published StateVector values must stay immutable. Builder is the escape
// hatch: accumulate freely, then Vector() freezes the contents and any
// further mutation fails with ErrFrozenBuilder.
package hilbert

// Builder accumulates amplitudes for a StateVector under construction.
// Not safe for concurrent use; intended for single construction scopes.
type Builder struct {
	dim    int
	amps   []complex128
	shape  Shape
	basis  string
	frozen bool
}

// NewBuilder returns a Builder for a vector of the given dimension, all
// amplitudes zero. Returns ErrInvalidDimension if dim < 1.
func NewBuilder(dim int) (*Builder, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}

	return &Builder{dim: dim, amps: make([]complex128, dim)}, nil
}

// NewShapedBuilder returns a Builder for the tensor-product space described
// by shape, recording the shape as metadata on the frozen vector.
// Returns ErrBadShape on an invalid shape.
func NewShapedBuilder(shape Shape) (*Builder, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	s := make(Shape, len(shape))
	copy(s, shape)

	return &Builder{dim: s.Size(), amps: make([]complex128, s.Size()), shape: s}, nil
}

// SetBasis records a basis label for the frozen vector.
// Returns ErrFrozenBuilder after Vector() has been called.
func (b *Builder) SetBasis(label string) error {
	if b.frozen {
		return ErrFrozenBuilder
	}
	b.basis = label

	return nil
}

// Set assigns amplitude c at flat index i, replacing any prior value.
// Returns ErrIndexOutOfRange / ErrFrozenBuilder on violation.
func (b *Builder) Set(i int, c complex128) error {
	if b.frozen {
		return ErrFrozenBuilder
	}
	if i < 0 || i >= b.dim {
		return ErrIndexOutOfRange
	}
	b.amps[i] = c

	return nil
}

// Accumulate adds c into the amplitude at flat index i.
// Returns ErrIndexOutOfRange / ErrFrozenBuilder on violation.
func (b *Builder) Accumulate(i int, c complex128) error {
	if b.frozen {
		return ErrFrozenBuilder
	}
	if i < 0 || i >= b.dim {
		return ErrIndexOutOfRange
	}
	b.amps[i] += c

	return nil
}

// AccumulateAt adds c at the multi-index position under the builder's
// shape. Requires a shaped builder; a plain builder returns ErrBadShape.
func (b *Builder) AccumulateAt(idx []int, c complex128) error {
	if b.frozen {
		return ErrFrozenBuilder
	}
	if b.shape == nil {
		return ErrBadShape
	}
	flat, err := b.shape.FlatIndex(idx)
	if err != nil {
		return err
	}
	b.amps[flat] += c

	return nil
}

// Vector freezes the builder and returns the immutable StateVector.
// The builder's backing slice is handed over, not copied — after freezing,
// every mutator fails with ErrFrozenBuilder, so no aliasing can occur.
func (b *Builder) Vector() *StateVector {
	b.frozen = true

	return &StateVector{dim: b.dim, amps: b.amps, basis: b.basis, shape: b.shape}
}

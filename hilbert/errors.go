// Package hilbert: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// hilbert package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.
package hilbert

import "errors"

var (
	// ErrInvalidDimension is returned when a requested dimension is not a
	// positive integer, or an amplitude slice is empty.
	ErrInvalidDimension = errors.New("hilbert: dimension must be positive")

	// ErrDimensionMismatch indicates incompatible dimensions between two
	// vectors (inner product, add, equality) or a vector and an index shape.
	ErrDimensionMismatch = errors.New("hilbert: dimension mismatch")

	// ErrIndexOutOfRange indicates a flat or multi index outside the valid
	// bounds of a vector or shape.
	ErrIndexOutOfRange = errors.New("hilbert: index out of range")

	// ErrZeroNorm is returned by Normalize when the vector norm is below
	// NormEpsilon — normalizing the zero vector is undefined.
	ErrZeroNorm = errors.New("hilbert: cannot normalize zero-norm vector")

	// ErrNilVector indicates that a nil *StateVector was passed where a
	// value is required.
	ErrNilVector = errors.New("hilbert: nil state vector")

	// ErrBadShape is returned when a Shape contains a non-positive factor
	// or a multi-index has the wrong rank.
	ErrBadShape = errors.New("hilbert: invalid shape")

	// ErrFrozenBuilder indicates a mutation attempt on a Builder after
	// Vector() already froze its contents.
	ErrFrozenBuilder = errors.New("hilbert: builder already frozen")
)

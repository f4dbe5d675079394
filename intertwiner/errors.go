// Package intertwiner: sentinel error set.
// Zero-dimensional spaces and nil tensors for disallowed couplings are
// normal return values and deliberately absent from this list.
package intertwiner

import "errors"

var (
	// ErrBadSpin is returned when an edge spin is not a non-negative
	// integer or half-integer.
	ErrBadSpin = errors.New("intertwiner: edge spin must be a non-negative half-integer")

	// ErrUnsupportedValence is returned for node valences outside {2,3,4}.
	// The library refuses loudly rather than fabricating a default
	// dimension for valences it cannot construct.
	ErrUnsupportedValence = errors.New("intertwiner: valence must be 2, 3 or 4")

	// ErrNilState indicates a nil or vector-less basis state passed to a
	// tensor conversion.
	ErrNilState = errors.New("intertwiner: nil basis state vector")
)

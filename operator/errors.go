// Package operator: sentinel error set.
// All operations return these sentinels (optionally wrapped with an
// operation tag via fmt.Errorf("%s: %w", ...)) and tests check them via
// errors.Is. Panics are reserved for programmer errors.
package operator

import "errors"

var (
	// ErrInvalidDimension is returned when a requested dimension is not a
	// positive integer or a matrix/diagonal input is empty.
	ErrInvalidDimension = errors.New("operator: dimension must be positive")

	// ErrNonSquare signals that a matrix input has rows of differing length
	// or a row count different from its column count.
	ErrNonSquare = errors.New("operator: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between an
	// operator and a state, or between two operators.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrOutOfRange indicates an entry index outside [0, dim).
	ErrOutOfRange = errors.New("operator: index out of range")

	// ErrNilOperator indicates a nil *Operator receiver or argument.
	ErrNilOperator = errors.New("operator: nil operator")

	// ErrNotHermitian is returned by Eigen when the operator violates
	// Hermitian symmetry within the given tolerance.
	ErrNotHermitian = errors.New("operator: operator is not Hermitian within tol")

	// ErrEigenFailed indicates the Jacobi sweep did not converge under the
	// given tolerance and iteration budget.
	ErrEigenFailed = errors.New("operator: eigen decomposition failed")

	// ErrBadAxis indicates a partial-trace axis outside the shape rank, or
	// a shape whose product differs from the operator dimension.
	ErrBadAxis = errors.New("operator: invalid partial trace axis or shape")

	// ErrBadSpin is returned by spin-matrix constructors for a spin that is
	// not a non-negative integer or half-integer.
	ErrBadSpin = errors.New("operator: spin must be a non-negative half-integer")
)

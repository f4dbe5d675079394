// Package operator: construction and structural dispatch.
//
// FromMatrix performs the representation choice exactly once: explicit
// tolerance-bounded structural tests (is-identity, then is-diagonal),
// falling back to dense storage. Downstream algebra switches on the Kind
// tag and never re-inspects entries.
package operator

import (
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
)

// Identity returns the identity operator of the given dimension. No matrix
// is stored. Returns ErrInvalidDimension if dim < 1. Complexity: O(1).
func Identity(dim int) (*Operator, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}

	return &Operator{kind: KindIdentity, dim: dim}, nil
}

// Diagonal returns the operator with the given diagonal entries (copied).
// Returns ErrInvalidDimension on an empty diagonal. Complexity: O(d).
func Diagonal(diag []complex128) (*Operator, error) {
	if len(diag) == 0 {
		return nil, ErrInvalidDimension
	}
	data := make([]complex128, len(diag))
	copy(data, diag)

	return &Operator{kind: KindDiagonal, dim: len(diag), data: data}, nil
}

// FromMatrix constructs an operator from a square matrix, choosing the
// cheapest representation by structural inspection within
// hilbert.DefaultTolerance:
//
//	identity (diag ≈ 1, off-diag ≈ 0) → KindIdentity
//	off-diag ≈ 0                      → KindDiagonal
//	otherwise                         → KindDense
//
// The choice is a pure optimization: Apply/Compose/Adjoint results are
// numerically identical to the dense path. Returns ErrInvalidDimension on
// an empty matrix, ErrNonSquare on ragged or non-square input.
// Complexity: O(d²).
func FromMatrix(rows [][]complex128) (*Operator, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimension
	}
	for _, r := range rows {
		if len(r) != n {
			return nil, ErrNonSquare
		}
	}

	isIdentity, isDiagonal := true, true
	for i := 0; i < n && isDiagonal; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				if cmplx.Abs(rows[i][j]-1) > hilbert.DefaultTolerance {
					isIdentity = false
				}
			default:
				if cmplx.Abs(rows[i][j]) > hilbert.DefaultTolerance {
					isIdentity, isDiagonal = false, false

					break
				}
			}
		}
	}

	if isIdentity {
		return &Operator{kind: KindIdentity, dim: n}, nil
	}
	if isDiagonal {
		diag := make([]complex128, n)
		for i := 0; i < n; i++ {
			diag[i] = rows[i][i]
		}

		return &Operator{kind: KindDiagonal, dim: n, data: diag}, nil
	}

	data := make([]complex128, n*n)
	for i, r := range rows {
		copy(data[i*n:(i+1)*n], r)
	}

	return &Operator{kind: KindDense, dim: n, data: data}, nil
}

// Projection returns the rank-1 projector |v⟩⟨v| onto the given state,
// stored densely under KindProjection. The input is not normalized first;
// pass a unit vector for an idempotent projector (this doubles as the
// density matrix of the pure state v). Returns ErrNilOperator on nil
// input. Complexity: O(d²).
func Projection(v *hilbert.StateVector) (*Operator, error) {
	if v == nil {
		return nil, ErrNilOperator
	}
	n := v.Dim()
	amps := v.Amplitudes()
	data := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = amps[i] * cmplx.Conj(amps[j])
		}
	}

	return &Operator{kind: KindProjection, dim: n, data: data}, nil
}

// FromState returns the density operator ρ = |v̂⟩⟨v̂| of a pure state,
// normalizing the input first so that Tr(ρ) = 1 regardless of the input's
// norm. Returns ErrNilOperator on nil input and hilbert.ErrZeroNorm for a
// state with no direction. Complexity: O(d²).
func FromState(v *hilbert.StateVector) (*Operator, error) {
	if v == nil {
		return nil, ErrNilOperator
	}
	unit, err := v.Normalize()
	if err != nil {
		return nil, err
	}

	return Projection(unit)
}

// dense wraps a prebuilt row-major backing slice without copying.
// Internal: callers guarantee len(data) == dim*dim and hand over ownership.
func dense(dim int, data []complex128) *Operator {
	return &Operator{kind: KindDense, dim: dim, data: data}
}

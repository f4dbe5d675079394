// Package operator: standard spin matrices.
//
// Basis convention for spin j (dimension d = 2j+1): index i corresponds to
// the magnetic quantum number m = j - i, so index 0 is the highest-weight
// state |j, j⟩. Qubit constructors (Pauli, Hadamard) follow the usual
// computational-basis convention |0⟩ = |½, +½⟩.
package operator

import "math"

// PauliX returns the Pauli X (bit flip) operator on a qubit.
func PauliX() *Operator {
	return dense(2, []complex128{
		0, 1,
		1, 0,
	})
}

// PauliY returns the Pauli Y operator on a qubit.
func PauliY() *Operator {
	return dense(2, []complex128{
		0, complex(0, -1),
		complex(0, 1), 0,
	})
}

// PauliZ returns the Pauli Z (phase flip) operator on a qubit.
func PauliZ() *Operator {
	return &Operator{kind: KindDiagonal, dim: 2, data: []complex128{1, -1}}
}

// Hadamard returns the Hadamard gate on a qubit.
func Hadamard() *Operator {
	w := complex(1/math.Sqrt2, 0)

	return dense(2, []complex128{
		w, w,
		w, -w,
	})
}

// isHalfInteger reports whether 2j is a non-negative integer within
// hilbert-level tolerance. Private twin of angular.IsHalfInteger, kept
// local to avoid an import cycle with packages building on operator.
func isHalfInteger(j float64) bool {
	if j < 0 {
		return false
	}

	return math.Abs(2*j-math.Round(2*j)) < 1e-10
}

// Sz returns the z-projection operator for spin j: diagonal entries
// m = j, j-1, …, -j. Returns ErrBadSpin for invalid j. Complexity: O(d).
func Sz(j float64) (*Operator, error) {
	if !isHalfInteger(j) {
		return nil, ErrBadSpin
	}
	d := int(math.Round(2*j)) + 1
	diag := make([]complex128, d)
	for i := 0; i < d; i++ {
		diag[i] = complex(j-float64(i), 0)
	}

	return &Operator{kind: KindDiagonal, dim: d, data: diag}, nil
}

// SPlus returns the raising operator for spin j:
// S₊|j,m⟩ = √(j(j+1) - m(m+1))·|j,m+1⟩. Returns ErrBadSpin for invalid j.
func SPlus(j float64) (*Operator, error) {
	if !isHalfInteger(j) {
		return nil, ErrBadSpin
	}
	d := int(math.Round(2*j)) + 1
	data := make([]complex128, d*d)
	for i := 1; i < d; i++ {
		m := j - float64(i)
		data[(i-1)*d+i] = complex(math.Sqrt(j*(j+1)-m*(m+1)), 0)
	}

	return dense(d, data), nil
}

// SMinus returns the lowering operator for spin j, the adjoint of SPlus.
func SMinus(j float64) (*Operator, error) {
	sp, err := SPlus(j)
	if err != nil {
		return nil, err
	}

	return sp.Adjoint(), nil
}

// Sx returns the x-projection operator (S₊+S₋)/2 for spin j.
func Sx(j float64) (*Operator, error) {
	sp, err := SPlus(j)
	if err != nil {
		return nil, err
	}
	sum, err := sp.Add(sp.Adjoint())
	if err != nil {
		return nil, err
	}

	return sum.Scale(0.5), nil
}

// Sy returns the y-projection operator (S₊-S₋)/(2i) for spin j.
func Sy(j float64) (*Operator, error) {
	sp, err := SPlus(j)
	if err != nil {
		return nil, err
	}
	diff, err := sp.Add(sp.Adjoint().Scale(-1))
	if err != nil {
		return nil, err
	}

	return diff.Scale(complex(0, -0.5)), nil
}

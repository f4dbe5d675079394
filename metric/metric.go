package metric

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
)

var (
	// ErrNilInput indicates a nil state or operator argument.
	ErrNilInput = errors.New("metric: nil input")

	// ErrZeroState indicates a state with (numerically) zero norm, for
	// which no direction — and hence no distance — is defined.
	ErrZeroState = errors.New("metric: zero-norm state")
)

// Fidelity returns |⟨a|b⟩|² for pure states, normalizing both inputs
// first: 1 when a and b lie on the same ray, 0 when orthogonal.
// Dimension mismatches surface as hilbert.ErrDimensionMismatch.
func Fidelity(a, b *hilbert.StateVector) (float64, error) {
	ov, err := overlap(a, b)
	if err != nil {
		return 0, err
	}

	return ov * ov, nil
}

// FubiniStudy returns the geodesic distance arccos|⟨â|b̂⟩| between the
// rays of a and b on complex projective space, in [0, π/2].
func FubiniStudy(a, b *hilbert.StateVector) (float64, error) {
	ov, err := overlap(a, b)
	if err != nil {
		return 0, err
	}
	// Clamp against rounding before the arccos.
	if ov > 1 {
		ov = 1
	}

	return math.Acos(ov), nil
}

// overlap computes |⟨â|b̂⟩| for the normalized directions of a and b.
func overlap(a, b *hilbert.StateVector) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilInput
	}
	na, nb := a.Norm(), b.Norm()
	if na < hilbert.NormEpsilon || nb < hilbert.NormEpsilon {
		return 0, ErrZeroState
	}

	ip, err := a.InnerProduct(b)
	if err != nil {
		return 0, err
	}

	return cmplx.Abs(ip) / (na * nb), nil
}

// TraceDistance returns ½·Σᵢ|λᵢ(ρ−σ)| for Hermitian density operators:
// 0 for identical states, 1 for perfectly distinguishable ones.
//
// Stages:
//  1. Form the Hermitian difference Δ = ρ − σ.
//  2. Diagonalize Δ.
//  3. Halve the absolute eigenvalue sum (the trace norm of Δ).
//
// Returns operator.ErrNotHermitian when the difference is not Hermitian
// and operator.ErrDimensionMismatch on shape disagreement.
func TraceDistance(rho, sigma *operator.Operator) (float64, error) {
	if rho == nil || sigma == nil {
		return 0, ErrNilInput
	}

	diff, err := rho.Add(sigma.Scale(-1))
	if err != nil {
		return 0, err
	}

	vals, _, err := diff.Eigen(0, 0)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, lam := range vals {
		sum += math.Abs(lam)
	}

	return sum / 2, nil
}

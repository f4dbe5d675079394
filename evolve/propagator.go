package evolve

import (
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
)

// Propagator builds the time-evolution operator U(t) = exp(-iHt) for a
// Hermitian Hamiltonian h.
//
// Stages:
//  1. Validate inputs and resolve options.
//  2. Diagonalize h into eigenpairs (λₖ, |vₖ⟩).
//  3. Assemble U(t) = Σₖ e^{-iλₖt} vₖ vₖ† entrywise.
//
// A nil opts selects DefaultOptions. Non-Hermitian h surfaces as
// operator.ErrNotHermitian from the eigensolver.
//
// Complexity: dominated by the Jacobi eigensolve, then O(d³) assembly.
func Propagator(h *operator.Operator, t float64, opts *Options) (*operator.Operator, error) {
	if h == nil {
		return nil, ErrNilHamiltonian
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	vals, vecs, err := h.Eigen(o.EigenTol, o.MaxIter)
	if err != nil {
		return nil, err
	}

	d := h.Dim()
	phases := make([]complex128, len(vals))
	for k, lam := range vals {
		phases[k] = cmplx.Exp(complex(0, -lam*t))
	}

	rows := make([][]complex128, d)
	for i := 0; i < d; i++ {
		rows[i] = make([]complex128, d)
	}
	for k := range vals {
		amps := vecs[k].Amplitudes()
		for i := 0; i < d; i++ {
			if amps[i] == 0 {
				continue
			}
			pvi := phases[k] * amps[i]
			for j := 0; j < d; j++ {
				rows[i][j] += pvi * cmplx.Conj(amps[j])
			}
		}
	}

	// FromMatrix re-dispatches, so U(0) comes back as an identity operator.
	return operator.FromMatrix(rows)
}

// Evolve applies U(t) = exp(-iHt) to a state in one shot.
func Evolve(h *operator.Operator, state *hilbert.StateVector, t float64, opts *Options) (*hilbert.StateVector, error) {
	if h == nil || state == nil {
		return nil, ErrNilHamiltonian
	}

	u, err := Propagator(h, t, opts)
	if err != nil {
		return nil, err
	}

	return u.Apply(state)
}

// Package evolve: options and sentinel errors.
package evolve

import (
	"errors"

	"github.com/halfint/spinnet/operator"
)

var (
	// ErrNilHamiltonian indicates a nil Hamiltonian or state argument.
	ErrNilHamiltonian = errors.New("evolve: nil hamiltonian or state")

	// ErrChainTooShort is returned by IsingChain for fewer than 2 sites.
	ErrChainTooShort = errors.New("evolve: chain needs at least 2 sites")
)

// Options configures the spectral solve behind a propagator.
//
// Fields:
//   - EigenTol — off-diagonal convergence threshold for the Jacobi sweep.
//     Zero (or negative) selects operator.DefaultEigenTol.
//   - MaxIter  — rotation budget; zero selects the dimension-scaled default.
//
// Example:
//
//	opts := evolve.DefaultOptions()
//	opts.EigenTol = 1e-10   // looser, faster convergence
//	u, err := evolve.Propagator(h, t, &opts)
type Options struct {
	EigenTol float64
	MaxIter  int
}

// DefaultOptions returns the documented defaults: operator-level eigen
// tolerance, dimension-scaled iteration budget.
func DefaultOptions() Options {
	return Options{EigenTol: operator.DefaultEigenTol, MaxIter: 0}
}

// Package walk: core types, options, and sentinel errors.
package walk

import (
	"errors"

	"github.com/halfint/spinnet/operator"
)

// Sentinel errors for walk operations.
var (
	// ErrTooFewSites indicates a cycle lattice with fewer than 3 sites.
	ErrTooFewSites = errors.New("walk: cycle lattice needs at least 3 sites")
	// ErrBadCoin indicates a coin operator that is not a 2×2 unitary.
	ErrBadCoin = errors.New("walk: coin must be a 2x2 unitary operator")
	// ErrSiteRange indicates a site index outside [0, sites).
	ErrSiteRange = errors.New("walk: site index out of range")
	// ErrNilState indicates a nil walker state.
	ErrNilState = errors.New("walk: nil state")
)

// coinUnitaryTol bounds ‖C†C − I‖ entrywise when validating a custom coin.
const coinUnitaryTol = 1e-10

// Options contains tunable parameters for a walk.
type Options struct {
	// Coin is the 2×2 unitary tossed before each shift.
	// Nil selects the Hadamard coin.
	Coin *operator.Operator
}

// DefaultOptions returns an Options with the Hadamard coin.
func DefaultOptions() Options {
	return Options{Coin: operator.Hadamard()}
}

// Lattice is a cycle of sites. It is immutable once built.
type Lattice struct {
	sites int
}

// NewLattice builds a cycle of n sites. Returns ErrTooFewSites for n < 3.
func NewLattice(n int) (*Lattice, error) {
	if n < 3 {
		return nil, ErrTooFewSites
	}

	return &Lattice{sites: n}, nil
}

// Sites reports the number of lattice sites.
func (l *Lattice) Sites() int { return l.sites }

// Next returns the clockwise neighbor of site x, modulo the cycle length.
func (l *Lattice) Next(x int) int { return (x + 1) % l.sites }

// Prev returns the counter-clockwise neighbor of site x.
func (l *Lattice) Prev(x int) int { return (x - 1 + l.sites) % l.sites }

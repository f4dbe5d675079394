// Package angular: selection rules and intermediate-spin enumeration.
package angular

import "math"

// halfIntTol bounds how far 2j may sit from an integer before the value is
// rejected as unphysical.
const halfIntTol = 1e-10

// IsHalfInteger reports whether j is a non-negative integer or
// half-integer within tolerance. Complexity: O(1).
func IsHalfInteger(j float64) bool {
	if j < 0 {
		return false
	}

	return math.Abs(2*j-math.Round(2*j)) < halfIntTol
}

// Triangle reports whether (j₁, j₂, j₃) satisfy the triangle inequality:
// j₁+j₂ ≥ j₃, j₂+j₃ ≥ j₁ and j₃+j₁ ≥ j₂. It checks the inequalities only;
// parity constraints live in the coefficient functions. Complexity: O(1).
func Triangle(j1, j2, j3 float64) bool {
	return j1+j2 >= j3 && j2+j3 >= j1 && j3+j1 >= j2
}

// AllowedSpins returns the ordered, fully materialized sequence of total
// spins reachable by coupling j₁ and j₂: |j₁-j₂|, |j₁-j₂|+1, …, j₁+j₂.
// The step is always one unit of spin — the SU(2) decomposition
// j₁⊗j₂ = ⊕_J J contains each J exactly once. Downstream code relies on
// the slice for membership tests and common-element intersection, so the
// sequence is never lazy.
//
// Returns ErrBadSpin if either argument is not a non-negative
// half-integer. Complexity: O(min(j₁,j₂)).
func AllowedSpins(j1, j2 float64) ([]float64, error) {
	if !IsHalfInteger(j1) || !IsHalfInteger(j2) {
		return nil, ErrBadSpin
	}
	// Twice-spin arithmetic keeps the enumeration exactly on the grid.
	lo := int(math.Abs(math.Round(2*j1) - math.Round(2*j2)))
	hi := int(math.Round(2*j1) + math.Round(2*j2))

	spins := make([]float64, 0, (hi-lo)/2+1)
	for tj := lo; tj <= hi; tj += 2 {
		spins = append(spins, float64(tj)/2)
	}

	return spins, nil
}

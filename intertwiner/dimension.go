// Package intertwiner: selection rules and dimension counting.
package intertwiner

import (
	"math"

	"github.com/halfint/spinnet/angular"
)

// validateSpins checks every edge spin is on the half-integer grid.
// Returns ErrBadSpin on the first violation.
func validateSpins(edgeSpins []float64) error {
	for _, j := range edgeSpins {
		if !angular.IsHalfInteger(j) {
			return ErrBadSpin
		}
	}

	return nil
}

// threeValentAllowed reports whether three spins admit an invariant
// coupling: the triangle inequality plus an integer perimeter j₁+j₂+j₃.
// A half-integer perimeter makes every Wigner 3-j coefficient vanish even
// when the triangle closes, so both conditions are required.
func threeValentAllowed(j1, j2, j3 float64) bool {
	if !angular.Triangle(j1, j2, j3) {
		return false
	}

	return int(math.Round(2*(j1+j2+j3)))%2 == 0
}

// commonSpins returns the intermediate spins reachable from both pairs
// (j₁,j₂) and (j₃,j₄), in ascending order. Membership is decided on the
// exact twice-spin grid, never by float comparison.
func commonSpins(j1, j2, j3, j4 float64) ([]float64, error) {
	left, err := angular.AllowedSpins(j1, j2)
	if err != nil {
		return nil, err
	}
	right, err := angular.AllowedSpins(j3, j4)
	if err != nil {
		return nil, err
	}

	inRight := make(map[int]struct{}, len(right))
	for _, j := range right {
		inRight[int(math.Round(2*j))] = struct{}{}
	}
	common := make([]float64, 0, len(left))
	for _, j := range left {
		if _, ok := inRight[int(math.Round(2*j))]; ok {
			common = append(common, j)
		}
	}

	return common, nil
}

// Dimension returns the dimension of the intertwiner space for the given
// edge spins, by valence:
//
//	valence 2: 1 iff j₁ == j₂, else 0
//	valence 3: 1 iff the triangle inequality holds AND j₁+j₂+j₃ is an
//	           integer, else 0
//	valence 4: the number of intermediate spins common to (j₁,j₂) and
//	           (j₃,j₄) — the ways to recouple (j₁⊗j₂)⊗(j₃⊗j₄) → 0
//
// Valences outside {2,3,4} fail with ErrUnsupportedValence — there is no
// silent fallback dimension. Invalid spins fail with ErrBadSpin.
// Complexity: O(min(j₁,j₂)+min(j₃,j₄)) for valence 4, O(1) otherwise.
func Dimension(edgeSpins []float64) (int, error) {
	if err := validateSpins(edgeSpins); err != nil {
		return 0, err
	}

	switch len(edgeSpins) {
	case 2:
		if math.Abs(edgeSpins[0]-edgeSpins[1]) < CoefficientEpsilon {
			return 1, nil
		}

		return 0, nil
	case 3:
		if threeValentAllowed(edgeSpins[0], edgeSpins[1], edgeSpins[2]) {
			return 1, nil
		}

		return 0, nil
	case 4:
		common, err := commonSpins(edgeSpins[0], edgeSpins[1], edgeSpins[2], edgeSpins[3])
		if err != nil {
			return 0, err
		}

		return len(common), nil
	default:
		return 0, ErrUnsupportedValence
	}
}

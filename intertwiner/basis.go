// Package intertwiner: orthonormal basis construction.
//
// Algorithm outline (valence 4):
//  1. Validate spins; intersect the allowed intermediate spins of the two
//     pairs (ConstructBasis refuses valences outside {2,3,4} loudly).
//  2. One raw coefficient vector per candidate J: triple Clebsch-Gordan
//     accumulation over every magnetic combination, with early skips on
//     selection-rule zeros.
//  3. Zero-norm candidates are discarded (degenerate couplings), the rest
//     normalized and jointly orthonormalized by modified Gram-Schmidt.
//
// The surviving count equals Dimension(edgeSpins) — an invariant pinned by
// tests rather than enforced at runtime.
package intertwiner

import (
	"fmt"
	"math"

	"github.com/halfint/spinnet/angular"
	"github.com/halfint/spinnet/hilbert"
)

// edgeShape maps spins to per-edge dimensions 2j+1 under the shared
// row-major convention.
func edgeShape(edgeSpins []float64) hilbert.Shape {
	shape := make(hilbert.Shape, len(edgeSpins))
	for k, j := range edgeSpins {
		shape[k] = int(math.Round(2*j)) + 1
	}

	return shape
}

// ConstructBasis builds the orthonormal intertwiner basis for the given
// edge spins. Zero-dimensional spaces (selection rules unmet) are normal
// results with empty States. Returns ErrBadSpin for off-grid spins and
// ErrUnsupportedValence for valences outside {2,3,4}.
// Complexity: O(candidates · Π(2jᵢ+1)) accumulation plus O(k²·d)
// orthonormalization.
func ConstructBasis(edgeSpins []float64) (*Space, error) {
	if err := validateSpins(edgeSpins); err != nil {
		return nil, err
	}

	spins := make([]float64, len(edgeSpins))
	copy(spins, edgeSpins)
	space := &Space{States: []BasisState{}, EdgeSpins: spins}

	var states []BasisState
	var err error
	switch len(edgeSpins) {
	case 2:
		states, err = twoValentStates(edgeSpins[0], edgeSpins[1])
	case 3:
		states, err = threeValentStates(edgeSpins[0], edgeSpins[1], edgeSpins[2])
	case 4:
		states, err = fourValentStates(edgeSpins)
	default:
		return nil, ErrUnsupportedValence
	}
	if err != nil {
		return nil, err
	}

	space.States = orthonormalize(states)
	space.Dimension = len(space.States)

	return space, nil
}

// twoValentStates returns the two-spin singlet ⟨j m₁; j m₂|0 0⟩, valid
// only for equal spins.
func twoValentStates(j1, j2 float64) ([]BasisState, error) {
	if math.Abs(j1-j2) >= CoefficientEpsilon {
		return nil, nil
	}

	shape := edgeShape([]float64{j1, j2})
	b, err := hilbert.NewShapedBuilder(shape)
	if err != nil {
		return nil, err
	}
	tj := int(math.Round(2 * j1))
	for tm1 := -tj; tm1 <= tj; tm1 += 2 {
		m1 := float64(tm1) / 2
		// Only m₂ = -m₁ survives the J=0 selection rule.
		c := angular.ClebschGordan(j1, m1, j2, -m1, 0, 0)
		if math.Abs(c) < CoefficientEpsilon {
			continue
		}
		if err = b.AccumulateAt([]int{(tj - tm1) / 2, (tj + tm1) / 2}, complex(c, 0)); err != nil {
			return nil, err
		}
	}

	return packState(b.Vector(), 0, fmt.Sprintf("%v⊗%v→0", j1, j2))
}

// threeValentStates returns the Wigner 3-j tensor, valid only when the
// triangle closes with an integer perimeter — the same gate Dimension
// applies, so the two counts cannot drift apart.
func threeValentStates(j1, j2, j3 float64) ([]BasisState, error) {
	if !threeValentAllowed(j1, j2, j3) {
		return nil, nil
	}

	shape := edgeShape([]float64{j1, j2, j3})
	b, err := hilbert.NewShapedBuilder(shape)
	if err != nil {
		return nil, err
	}
	tj1 := int(math.Round(2 * j1))
	tj2 := int(math.Round(2 * j2))
	tj3 := int(math.Round(2 * j3))
	for tm1 := -tj1; tm1 <= tj1; tm1 += 2 {
		for tm2 := -tj2; tm2 <= tj2; tm2 += 2 {
			tm3 := -tm1 - tm2 // total M = 0
			if tm3 < -tj3 || tm3 > tj3 {
				continue
			}
			w := angular.Wigner3j(j1, float64(tm1)/2, j2, float64(tm2)/2, j3, float64(tm3)/2)
			if math.Abs(w) < CoefficientEpsilon {
				continue
			}
			idx := []int{(tj1 - tm1) / 2, (tj2 - tm2) / 2, (tj3 - tm3) / 2}
			if err = b.AccumulateAt(idx, complex(w, 0)); err != nil {
				return nil, err
			}
		}
	}

	return packState(b.Vector(), 0, fmt.Sprintf("(%v,%v,%v)→0", j1, j2, j3))
}

// fourValentStates builds one raw state per candidate intermediate spin of
// the (j₁⊗j₂)⊗(j₃⊗j₄) → 0 recoupling.
func fourValentStates(edgeSpins []float64) ([]BasisState, error) {
	j1, j2, j3, j4 := edgeSpins[0], edgeSpins[1], edgeSpins[2], edgeSpins[3]
	candidates, err := commonSpins(j1, j2, j3, j4)
	if err != nil {
		return nil, err
	}

	shape := edgeShape(edgeSpins)
	tj := [4]int{}
	for k, j := range edgeSpins {
		tj[k] = int(math.Round(2 * j))
	}

	states := make([]BasisState, 0, len(candidates))
	for _, bigJ := range candidates {
		tbigJ := int(math.Round(2 * bigJ))
		b, err := hilbert.NewShapedBuilder(shape)
		if err != nil {
			return nil, err
		}

		for tm1 := -tj[0]; tm1 <= tj[0]; tm1 += 2 {
			for tm2 := -tj[1]; tm2 <= tj[1]; tm2 += 2 {
				tm12 := tm1 + tm2
				if tm12 < -tbigJ || tm12 > tbigJ {
					continue
				}
				cg1 := angular.ClebschGordan(j1, float64(tm1)/2, j2, float64(tm2)/2, bigJ, float64(tm12)/2)
				if math.Abs(cg1) < CoefficientEpsilon {
					continue
				}
				for tm3 := -tj[2]; tm3 <= tj[2]; tm3 += 2 {
					// Total J=0 forces m₃₄ = -m₁₂, which pins m₄.
					tm4 := -tm12 - tm3
					if tm4 < -tj[3] || tm4 > tj[3] {
						continue
					}
					cg2 := angular.ClebschGordan(j3, float64(tm3)/2, j4, float64(tm4)/2, bigJ, float64(-tm12)/2)
					if math.Abs(cg2) < CoefficientEpsilon {
						continue
					}
					cgFinal := angular.ClebschGordan(bigJ, float64(tm12)/2, bigJ, float64(-tm12)/2, 0, 0)
					if math.Abs(cgFinal) < CoefficientEpsilon {
						continue
					}
					idx := []int{
						(tj[0] - tm1) / 2,
						(tj[1] - tm2) / 2,
						(tj[2] - tm3) / 2,
						(tj[3] - tm4) / 2,
					}
					if err = b.AccumulateAt(idx, complex(cg1*cg2*cgFinal, 0)); err != nil {
						return nil, err
					}
				}
			}
		}

		packed, err := packState(b.Vector(), bigJ,
			fmt.Sprintf("(%v⊗%v)⊗(%v⊗%v)→0 via J=%v", j1, j2, j3, j4, bigJ))
		if err != nil {
			return nil, err
		}
		states = append(states, packed...)
	}

	return states, nil
}

// packState normalizes a raw coefficient vector into a single-element
// basis-state slice, or an empty slice when the raw norm is negligible
// (degenerate coupling — a normal outcome, not an error).
func packState(raw *hilbert.StateVector, intermediateJ float64, scheme string) ([]BasisState, error) {
	norm := raw.Norm()
	if norm < CoefficientEpsilon {
		return nil, nil
	}
	unit, err := raw.Normalize()
	if err != nil {
		return nil, err
	}

	return []BasisState{{
		IntermediateJ: intermediateJ,
		Vector:        unit,
		Scheme:        scheme,
		Normalization: norm,
	}}, nil
}

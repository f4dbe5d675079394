package evolve

import "github.com/halfint/spinnet/operator"

// IsingChain builds the transverse-field Ising Hamiltonian on an open
// chain of n spin-½ sites:
//
//	H = -J · Σᵢ ZᵢZᵢ₊₁  -  h · Σᵢ Xᵢ
//
// with coupling J on nearest-neighbor bonds and transverse field h on
// every site. The result is a dense 2ⁿ×2ⁿ Hermitian operator; sites are
// ordered leftmost-slowest, matching hilbert.Shape flattening.
//
// Complexity: O(n·4ⁿ) to assemble — keep n small.
func IsingChain(n int, coupling, field float64) (*operator.Operator, error) {
	if n < 2 {
		return nil, ErrChainTooShort
	}

	var sum *operator.Operator
	add := func(term *operator.Operator) error {
		if sum == nil {
			sum = term

			return nil
		}
		next, err := sum.Add(term)
		if err != nil {
			return err
		}
		sum = next

		return nil
	}

	// Bond terms -J·ZᵢZᵢ₊₁.
	if coupling != 0 {
		for i := 0; i < n-1; i++ {
			term := chain(n, map[int]*operator.Operator{
				i:     operator.PauliZ(),
				i + 1: operator.PauliZ(),
			})
			if err := add(term.Scale(complex(-coupling, 0))); err != nil {
				return nil, err
			}
		}
	}

	// Site terms -h·Xᵢ.
	if field != 0 {
		for i := 0; i < n; i++ {
			term := chain(n, map[int]*operator.Operator{i: operator.PauliX()})
			if err := add(term.Scale(complex(-field, 0))); err != nil {
				return nil, err
			}
		}
	}

	// J = h = 0: the zero Hamiltonian on 2ⁿ dimensions.
	if sum == nil {
		zero := make([]complex128, 1<<n)
		return operator.Diagonal(zero)
	}

	return sum, nil
}

// chain tensors single-site operators into an n-site operator, filling
// unlisted sites with the 2×2 identity.
func chain(n int, at map[int]*operator.Operator) *operator.Operator {
	id, _ := operator.Identity(2)

	acc := id
	if op, ok := at[0]; ok {
		acc = op
	}
	for site := 1; site < n; site++ {
		factor := id
		if op, ok := at[site]; ok {
			factor = op
		}
		acc = acc.TensorProduct(factor)
	}

	return acc
}

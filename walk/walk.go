package walk

import (
	"math"
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
)

// Walk is a coined discrete-time quantum walk on a cycle. It is immutable
// once built: the one-step unitary is assembled in New and only applied
// afterwards.
type Walk struct {
	lattice *Lattice
	coin    *operator.Operator
	step    *operator.Operator
}

// New builds a walk on a cycle of n sites.
//
// Stages:
//  1. Validate the lattice size and the coin (2×2, unitary).
//  2. Lift the coin to the joint space: C⊗Iₙ.
//  3. Build the conditional shift S: coin 0 → next site, coin 1 → previous.
//  4. Compose the step unitary U = S·(C⊗Iₙ).
//
// A zero-value opts (nil Coin) selects the Hadamard coin.
func New(n int, opts Options) (*Walk, error) {
	lat, err := NewLattice(n)
	if err != nil {
		return nil, err
	}

	coin := opts.Coin
	if coin == nil {
		coin = operator.Hadamard()
	}
	if coin.Dim() != 2 || !coin.IsUnitary(coinUnitaryTol) {
		return nil, ErrBadCoin
	}

	id, err := operator.Identity(n)
	if err != nil {
		return nil, err
	}
	tossed := coin.TensorProduct(id)

	shift, err := shiftOperator(lat)
	if err != nil {
		return nil, err
	}

	step, err := shift.Compose(tossed)
	if err != nil {
		return nil, err
	}

	return &Walk{lattice: lat, coin: coin, step: step}, nil
}

// shiftOperator builds the conditional shift on coin⊗position: the walker
// moves clockwise under coin 0 and counter-clockwise under coin 1. A
// permutation matrix, hence exactly unitary.
func shiftOperator(lat *Lattice) (*operator.Operator, error) {
	n := lat.Sites()
	d := 2 * n
	rows := make([][]complex128, d)
	for i := range rows {
		rows[i] = make([]complex128, d)
	}
	for x := 0; x < n; x++ {
		rows[lat.Next(x)][x] = 1     // coin 0 block
		rows[n+lat.Prev(x)][n+x] = 1 // coin 1 block
	}

	return operator.FromMatrix(rows)
}

// Lattice returns the underlying cycle.
func (w *Walk) Lattice() *Lattice { return w.lattice }

// Unitary returns the one-step evolution operator U = S·(C⊗I).
func (w *Walk) Unitary() *operator.Operator { return w.step }

// InitialState prepares |coin=0⟩⊗|site⟩ with Shape{2, n} metadata.
// Returns ErrSiteRange for a site outside the lattice.
func (w *Walk) InitialState(site int) (*hilbert.StateVector, error) {
	n := w.lattice.Sites()
	if site < 0 || site >= n {
		return nil, ErrSiteRange
	}
	amps := make([]complex128, 2*n)
	amps[site] = 1

	return hilbert.New(amps, hilbert.WithShape(hilbert.Shape{2, n}))
}

// SymmetricState prepares (|0⟩+i|1⟩)/√2 ⊗ |site⟩ — the balanced coin
// state whose Hadamard walk spreads symmetrically about the start site.
func (w *Walk) SymmetricState(site int) (*hilbert.StateVector, error) {
	n := w.lattice.Sites()
	if site < 0 || site >= n {
		return nil, ErrSiteRange
	}
	amps := make([]complex128, 2*n)
	inv := complex(1/math.Sqrt2, 0)
	amps[site] = inv
	amps[n+site] = inv * complex(0, 1)

	return hilbert.New(amps, hilbert.WithShape(hilbert.Shape{2, n}))
}

// Step advances the walker by one application of the step unitary.
func (w *Walk) Step(v *hilbert.StateVector) (*hilbert.StateVector, error) {
	if v == nil {
		return nil, ErrNilState
	}

	return w.step.Apply(v)
}

// Run advances the walker by steps applications. Zero steps returns the
// input state unchanged.
func (w *Walk) Run(v *hilbert.StateVector, steps int) (*hilbert.StateVector, error) {
	if v == nil {
		return nil, ErrNilState
	}
	out := v
	for s := 0; s < steps; s++ {
		next, err := w.step.Apply(out)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// Distribution folds a walker state down to position probabilities,
// tracing out the coin: P(x) = Σ_c |⟨c,x|ψ⟩|².
func (w *Walk) Distribution(v *hilbert.StateVector) ([]float64, error) {
	if v == nil {
		return nil, ErrNilState
	}
	n := w.lattice.Sites()
	if v.Dim() != 2*n {
		return nil, hilbert.ErrDimensionMismatch
	}

	amps := v.Amplitudes()
	probs := make([]float64, n)
	for x := 0; x < n; x++ {
		p0 := cmplx.Abs(amps[x])
		p1 := cmplx.Abs(amps[n+x])
		probs[x] = p0*p0 + p1*p1
	}

	return probs, nil
}

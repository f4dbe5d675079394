package evolve_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/halfint/spinnet/evolve"
	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropagator_Unitary: exp(-iHt) preserves the inner product for a
// Hermitian H.
func TestPropagator_Unitary(t *testing.T) {
	h, err := evolve.IsingChain(2, 1.0, 0.7)
	require.NoError(t, err)

	u, err := evolve.Propagator(h, 1.3, nil)
	require.NoError(t, err)
	assert.True(t, u.IsUnitary(1e-8), "propagator must be unitary")
}

// TestPropagator_ZeroTime: U(0) is the identity.
func TestPropagator_ZeroTime(t *testing.T) {
	h, err := evolve.IsingChain(2, 0.5, 0.5)
	require.NoError(t, err)

	u, err := evolve.Propagator(h, 0, nil)
	require.NoError(t, err)

	for i := 0; i < u.Dim(); i++ {
		for j := 0; j < u.Dim(); j++ {
			got, err := u.At(i, j)
			require.NoError(t, err)
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, real(want), real(got), 1e-8)
			assert.InDelta(t, imag(want), imag(got), 1e-8)
		}
	}
}

// TestPropagator_QubitFlip: under H = X a qubit Rabi-flips; at t = π/2 the
// propagator is -iX, sending |0⟩ to |1⟩ up to phase.
func TestPropagator_QubitFlip(t *testing.T) {
	zero, err := hilbert.BasisState(2, 0)
	require.NoError(t, err)

	out, err := evolve.Evolve(operator.PauliX(), zero, math.Pi/2, nil)
	require.NoError(t, err)

	a0, _ := out.At(0)
	a1, _ := out.At(1)
	assert.InDelta(t, 0.0, cmplx.Abs(a0), 1e-9)
	assert.InDelta(t, 1.0, cmplx.Abs(a1), 1e-9)
}

// TestEvolve_NormPreserved evolves random normalized states and checks the
// norm survives.
func TestEvolve_NormPreserved(t *testing.T) {
	h, err := evolve.IsingChain(3, 1.0, 0.5)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 5; trial++ {
		amps := make([]complex128, h.Dim())
		for i := range amps {
			amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		v, err := hilbert.New(amps)
		require.NoError(t, err)
		v, err = v.Normalize()
		require.NoError(t, err)

		out, err := evolve.Evolve(h, v, 0.9, nil)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, out.Norm(), 1e-8, "trial %d", trial)
	}
}

// TestPropagator_NonHermitian surfaces the eigensolver's error.
func TestPropagator_NonHermitian(t *testing.T) {
	m, err := operator.FromMatrix([][]complex128{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	_, err = evolve.Propagator(m, 1.0, nil)
	assert.ErrorIs(t, err, operator.ErrNotHermitian)
}

// TestPropagator_NilInputs rejects nil arguments.
func TestPropagator_NilInputs(t *testing.T) {
	_, err := evolve.Propagator(nil, 1.0, nil)
	assert.ErrorIs(t, err, evolve.ErrNilHamiltonian)

	_, err = evolve.Evolve(nil, nil, 1.0, nil)
	assert.ErrorIs(t, err, evolve.ErrNilHamiltonian)
}

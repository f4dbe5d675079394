package evolve_test

import (
	"math"
	"testing"

	"github.com/halfint/spinnet/evolve"
	"github.com/halfint/spinnet/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsingChain_Hermitian: every chain Hamiltonian is Hermitian.
func TestIsingChain_Hermitian(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		h, err := evolve.IsingChain(n, 1.0, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 1<<n, h.Dim())
		assert.True(t, h.IsHermitian(1e-12), "n=%d", n)
	}
}

// TestIsingChain_ClassicalLimit: with no field the Hamiltonian is diagonal
// and the ground energy of 2 aligned spins is -J.
func TestIsingChain_ClassicalLimit(t *testing.T) {
	h, err := evolve.IsingChain(2, 1.0, 0)
	require.NoError(t, err)
	assert.Equal(t, operator.KindDiagonal, h.Kind())

	vals, _, err := h.Eigen(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, vals[0], 1e-12)
}

// TestIsingChain_FieldLimit: with no coupling the ground energy of n spins
// is -n·h.
func TestIsingChain_FieldLimit(t *testing.T) {
	h, err := evolve.IsingChain(2, 0, 1.0)
	require.NoError(t, err)

	vals, _, err := h.Eigen(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, vals[0], 1e-9)
}

// TestIsingChain_TwoSiteSpectrum pins the closed-form ground energy
// -√(J²+4h²) of the two-site chain.
func TestIsingChain_TwoSiteSpectrum(t *testing.T) {
	const j, f = 1.0, 0.5
	h, err := evolve.IsingChain(2, j, f)
	require.NoError(t, err)

	vals, _, err := h.Eigen(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -math.Sqrt(j*j+4*f*f), vals[0], 1e-9)
}

// TestIsingChain_TooShort rejects chains below 2 sites.
func TestIsingChain_TooShort(t *testing.T) {
	_, err := evolve.IsingChain(1, 1.0, 1.0)
	assert.ErrorIs(t, err, evolve.ErrChainTooShort)
}

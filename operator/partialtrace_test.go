package operator_test

import (
	"testing"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPartialTrace_BellState checks the canonical result: tracing either
// qubit of the Bell state density matrix yields the maximally mixed I/2.
func TestPartialTrace_BellState(t *testing.T) {
	up, _ := hilbert.BasisState(2, 0)
	down, _ := hilbert.BasisState(2, 1)
	zz, err := up.TensorProduct(up).Add(down.TensorProduct(down))
	require.NoError(t, err)
	bell, err := zz.Normalize()
	require.NoError(t, err)

	rho, err := operator.Projection(bell)
	require.NoError(t, err)

	for axis := 0; axis < 2; axis++ {
		reduced, err := rho.PartialTrace(hilbert.Shape{2, 2}, axis)
		require.NoError(t, err)
		assert.Equal(t, 2, reduced.Dim())
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				want := 0.0
				if i == j {
					want = 0.5
				}
				got, _ := reduced.At(i, j)
				assert.InDelta(t, want, real(got), tol, "axis=%d entry (%d,%d)", axis, i, j)
				assert.InDelta(t, 0.0, imag(got), tol)
			}
		}
	}
}

// TestPartialTrace_ProductState checks Tr_B(ρ_A⊗ρ_B) == ρ_A for a product
// of pure states.
func TestPartialTrace_ProductState(t *testing.T) {
	a, _ := hilbert.Uniform(2)
	b, _ := hilbert.BasisState(3, 1)

	rhoA, err := operator.Projection(a)
	require.NoError(t, err)
	rhoAB, err := operator.Projection(a.TensorProduct(b))
	require.NoError(t, err)

	reduced, err := rhoAB.PartialTrace(hilbert.Shape{2, 3}, 1)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := rhoA.At(i, j)
			got, _ := reduced.At(i, j)
			assert.InDelta(t, real(want), real(got), tol)
			assert.InDelta(t, imag(want), imag(got), tol)
		}
	}
}

// TestPartialTrace_Validation covers shape and axis violations.
func TestPartialTrace_Validation(t *testing.T) {
	id, _ := operator.Identity(4)

	_, err := id.PartialTrace(hilbert.Shape{2, 3}, 0)
	assert.ErrorIs(t, err, operator.ErrBadAxis, "shape product must equal dim")

	_, err = id.PartialTrace(hilbert.Shape{4}, 0)
	assert.ErrorIs(t, err, operator.ErrBadAxis, "rank-1 shapes have nothing to keep")

	_, err = id.PartialTrace(hilbert.Shape{2, 2}, 2)
	assert.ErrorIs(t, err, operator.ErrBadAxis, "axis out of range")
}

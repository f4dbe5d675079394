package operator_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randState returns a random (non-normalized) state of the given dimension.
func randState(t *testing.T, rng *rand.Rand, dim int) *hilbert.StateVector {
	t.Helper()
	amps := make([]complex128, dim)
	for i := range amps {
		amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	v, err := hilbert.New(amps)
	require.NoError(t, err)

	return v
}

// TestApply_FastPathEquivalence checks that Identity and Diagonal applies
// match a general dense apply within 1e-10, for 10 random states per
// dimension in {2,4,8,10}.
func TestApply_FastPathEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, dim := range []int{2, 4, 8, 10} {
		// Identity vs its dense materialization.
		id, err := operator.Identity(dim)
		require.NoError(t, err)

		// Random diagonal vs its dense materialization.
		diag := make([]complex128, dim)
		for i := range diag {
			diag[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		dOp, err := operator.Diagonal(diag)
		require.NoError(t, err)

		// Reference: a plain dense matrix-vector product over the
		// materialized matrix, bypassing the factory entirely.
		denseApply := func(m [][]complex128, v *hilbert.StateVector) *hilbert.StateVector {
			amps := v.Amplitudes()
			out := make([]complex128, len(amps))
			for i := range m {
				var sum complex128
				for j := range m[i] {
					sum += m[i][j] * amps[j]
				}
				out[i] = sum
			}
			res, err := hilbert.New(out)
			require.NoError(t, err)

			return res
		}

		for k := 0; k < 10; k++ {
			v := randState(t, rng, dim)

			got, err := id.Apply(v)
			require.NoError(t, err)
			assert.True(t, got.Equal(denseApply(id.Matrix(), v), tol), "identity fast path must match dense apply")

			got, err = dOp.Apply(v)
			require.NoError(t, err)
			assert.True(t, got.Equal(denseApply(dOp.Matrix(), v), tol), "diagonal fast path must match dense apply")
		}
	}
}

// TestApply_PreservesMetadata: shape and basis labels survive every Apply
// path, not just the Identity one that hands back the input.
func TestApply_PreservesMetadata(t *testing.T) {
	v, err := hilbert.New(
		[]complex128{1, 0, 0, 2},
		hilbert.WithShape(hilbert.Shape{2, 2}),
		hilbert.WithBasis("computational"),
	)
	require.NoError(t, err)

	id, err := operator.Identity(4)
	require.NoError(t, err)
	diag, err := operator.Diagonal([]complex128{1, 2, 3, 4})
	require.NoError(t, err)
	dense := operator.PauliX().TensorProduct(operator.PauliX())

	for _, op := range []*operator.Operator{id, diag, dense} {
		got, err := op.Apply(v)
		require.NoError(t, err)
		assert.Equal(t, hilbert.Shape{2, 2}, got.Shape(), "kind %v", op.Kind())
		assert.Equal(t, "computational", got.Basis(), "kind %v", op.Kind())
	}
}

// TestCompose_Convention pins the composition order with non-commuting
// Paulis: a.Compose(b) is A·B, so b acts first.
func TestCompose_Convention(t *testing.T) {
	x := operator.PauliX()
	z := operator.PauliZ()
	zero, _ := hilbert.BasisState(2, 0)
	one, _ := hilbert.BasisState(2, 1)

	xz, err := x.Compose(z)
	require.NoError(t, err)
	got, err := xz.Apply(zero)
	require.NoError(t, err)
	assert.True(t, got.Equal(one, tol), "X·Z|0⟩ = X|0⟩ = |1⟩")

	zx, err := z.Compose(x)
	require.NoError(t, err)
	got, err = zx.Apply(zero)
	require.NoError(t, err)
	assert.True(t, got.Equal(one.Scale(-1), tol), "Z·X|0⟩ = Z|1⟩ = -|1⟩")

	// Composition equals sequential application for random states too.
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 10; k++ {
		v := randState(t, rng, 2)
		viaCompose, err := xz.Apply(v)
		require.NoError(t, err)
		inner, err := z.Apply(v)
		require.NoError(t, err)
		viaSequence, err := x.Apply(inner)
		require.NoError(t, err)
		assert.True(t, viaCompose.Equal(viaSequence, tol), "a.Compose(b).Apply == a.Apply(b.Apply)")
	}
}

// TestCompose_FastPaths checks identity neutrality and diagonal scaling
// against the dense reference.
func TestCompose_FastPaths(t *testing.T) {
	id, _ := operator.Identity(2)
	d, _ := operator.Diagonal([]complex128{2, complex(0, 1)})
	x := operator.PauliX()

	// Identity is neutral on both sides.
	left, err := id.Compose(x)
	require.NoError(t, err)
	right, err := x.Compose(id)
	require.NoError(t, err)
	assert.Equal(t, x.Matrix(), left.Matrix())
	assert.Equal(t, x.Matrix(), right.Matrix())

	// Diagonal·Diagonal stays diagonal.
	dd, err := d.Compose(d)
	require.NoError(t, err)
	assert.Equal(t, operator.KindDiagonal, dd.Kind())
	v, _ := dd.At(0, 0)
	assert.Equal(t, complex128(4), v)

	// Diagonal·Dense row-scales: (D·X)[0][1] = d₀·1.
	dx, err := d.Compose(x)
	require.NoError(t, err)
	v, _ = dx.At(0, 1)
	assert.Equal(t, complex128(2), v)

	// Dense·Diagonal column-scales: (X·D)[0][1] = d₁·1.
	xd, err := x.Compose(d)
	require.NoError(t, err)
	v, _ = xd.At(0, 1)
	assert.Equal(t, complex(0, 1), v)
}

// TestAdjoint_Involution checks (O†)† == O and conjugation semantics.
func TestAdjoint_Involution(t *testing.T) {
	y := operator.PauliY()
	assert.Equal(t, y.Matrix(), y.Adjoint().Adjoint().Matrix())
	assert.Equal(t, y.Matrix(), y.Adjoint().Matrix(), "Pauli Y is Hermitian")

	d, _ := operator.Diagonal([]complex128{complex(0, 1)})
	v, _ := d.Adjoint().At(0, 0)
	assert.Equal(t, complex(0, -1), v)
}

// TestScale_KindTransitions verifies representation changes under scaling.
func TestScale_KindTransitions(t *testing.T) {
	id, _ := operator.Identity(3)
	s := id.Scale(2)
	assert.Equal(t, operator.KindDiagonal, s.Kind(), "scaled identity becomes diagonal")
	v, _ := s.At(2, 2)
	assert.Equal(t, complex128(2), v)

	plus, _ := hilbert.Uniform(2)
	p, _ := operator.Projection(plus)
	sp := p.Scale(2)
	assert.Equal(t, operator.KindDense, sp.Kind(), "scaled projection is no longer a projector")
}

// TestAdd_Shapes verifies diagonal-preserving addition and mismatch errors.
func TestAdd_Shapes(t *testing.T) {
	id, _ := operator.Identity(2)
	d, _ := operator.Diagonal([]complex128{1, 2})

	sum, err := id.Add(d)
	require.NoError(t, err)
	assert.Equal(t, operator.KindDiagonal, sum.Kind())
	v, _ := sum.At(1, 1)
	assert.Equal(t, complex128(3), v)

	x := operator.PauliX()
	dense, err := d.Add(x)
	require.NoError(t, err)
	assert.Equal(t, operator.KindDense, dense.Kind())

	big, _ := operator.Identity(3)
	_, err = id.Add(big)
	assert.ErrorIs(t, err, operator.ErrDimensionMismatch)
}

// TestTensorProduct_Convention pins the operator Kronecker convention
// against the state-level tensor product: (A⊗B)(v⊗w) == (Av)⊗(Bw).
func TestTensorProduct_Convention(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := operator.PauliX()
	b, _ := operator.Diagonal([]complex128{1, complex(0, 1), -1})

	ab := a.TensorProduct(b)
	assert.Equal(t, 6, ab.Dim())

	v := randState(t, rng, 2)
	w := randState(t, rng, 3)

	lhs, err := ab.Apply(v.TensorProduct(w))
	require.NoError(t, err)
	av, err := a.Apply(v)
	require.NoError(t, err)
	bw, err := b.Apply(w)
	require.NoError(t, err)
	assert.True(t, lhs.Equal(av.TensorProduct(bw), tol), "(A⊗B)(v⊗w) must equal (Av)⊗(Bw)")

	// Structure-preserving fast paths.
	i2, _ := operator.Identity(2)
	i3, _ := operator.Identity(3)
	assert.Equal(t, operator.KindIdentity, i2.TensorProduct(i3).Kind())
	assert.Equal(t, operator.KindDiagonal, i2.TensorProduct(b).Kind())
}

// TestIsZero_CoarseSemantics pins the documented NON-squared magnitude
// comparison: magnitude-1e-15 operators pass at default and stricter
// thresholds.
func TestIsZero_CoarseSemantics(t *testing.T) {
	tiny, err := operator.FromMatrix([][]complex128{
		{complex(1e-15, 0), complex(0, 1e-15)},
		{0, complex(1e-15, 0)},
	})
	require.NoError(t, err)

	assert.True(t, tiny.IsZero(0), "1e-15 entries pass at the default 1e-10 threshold")
	assert.True(t, tiny.IsZero(1e-12), "and at stricter thresholds above the magnitude")
	assert.False(t, tiny.IsZero(1e-16), "but not below the actual magnitude")

	id, _ := operator.Identity(2)
	assert.False(t, id.IsZero(0), "identity is never zero")

	d, _ := operator.Diagonal([]complex128{0, complex(5e-11, 0)})
	assert.True(t, d.IsZero(0), "diagonal variant checks diagonal entries only")
}

// TestUnitary_Hermitian_Tags sanity-checks the structural validators.
func TestUnitary_Hermitian_Tags(t *testing.T) {
	h := operator.Hadamard()
	assert.True(t, h.IsUnitary(tol))
	assert.True(t, h.IsHermitian(tol), "Hadamard is both unitary and Hermitian")

	d, _ := operator.Diagonal([]complex128{complex(0, 1), 1})
	assert.True(t, d.IsUnitary(tol))
	assert.False(t, d.IsHermitian(tol))
	assert.InDelta(t, 0.0, cmplx.Abs(d.Trace()-complex(1, 1)), tol)
}

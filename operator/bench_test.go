package operator_test

import (
	"math/rand"
	"testing"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
)

// benchState builds a deterministic random state of the given dimension.
func benchState(dim int) *hilbert.StateVector {
	rng := rand.New(rand.NewSource(1))
	amps := make([]complex128, dim)
	for i := range amps {
		amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	v, _ := hilbert.New(amps)

	return v
}

// BenchmarkApply_Dense measures the O(d²) dense apply path.
func BenchmarkApply_Dense(b *testing.B) {
	const dim = 64
	rng := rand.New(rand.NewSource(2))
	rows := make([][]complex128, dim)
	for i := range rows {
		rows[i] = make([]complex128, dim)
		for j := range rows[i] {
			rows[i][j] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
	}
	o, _ := operator.FromMatrix(rows)
	v := benchState(dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := o.Apply(v); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApply_Diagonal measures the O(d) diagonal fast path at the same
// dimension, for comparison against the dense baseline.
func BenchmarkApply_Diagonal(b *testing.B) {
	const dim = 64
	diag := make([]complex128, dim)
	for i := range diag {
		diag[i] = complex(float64(i), 0)
	}
	o, _ := operator.Diagonal(diag)
	v := benchState(dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := o.Apply(v); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEigen_Hermitian measures Jacobi convergence on a dense
// Hermitian matrix.
func BenchmarkEigen_Hermitian(b *testing.B) {
	const dim = 16
	rng := rand.New(rand.NewSource(3))
	rows := make([][]complex128, dim)
	for i := range rows {
		rows[i] = make([]complex128, dim)
	}
	for i := 0; i < dim; i++ {
		rows[i][i] = complex(rng.NormFloat64(), 0)
		for j := i + 1; j < dim; j++ {
			v := complex(rng.NormFloat64(), rng.NormFloat64())
			rows[i][j] = v
			rows[j][i] = complex(real(v), -imag(v))
		}
	}
	o, _ := operator.FromMatrix(rows)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := o.Eigen(0, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// Package operator: the operator algebra.
//
// Every function here is a kernel dispatching on the Kind tag. Fast paths
// (Identity, Diagonal) must stay numerically identical to the dense path;
// the equivalence is pinned by tests against dense references.
package operator

import (
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
)

// Apply returns O·v as a fresh state vector.
// Returns ErrNilOperator / ErrDimensionMismatch on bad operands.
// Complexity: O(d) for Identity/Diagonal, O(d²) for Dense.
func (o *Operator) Apply(v *hilbert.StateVector) (*hilbert.StateVector, error) {
	if o == nil || v == nil {
		return nil, ErrNilOperator
	}
	if o.dim != v.Dim() {
		return nil, ErrDimensionMismatch
	}
	switch o.kind {
	case KindIdentity:
		// Identity: the input is immutable, so returning it is safe.
		return v, nil
	case KindDiagonal:
		amps := v.Amplitudes()
		for i := range amps {
			amps[i] *= o.data[i]
		}

		return hilbert.New(amps, metadataOf(v)...)
	default:
		amps := v.Amplitudes()
		out := make([]complex128, o.dim)
		for i := 0; i < o.dim; i++ {
			row := o.data[i*o.dim : (i+1)*o.dim]
			var sum complex128
			for j, a := range amps {
				sum += row[j] * a
			}
			out[i] = sum
		}

		return hilbert.New(out, metadataOf(v)...)
	}
}

// metadataOf carries the input's shape and basis label onto a result living
// in the same space, so every Apply path is indistinguishable from the
// Identity fast path (which returns the input itself).
func metadataOf(v *hilbert.StateVector) []hilbert.Option {
	var opts []hilbert.Option
	if s := v.Shape(); s != nil {
		opts = append(opts, hilbert.WithShape(s))
	}
	if b := v.Basis(); b != "" {
		opts = append(opts, hilbert.WithBasis(b))
	}

	return opts
}

// Compose returns the matrix product A·B, so B acts first:
// a.Compose(b).Apply(v) == a.Apply(b.Apply(v)). This convention is fixed
// package-wide and pinned by tests.
// Returns ErrNilOperator / ErrDimensionMismatch on bad operands.
// Complexity: O(1) when either side is Identity, O(d) for
// Diagonal·Diagonal, O(d²) for Diagonal·Dense, O(d³) for Dense·Dense.
func (a *Operator) Compose(b *Operator) (*Operator, error) {
	if a == nil || b == nil {
		return nil, ErrNilOperator
	}
	if a.dim != b.dim {
		return nil, ErrDimensionMismatch
	}
	n := a.dim

	switch {
	case a.kind == KindIdentity:
		return b, nil
	case b.kind == KindIdentity:
		return a, nil
	case a.kind == KindDiagonal && b.kind == KindDiagonal:
		diag := make([]complex128, n)
		for i := 0; i < n; i++ {
			diag[i] = a.data[i] * b.data[i]
		}

		return &Operator{kind: KindDiagonal, dim: n, data: diag}, nil
	case a.kind == KindDiagonal:
		// Row scaling: (D·B)[i][j] = d_i·B[i][j].
		data := make([]complex128, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				data[i*n+j] = a.data[i] * b.data[i*n+j]
			}
		}

		return dense(n, data), nil
	case b.kind == KindDiagonal:
		// Column scaling: (A·D)[i][j] = A[i][j]·d_j.
		data := make([]complex128, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				data[i*n+j] = a.data[i*n+j] * b.data[j]
			}
		}

		return dense(n, data), nil
	default:
		data := make([]complex128, n*n)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				aik := a.data[i*n+k]
				if aik == 0 {
					continue
				}
				for j := 0; j < n; j++ {
					data[i*n+j] += aik * b.data[k*n+j]
				}
			}
		}

		return dense(n, data), nil
	}
}

// Adjoint returns the conjugate transpose O†. Identity maps to itself,
// Diagonal conjugates its entries, Projection stays a projection
// (it is Hermitian by construction). Complexity: O(1)/O(d)/O(d²) by kind.
func (o *Operator) Adjoint() *Operator {
	switch o.kind {
	case KindIdentity:
		return o
	case KindDiagonal:
		diag := make([]complex128, o.dim)
		for i, c := range o.data {
			diag[i] = cmplx.Conj(c)
		}

		return &Operator{kind: KindDiagonal, dim: o.dim, data: diag}
	default:
		n := o.dim
		data := make([]complex128, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				data[j*n+i] = cmplx.Conj(o.data[i*n+j])
			}
		}

		return &Operator{kind: o.kind, dim: n, data: data}
	}
}

// Scale returns c·O as a fresh operator. Scaling Identity yields a
// Diagonal (the scalar matrix); scaling a Projection yields a Dense
// operator, since a scaled projector is no longer idempotent.
// Complexity: O(d) or O(d²) by kind.
func (o *Operator) Scale(c complex128) *Operator {
	switch o.kind {
	case KindIdentity:
		diag := make([]complex128, o.dim)
		for i := range diag {
			diag[i] = c
		}

		return &Operator{kind: KindDiagonal, dim: o.dim, data: diag}
	case KindDiagonal:
		diag := make([]complex128, o.dim)
		for i, d := range o.data {
			diag[i] = c * d
		}

		return &Operator{kind: KindDiagonal, dim: o.dim, data: diag}
	default:
		data := make([]complex128, len(o.data))
		for i, d := range o.data {
			data[i] = c * d
		}

		return dense(o.dim, data)
	}
}

// Add returns A + B as a fresh operator. Identity/Diagonal combinations
// stay Diagonal; anything involving a dense operand goes dense.
// Returns ErrNilOperator / ErrDimensionMismatch on bad operands.
// Complexity: O(d) for diagonal results, O(d²) otherwise.
func (a *Operator) Add(b *Operator) (*Operator, error) {
	if a == nil || b == nil {
		return nil, ErrNilOperator
	}
	if a.dim != b.dim {
		return nil, ErrDimensionMismatch
	}
	n := a.dim

	diagOf := func(o *Operator) []complex128 {
		if o.kind == KindIdentity {
			d := make([]complex128, n)
			for i := range d {
				d[i] = 1
			}

			return d
		}

		return o.data
	}

	aDiag := a.kind == KindIdentity || a.kind == KindDiagonal
	bDiag := b.kind == KindIdentity || b.kind == KindDiagonal
	if aDiag && bDiag {
		da, db := diagOf(a), diagOf(b)
		diag := make([]complex128, n)
		for i := 0; i < n; i++ {
			diag[i] = da[i] + db[i]
		}

		return &Operator{kind: KindDiagonal, dim: n, data: diag}, nil
	}

	data := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			va, _ := a.At(i, j)
			vb, _ := b.At(i, j)
			data[i*n+j] = va + vb
		}
	}

	return dense(n, data), nil
}

// TensorProduct returns A ⊗ B with the package-wide row-major convention:
// entry ((i₁·dim(B)+i₂), (j₁·dim(B)+j₂)) = A[i₁][j₁]·B[i₂][j₂], the left
// factor varying slowest — consistent with hilbert.Shape and
// StateVector.TensorProduct. Identity⊗Identity stays Identity and
// diagonal-shaped factors stay Diagonal; anything else goes dense.
// Complexity: O(d₁·d₂) diagonal, O((d₁·d₂)²) dense.
func (a *Operator) TensorProduct(b *Operator) *Operator {
	n := a.dim * b.dim

	if a.kind == KindIdentity && b.kind == KindIdentity {
		return &Operator{kind: KindIdentity, dim: n}
	}

	aDiag := a.kind == KindIdentity || a.kind == KindDiagonal
	bDiag := b.kind == KindIdentity || b.kind == KindDiagonal
	if aDiag && bDiag {
		diag := make([]complex128, n)
		for i := 0; i < a.dim; i++ {
			da, _ := a.At(i, i)
			for j := 0; j < b.dim; j++ {
				db, _ := b.At(j, j)
				diag[i*b.dim+j] = da * db
			}
		}

		return &Operator{kind: KindDiagonal, dim: n, data: diag}
	}

	data := make([]complex128, n*n)
	for i1 := 0; i1 < a.dim; i1++ {
		for j1 := 0; j1 < a.dim; j1++ {
			va, _ := a.At(i1, j1)
			if va == 0 {
				continue
			}
			for i2 := 0; i2 < b.dim; i2++ {
				for j2 := 0; j2 < b.dim; j2++ {
					vb, _ := b.At(i2, j2)
					if vb == 0 {
						continue
					}
					data[(i1*b.dim+i2)*n+(j1*b.dim+j2)] = va * vb
				}
			}
		}
	}

	return dense(n, data)
}

// Purity returns Tr(O²) as a real number — for a density matrix this is 1
// for pure states and < 1 for mixed ones. Complexity: O(d³) dense.
func (o *Operator) Purity() (float64, error) {
	sq, err := o.Compose(o)
	if err != nil {
		return 0, err
	}

	return real(sq.Trace()), nil
}

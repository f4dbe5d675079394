// Package operator: the closed operator variant and its accessors.
// Factories live in factory.go, algebra in ops.go, spectral routines in
// eigen.go, per the package conventions.
package operator

import (
	"math"
	"math/cmplx"

	"github.com/halfint/spinnet/hilbert"
)

// Kind discriminates the closed set of operator representations. Every
// switch over Kind in this package is exhaustive; adding a variant is a
// breaking change by design.
type Kind int

const (
	// KindDense stores the full dim×dim matrix row-major.
	KindDense Kind = iota
	// KindIdentity stores only the dimension; no matrix is materialized.
	KindIdentity
	// KindDiagonal stores only the diagonal entries.
	KindDiagonal
	// KindProjection is a rank-1 projector |v⟩⟨v|, stored densely.
	KindProjection
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindIdentity:
		return "identity"
	case KindDiagonal:
		return "diagonal"
	case KindProjection:
		return "projection"
	default:
		return "unknown"
	}
}

// Operator is a linear map on a fixed-dimension Hilbert space, represented
// by the cheapest structure its entries admit.
//
// Invariants:
//   - dim ≥ 1, fixed at construction.
//   - data layout by kind: Dense/Projection → dim·dim entries row-major;
//     Diagonal → dim entries; Identity → nil.
//   - Immutable: no method mutates the receiver.
type Operator struct {
	kind Kind
	dim  int
	data []complex128
}

// Kind returns the representation tag. Complexity: O(1).
func (o *Operator) Kind() Kind { return o.kind }

// Dim returns the Hilbert-space dimension. Complexity: O(1).
func (o *Operator) Dim() int { return o.dim }

// At returns the matrix entry (i, j) regardless of representation.
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (o *Operator) At(i, j int) (complex128, error) {
	if i < 0 || i >= o.dim || j < 0 || j >= o.dim {
		return 0, ErrOutOfRange
	}
	switch o.kind {
	case KindIdentity:
		if i == j {
			return 1, nil
		}

		return 0, nil
	case KindDiagonal:
		if i == j {
			return o.data[i], nil
		}

		return 0, nil
	case KindDense, KindProjection:
		return o.data[i*o.dim+j], nil
	default:
		return 0, ErrNilOperator
	}
}

// Matrix materializes the full matrix as a fresh [][]complex128.
// Complexity: O(d²).
func (o *Operator) Matrix() [][]complex128 {
	rows := make([][]complex128, o.dim)
	for i := range rows {
		rows[i] = make([]complex128, o.dim)
		switch o.kind {
		case KindIdentity:
			rows[i][i] = 1
		case KindDiagonal:
			rows[i][i] = o.data[i]
		case KindDense, KindProjection:
			copy(rows[i], o.data[i*o.dim:(i+1)*o.dim])
		}
	}

	return rows
}

// IsZero reports whether every entry has magnitude ≤ tol — the diagonal
// only for Diagonal operators, the full matrix for Dense/Projection, and
// never for Identity. The comparison uses NON-squared magnitudes: an
// operator with entries of magnitude 1e-15 passes at the default and even
// at stricter thresholds. This coarse behavior is intentional and
// preserved; pass tol ≤ 0 for the default hilbert.DefaultTolerance.
// Complexity: O(d) or O(d²) by kind.
func (o *Operator) IsZero(tol float64) bool {
	if tol <= 0 {
		tol = hilbert.DefaultTolerance
	}
	switch o.kind {
	case KindIdentity:
		return false
	case KindDiagonal, KindDense, KindProjection:
		for _, c := range o.data {
			if cmplx.Abs(c) > tol {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// IsHermitian reports whether the operator equals its adjoint within tol
// (entrywise, non-squared magnitude). Identity is always Hermitian;
// Diagonal is Hermitian iff its entries are real within tol.
// Complexity: O(d) or O(d²) by kind.
func (o *Operator) IsHermitian(tol float64) bool {
	if tol <= 0 {
		tol = hilbert.DefaultTolerance
	}
	switch o.kind {
	case KindIdentity:
		return true
	case KindDiagonal:
		for _, c := range o.data {
			if math.Abs(imag(c)) > tol {
				return false
			}
		}

		return true
	case KindDense, KindProjection:
		for i := 0; i < o.dim; i++ {
			for j := i; j < o.dim; j++ {
				if cmplx.Abs(o.data[i*o.dim+j]-cmplx.Conj(o.data[j*o.dim+i])) > tol {
					return false
				}
			}
		}

		return true
	default:
		return false
	}
}

// IsUnitary reports whether O†·O equals the identity within tol.
// Complexity: O(d³) for dense operators.
func (o *Operator) IsUnitary(tol float64) bool {
	if tol <= 0 {
		tol = hilbert.DefaultTolerance
	}
	prod, err := o.Adjoint().Compose(o)
	if err != nil {
		return false
	}
	for i := 0; i < o.dim; i++ {
		for j := 0; j < o.dim; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			got, _ := prod.At(i, j)
			if cmplx.Abs(got-want) > tol {
				return false
			}
		}
	}

	return true
}

// Trace returns Σ O[i][i]. Complexity: O(d).
func (o *Operator) Trace() complex128 {
	var sum complex128
	switch o.kind {
	case KindIdentity:
		return complex(float64(o.dim), 0)
	case KindDiagonal:
		for _, c := range o.data {
			sum += c
		}
	case KindDense, KindProjection:
		for i := 0; i < o.dim; i++ {
			sum += o.data[i*o.dim+i]
		}
	}

	return sum
}

// Norm returns the Frobenius norm √Σ|O[i][j]|².
// Complexity: O(d) for Identity/Diagonal, O(d²) for Dense.
func (o *Operator) Norm() float64 {
	switch o.kind {
	case KindIdentity:
		return math.Sqrt(float64(o.dim))
	default:
		var sum float64
		for _, c := range o.data {
			re, im := real(c), imag(c)
			sum += re*re + im*im
		}

		return math.Sqrt(sum)
	}
}

// Package operator: Hermitian eigendecomposition via complex Jacobi sweeps.
//
// Algorithm outline:
//  1. Validate the operator is Hermitian within tol (ErrNotHermitian).
//  2. Work on a dense copy A; accumulate the unitary Q (starts as identity).
//  3. Repeatedly pick the off-diagonal pivot (p,q) with the largest
//     magnitude. Write A[p][q] = |A[p][q]|·e^{iα} and apply the complex
//     Jacobi rotation J (identity except J[p][p]=c, J[p][q]=s·e^{iα},
//     J[q][p]=-s·e^{-iα}, J[q][q]=c) with c,s chosen from the standard
//     stable tangent formula so that (J†AJ)[p][q] = 0.
//  4. Stop when the largest off-diagonal magnitude drops below tol;
//     ErrEigenFailed if the rotation budget runs out first.
//  5. Eigenvalues are the (real) diagonal of A, sorted ascending; the
//     matching eigenvectors are the columns of Q.
//
// Complexity: O(d²) per rotation, O(d² log(1/tol)) rotations in practice.
package operator

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/halfint/spinnet/hilbert"
)

// Spectral defaults (single source of truth).
const (
	// DefaultEigenTol is the off-diagonal convergence threshold.
	DefaultEigenTol = 1e-12

	// defaultRotationsPerEntry scales the rotation budget with the matrix
	// size: maxIter defaults to defaultRotationsPerEntry·d².
	defaultRotationsPerEntry = 100
)

// Eigen computes the eigenvalues and orthonormal eigenvectors of a
// Hermitian operator. Pass tol ≤ 0 for DefaultEigenTol and maxIter ≤ 0
// for the default budget of 100·d² rotations.
//
// Returns:
//   - eigenvalues in ascending order,
//   - eigenvectors as unit StateVectors, index-matched to the values,
//   - ErrNotHermitian if the operator violates Hermitian symmetry within
//     tol, ErrEigenFailed if Jacobi fails to converge in maxIter rotations.
func (o *Operator) Eigen(tol float64, maxIter int) ([]float64, []*hilbert.StateVector, error) {
	if o == nil {
		return nil, nil, ErrNilOperator
	}
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	n := o.dim
	if maxIter <= 0 {
		maxIter = defaultRotationsPerEntry * n * n
	}
	if !o.IsHermitian(hilbert.DefaultTolerance) {
		return nil, nil, ErrNotHermitian
	}

	// Fast paths: identity and (real) diagonal operators are already
	// diagonalized in the computational basis.
	switch o.kind {
	case KindIdentity, KindDiagonal:
		vals := make([]float64, n)
		order := make([]int, n)
		for i := 0; i < n; i++ {
			d, _ := o.At(i, i)
			vals[i] = real(d)
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })
		sorted := make([]float64, n)
		vecs := make([]*hilbert.StateVector, n)
		for k, i := range order {
			sorted[k] = vals[i]
			v, err := hilbert.BasisState(n, i)
			if err != nil {
				return nil, nil, err
			}
			vecs[k] = v
		}

		return sorted, vecs, nil
	}

	// Working copy A (dense, row-major) and unitary accumulator Q = I.
	a := make([]complex128, n*n)
	copy(a, o.data)
	q := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}

	var iter int
	for iter = 0; iter < maxIter; iter++ {
		// Pivot search: largest |A[p][q]| above the diagonal.
		maxOff, p, qq := 0.0, 0, 1
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := cmplx.Abs(a[base+j]); off > maxOff {
					maxOff, p, qq = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		apq := a[p*n+qq]
		e := apq / complex(maxOff, 0) // unit phase e^{iα}
		app := real(a[p*n+p])
		aqq := real(a[qq*n+qq])

		// Stable rotation parameters via the tangent formula.
		theta := (aqq - app) / (2 * maxOff)
		var t float64
		if theta >= 0 {
			t = 1 / (theta + math.Sqrt(theta*theta+1))
		} else {
			t = -1 / (-theta + math.Sqrt(theta*theta+1))
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c
		cc, sc := complex(c, 0), complex(s, 0)

		// Column updates for rows i ∉ {p,q}; rows follow by hermiticity.
		for i := 0; i < n; i++ {
			if i == p || i == qq {
				continue
			}
			aip, aiq := a[i*n+p], a[i*n+qq]
			a[i*n+p] = cc*aip - sc*cmplx.Conj(e)*aiq
			a[i*n+qq] = sc*e*aip + cc*aiq
			a[p*n+i] = cmplx.Conj(a[i*n+p])
			a[qq*n+i] = cmplx.Conj(a[i*n+qq])
		}

		// Pivot block.
		a[p*n+p] = complex(c*c*app-2*s*c*maxOff+s*s*aqq, 0)
		a[qq*n+qq] = complex(s*s*app+2*s*c*maxOff+c*c*aqq, 0)
		a[p*n+qq] = 0
		a[qq*n+p] = 0

		// Accumulate Q ← Q·J.
		for i := 0; i < n; i++ {
			qip, qiq := q[i*n+p], q[i*n+qq]
			q[i*n+p] = cc*qip - sc*cmplx.Conj(e)*qiq
			q[i*n+qq] = sc*e*qip + cc*qiq
		}
	}
	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	// Collect and sort ascending, reordering eigenvector columns in step.
	vals := make([]float64, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		vals[i] = real(a[i*n+i])
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })

	sorted := make([]float64, n)
	vecs := make([]*hilbert.StateVector, n)
	for k, col := range order {
		sorted[k] = vals[col]
		amps := make([]complex128, n)
		for i := 0; i < n; i++ {
			amps[i] = q[i*n+col]
		}
		v, err := hilbert.New(amps)
		if err != nil {
			return nil, nil, err
		}
		vecs[k] = v
	}

	return sorted, vecs, nil
}

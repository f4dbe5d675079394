// Package operator provides the linear-operator kernel of spinnet: dense
// complex matrices plus specialized identity, diagonal and projection
// variants with fast apply/compose/adjoint paths.
//
// 🚀 What lives here?
//
//	• Operator    — closed tagged variant over {Dense, Identity, Diagonal, Projection}
//	• FromMatrix  — factory choosing the cheapest representation, once, at construction
//	• Apply/Compose/Adjoint/TensorProduct/PartialTrace/Scale/Add — the algebra
//	• Eigen       — Hermitian eigendecomposition via complex Jacobi sweeps
//	• Spin matrices — Pauli X/Y/Z, Hadamard, ladder and Sz for arbitrary spin j
//
// ✨ Key guarantees:
//
//   - Fast paths are pure optimizations: Identity and Diagonal results are
//     numerically identical to the dense path within floating tolerance.
//   - Structural dispatch happens exactly once, in FromMatrix, by explicit
//     tolerance-bounded tests (is-identity, then is-diagonal) — never
//     repeatedly at call sites.
//   - Immutable values: operators never change after construction; every
//     operation returns a fresh operator.
//   - Dimension-checked: Apply/Compose/Add fail fast with
//     ErrDimensionMismatch.
//
// ⚙️ Usage:
//
//	h := operator.Hadamard()
//	x := operator.PauliX()
//	hx, _ := h.Compose(x)          // matrix product H·X (X applies first)
//	out, _ := hx.Apply(state)      // == h.Apply(x.Apply(state))
//
// Convention: a.Compose(b) is the matrix product A·B, so b acts first:
// a.Compose(b).Apply(v) == a.Apply(b.Apply(v)). Pinned by tests with
// non-commuting Pauli examples.
//
// Complexity: Apply is O(d) for Identity/Diagonal and O(d²) for Dense;
// Compose is O(d) / O(d²) / O(d³) along the same ladder; Eigen is
// O(d³·sweeps) with the usual Jacobi convergence behavior.
package operator

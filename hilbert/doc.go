// Package hilbert provides the state-vector kernel of spinnet: ordered
// complex amplitude containers over fixed-dimension Hilbert spaces, with
// inner products, norms, tensor products and a build-then-freeze
// construction path.
//
// 🚀 What lives here?
//
//	• StateVector — immutable complex amplitude container
//	• Shape       — THE flat-index convention (row-major, leftmost slowest)
//	• Builder     — mutable amplitude accumulator, frozen into a StateVector
//	• Factories   — basis states, uniform superpositions, tensor products
//
// ✨ Key guarantees:
//
//   - Dimension-checked: every binary operation validates operand dimensions
//     and returns ErrDimensionMismatch on violation — no silent truncation.
//   - Immutable values: a StateVector never changes after construction;
//     all algebra returns fresh vectors. Mutation happens only inside a
//     Builder, before Vector() freezes it.
//   - One flattening convention: Shape.FlatIndex/MultiIndex is the single
//     bidirectional multi-index mapping shared by tensor products and the
//     intertwiner index calculator. Never duplicate it.
//
// ⚙️ Usage:
//
//	up, _ := hilbert.BasisState(2, 0)           // |0⟩
//	down, _ := hilbert.BasisState(2, 1)         // |1⟩
//	pair := up.TensorProduct(down)              // |0⟩⊗|1⟩, dimension 4
//	amp, _ := pair.InnerProduct(pair)           // 1+0i
//
// Normalization is never automatic: factories document whether their output
// is normalized, and Normalize returns a fresh unit vector (or ErrZeroNorm).
//
// Complexity: all vector algebra is O(d) in the dimension except
// TensorProduct, which is O(d₁·d₂).
package hilbert

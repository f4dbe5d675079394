// Package intertwiner constructs SU(2)-invariant basis states at
// spin-network nodes: the subspace of a tensor product of edge spins that
// couples to total angular momentum zero.
//
// 🚀 What is an intertwiner?
//
//	At a node where edges carrying spins j₁…jₙ meet, the intertwiner space
//	is Inv(j₁⊗…⊗jₙ) — all states invariant under simultaneous SU(2)
//	rotation of every edge. Its dimension counts the independent ways the
//	spins recouple to zero; its orthonormal basis is built from nested
//	Clebsch-Gordan sums.
//
// ✨ What lives here?
//
//   - Dimension        — selection-rule dimension counting for valence 2, 3, 4
//   - ConstructBasis   — the orthonormal recoupling basis, one state per
//     surviving intermediate spin
//   - BasisToTensor    — sparse, dimension-annotated tensor views
//   - NewTensor        — direct construction for one 4-valent coupling
//
// ⚙️ Usage:
//
//	space, _ := intertwiner.ConstructBasis([]float64{0.5, 0.5, 0.5, 0.5})
//	fmt.Println(space.Dimension)                  // 2
//	fmt.Println(space.States[0].IntermediateJ)    // 0
//
// Algorithm (4-valent, the substantive case):
//  1. Intersect AllowedSpins(j₁,j₂) with AllowedSpins(j₃,j₄) to get the
//     candidate intermediate spins {Jₖ}.
//  2. Per candidate, enumerate every magnetic combination (m₁,m₂,m₃,m₄)
//     and accumulate ⟨j₁m₁;j₂m₂|Jₖm₁₂⟩·⟨j₃m₃;j₄m₄|Jₖm₃₄⟩·⟨Jₖm₁₂;Jₖm₃₄|0,0⟩
//     at the flat tensor index of (m₁,m₂,m₃,m₄).
//  3. Discard zero-norm candidates, normalize the rest, then jointly
//     orthonormalize the whole set by modified Gram-Schmidt — distinct Jₖ
//     raw vectors need not be exactly orthogonal in floating point.
//
// Index conventions (shared, never duplicated):
//   - Edges flatten row-major via hilbert.Shape: the rightmost edge varies
//     fastest, per-edge stride 2j+1 — identical to
//     hilbert.StateVector.TensorProduct.
//   - Within an edge factor, index i ↦ m = j - i (highest weight first),
//     matching the operator package's spin-matrix convention.
//
// Valence 2 and 3 reduce to single basis states (the two-spin singlet and
// the Wigner 3-j tensor) valid exactly when the matching selection rule
// holds; otherwise the space is legitimately zero-dimensional — an empty
// Space is a normal result, not an error.
//
// Complexity: O(Π(2jᵢ+1)) per candidate intermediate spin from the nested
// magnetic enumeration; orthonormalization is O(k²·d) for k candidates of
// dimension d.
package intertwiner

// Package evolve provides Hamiltonian time evolution for small quantum
// systems: Schrödinger propagators built by spectral decomposition, plus
// ready-made spin-chain Hamiltonians.
//
// 🚀 What lives here?
//
//	• Propagator — U(t) = exp(-iHt) for a Hermitian H, via eigendecomposition
//	• Evolve     — one-shot state evolution U(t)|ψ⟩
//	• IsingChain — the transverse-field Ising Hamiltonian on an open chain
//
// ⚙️ Usage:
//
//	h, _ := evolve.IsingChain(3, 1.0, 0.5)     // 3 spins, J=1, field 0.5
//	opts := evolve.DefaultOptions()
//	out, _ := evolve.Evolve(h, state, 2.5, &opts)
//
// The propagator is assembled as Σₖ e^{-iλₖt}|vₖ⟩⟨vₖ| from the Hermitian
// eigendecomposition, so it is exactly unitary up to the eigen tolerance —
// norms are preserved along the evolution, a property pinned by tests.
//
// Complexity: one O(d³)-ish Jacobi eigendecomposition per propagator plus
// O(d²) per spectral term; IsingChain builds a 2ⁿ-dimensional operator and
// is intended for small n.
package evolve

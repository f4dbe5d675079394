// Package metric provides distance and overlap measures between quantum
// states and density operators.
//
// 🚀 What lives here?
//
//	• Fidelity      — |⟨a|b⟩|² between pure states, normalization-insensitive
//	• FubiniStudy   — the geodesic angle arccos|⟨â|b̂⟩| on projective space
//	• TraceDistance — ½·Σ|λᵢ(ρ−σ)| between density operators
//
// All three are phase-invariant: multiplying a state by e^{iθ} changes
// nothing, as a physical distance must. Fidelity and FubiniStudy normalize
// internally, so unnormalized (but nonzero) inputs are accepted.
//
// ⚙️ Usage:
//
//	f, _ := metric.Fidelity(psi, phi)        // 1 for the same ray, 0 for orthogonal
//	d, _ := metric.TraceDistance(rho, sigma) // 0 identical, 1 perfectly distinguishable
//
// Complexity: Fidelity and FubiniStudy are O(d); TraceDistance runs a
// Hermitian eigensolve on ρ−σ.
package metric

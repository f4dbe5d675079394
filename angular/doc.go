// Package angular computes SU(2) angular-momentum coupling coefficients:
// Clebsch-Gordan coefficients, Wigner 3-j symbols, and the selection-rule
// helpers (triangle inequality, allowed intermediate spins) the
// intertwiner layer is built on.
//
// 🚀 What is a Clebsch-Gordan coefficient?
//
//	⟨j₁ m₁; j₂ m₂ | j₃ m₃⟩ expresses a coupled two-angular-momentum basis
//	state in terms of product-basis states. They drive:
//	  • Recoupling of spins at spin-network nodes (intertwiners)
//	  • Addition of angular momenta in atomic & nuclear physics
//	  • Construction of total-spin eigenstates of multi-qubit systems
//
// ✨ Key properties:
//
//   - Pure functions, no side effects, no caching across calls.
//   - Selection-rule failures return 0, never an error: |j₁-j₂| > j₃,
//     j₃ > j₁+j₂, m₃ ≠ m₁+m₂, parity violations and unphysical inputs
//     (non-half-integer j, |m| > j, j-m non-integer) all yield 0.
//   - Real-valued in the Condon-Shortley phase convention.
//
// ⚙️ Usage:
//
//	import "github.com/halfint/spinnet/angular"
//
//	c := angular.ClebschGordan(0.5, 0.5, 0.5, -0.5, 1, 0)  // 1/√2
//	spins, _ := angular.AllowedSpins(0.5, 0.5)              // [0, 1]
//	ok := angular.Triangle(1, 1, 2)                         // true
//
// Algorithm: the closed-form Racah factorial formula with a precomputed
// factorial table, evaluated over integer "twice-spin" arithmetic so that
// half-integers never touch floating-point modularity. Numerically stable
// for the spin ranges of 4-valent nodes up to a few units of spin.
//
// Complexity: O(j₁+j₂-j₃) per coefficient from the finite Racah sum.
package angular

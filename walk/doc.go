// Package walk implements coined discrete-time quantum walks on a cycle
// lattice.
//
// What:
//
//   - Lattice wraps a cycle of n sites with precomputed neighbor lookup.
//   - Walk holds the one-step unitary U = S·(C⊗I) on the 2n-dimensional
//     coin⊗position space and applies it to states.
//   - Distribution folds a walker state down to position probabilities.
//
// Why:
//
//   - Quantum walks spread ballistically where classical walks diffuse —
//     the standard testbed for quantum speedups on graphs.
//   - The step operator exercises the operator kernel end to end: Kronecker
//     products, composition, permutation matrices, unitarity checks.
//
// Convention:
//
//   - The joint space is coin⊗position, flat index c·n + x (coin slowest),
//     i.e. hilbert.Shape{2, n}.
//   - Coin 0 shifts the walker to the next site, coin 1 to the previous
//     site, both modulo n.
//
// Errors:
//
//   - ErrTooFewSites: a cycle needs at least 3 sites.
//   - ErrBadCoin: the coin operator is not a 2×2 unitary.
//   - ErrSiteRange: a site index is outside [0, n).
//
// Complexity: building the step operator is O(n²); one Step is a dense
// apply, O(n²).
package walk

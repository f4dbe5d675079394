// Package spinnet is your in-memory toolkit for finite-dimensional quantum
// mechanics — from state vectors and operators to angular-momentum recoupling
// and spin-network intertwiners.
//
// 🚀 What is spinnet?
//
//	A modern, pure-Go library that brings together:
//		• Hilbert primitives: complex state vectors, inner products, tensor products
//		• Operators: dense, identity, diagonal and projection kernels with fast paths
//		• Angular momentum: Clebsch-Gordan coefficients, Wigner 3-j symbols
//		• Intertwiners: SU(2)-invariant bases at 2-, 3- and 4-valent nodes
//		• Dynamics: Hamiltonian time evolution, transverse-field Ising chains
//		• Quantum walks: coined discrete-time walks on cycle lattices
//		• Geometry: Provost-Vallee distance, fidelity, trace distance
//
// ✨ Why choose spinnet?
//
//   - Research-friendly – correct, composable primitives with explicit conventions
//   - Rock-solid guarantees – immutable values, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Small systems first – qubits, qudits, spin chains, spin-network nodes
//
// Under the hood, everything is organized under seven subpackages:
//
//	hilbert/     — state vectors, amplitude builders & the flat-index convention
//	operator/    — operator kernel with identity/diagonal fast paths and Hermitian eigen
//	angular/     — Clebsch-Gordan coefficients, selection rules, allowed spins
//	intertwiner/ — intertwiner dimensions, orthonormal bases & sparse tensors
//	evolve/      — Schrödinger propagators and spin-chain Hamiltonians
//	walk/        — coined quantum walks on position lattices
//	metric/      — geometric distance measures on state space
//
// Quick ASCII example:
//
//	    j1 ╲   ╱ j2
//	        ●          a 4-valent node coupling four spins to total J=0
//	    j4 ╱   ╲ j3
//
// Dive into the per-package doc.go files for algorithm walkthroughs and
// complexity notes.
//
//	go get github.com/halfint/spinnet
package spinnet

// Package qlath is a small state-vector quantum computer simulator: complex
// numbers, dense square matrices, unitary gates and an n-qubit register you
// initialize, evolve and measure.
//
// 🚀 What is qlath?
//
//	A compact, deterministic-when-seeded library that brings together:
//		• Complex arithmetic: value-type complex numbers with helpers
//		• Matrices: dense 2ᵏ×2ᵏ operators, products, Kronecker, embedding
//		• Gates: validated unitaries plus a library (H, X, Y, Z, P, S, T, CNOT, SWAP)
//		• Registers: initialize → apply… → collapse, with injectable randomness
//		• Circuits: reusable programs, multi-shot sampling, chi-square checks
//		• Algorithms: Deutsch, GHZ preparation, a quantum coin
//
// ✨ Why choose qlath?
//
//   - Small surface – a handful of types, explicit error returns
//   - Reproducible – every measurement draws from a RandomSource you choose
//   - Checked – sizes, unitarity and lifecycle misuse fail with sentinel errors
//
// Under the hood, everything is organized under these subpackages:
//
//	cnum/       - Complex value type
//	matrix/     - dense complex square matrices and operations
//	gate/       - Gate: a unitary bound to a qubit count
//	gates/      - standard gate factories and composition helpers
//	computer/   - QuantumComputer: the register and its measurement
//	circuit/    - Circuit programs, Counts and goodness-of-fit
//	algorithms/ - Deutsch's algorithm, GHZ, coin flip
//	cmd/qdemo/  - command-line demonstration
//
// Qubit 0 is the most significant bit of a basis index throughout.
package qlath

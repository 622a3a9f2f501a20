// Package gates is the standard gate library: factories that build common
// unitaries as whole-register gate.Gate values.
//
// ✨ Pattern: compose, then wrap.
//
//	Every factory builds the single-qubit matrix once, composes the register
//	operator with Kronecker products (or a basis permutation), and wraps the
//	result with gate.New. Nothing is verified at use time; unitarity is
//	guaranteed by construction and covered by tests.
//
// Qubit ordering:
//
//	Qubit 0 is the most significant bit of a basis index, i.e. the left-most
//	Kronecker factor. For a 2-qubit register |q0 q1⟩ the index is 2·q0 + q1.
//
// Catalogue:
//   - Identity(n), Hadamard(n), PauliX(n), PauliY(n), PauliZ(n),
//     Phase(θ, n), S(n), T(n)   - n-fold tensor powers of the 1-qubit gate
//   - On(g, target, n)           - I ⊗ g ⊗ I: lift a k-qubit gate into n qubits
//   - CNOT(n, control, target), Swap(n, a, b) - permutation gates
//
// Sizes are bounded by MaxQubits (a 2ⁿ×2ⁿ dense matrix grows as 4ⁿ).
package gates

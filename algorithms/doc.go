// Package algorithms holds small textbook quantum programs built on the
// computer, gates and circuit packages.
//
// It provides:
//
//   - Oracles
//     – Oracle / OracleFunc: a classical f: {0,1} → {0,1}
//     – ConstantOracle(v), Identity, Not
//
//   - Deutsch's problem
//     – DeutschGate(f): the 2-qubit oracle U_f |x,y⟩ = |x, y⊕f(x)⟩
//     – Deutsch(qc, f): decides constant vs balanced with one query
//
//   - State preparation
//     – GHZ(n, φ): (|0…0⟩ + e^{iφ}|1…1⟩)/√2 as a circuit.Circuit
//
//   - CoinFlip: one Hadamard, one measurement
//
// Every program returns wrapped sentinel errors from the packages it drives;
// the only error of its own is ErrOracleOutput.
package algorithms

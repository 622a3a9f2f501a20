// Package matrix provides square complex-valued matrices and the handful of
// linear-algebra operations a state-vector simulator needs.
//
// 🚀 What is matrix?
//
//	A row-major Matrix of cnum.Complex entries with a fixed dimension d ≥ 1.
//	It offers:
//	  • construction: New (flat element list), Identity, Zeros, FromReal/FromRows
//	    (checked literal builders), Permutation (basis permutations)
//	  • algebra: Mul, MulVec, Kronecker, KroneckerPower, ConjugateTranspose, Scale
//	  • block embedding: Embed overwrites a sub-matrix in place
//	  • numeric checks: AllClose, IsUnitary (epsilon policy via WithEpsilon)
//	  • gonum interop: CDense / FromCDense
//
// ✨ Guarantees:
//   - Fail fast: every operation validates dimensions first and returns a
//     sentinel error (ErrDimensionMismatch, ErrOutOfBounds, …) matched via errors.Is.
//   - No resizing: the dimension is fixed at construction; Embed is the only
//     mutating structural operation besides Set.
//   - Determinism: fixed loop orders, no hidden state.
//
// ⚙️ Usage:
//
//	ex := matrix.MustFromReal([][]float64{{0, 1}, {1, 0}})
//	m, _ := matrix.Identity(4)
//	_ = m.Embed(ex, 0, 0) // swap |00⟩ and |01⟩
//
//	h := matrix.MustFromReal([][]float64{{1, 1}, {1, -1}}).Scale(cnum.Real(1 / math.Sqrt2))
//	hh, _ := h.Kronecker(h) // 4×4 two-qubit Hadamard
//
// Complexity:
//
//	Mul O(d³), MulVec O(d²), Kronecker O(d_a²·d_b²), Embed O(d_sub²).
package matrix

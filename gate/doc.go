// Package gate defines Gate, a named unitary operator on a whole n-qubit register.
//
// A Gate wraps a 2ⁿ×2ⁿ matrix.Matrix. It is immutable after New: the matrix is
// cloned on the way in and every accessor returns a copy. Unitarity is a trust
// invariant; the factories in package gates guarantee it and IsUnitary lets
// callers verify custom gates.
//
// Gates always act on the entire register. Acting on a subset of qubits is
// expressed by building a larger matrix (see gates.On), never by addressing.
package gate

// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"

	"github.com/katalvlaran/qlath/gate"
	"github.com/katalvlaran/qlath/matrix"
)

// On lifts a k-qubit gate g into an n-qubit register, acting on qubits
// target..target+k-1 and leaving the others alone:
//
//	I_{2^target} ⊗ g ⊗ I_{2^(n-target-k)}
//
// The result is still a whole-register gate.
// Stage 1 (Validate): register size, 0 ≤ target, target+k ≤ n.
// Stage 2 (Execute): two Kronecker products with identities.
// Complexity: O(4ⁿ).
func On(g *gate.Gate, target, n int) (*gate.Gate, error) {
	// Stage 1: Validate
	if g == nil {
		return nil, fmt.Errorf("gates.On: %w", matrix.ErrNilMatrix)
	}
	if err := validateQubits(n); err != nil {
		return nil, fmt.Errorf("gates.On(%s, %d, %d): %w", g.Name(), target, n, err)
	}
	k := g.NumQubits()
	if target < 0 || target+k > n {
		return nil, fmt.Errorf("gates.On(%s, %d, %d): %w", g.Name(), target, n, ErrQubitIndex)
	}

	// Stage 2: Execute
	before, _ := matrix.Identity(1 << uint(target))    // 1×1 when target == 0
	after, _ := matrix.Identity(1 << uint(n-target-k)) // 1×1 when g ends the register
	m, err := before.Kronecker(g.Matrix())
	if err != nil {
		return nil, fmt.Errorf("gates.On: %w", err)
	}
	if m, err = m.Kronecker(after); err != nil {
		return nil, fmt.Errorf("gates.On: %w", err)
	}

	return gate.New(n, m, gate.WithName(fmt.Sprintf("%s@%d", g.Name(), target)))
}

// bitMask returns the basis-index mask of qubit q in an n-qubit register
// (qubit 0 is the most significant bit).
func bitMask(q, n int) int {
	return 1 << uint(n-1-q)
}

// validatePair checks two distinct in-range qubit indices.
func validatePair(a, b, n int) error {
	if err := validateQubits(n); err != nil {
		return err
	}
	if a < 0 || a >= n || b < 0 || b >= n || a == b {
		return ErrQubitIndex
	}

	return nil
}

// permutationGate wraps the basis permutation j ↦ f(j) as an n-qubit gate.
func permutationGate(name string, n int, f func(int) int) (*gate.Gate, error) {
	dim := 1 << uint(n)
	perm := make([]int, dim)
	for j := range perm {
		perm[j] = f(j)
	}
	m, err := matrix.Permutation(perm)
	if err != nil {
		return nil, fmt.Errorf("gates.%s: %w", name, err)
	}

	return gate.New(n, m, gate.WithName(name))
}

// CNOT returns the controlled-NOT on an n-qubit register: the target qubit is
// flipped on every basis state whose control qubit is 1.
// Complexity: O(4ⁿ) memory for the dense matrix.
func CNOT(n, control, target int) (*gate.Gate, error) {
	if err := validatePair(control, target, n); err != nil {
		return nil, fmt.Errorf("gates.%s(%d, %d, %d): %w", nameCNOT, n, control, target, err)
	}
	cm, tm := bitMask(control, n), bitMask(target, n)

	return permutationGate(nameCNOT, n, func(j int) int {
		if j&cm != 0 {
			return j ^ tm // flip target
		}
		return j
	})
}

// Swap returns the gate exchanging qubits a and b.
func Swap(n, a, b int) (*gate.Gate, error) {
	if err := validatePair(a, b, n); err != nil {
		return nil, fmt.Errorf("gates.%s(%d, %d, %d): %w", nameSwap, n, a, b, err)
	}
	am, bm := bitMask(a, n), bitMask(b, n)

	return permutationGate(nameSwap, n, func(j int) int {
		if (j&am != 0) != (j&bm != 0) {
			return j ^ am ^ bm // bits differ: swap them
		}
		return j
	})
}

// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/qlath/circuit"
	"github.com/katalvlaran/qlath/gate"
	"github.com/katalvlaran/qlath/gates"
)

// GHZ prepares (|0…0⟩ + e^{iφ}|1…1⟩)/√2 on n qubits:
// H on qubit 0, Phase(φ) on qubit 0, then CNOT(0, i) for i = 1..n-1.
// Measuring it yields only 0 or 2ⁿ-1, each with probability ½.
func GHZ(n int, phase float64) (*circuit.Circuit, error) {
	h1, err := gates.Hadamard(1)
	if err != nil {
		return nil, err
	}
	p1, err := gates.Phase(phase, 1)
	if err != nil {
		return nil, fmt.Errorf("GHZ: %w", err)
	}

	steps := make([]*gate.Gate, 0, n+1)
	for _, g := range []*gate.Gate{h1, p1} {
		lifted, err := gates.On(g, 0, n)
		if err != nil {
			return nil, fmt.Errorf("GHZ(%d): %w", n, err)
		}
		steps = append(steps, lifted)
	}
	for i := 1; i < n; i++ {
		cx, err := gates.CNOT(n, 0, i)
		if err != nil {
			return nil, fmt.Errorf("GHZ(%d): %w", n, err)
		}
		steps = append(steps, cx)
	}

	c, err := circuit.New(n, 0)
	if err != nil {
		return nil, err
	}
	if err = c.Append(steps...); err != nil {
		return nil, err
	}

	return c, nil
}

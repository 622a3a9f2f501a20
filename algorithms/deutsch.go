// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/qlath/circuit"
	"github.com/katalvlaran/qlath/computer"
	"github.com/katalvlaran/qlath/gate"
	"github.com/katalvlaran/qlath/gates"
	"github.com/katalvlaran/qlath/matrix"
)

// Verdict classifies a one-bit function.
type Verdict string

const (
	// Constant means f(0) == f(1).
	Constant Verdict = "constant"
	// Balanced means f(0) != f(1).
	Balanced Verdict = "balanced"
)

// deutschInput is |01⟩: qubit 0 in |0⟩, qubit 1 in |1⟩.
const deutschInput = 1

var exchange = matrix.MustFromReal([][]float64{{0, 1}, {1, 0}})

// DeutschGate builds U_f |x,y⟩ = |x, y⊕f(x)⟩ over two qubits (x is qubit 0).
// It starts from I(4) and swaps the y-pair of every x with f(x) = 1.
// f is evaluated exactly once at 0 and once at 1.
func DeutschGate(f Oracle) (*gate.Gate, error) {
	m, err := matrix.Identity(4)
	if err != nil {
		return nil, err
	}
	var (
		x, y int
	)
	for x = 0; x < 2; x++ {
		if y, err = query(f, x); err != nil {
			return nil, fmt.Errorf("DeutschGate: f(%d): %w", x, err)
		}
		if y == 1 {
			if err = m.Embed(exchange, 2*x, 2*x); err != nil {
				return nil, err
			}
		}
	}

	return gate.New(2, m, gate.WithName("U_f"))
}

// DeutschCircuit is |01⟩ → H⊗H → U_f → H⊗H, ready to measure.
func DeutschCircuit(f Oracle) (*circuit.Circuit, error) {
	uf, err := DeutschGate(f)
	if err != nil {
		return nil, err
	}
	h, err := gates.Hadamard(2)
	if err != nil {
		return nil, err
	}
	c, err := circuit.New(2, deutschInput)
	if err != nil {
		return nil, err
	}
	if err = c.Append(h, uf, h); err != nil {
		return nil, err
	}

	return c, nil
}

// Deutsch decides whether f is constant or balanced with a single oracle
// query, running on the 2-qubit register qc (Uninitialized or after Reset).
// The measurement is deterministic: |01⟩ means constant, |11⟩ balanced.
func Deutsch(qc *computer.QuantumComputer, f Oracle) (Verdict, error) {
	c, err := DeutschCircuit(f)
	if err != nil {
		return "", err
	}
	v, err := c.Run(qc)
	if err != nil {
		return "", fmt.Errorf("Deutsch: %w", err)
	}
	if v == deutschInput {
		return Constant, nil
	}

	return Balanced, nil
}

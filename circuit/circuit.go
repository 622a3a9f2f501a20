// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qlath/computer"
	"github.com/katalvlaran/qlath/gate"
)

// ErrShots indicates a non-positive shot count.
var ErrShots = errors.New("circuit: shots must be > 0")

// Circuit is an ordered program of whole-register gates applied to a fixed
// initial basis state.
type Circuit struct {
	numQubits int
	initial   int
	gates     []*gate.Gate
}

// New returns an empty program on numQubits qubits starting from |initial⟩.
// Complexity: O(1).
func New(numQubits, initial int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("circuit.New(%d, %d): %w", numQubits, initial, computer.ErrInvalidQubits)
	}
	if numQubits > computer.MaxQubits {
		return nil, fmt.Errorf("circuit.New(%d, %d): %w", numQubits, initial, computer.ErrTooManyQubits)
	}
	if initial < 0 || initial >= 1<<uint(numQubits) {
		return nil, fmt.Errorf("circuit.New(%d, %d): %w", numQubits, initial, computer.ErrInvalidBasisState)
	}

	return &Circuit{numQubits: numQubits, initial: initial}, nil
}

// NumQubits returns the register size.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Initial returns the basis state the program starts from.
func (c *Circuit) Initial() int { return c.initial }

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns the program in application order.
func (c *Circuit) Gates() []*gate.Gate {
	out := make([]*gate.Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Append adds gates in order. Either all are appended or, when one has the
// wrong size, none are.
func (c *Circuit) Append(gs ...*gate.Gate) error {
	for i, g := range gs {
		if g == nil || g.NumQubits() != c.numQubits {
			return fmt.Errorf("circuit: Append: gate #%d: %w", i, computer.ErrGateSizeMismatch)
		}
	}
	c.gates = append(c.gates, gs...)

	return nil
}

// Execute initializes qc to the initial state and applies every gate, leaving
// qc Initialized and unmeasured.
func (c *Circuit) Execute(qc *computer.QuantumComputer) error {
	if qc == nil {
		return fmt.Errorf("circuit: Execute: %w", computer.ErrNilComputer)
	}
	if qc.NumQubits() != c.numQubits {
		return fmt.Errorf("circuit: register has %d qubits, program needs %d: %w",
			qc.NumQubits(), c.numQubits, computer.ErrGateSizeMismatch)
	}
	if err := qc.Initialize(c.initial); err != nil {
		return fmt.Errorf("circuit: %w", err)
	}
	for i, g := range c.gates {
		if err := qc.Apply(g); err != nil {
			return fmt.Errorf("circuit: step %d (%s): %w", i, g, err)
		}
	}

	return nil
}

// Run executes the program on qc and collapses it.
func (c *Circuit) Run(qc *computer.QuantumComputer) (int, error) {
	if err := c.Execute(qc); err != nil {
		return 0, err
	}
	v, err := qc.Collapse()
	if err != nil {
		return 0, fmt.Errorf("circuit: %w", err)
	}

	return v, nil
}

// Probabilities evolves the program without measuring and returns |aᵢ|² for
// every basis index.
func (c *Circuit) Probabilities() ([]float64, error) {
	qc, err := computer.New(c.numQubits)
	if err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}
	if err = c.Execute(qc); err != nil {
		return nil, err
	}

	return qc.Probabilities(), nil
}

// Sample runs the program shots times on one register, resetting it between
// shots, and tallies the outcomes. opts configure the register; pass
// computer.WithRandomSource for reproducible counts.
// Complexity: O(shots · Len · 4ⁿ).
func (c *Circuit) Sample(shots int, opts ...computer.Option) (Counts, error) {
	if shots < 1 {
		return nil, fmt.Errorf("circuit: Sample(%d): %w", shots, ErrShots)
	}
	qc, err := computer.New(c.numQubits, opts...)
	if err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}

	counts := make(Counts)
	var (
		i int
		v int
	)
	for i = 0; i < shots; i++ {
		qc.Reset()
		if v, err = c.Run(qc); err != nil {
			return nil, fmt.Errorf("shot %d: %w", i, err)
		}
		counts[v]++
	}

	return counts, nil
}

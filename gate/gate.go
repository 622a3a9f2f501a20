// SPDX-License-Identifier: MIT

package gate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/matrix"
)

var (
	// ErrGateSizeMismatch indicates that a matrix dimension is not 2^numQubits,
	// or that two gates (or a gate and a register) disagree on the qubit count.
	ErrGateSizeMismatch = errors.New("gate: size mismatch")

	// ErrInvalidQubits indicates a qubit count < 1.
	ErrInvalidQubits = errors.New("gate: qubit count must be > 0")
)

// unnamed is the label used when no WithName option is given.
const unnamed = "U"

// Option configures a Gate at construction.
type Option func(*Gate)

// WithName labels the gate (e.g. "H", "CNOT"); the label shows up in logs and String.
func WithName(name string) Option {
	return func(g *Gate) { g.name = name }
}

// Gate is an immutable unitary operator on numQubits qubits.
type Gate struct {
	numQubits int
	m         *matrix.Matrix // dimension 2^numQubits, owned
	name      string
}

// New wraps m as a gate on numQubits qubits.
// Stage 1 (Validate): numQubits ≥ 1, m non-nil, m.Dimension() == 2^numQubits.
// Stage 2 (Finalize): clone m so later mutation by the caller cannot leak in.
// Complexity: O(4ⁿ) for the clone.
func New(numQubits int, m *matrix.Matrix, opts ...Option) (*Gate, error) {
	// Stage 1: Validate
	if numQubits < 1 {
		return nil, fmt.Errorf("gate.New(%d): %w", numQubits, ErrInvalidQubits)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("gate.New: %w", err)
	}
	if want := dimensionOf(numQubits); m.Dimension() != want {
		return nil, fmt.Errorf("gate.New: matrix dimension %d, want %d for %d qubits: %w",
			m.Dimension(), want, numQubits, ErrGateSizeMismatch)
	}

	// Stage 2: Finalize
	g := &Gate{numQubits: numQubits, m: m.Clone(), name: unnamed}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g, nil
}

// dimensionOf returns 2^n. Overflow is not a concern: matrices of that size
// could not be allocated in the first place.
func dimensionOf(n int) int {
	return 1 << uint(n)
}

// NumQubits returns the number of qubits the gate acts on.
func (g *Gate) NumQubits() int { return g.numQubits }

// Dimension returns 2^NumQubits.
func (g *Gate) Dimension() int { return g.m.Dimension() }

// Name returns the gate label.
func (g *Gate) Name() string { return g.name }

// Matrix returns a copy of the underlying operator.
func (g *Gate) Matrix() *matrix.Matrix { return g.m.Clone() }

// Apply returns the state obtained by multiplying the gate matrix with state.
// The input slice is not modified.
// Complexity: O(4ⁿ).
func (g *Gate) Apply(state []cnum.Complex) ([]cnum.Complex, error) {
	out, err := g.m.MulVec(state)
	if err != nil {
		return nil, fmt.Errorf("gate %s: %w", g.name, err)
	}

	return out, nil
}

// Then returns the gate that applies g first and next second, i.e. next·g.
// Both must act on the same number of qubits.
// Complexity: O(8ⁿ).
func (g *Gate) Then(next *Gate) (*Gate, error) {
	if next == nil || next.numQubits != g.numQubits {
		return nil, fmt.Errorf("gate %s: Then: %w", g.name, ErrGateSizeMismatch)
	}
	prod, err := next.m.Mul(g.m)
	if err != nil {
		return nil, fmt.Errorf("gate %s: Then: %w", g.name, err)
	}

	return &Gate{numQubits: g.numQubits, m: prod, name: next.name + "·" + g.name}, nil
}

// Tensor returns g ⊗ other acting on g.NumQubits()+other.NumQubits() qubits,
// with g on the leading (most significant) qubits.
// Complexity: O(4^{n+k}).
func (g *Gate) Tensor(other *Gate) (*Gate, error) {
	if other == nil {
		return nil, fmt.Errorf("gate %s: Tensor: %w", g.name, matrix.ErrNilMatrix)
	}
	k, err := g.m.Kronecker(other.m)
	if err != nil {
		return nil, fmt.Errorf("gate %s: Tensor: %w", g.name, err)
	}

	return &Gate{numQubits: g.numQubits + other.numQubits, m: k, name: g.name + "⊗" + other.name}, nil
}

// Dagger returns the inverse gate g† (the conjugate transpose).
// Complexity: O(4ⁿ).
func (g *Gate) Dagger() *Gate {
	d, _ := g.m.ConjugateTranspose() // safe: g.m is never nil
	return &Gate{numQubits: g.numQubits, m: d, name: g.name + "†"}
}

// IsUnitary reports whether the gate matrix is unitary within the tolerance
// configured by opts (matrix.DefaultEpsilon by default).
func (g *Gate) IsUnitary(opts ...matrix.Option) bool {
	ok, _ := matrix.IsUnitary(g.m, opts...) // safe: g.m is never nil
	return ok
}

// String returns "name[n]", e.g. "H[2]".
func (g *Gate) String() string {
	return fmt.Sprintf("%s[%d]", g.name, g.numQubits)
}

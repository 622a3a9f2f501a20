// SPDX-License-Identifier: MIT

package gates

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/gate"
	"github.com/katalvlaran/qlath/matrix"
)

// MaxQubits bounds factory sizes: 2¹⁰×2¹⁰ complex entries is 16 MiB.
const MaxQubits = 10

var (
	// ErrTooManyQubits indicates a register larger than MaxQubits.
	ErrTooManyQubits = errors.New("gates: too many qubits")

	// ErrQubitIndex indicates a qubit index outside the register, or a gate
	// that does not fit at the requested position.
	ErrQubitIndex = errors.New("gates: qubit index out of range")

	// ErrInvalidAngle indicates a NaN or infinite rotation angle.
	ErrInvalidAngle = errors.New("gates: angle must be finite")
)

// Gate labels.
const (
	nameI     = "I"
	nameH     = "H"
	nameX     = "X"
	nameY     = "Y"
	nameZ     = "Z"
	nameS     = "S"
	nameT     = "T"
	namePhase = "P"
	nameCNOT  = "CNOT"
	nameSwap  = "SWAP"
)

// invSqrt2 is 1/√2, the Hadamard normalization.
const invSqrt2 = 1 / math.Sqrt2

// Single-qubit operators. They are package-level literals, never handed out
// directly: gate.New clones its input.
var (
	h1 = matrix.MustFromReal([][]float64{{1, 1}, {1, -1}}).Scale(cnum.Real(invSqrt2))
	x1 = matrix.MustFromReal([][]float64{{0, 1}, {1, 0}})
	z1 = matrix.MustFromReal([][]float64{{1, 0}, {0, -1}})
	y1 = mustRows([][]cnum.Complex{{cnum.Zero, cnum.MI}, {cnum.I, cnum.Zero}})
)

func mustRows(rows [][]cnum.Complex) *matrix.Matrix {
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// validateQubits enforces 1 ≤ n ≤ MaxQubits.
func validateQubits(n int) error {
	if n < 1 {
		return gate.ErrInvalidQubits
	}
	if n > MaxQubits {
		return ErrTooManyQubits
	}

	return nil
}

// tensorPower wraps single⊗…⊗single (n factors) as an n-qubit gate.
// Complexity: O(4ⁿ).
func tensorPower(name string, single *matrix.Matrix, n int) (*gate.Gate, error) {
	if err := validateQubits(n); err != nil {
		return nil, fmt.Errorf("gates.%s(%d): %w", name, n, err)
	}
	m, err := matrix.KroneckerPower(single, n)
	if err != nil {
		return nil, fmt.Errorf("gates.%s(%d): %w", name, n, err)
	}

	return gate.New(n, m, gate.WithName(name))
}

// Identity returns Gate(n, Identity(2ⁿ)).
func Identity(n int) (*gate.Gate, error) {
	if err := validateQubits(n); err != nil {
		return nil, fmt.Errorf("gates.%s(%d): %w", nameI, n, err)
	}
	m, err := matrix.Identity(1 << uint(n))
	if err != nil {
		return nil, fmt.Errorf("gates.%s(%d): %w", nameI, n, err)
	}

	return gate.New(n, m, gate.WithName(nameI))
}

// Hadamard returns H⊗H⊗…⊗H (n factors) with H = 1/√2 [[1, 1], [1, -1]].
// Applied to |0…0⟩ it produces the uniform superposition over all 2ⁿ states.
func Hadamard(n int) (*gate.Gate, error) {
	return tensorPower(nameH, h1, n)
}

// PauliX returns X⊗…⊗X, the bit flip on every qubit.
func PauliX(n int) (*gate.Gate, error) {
	return tensorPower(nameX, x1, n)
}

// PauliY returns Y⊗…⊗Y with Y = [[0, -i], [i, 0]].
func PauliY(n int) (*gate.Gate, error) {
	return tensorPower(nameY, y1, n)
}

// PauliZ returns Z⊗…⊗Z, the phase flip on every qubit.
func PauliZ(n int) (*gate.Gate, error) {
	return tensorPower(nameZ, z1, n)
}

// Phase returns P(θ)⊗…⊗P(θ) with P(θ) = [[1, 0], [0, e^{iθ}]].
func Phase(theta float64, n int) (*gate.Gate, error) {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, fmt.Errorf("gates.%s(%g): %w", namePhase, theta, ErrInvalidAngle)
	}

	return tensorPower(namePhase, phaseMatrix(theta), n)
}

// S returns P(π/2) on every qubit.
func S(n int) (*gate.Gate, error) {
	return tensorPower(nameS, phaseMatrix(math.Pi/2), n)
}

// T returns P(π/4) on every qubit.
func T(n int) (*gate.Gate, error) {
	return tensorPower(nameT, phaseMatrix(math.Pi/4), n)
}

// phaseMatrix builds [[1, 0], [0, e^{iθ}]].
func phaseMatrix(theta float64) *matrix.Matrix {
	return mustRows([][]cnum.Complex{
		{cnum.One, cnum.Zero},
		{cnum.Zero, cnum.Polar(1, theta)},
	})
}

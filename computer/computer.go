// SPDX-License-Identifier: MIT

package computer

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/gate"
)

// QuantumComputer is an n-qubit register. See the package documentation for
// its lifecycle. The zero value is not usable; call New.
type QuantumComputer struct {
	numQubits  int
	amplitudes []cnum.Complex // length 2^numQubits
	state      State
	measured   int // valid only when state == Collapsed

	src RandomSource
	log zerolog.Logger
	eps float64
}

// New returns an Uninitialized register of numQubits qubits.
// Stage 1 (Validate): 1 ≤ numQubits ≤ MaxQubits.
// Stage 2 (Prepare): resolve options; default to a DefaultSeed source.
// Complexity: O(2ⁿ) memory.
func New(numQubits int, opts ...Option) (*QuantumComputer, error) {
	// Stage 1: Validate
	if numQubits < 1 {
		return nil, fmt.Errorf("computer.New(%d): %w", numQubits, ErrInvalidQubits)
	}
	if numQubits > MaxQubits {
		return nil, fmt.Errorf("computer.New(%d): max %d: %w", numQubits, MaxQubits, ErrTooManyQubits)
	}

	// Stage 2: Prepare
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.src == nil {
		o.src = NewSeededSource(0)
	}

	return &QuantumComputer{
		numQubits:  numQubits,
		amplitudes: make([]cnum.Complex, 1<<uint(numQubits)),
		state:      Uninitialized,
		src:        o.src,
		log:        o.logger.With().Str("component", "computer").Int("qubits", numQubits).Logger(),
		eps:        o.eps,
	}, nil
}

// MaxQubits bounds the register: 2²⁰ amplitudes is 16 MiB of state.
const MaxQubits = 20

// NumQubits returns the register size.
func (qc *QuantumComputer) NumQubits() int { return qc.numQubits }

// Dimension returns 2^NumQubits, the number of basis states.
func (qc *QuantumComputer) Dimension() int { return len(qc.amplitudes) }

// State returns the lifecycle state.
func (qc *QuantumComputer) State() State { return qc.state }

// Amplitudes returns a copy of the amplitude vector.
func (qc *QuantumComputer) Amplitudes() []cnum.Complex {
	out := make([]cnum.Complex, len(qc.amplitudes))
	copy(out, qc.amplitudes)

	return out
}

// Probabilities returns |aᵢ|² for every basis index.
func (qc *QuantumComputer) Probabilities() []float64 {
	return probabilities(qc.amplitudes)
}

// Norm returns Σ|aᵢ|² (1 within tolerance once initialized, 0 before).
func (qc *QuantumComputer) Norm() float64 {
	return totalProbability(qc.amplitudes)
}

// Initialize prepares the basis state |value⟩.
// Valid from Uninitialized and Initialized; from Collapsed it fails with
// ErrInvalidState (call Reset first).
// Complexity: O(2ⁿ).
func (qc *QuantumComputer) Initialize(value int) error {
	if qc.state == Collapsed {
		return fmt.Errorf("Initialize(%d) in state %s: %w", value, qc.state, ErrInvalidState)
	}
	if value < 0 || value >= len(qc.amplitudes) {
		return fmt.Errorf("Initialize(%d) on %d qubits: %w", value, qc.numQubits, ErrInvalidBasisState)
	}

	setBasis(qc.amplitudes, value)
	qc.state = Initialized
	qc.log.Debug().Int("value", value).Msg("initialized")

	return nil
}

// Apply replaces the amplitudes with g·amplitudes.
// Stage 1 (Validate): Initialized state, matching qubit count.
// Stage 2 (Execute): matrix-vector product into a fresh vector.
// Stage 3 (Finalize): check Σ|aᵢ|² ≈ 1; commit only on success.
// Complexity: O(4ⁿ).
func (qc *QuantumComputer) Apply(g *gate.Gate) error {
	// Stage 1: Validate
	if qc.state != Initialized {
		return fmt.Errorf("Apply in state %s: %w", qc.state, ErrInvalidState)
	}
	if g == nil || g.NumQubits() != qc.numQubits {
		have := 0
		if g != nil {
			have = g.NumQubits()
		}
		return fmt.Errorf("Apply: gate on %d qubits, register has %d: %w", have, qc.numQubits, ErrGateSizeMismatch)
	}

	// Stage 2: Execute
	next, err := g.Apply(qc.amplitudes)
	if err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	// Stage 3: Finalize
	if norm := totalProbability(next); !scalar.EqualWithinAbs(norm, 1, qc.eps) {
		return fmt.Errorf("Apply %s: total probability %g: %w", g, norm, ErrNotNormalized)
	}
	qc.amplitudes = next
	qc.log.Debug().Str("gate", g.String()).Msg("applied")

	return nil
}

// Collapse measures the register.
// From Initialized it computes pᵢ = |aᵢ|², draws u ∈ [0,1) from the source,
// selects the smallest i with Σ_{k≤i} p_k ≥ u, fixes that value, and sets the
// amplitudes to the exact basis vector |i⟩. From Collapsed it returns the
// fixed value without drawing. From Uninitialized it fails with ErrInvalidState.
// Complexity: O(2ⁿ).
func (qc *QuantumComputer) Collapse() (int, error) {
	switch qc.state {
	case Collapsed:
		return qc.measured, nil
	case Initialized:
	default:
		return 0, fmt.Errorf("Collapse in state %s: %w", qc.state, ErrInvalidState)
	}

	u := qc.src.Float64()
	if math.IsNaN(u) || u < 0 || u >= 1 {
		return 0, fmt.Errorf("Collapse: draw %g: %w", u, ErrRandomRange)
	}

	value := sample(probabilities(qc.amplitudes), u)
	setBasis(qc.amplitudes, value)
	qc.measured = value
	qc.state = Collapsed
	qc.log.Debug().Float64("draw", u).Int("value", value).Msg("collapsed")

	return value, nil
}

// Value returns the measured basis index.
func (qc *QuantumComputer) Value() (int, error) {
	if qc.state != Collapsed {
		return 0, fmt.Errorf("Value in state %s: %w", qc.state, ErrNotYetMeasured)
	}

	return qc.measured, nil
}

// Reset zeroes the amplitudes and returns to Uninitialized, keeping the
// random source so that consecutive shots continue the same stream.
func (qc *QuantumComputer) Reset() {
	for i := range qc.amplitudes {
		qc.amplitudes[i] = cnum.Zero
	}
	qc.measured = 0
	qc.state = Uninitialized
}

// sample performs inverse-CDF selection: the smallest index whose cumulative
// probability reaches u. When rounding leaves the total below u, the last
// index with non-zero probability is chosen so that impossible outcomes are
// never returned.
func sample(probs []float64, u float64) int {
	var (
		cum  float64
		last int
	)
	for i, p := range probs {
		if p == 0 {
			continue
		}
		last = i
		cum += p
		if cum >= u {
			return i
		}
	}

	return last
}

// setBasis overwrites v with the basis vector |k⟩.
func setBasis(v []cnum.Complex, k int) {
	for i := range v {
		v[i] = cnum.Zero
	}
	v[k] = cnum.One
}

func probabilities(v []cnum.Complex) []float64 {
	out := make([]float64, len(v))
	for i, a := range v {
		out[i] = a.Abs2()
	}

	return out
}

func totalProbability(v []cnum.Complex) float64 {
	var sum float64
	for _, a := range v {
		sum += a.Abs2()
	}

	return sum
}

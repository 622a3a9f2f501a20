package computer_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/computer"
	"github.com/katalvlaran/qlath/gate"
	"github.com/katalvlaran/qlath/gates"
	"github.com/katalvlaran/qlath/matrix"
)

// script is a RandomSource replaying fixed draws in a loop and counting calls.
type script struct {
	draws []float64
	calls int
}

func (s *script) Float64() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++

	return v
}

// mustComputer builds a register or fails the test.
func mustComputer(t *testing.T, n int, opts ...computer.Option) *computer.QuantumComputer {
	t.Helper()
	qc, err := computer.New(n, opts...)
	require.NoError(t, err)

	return qc
}

// must unwraps a gate factory result, panicking on error.
func must(g *gate.Gate, err error) *gate.Gate {
	if err != nil {
		panic(err)
	}

	return g
}

// rotation returns the real rotation [[c, -s], [s, c]] with sin²θ = p1.
func rotation(t *testing.T, p1 float64) *gate.Gate {
	t.Helper()
	c, s := math.Sqrt(1-p1), math.Sqrt(p1)
	g, err := gate.New(1, matrix.MustFromReal([][]float64{{c, -s}, {s, c}}), gate.WithName("R"))
	require.NoError(t, err)

	return g
}

// TestNew covers size validation and the initial state.
func TestNew(t *testing.T) {
	_, err := computer.New(0)
	require.ErrorIs(t, err, computer.ErrInvalidQubits)
	_, err = computer.New(computer.MaxQubits + 1)
	require.ErrorIs(t, err, computer.ErrTooManyQubits)
	assert.NotErrorIs(t, err, computer.ErrInvalidQubits)
	assert.Contains(t, err.Error(), "max 20")

	qc := mustComputer(t, 3)
	assert.Equal(t, 3, qc.NumQubits())
	assert.Equal(t, 8, qc.Dimension())
	assert.Equal(t, computer.Uninitialized, qc.State())
	assert.Equal(t, 0.0, qc.Norm(), "amplitudes start all-zero")
	for _, a := range qc.Amplitudes() {
		assert.True(t, a.IsZero())
	}
}

// TestInitializeRange rejects indices outside [0, 2ⁿ).
func TestInitializeRange(t *testing.T) {
	qc := mustComputer(t, 3)
	require.ErrorIs(t, qc.Initialize(-1), computer.ErrInvalidBasisState)
	require.ErrorIs(t, qc.Initialize(8), computer.ErrInvalidBasisState)
	assert.Equal(t, computer.Uninitialized, qc.State(), "failed Initialize must not transition")

	require.NoError(t, qc.Initialize(7))
	assert.Equal(t, computer.Initialized, qc.State())
	amps := qc.Amplitudes()
	assert.Equal(t, cnum.One, amps[7])
	assert.InDelta(t, 1.0, qc.Norm(), 0)
}

// TestIdentityKeepsValue: 3 qubits, initialize(5), identity(3), collapse ⇒ 5.
func TestIdentityKeepsValue(t *testing.T) {
	qc := mustComputer(t, 3)
	require.NoError(t, qc.Initialize(5))
	before := qc.Amplitudes()
	require.NoError(t, qc.Apply(must(gates.Identity(3))))
	assert.Equal(t, before, qc.Amplitudes(), "identity must leave amplitudes unchanged")

	v, err := qc.Collapse()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	got, err := qc.Value()
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

// TestBasisCollapseDeterministic: initialize(k)+collapse ⇒ k for every k,
// whatever the draw.
func TestBasisCollapseDeterministic(t *testing.T) {
	for _, u := range []float64{0, 0.3, 0.5, 0.999999} {
		for k := 0; k < 8; k++ {
			qc := mustComputer(t, 3, computer.WithRandomSource(&script{draws: []float64{u}}))
			require.NoError(t, qc.Initialize(k))
			v, err := qc.Collapse()
			require.NoError(t, err)
			require.Equal(t, k, v, "k=%d u=%g", k, u)
		}
	}
}

// TestInverseCDF pins the selection rule on a Hadamard superposition.
func TestInverseCDF(t *testing.T) {
	cases := []struct {
		u    float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.51, 1},
		{0.999, 1},
	}
	h := must(gates.Hadamard(1))
	for _, tc := range cases {
		qc := mustComputer(t, 1, computer.WithRandomSource(&script{draws: []float64{tc.u}}))
		require.NoError(t, qc.Initialize(0))
		require.NoError(t, qc.Apply(h))
		v, err := qc.Collapse()
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "u=%g", tc.u)
	}
}

// TestCollapseIdempotent verifies that a second Collapse neither draws nor changes the value.
func TestCollapseIdempotent(t *testing.T) {
	src := &script{draws: []float64{0.9, 0.1}}
	qc := mustComputer(t, 2, computer.WithRandomSource(src))
	require.NoError(t, qc.Initialize(0))
	require.NoError(t, qc.Apply(must(gates.Hadamard(2))))

	first, err := qc.Collapse()
	require.NoError(t, err)
	assert.Equal(t, 3, first, "u=0.9 lands in the last quarter")
	second, err := qc.Collapse()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls, "only the first collapse consumes randomness")

	amps := qc.Amplitudes()
	for i, a := range amps {
		if i == first {
			assert.Equal(t, cnum.One, a)
		} else {
			assert.Equal(t, cnum.Zero, a)
		}
	}
}

// TestLifecycleErrors walks every refused transition.
func TestLifecycleErrors(t *testing.T) {
	qc := mustComputer(t, 1)
	h := must(gates.Hadamard(1))

	_, err := qc.Collapse()
	require.ErrorIs(t, err, computer.ErrInvalidState)
	require.ErrorIs(t, qc.Apply(h), computer.ErrInvalidState)
	_, err = qc.Value()
	require.ErrorIs(t, err, computer.ErrNotYetMeasured)

	require.NoError(t, qc.Initialize(0))
	_, err = qc.Value()
	require.ErrorIs(t, err, computer.ErrNotYetMeasured)
	require.ErrorIs(t, qc.Apply(must(gates.Hadamard(2))), computer.ErrGateSizeMismatch)
	require.ErrorIs(t, qc.Apply(nil), computer.ErrGateSizeMismatch)

	_, err = qc.Collapse()
	require.NoError(t, err)
	require.ErrorIs(t, qc.Apply(h), computer.ErrInvalidState)
	require.ErrorIs(t, qc.Initialize(0), computer.ErrInvalidState)

	qc.Reset()
	assert.Equal(t, computer.Uninitialized, qc.State())
	require.NoError(t, qc.Initialize(1))
}

// TestReinitialize prepares a new basis state without collapsing.
func TestReinitialize(t *testing.T) {
	qc := mustComputer(t, 2)
	require.NoError(t, qc.Initialize(0))
	require.NoError(t, qc.Apply(must(gates.Hadamard(2))))
	require.NoError(t, qc.Initialize(2))
	v, err := qc.Collapse()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

// TestApplyRejectsNonUnitary keeps the previous state when a gate breaks normalization.
func TestApplyRejectsNonUnitary(t *testing.T) {
	bad, err := gate.New(1, matrix.MustFromReal([][]float64{{1, 1}, {0, 1}}))
	require.NoError(t, err)

	qc := mustComputer(t, 1)
	require.NoError(t, qc.Initialize(1))
	require.ErrorIs(t, qc.Apply(bad), computer.ErrNotNormalized)
	assert.Equal(t, []cnum.Complex{cnum.Zero, cnum.One}, qc.Amplitudes())
	assert.Equal(t, computer.Initialized, qc.State())
}

// TestRandomRange rejects sources that break their contract.
func TestRandomRange(t *testing.T) {
	for _, u := range []float64{-0.1, 1, math.NaN()} {
		qc := mustComputer(t, 1, computer.WithRandomSource(&script{draws: []float64{u}}))
		require.NoError(t, qc.Initialize(0))
		_, err := qc.Collapse()
		require.ErrorIs(t, err, computer.ErrRandomRange, "u=%g", u)
		assert.Equal(t, computer.Initialized, qc.State())
	}
}

// TestHadamardTwiceRestores checks H·H = I through the register.
func TestHadamardTwiceRestores(t *testing.T) {
	h := must(gates.Hadamard(1))
	for k := 0; k < 2; k++ {
		qc := mustComputer(t, 1)
		require.NoError(t, qc.Initialize(k))
		require.NoError(t, qc.Apply(h))
		require.NoError(t, qc.Apply(h))
		amps := qc.Amplitudes()
		assert.InDelta(t, 1.0, amps[k].Re(), 1e-12)
		assert.InDelta(t, 0.0, amps[1-k].Abs(), 1e-12)
	}
}

// TestEmpiricalFrequencies checks that outcomes converge to |aᵢ|²
// for a uniform and a biased distribution.
func TestEmpiricalFrequencies(t *testing.T) {
	const trials = 10000
	src := rand.New(rand.NewSource(2024))

	t.Run("uniform", func(t *testing.T) {
		h := must(gates.Hadamard(2))
		counts := make([]int, 4)
		for i := 0; i < trials; i++ {
			qc := mustComputer(t, 2, computer.WithRandomSource(src))
			require.NoError(t, qc.Initialize(0))
			require.NoError(t, qc.Apply(h))
			v, err := qc.Collapse()
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 4)
			counts[v]++
		}
		for i, c := range counts {
			assert.InDelta(t, 0.25, float64(c)/trials, 0.03, "outcome %d", i)
		}
	})

	t.Run("biased", func(t *testing.T) {
		r := rotation(t, 0.2)
		var ones int
		for i := 0; i < trials; i++ {
			qc := mustComputer(t, 1, computer.WithRandomSource(src))
			require.NoError(t, qc.Initialize(0))
			require.NoError(t, qc.Apply(r))
			v, err := qc.Collapse()
			require.NoError(t, err)
			ones += v
		}
		assert.InDelta(t, 0.2, float64(ones)/trials, 0.02)
	})
}

// TestScriptedSweep drives collapse with an evenly spaced script: each
// outcome then appears in exact proportion to its probability.
func TestScriptedSweep(t *testing.T) {
	const steps = 1000
	draws := make([]float64, steps)
	for i := range draws {
		draws[i] = (float64(i) + 0.5) / steps
	}
	src := &script{draws: draws}
	r := rotation(t, 0.3)

	var ones int
	for i := 0; i < steps; i++ {
		qc := mustComputer(t, 1, computer.WithRandomSource(src))
		require.NoError(t, qc.Initialize(0))
		require.NoError(t, qc.Apply(r))
		v, err := qc.Collapse()
		require.NoError(t, err)
		ones += v
	}
	assert.InDelta(t, 300, ones, 1)
}

// TestLogger checks that lifecycle events reach the injected zerolog logger.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	qc := mustComputer(t, 1, computer.WithLogger(log))
	require.NoError(t, qc.Initialize(1))
	_, err := qc.Collapse()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"computer"`)
	assert.Contains(t, out, `"message":"initialized"`)
	assert.Contains(t, out, `"message":"collapsed"`)
	assert.Contains(t, out, `"value":1`)
}

// TestOptionPanics covers programmer errors in option constructors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { computer.WithRandomSource(nil) })
	require.Panics(t, func() { computer.WithEpsilon(-1) })
}

// TestSeededSourceDeterministic: equal seeds produce equal streams, seed 0 maps to DefaultSeed.
func TestSeededSourceDeterministic(t *testing.T) {
	a, b := computer.NewSeededSource(42), computer.NewSeededSource(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	z, d := computer.NewSeededSource(0), computer.NewSeededSource(computer.DefaultSeed)
	assert.Equal(t, z.Float64(), d.Float64())
}

// Package computer implements QuantumComputer, an n-qubit register holding a
// 2ⁿ-length complex amplitude vector.
//
// 🚀 Lifecycle
//
//	Uninitialized ──Initialize(k)──▶ Initialized ──Collapse()──▶ Collapsed
//	                                   │    ▲
//	                                   └────┘ Apply(g), Initialize(k)
//
// Operations:
//   - New returns an Uninitialized register with all-zero amplitudes.
//   - Initialize(k) prepares the classical basis state |k⟩.
//   - Apply(g) multiplies the amplitudes by a whole-register gate.
//   - Collapse() samples one basis index by inverse-CDF over |aᵢ|², fixes it,
//     and turns the amplitudes into that exact basis vector. Repeated calls
//     return the same value and draw no randomness.
//   - Value() reads the measured index.
//   - Reset() returns to Uninitialized.
//
// 🎲 Randomness
//
//	Collapse draws from an injected RandomSource; there is no global generator.
//	Pass WithRandomSource(rand.New(rand.NewSource(seed))) or a scripted source
//	in tests to make outcomes reproducible.
//
// Concurrency:
//
//	A QuantumComputer is not safe for concurrent use. Each instance must be
//	owned by one goroutine for its lifetime; so must its RandomSource.
package computer

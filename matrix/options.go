// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric checks.
// The only knob is the absolute tolerance used by AllClose and IsUnitary;
// amplitudes are float approximations, so invariants are checked within eps
// instead of by exact equality.
package matrix

import "math"

// DefaultEpsilon is the absolute tolerance used by structural numeric checks.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance eps used by AllClose and IsUnitary.
// Panics with a stable message when eps is negative, NaN or ±Inf (programmer error).
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// defaultOptions returns the zero-configuration defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// GatherOptions resolves opts over the defaults. It is exported so that
// packages built on matrix (gate, computer) share a single numeric policy.
func GatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

package computer

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/qlath/matrix"
)

const panicNilSource = "computer: WithRandomSource: source must be non-nil"

// Option configures a QuantumComputer at construction.
type Option func(*options)

type options struct {
	src    RandomSource
	logger zerolog.Logger
	eps    float64
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		eps:    matrix.DefaultEpsilon,
	}
}

// WithRandomSource injects the source consumed by Collapse.
// Panics on a nil source (programmer error).
func WithRandomSource(src RandomSource) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *options) { o.src = src }
}

// WithLogger attaches a structured logger; lifecycle events are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEpsilon sets the normalization tolerance checked after each Apply.
// It follows matrix.WithEpsilon and panics on the same invalid values.
func WithEpsilon(eps float64) Option {
	resolved := matrix.GatherOptions(matrix.WithEpsilon(eps)).Epsilon()

	return func(o *options) { o.eps = resolved }
}

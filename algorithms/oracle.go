// SPDX-License-Identifier: MIT

package algorithms

import "errors"

var (
	// ErrOracleOutput indicates an oracle returned something other than 0 or 1.
	ErrOracleOutput = errors.New("algorithms: oracle output must be 0 or 1")

	// ErrNilOracle indicates that no oracle was supplied.
	ErrNilOracle = errors.New("algorithms: nil oracle")
)

// Oracle is a classical one-bit function queried by quantum programs.
type Oracle interface {
	Evaluate(x int) int
}

// OracleFunc adapts an ordinary function to Oracle.
type OracleFunc func(x int) int

// Evaluate calls f(x).
func (f OracleFunc) Evaluate(x int) int { return f(x) }

// ConstantOracle returns the oracle f(x) = v.
func ConstantOracle(v int) Oracle {
	return OracleFunc(func(int) int { return v })
}

// Identity is the balanced oracle f(x) = x.
var Identity Oracle = OracleFunc(func(x int) int { return x })

// Not is the balanced oracle f(x) = 1 - x.
var Not Oracle = OracleFunc(func(x int) int { return 1 - x })

// query evaluates f at x and checks the result is a bit.
func query(f Oracle, x int) (int, error) {
	if f == nil {
		return 0, ErrNilOracle
	}
	if fn, ok := f.(OracleFunc); ok && fn == nil {
		return 0, ErrNilOracle
	}
	y := f.Evaluate(x)
	if y != 0 && y != 1 {
		return 0, ErrOracleOutput
	}

	return y, nil
}

// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/qlath/computer"
	"github.com/katalvlaran/qlath/gates"
)

// Coin is the outcome of CoinFlip.
type Coin int

const (
	// Tails is |0⟩.
	Tails Coin = 0
	// Heads is |1⟩.
	Heads Coin = 1
)

// String returns "heads" or "tails".
func (c Coin) String() string {
	if c == Heads {
		return "heads"
	}

	return "tails"
}

// CoinFlip measures H|0⟩ on a fresh one-qubit register configured by opts.
func CoinFlip(opts ...computer.Option) (Coin, error) {
	qc, err := computer.New(1, opts...)
	if err != nil {
		return Tails, err
	}
	h, err := gates.Hadamard(1)
	if err != nil {
		return Tails, err
	}
	if err = qc.Initialize(0); err != nil {
		return Tails, err
	}
	if err = qc.Apply(h); err != nil {
		return Tails, err
	}
	v, err := qc.Collapse()
	if err != nil {
		return Tails, err
	}

	return Coin(v), nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels, wrapped with
// the operation name ("Mul: matrix: dimension mismatch"). Tests MUST match them
// via errors.Is. No exported function panics on caller-triggered conditions;
// Must* helpers and option constructors are the only exceptions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a requested dimension is < 1.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible operands: an element list whose
	// length is not d², Mul of different dimensions, a vector of the wrong length,
	// or a ragged/non-square literal.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfBounds indicates an index or an embedded block outside the matrix.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotPermutation indicates that a slice passed to Permutation is not a
	// permutation of 0..d-1.
	ErrNotPermutation = errors.New("matrix: not a permutation")
)

// Operation names used for uniform error wrapping.
const (
	opNew         = "New"
	opIdentity    = "Identity"
	opZeros       = "Zeros"
	opAt          = "At"
	opSet         = "Set"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opKronecker   = "Kronecker"
	opKronPower   = "KroneckerPower"
	opEmbed       = "Embed"
	opConjT       = "ConjugateTranspose"
	opFromRows    = "FromRows"
	opFromReal    = "FromReal"
	opPermutation = "Permutation"
	opFromCDense  = "FromCDense"
	opAllClose    = "AllClose"
	opIsUnitary   = "IsUnitary"
)

// matrixErrorf wraps an underlying sentinel with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps ErrOutOfBounds with the offending coordinates.
func indexErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}

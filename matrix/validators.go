// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape and bounds checks.
//   - Provide the tolerance-based predicates (AllClose, IsUnitary) that quantum
//     invariants are verified with.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only IsUnitary allocates (one product).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qlath/cnum"
)

// ValidateDimension ensures d ≥ 1 and that d² elements are addressable by int.
// Complexity: O(1).
func ValidateDimension(d int) error {
	if d < 1 || d > math.MaxInt/d {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameDimension ensures a and b have equal dimensions.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameDimension(a, b *Matrix) error {
	if a.dim != b.dim {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures the vector length equals n.
// Complexity: O(1).
func ValidateVecLen(x []cnum.Complex, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateBlock ensures that sub, placed with its upper-left corner at
// (row, col), lies entirely inside m. Assumes both are non-nil.
// Complexity: O(1).
func ValidateBlock(m, sub *Matrix, row, col int) error {
	if row < 0 || col < 0 {
		return ErrOutOfBounds
	}
	if row > m.dim-sub.dim || col > m.dim-sub.dim { // no row+sub.dim: it may overflow
		return ErrOutOfBounds
	}

	return nil
}

// validatePair is the composite NotNil → SameDimension check used by binary ops.
func validatePair(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameDimension(a, b)
}

// AllClose reports whether a and b have the same dimension and every pair of
// entries agrees within eps on both the real and the imaginary part.
// Complexity: O(d²).
func AllClose(a, b *Matrix, opts ...Option) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := GatherOptions(opts...).eps
	for idx := range a.data {
		if !a.data[idx].ApproxEqual(b.data[idx], eps) {
			return false, nil
		}
	}

	return true, nil
}

// IsUnitary reports whether m·m† equals the identity within eps.
// Complexity: O(d³).
func IsUnitary(m *Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	eps := GatherOptions(opts...).eps

	dagger, _ := m.ConjugateTranspose() // safe: m is non-nil
	prod, _ := m.Mul(dagger)            // safe: same dimension

	var i, j int
	for i = 0; i < prod.dim; i++ {
		for j = 0; j < prod.dim; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			v := prod.data[i*prod.dim+j]
			if !scalar.EqualWithinAbs(v.Re(), want, eps) || !scalar.EqualWithinAbs(v.Im(), 0, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// SPDX-License-Identifier: MIT

// Package matrix: checked literal builders.
// FromReal and FromRows accept nested rows, verify that every row has the same
// length and that the shape is square, and fail with ErrDimensionMismatch
// otherwise. Real scalars become complex values with zero imaginary part.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/qlath/cnum"
)

// FromRows builds a matrix from complex rows.
// Stage 1 (Validate): at least one row; every row has len(rows) entries.
// Stage 2 (Execute): flatten row-major.
// Complexity: O(d²).
func FromRows(rows [][]cnum.Complex) (*Matrix, error) {
	// Stage 1: Validate
	d := len(rows)
	if d == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", opFromRows, i, len(row), d, ErrDimensionMismatch)
		}
	}

	// Stage 2: Execute
	data := make([]cnum.Complex, 0, d*d)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Matrix{dim: d, data: data}, nil
}

// FromReal builds a matrix from real-valued rows.
// Complexity: O(d²).
func FromReal(rows [][]float64) (*Matrix, error) {
	d := len(rows)
	if d == 0 {
		return nil, matrixErrorf(opFromReal, ErrInvalidDimensions)
	}
	data := make([]cnum.Complex, 0, d*d)
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", opFromReal, i, len(row), d, ErrDimensionMismatch)
		}
		for _, v := range row {
			data = append(data, cnum.Real(v))
		}
	}

	return &Matrix{dim: d, data: data}, nil
}

// MustFromReal is like FromReal but panics on error. It is intended for
// package-level literals whose shape is known to be valid.
func MustFromReal(rows [][]float64) *Matrix {
	m, err := FromReal(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Permutation returns the matrix P with P[perm[j]][j] = 1, i.e. the operator
// mapping basis vector |j⟩ to |perm[j]⟩.
// Complexity: O(d²) memory, O(d) writes.
func Permutation(perm []int) (*Matrix, error) {
	d := len(perm)
	if err := ValidateDimension(d); err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	seen := make([]bool, d)
	for _, p := range perm {
		if p < 0 || p >= d || seen[p] {
			return nil, matrixErrorf(opPermutation, ErrNotPermutation)
		}
		seen[p] = true
	}

	m := &Matrix{dim: d, data: make([]cnum.Complex, d*d)}
	for j, p := range perm {
		m.data[p*d+j] = cnum.One
	}

	return m, nil
}

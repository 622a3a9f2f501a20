// SPDX-License-Identifier: MIT

// Package matrix: interop with gonum's complex dense matrices.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlath/cnum"
)

// CDense copies m into a gonum *mat.CDense of the same shape.
// Complexity: O(d²).
func (m *Matrix) CDense() *mat.CDense {
	if m == nil {
		return nil
	}
	data := make([]complex128, len(m.data))
	for idx, v := range m.data {
		data[idx] = v.Complex128()
	}

	return mat.NewCDense(m.dim, m.dim, data)
}

// FromCDense copies a square gonum complex matrix into a Matrix.
// Fails with ErrDimensionMismatch when c is not square and ErrInvalidDimensions
// when it is empty.
// Complexity: O(d²).
func FromCDense(c mat.CMatrix) (*Matrix, error) {
	if c == nil {
		return nil, matrixErrorf(opFromCDense, ErrNilMatrix)
	}
	r, k := c.Dims()
	if r != k {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFromCDense, r, k, ErrDimensionMismatch)
	}
	if r < 1 {
		return nil, matrixErrorf(opFromCDense, ErrInvalidDimensions)
	}

	m := &Matrix{dim: r, data: make([]cnum.Complex, r*r)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			m.data[i*r+j] = cnum.FromComplex128(c.At(i, j))
		}
	}

	return m, nil
}

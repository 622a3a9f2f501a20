// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type, constructors and element access.
package matrix

import (
	"strings"

	"github.com/katalvlaran/qlath/cnum"
)

// Matrix is a square, row-major matrix of complex entries.
// dim is fixed at construction; data always holds dim*dim elements.
type Matrix struct {
	dim  int            // number of rows == number of columns
	data []cnum.Complex // flat backing storage, length == dim*dim
}

// New builds a dimension×dimension matrix from a row-major element list.
// Stage 1 (Validate): 1 ≤ dimension, dimension² fits in int, len(elements) == dimension².
// Stage 2 (Prepare): copy elements so the caller keeps ownership of its slice.
// Complexity: O(d²) time and memory.
func New(dimension int, elements []cnum.Complex) (*Matrix, error) {
	// Stage 1: Validate
	if err := ValidateDimension(dimension); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if len(elements) != dimension*dimension {
		return nil, matrixErrorf(opNew, ErrDimensionMismatch)
	}

	// Stage 2: Copy into owned storage
	data := make([]cnum.Complex, len(elements))
	copy(data, elements)

	return &Matrix{dim: dimension, data: data}, nil
}

// Zeros returns a dimension×dimension matrix of zeros.
// Complexity: O(d²).
func Zeros(dimension int) (*Matrix, error) {
	if err := ValidateDimension(dimension); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return &Matrix{dim: dimension, data: make([]cnum.Complex, dimension*dimension)}, nil
}

// Identity returns the multiplicative identity of the given size:
// 1 on the diagonal, 0 elsewhere.
// Complexity: O(d²).
func Identity(dimension int) (*Matrix, error) {
	if err := ValidateDimension(dimension); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	m := &Matrix{dim: dimension, data: make([]cnum.Complex, dimension*dimension)}
	var i int
	for i = 0; i < dimension; i++ {
		m.data[i*dimension+i] = cnum.One // diagonal entry
	}

	return m, nil
}

// Dimension returns the number of rows (== columns). A nil matrix reports 0.
func (m *Matrix) Dimension() int {
	if m == nil {
		return 0
	}

	return m.dim
}

// indexOf computes the flat offset of (row, col) or returns ErrOutOfBounds.
func (m *Matrix) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		return 0, indexErrorf(op, row, col, ErrOutOfBounds)
	}

	return row*m.dim + col, nil
}

// At returns the entry at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (cnum.Complex, error) {
	if m == nil {
		return cnum.Zero, matrixErrorf(opAt, ErrNilMatrix)
	}
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return cnum.Zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v cnum.Complex) error {
	if m == nil {
		return matrixErrorf(opSet, ErrNilMatrix)
	}
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy that shares no storage with m.
// Complexity: O(d²).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	data := make([]cnum.Complex, len(m.data))
	copy(data, m.data)

	return &Matrix{dim: m.dim, data: data}
}

// Elements returns a row-major copy of the entries.
func (m *Matrix) Elements() []cnum.Complex {
	if m == nil {
		return nil
	}
	out := make([]cnum.Complex, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports exact entry-wise equality. Use AllClose for float tolerance.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.dim != other.dim {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[(1+0i), (0+0i)]\n".
// Complexity: O(d²).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.dim; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.dim; j++ { // iterate over columns
			sb.WriteString(m.data[i*m.dim+j].String())
			if j < m.dim-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

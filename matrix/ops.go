// SPDX-License-Identifier: MIT

// Package matrix: algebra on square complex matrices.
// All functions validate first (nil → dimension), then allocate, then execute,
// and never modify their operands except Embed, which is in-place by contract.
package matrix

import (
	"math"

	"github.com/katalvlaran/qlath/cnum"
)

// Mul returns the standard product m × other.
// Stage 1 (Validate): both non-nil and of equal dimension.
// Stage 2 (Prepare): allocate result.
// Stage 3 (Execute): i-k-j loop order over the flat row-major buffers.
// Complexity: O(d³) time, O(d²) memory.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	// Stage 1: Validate
	if err := validatePair(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Prepare
	d := m.dim
	res := &Matrix{dim: d, data: make([]cnum.Complex, d*d)}

	// Stage 3: Execute
	var (
		i, k, j    int
		aik        cnum.Complex
		rowA, rowB int
	)
	for i = 0; i < d; i++ {
		rowA = i * d
		for k = 0; k < d; k++ {
			aik = m.data[rowA+k]
			if aik.IsZero() {
				continue // sparse gates (identity, permutations) skip whole rows of work
			}
			rowB = k * d
			for j = 0; j < d; j++ {
				res.data[rowA+j] = res.data[rowA+j].Add(aik.Mul(other.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// MulVec applies m to a column vector and returns a new vector:
// result[i] = Σ_j m[i][j]·vector[j].
// Complexity: O(d²) time, O(d) memory.
func (m *Matrix) MulVec(vector []cnum.Complex) ([]cnum.Complex, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(vector, m.dim); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	var (
		i, j int
		row  int
		acc  cnum.Complex
		out  = make([]cnum.Complex, m.dim)
	)
	for i = 0; i < m.dim; i++ {
		row = i * m.dim
		acc = cnum.Zero
		for j = 0; j < m.dim; j++ {
			acc = acc.Add(m.data[row+j].Mul(vector[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// Kronecker returns the tensor product m ⊗ other of dimension d_m·d_o with
// result[i][j] = m[i/d_o][j/d_o] · other[i%d_o][j%d_o].
// Complexity: O(d_m²·d_o²) time and memory.
func (m *Matrix) Kronecker(other *Matrix) (*Matrix, error) {
	// Stage 1: Validate
	if m == nil || other == nil {
		return nil, matrixErrorf(opKronecker, ErrNilMatrix)
	}

	// Stage 2: Prepare
	da, db := m.dim, other.dim
	if da > math.MaxInt/db {
		return nil, matrixErrorf(opKronecker, ErrInvalidDimensions)
	}
	d := da * db
	if err := ValidateDimension(d); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	res := &Matrix{dim: d, data: make([]cnum.Complex, d*d)}

	// Stage 3: Execute block by block: block (ai,aj) is m[ai][aj]·other.
	var (
		ai, aj, bi, bj int
		a              cnum.Complex
		base           int
	)
	for ai = 0; ai < da; ai++ {
		for aj = 0; aj < da; aj++ {
			a = m.data[ai*da+aj]
			if a.IsZero() {
				continue // block stays zero
			}
			for bi = 0; bi < db; bi++ {
				base = (ai*db+bi)*d + aj*db
				for bj = 0; bj < db; bj++ {
					res.data[base+bj] = a.Mul(other.data[bi*db+bj])
				}
			}
		}
	}

	return res, nil
}

// KroneckerPower returns the n-fold product m ⊗ m ⊗ … ⊗ m (n ≥ 1 factors).
// Complexity: dominated by the last step, O(d^{2n}).
func KroneckerPower(m *Matrix, n int) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opKronPower, ErrNilMatrix)
	}
	if n < 1 {
		return nil, matrixErrorf(opKronPower, ErrInvalidDimensions)
	}

	var (
		acc = m.Clone()
		err error
		i   int
	)
	for i = 1; i < n; i++ {
		if acc, err = acc.Kronecker(m); err != nil {
			return nil, matrixErrorf(opKronPower, err)
		}
	}

	return acc, nil
}

// Embed overwrites the sub.Dimension()×sub.Dimension() block of m whose upper-left
// corner is (row, col) with the entries of sub. Entries outside the block are
// untouched. m is modified in place.
// Stage 1 (Validate): non-nil operands, block inside m.
// Stage 2 (Execute): row-wise copy.
// Complexity: O(d_sub²).
func (m *Matrix) Embed(sub *Matrix, row, col int) error {
	// Stage 1: Validate
	if m == nil || sub == nil {
		return matrixErrorf(opEmbed, ErrNilMatrix)
	}
	if err := ValidateBlock(m, sub, row, col); err != nil {
		return indexErrorf(opEmbed, row, col, err)
	}

	// Stage 2: Execute
	var i int
	for i = 0; i < sub.dim; i++ {
		copy(m.data[(row+i)*m.dim+col:(row+i)*m.dim+col+sub.dim], sub.data[i*sub.dim:(i+1)*sub.dim])
	}

	return nil
}

// ConjugateTranspose returns m†, with m†[i][j] = conj(m[j][i]).
// Complexity: O(d²).
func (m *Matrix) ConjugateTranspose() (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opConjT, ErrNilMatrix)
	}
	d := m.dim
	res := &Matrix{dim: d, data: make([]cnum.Complex, d*d)}
	var i, j int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			res.data[j*d+i] = m.data[i*d+j].Conj()
		}
	}

	return res, nil
}

// Scale returns c·m. A nil receiver yields nil.
// Complexity: O(d²).
func (m *Matrix) Scale(c cnum.Complex) *Matrix {
	if m == nil {
		return nil
	}
	res := &Matrix{dim: m.dim, data: make([]cnum.Complex, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = c.Mul(v)
	}

	return res
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the algebra tests.
//   • Keep every fixture finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

// exchange is the 2×2 swap [[0,1],[1,0]].
var exchange = [][]float64{{0, 1}, {1, 0}}

// mustReal builds a matrix from real rows or fails the test.
func mustReal(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromReal(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity allocates Identity(d) or fails the test.
func mustIdentity(t testing.TB, d int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(d)
	require.NoError(t, err)

	return m
}

// randomMatrix fills a d×d matrix with deterministic pseudo-random entries in [-1,1).
func randomMatrix(t testing.TB, d int, seed int64) *matrix.Matrix {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	el := make([]cnum.Complex, d*d)
	for i := range el {
		el[i] = cnum.New(2*r.Float64()-1, 2*r.Float64()-1)
	}
	m, err := matrix.New(d, el)
	require.NoError(t, err)

	return m
}

// hadamard is the normalized single-qubit Hadamard matrix.
func hadamard(t testing.TB) *matrix.Matrix {
	t.Helper()

	return mustReal(t, [][]float64{{1, 1}, {1, -1}}).Scale(cnum.Real(0.7071067811865476))
}

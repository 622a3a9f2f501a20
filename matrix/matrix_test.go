// Package matrix_test contains unit tests for construction and element access.
package matrix_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewValidation ensures New rejects bad dimensions and element counts.
func TestNewValidation(t *testing.T) {
	_, err := matrix.New(0, nil)                         // zero dimension
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.New(2, make([]cnum.Complex, 3))      // 3 != 2²
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	_, err = matrix.New(2, make([]cnum.Complex, 5))      // 5 != 2²
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestDimensionOverflow ensures sizes whose square overflows int are rejected
// instead of building a matrix with too few elements.
func TestDimensionOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	shift := 32
	huge := 1 << shift // (2³²)² wraps to 0 on 64-bit int

	_, err := matrix.New(huge, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Zeros(huge)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	require.ErrorIs(t, matrix.ValidateDimension(huge), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateDimension(0), matrix.ErrInvalidDimensions)
	require.NoError(t, matrix.ValidateDimension(1<<31-1))
}

// TestNewCopiesElements verifies that New does not alias the caller's slice.
func TestNewCopiesElements(t *testing.T) {
	el := []cnum.Complex{cnum.One, cnum.Zero, cnum.Zero, cnum.One}
	m, err := matrix.New(2, el)
	require.NoError(t, err)

	el[0] = cnum.New(9, 9) // mutate caller storage
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, cnum.One, v) // matrix unaffected
}

// TestIdentity checks the diagonal layout for several sizes.
func TestIdentity(t *testing.T) {
	for _, d := range []int{1, 2, 5, 8} {
		m := mustIdentity(t, d)
		require.Equal(t, d, m.Dimension())
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				v, err := m.At(i, j)
				require.NoError(t, err)
				if i == j {
					require.Equal(t, cnum.One, v)
				} else {
					require.Equal(t, cnum.Zero, v)
				}
			}
		}
	}

	_, err := matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.Zeros(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, cnum.One), matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, cnum.One), matrix.ErrOutOfBounds)

	require.NoError(t, m.Set(1, 0, cnum.New(1, -1)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, cnum.New(1, -1), v)
}

// TestNilReceiver covers the nil-safety of the public surface.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Matrix
	require.Equal(t, 0, m.Dimension())
	require.Nil(t, m.Clone())
	require.Nil(t, m.Elements())
	require.Nil(t, m.Scale(cnum.One))

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Mul(mustIdentity(t, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.MulVec([]cnum.Complex{cnum.One})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Embed(mustIdentity(t, 1), 0, 0), matrix.ErrNilMatrix)
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustIdentity(t, 2)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, cnum.New(3, 0)))

	v, _ := m.At(0, 0)
	require.Equal(t, cnum.One, v) // original unchanged
	require.False(t, m.Equal(c))
}

// TestStringOutput checks the row-per-line formatting.
func TestStringOutput(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[(1+0i), (2+0i)]\n[(3+0i), (4+0i)]\n", m.String())
}

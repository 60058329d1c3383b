// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matchain/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {2, -2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestNewDense_ZeroInitAndShape(t *testing.T) {
	m := MustDense(t, 2, 3)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	requireEqualDense(t, []float64{0, 0, 0, 0, 0, 0}, m)
}

func TestNewDenseFrom(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6}
	m := NewFilledDense(t, 2, 3, vals)
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))
	assert.Equal(t, 2.0, MustAt(t, m, 0, 1))

	// The constructor copies its input.
	vals[0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 7))
	assert.Equal(t, 7.0, MustAt(t, m, 1, 0))

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	assert.Equal(t, 0.0, MustAt(t, m, 0, 0), "rejected write must not land")
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := NewFilledDense(t, 1, 2, []float64{1, 2})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, cl, 0, 0))
}

func TestDense_String(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 4})
	assert.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_Basics(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 0))
	v, _ = m.At(1, 2)
	assert.Equal(t, 7.5, v, "clone must not alias")

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.MulVec([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, "[0 0 0]\n[0 0 7.5]\n", m.String())
}

func TestLaplacian_Path(t *testing.T) {
	g, err := builder.BuildGraph(3, nil, builder.Path(3))
	require.NoError(t, err)
	l, err := matrix.Laplacian(g)
	require.NoError(t, err)
	assert.Equal(t, "[1 -1 0]\n[-1 2 -1]\n[0 -1 1]\n", l.String())
	require.NoError(t, matrix.ValidateSymmetric(l, 0))
}

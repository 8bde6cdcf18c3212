// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simroute/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 4.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SetRejectsNaNInfByDefault(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.Rows2D())

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewDenseFrom_DoesNotAlias(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	src[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = -1
	v, _ = m.At(1, 0)
	require.Equal(t, 3.0, v)
}

func TestDense_CloneIndependent(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 7))

	v, _ := m.At(0, 1)
	require.Equal(t, 1.0, v)
	v, _ = cp.At(0, 1)
	require.Equal(t, 7.0, v)
}

func TestDense_DoStopsEarly(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 0.5}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 0.5]\n[1, 0]\n", m.String())
}

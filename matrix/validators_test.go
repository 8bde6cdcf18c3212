// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simroute/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateNonNegative(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {-0.5, 0}})
	require.NoError(t, err)
	err = matrix.ValidateNonNegative(m)
	require.ErrorIs(t, err, matrix.ErrNegative)
	require.Contains(t, err.Error(), "(1,0)")
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 0, math.Inf(1)))
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
}

func TestValidateZeroDiagonal(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1, 0.2}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(m), matrix.ErrNonZeroDiagonal)

	require.NoError(t, m.Set(1, 1, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(m))
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

const epsTight = 1e-12

func TestNormalizeRowsL1(t *testing.T) {
	t.Parallel()

	x := fromRows(t, [][]float64{{1, 3}, {2, 2}, {0, 5}})
	y, err := matrix.NormalizeRowsL1(x)
	require.NoError(t, err)

	require.Equal(t, [][]float64{{0.25, 0.75}, {0.5, 0.5}, {0, 1}}, y.ToRows())
	require.NoError(t, matrix.ValidateRowStochastic(y))
	require.Equal(t, 1.0, mustAt(t, x, 0, 0), "input untouched")
}

func TestNormalizeRowsL1_ZeroRow(t *testing.T) {
	t.Parallel()

	_, err := matrix.NormalizeRowsL1(fromRows(t, [][]float64{{1, 1}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrZeroSum)
	require.Contains(t, err.Error(), "(1,0)")

	// 1/5e-324 overflows to +Inf; the row must be rejected, not scaled.
	_, err = matrix.NormalizeRowsL1(fromRows(t, [][]float64{{0.5, 0.5}, {5e-324, 0}}))
	require.ErrorIs(t, err, matrix.ErrZeroSum)
	require.Contains(t, err.Error(), "(1,0)")

	_, err = matrix.NormalizeRowsL1(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestL1Distance(t *testing.T) {
	t.Parallel()

	x := fromRows(t, [][]float64{{0.9, 0.1}, {0.2, 0.8}})
	y := fromRows(t, [][]float64{{0.8, 0.2}, {0.2, 0.8}})

	d, err := matrix.L1Distance(x, y)
	require.NoError(t, err)
	require.InDelta(t, 0.2, d, epsTight)

	d, err = matrix.L1Distance(x, x)
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = matrix.L1Distance(x, mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.L1Distance(nil, y)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestArgMax(t *testing.T) {
	t.Parallel()

	require.Equal(t, -1, matrix.ArgMax(nil))
	require.Equal(t, 0, matrix.ArgMax([]float64{3}))
	require.Equal(t, 2, matrix.ArgMax([]float64{1, 2, 5, 4}))
	require.Equal(t, 1, matrix.ArgMax([]float64{0.1, 0.7, 0.7}), "ties resolve to the lowest index")
}

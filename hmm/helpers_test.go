// SPDX-License-Identifier: MIT
// Package hmm_test contains test helpers
//
// Purpose:
//   • Provide the coin fixture (Fair/Biased × Head/Tail) and a small
//     asymmetric 2×3 fixture used across inference and training tests.
//   • Keep tolerances in one place.

package hmm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// eps is the absolute tolerance for probability identities.
const eps = 1e-9

// Coin fixture: state 0 = Fair, state 1 = Biased; symbol 0 = Head, 1 = Tail.
var (
	coinStates  = []string{"Fair", "Biased"}
	coinSymbols = []string{"Head", "Tail"}
	coinPi      = []float64{0.5, 0.5}
	coinA       = [][]float64{{0.9, 0.1}, {0.1, 0.9}}
	coinB       = [][]float64{{0.5, 0.5}, {0.75, 0.25}}
	coinObs     = []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}
)

// Asymmetric fixture: A[0][1] != A[1][0], three symbols.
var (
	asymPi  = []float64{0.6, 0.4}
	asymA   = [][]float64{{0.7, 0.3}, {0.4, 0.6}}
	asymB   = [][]float64{{0.5, 0.4, 0.1}, {0.1, 0.3, 0.6}}
	asymObs = []int{0, 1, 2, 2, 0, 1}
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// at reads (i,j) or fails the test.
func at(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// columnSum returns Σ_i m[i][j].
func columnSum(t testing.TB, m *matrix.Dense, j int) float64 {
	t.Helper()
	col, err := m.Col(j)
	require.NoError(t, err)
	var s float64
	for _, v := range col {
		s += v
	}

	return s
}

// requireRowStochastic asserts every row of m sums to 1 within eps.
func requireRowStochastic(t testing.TB, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrix.ValidateRowStochastic(m, matrix.WithEpsilon(eps)))
}

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

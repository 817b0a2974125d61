// SPDX-License-Identifier: MIT

package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/matrix"
)

// TestForward_CoinBaseCase verifies α[:,0] = π ⊙ B[:,obs[0]] on the coin fixture.
func TestForward_CoinBaseCase(t *testing.T) {
	alpha, err := hmm.Forward(coinPi, mustDense(t, coinB), mustDense(t, coinA), coinObs)
	require.NoError(t, err)

	assert.Equal(t, 2, alpha.Rows(), "one row per state")
	assert.Equal(t, len(coinObs), alpha.Cols(), "one column per observation")
	assert.InDelta(t, 0.25, at(t, alpha, 0, 0), eps)
	assert.InDelta(t, 0.375, at(t, alpha, 1, 0), eps)
}

// TestForward_AsymmetricTransitions pins the from-j-into-i direction: with an
// asymmetric A the likelihood differs from the transposed recursion.
func TestForward_AsymmetricTransitions(t *testing.T) {
	a, b := mustDense(t, asymA), mustDense(t, asymB)

	alpha, err := hmm.Forward(asymPi, b, a, asymObs)
	require.NoError(t, err)

	// α[:,1] by hand: B[i][1]·Σ_j α[j][0]·A[j][i], α[:,0] = [0.30, 0.04].
	assert.InDelta(t, 0.4*(0.30*0.7+0.04*0.4), at(t, alpha, 0, 1), eps)
	assert.InDelta(t, 0.3*(0.30*0.3+0.04*0.6), at(t, alpha, 1, 1), eps)

	p, err := hmm.Likelihood(asymPi, b, a, asymObs)
	require.NoError(t, err)
	assert.InDelta(t, 0.001337155664, p, 1e-12)
}

// TestForwardBackward_Consistency checks Σ_i α[i][t]·β[i][t] is the same for every t.
func TestForwardBackward_Consistency(t *testing.T) {
	for name, fx := range map[string]struct {
		pi   []float64
		a, b [][]float64
		obs  []int
	}{
		"coin":       {coinPi, coinA, coinB, coinObs},
		"asymmetric": {asymPi, asymA, asymB, asymObs},
	} {
		t.Run(name, func(t *testing.T) {
			a, b := mustDense(t, fx.a), mustDense(t, fx.b)
			alpha, err := hmm.Forward(fx.pi, b, a, fx.obs)
			require.NoError(t, err)
			beta, err := hmm.Backward(b, a, fx.obs)
			require.NoError(t, err)
			p, err := hmm.Likelihood(fx.pi, b, a, fx.obs)
			require.NoError(t, err)

			for tt := 0; tt < len(fx.obs); tt++ {
				var s float64
				for i := 0; i < alpha.Rows(); i++ {
					s += at(t, alpha, i, tt) * at(t, beta, i, tt)
				}
				assert.InDelta(t, p, s, 1e-15, "Σαβ at t=%d must equal the likelihood", tt)
			}
		})
	}
}

// TestForward_Idempotent verifies two identical calls are bit-identical.
func TestForward_Idempotent(t *testing.T) {
	a, b := mustDense(t, coinA), mustDense(t, coinB)

	first, err := hmm.Forward(coinPi, b, a, coinObs)
	require.NoError(t, err)
	second, err := hmm.Forward(coinPi, b, a, coinObs)
	require.NoError(t, err)

	assert.Equal(t, first.ToRows(), second.ToRows())
	assert.NotSame(t, first, second, "every call allocates a fresh lattice")
}

// TestForward_Errors covers the shape and symbol contract.
func TestForward_Errors(t *testing.T) {
	a, b := mustDense(t, coinA), mustDense(t, coinB)
	wide := mustDense(t, [][]float64{{0.5, 0.5, 0}, {0.5, 0.5, 0}})
	tall := mustDense(t, [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}})

	cases := []struct {
		name string
		pi   []float64
		b, a *matrix.Dense
		obs  []int
		want error
	}{
		{"short pi", []float64{1}, b, a, coinObs, hmm.ErrDimensionMismatch},
		{"non-square A", coinPi, b, wide, coinObs, hmm.ErrDimensionMismatch},
		{"B rows != N", coinPi, tall, a, coinObs, hmm.ErrDimensionMismatch},
		{"empty obs", coinPi, b, a, []int{}, hmm.ErrEmptySequence},
		{"symbol == M", coinPi, b, a, []int{0, 2}, hmm.ErrInvalidSymbol},
		{"negative symbol", coinPi, b, a, []int{-1}, hmm.ErrInvalidSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hmm.Forward(tc.pi, tc.b, tc.a, tc.obs)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := hmm.Forward(coinPi, nil, a, coinObs)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch, "nil B")
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil B")

	_, err = hmm.Forward(coinPi, b, wide, coinObs)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "non-square A")
	_, err = hmm.Forward(nil, b, a, coinObs)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch, "nil pi")

	_, err = hmm.Forward(coinPi, b, a, []int{})
	assert.ErrorIs(t, err, hmm.ErrEmptySequence)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch, "empty obs is a shape error")
}

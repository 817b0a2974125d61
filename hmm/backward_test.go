// SPDX-License-Identifier: MIT

package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/hmm"
)

// TestBackward_Boundary verifies β[:,T-1] = 1.
func TestBackward_Boundary(t *testing.T) {
	beta, err := hmm.Backward(mustDense(t, coinB), mustDense(t, coinA), coinObs)
	require.NoError(t, err)

	last := len(coinObs) - 1
	assert.Equal(t, 1.0, at(t, beta, 0, last))
	assert.Equal(t, 1.0, at(t, beta, 1, last))
}

// TestBackward_Recurrence checks one step by hand and the t=0 identity
// Σ_i π[i]·B[i][obs[0]]·β[i][0] = P(obs).
func TestBackward_Recurrence(t *testing.T) {
	a, b := mustDense(t, asymA), mustDense(t, asymB)
	beta, err := hmm.Backward(b, a, asymObs)
	require.NoError(t, err)

	// β[i][T-2] = Σ_j A[i][j]·B[j][obs[T-1]] with obs[T-1] = 1.
	T := len(asymObs)
	assert.InDelta(t, 0.7*0.4+0.3*0.3, at(t, beta, 0, T-2), eps)
	assert.InDelta(t, 0.4*0.4+0.6*0.3, at(t, beta, 1, T-2), eps)

	var p float64
	for i := range asymPi {
		p += asymPi[i] * asymB[i][asymObs[0]] * at(t, beta, i, 0)
	}
	assert.InDelta(t, 0.001337155664, p, 1e-12)
}

// TestBackward_SingleObservation has only the boundary column.
func TestBackward_SingleObservation(t *testing.T) {
	beta, err := hmm.Backward(mustDense(t, coinB), mustDense(t, coinA), []int{1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {1}}, beta.ToRows())
}

// TestBackward_Idempotent verifies two identical calls are bit-identical.
func TestBackward_Idempotent(t *testing.T) {
	a, b := mustDense(t, asymA), mustDense(t, asymB)
	first, err := hmm.Backward(b, a, asymObs)
	require.NoError(t, err)
	second, err := hmm.Backward(b, a, asymObs)
	require.NoError(t, err)
	assert.Equal(t, first.ToRows(), second.ToRows())
}

// TestBackward_Errors covers the shared input contract.
func TestBackward_Errors(t *testing.T) {
	a, b := mustDense(t, coinA), mustDense(t, coinB)

	_, err := hmm.Backward(b, a, []int{0, 5})
	assert.ErrorIs(t, err, hmm.ErrInvalidSymbol)

	_, err = hmm.Backward(b, nil, coinObs)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)

	_, err = hmm.Backward(b, a, nil)
	assert.ErrorIs(t, err, hmm.ErrEmptySequence)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)
}

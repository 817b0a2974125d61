// SPDX-License-Identifier: MIT

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Forward computes the forward lattice α (N×T).
//
// Algorithm:
//  1. α[i][0] = π[i]·B[i][obs[0]].
//  2. For t = 1..T-1: α[i][t] = B[i][obs[t]] · Σ_j α[j][t-1]·A[j][i].
//     The sum runs over the previous state j flowing INTO state i, so the
//     result is correct for asymmetric transition matrices.
//
// The returned matrix is freshly allocated and owned by the caller.
//
// Errors:
//   - ErrDimensionMismatch if π, A, B disagree on N.
//   - ErrEmptySequence if obs is empty; it also matches ErrDimensionMismatch.
//   - ErrInvalidSymbol if some obs[t] is outside [0, B.Cols()).
//
// Complexity: Time O(N²·T), Space O(N·T).
func Forward(pi []float64, b, a *matrix.Dense, obs []int) (*matrix.Dense, error) {
	n, _, err := validateInputs(opForward, pi, true, b, a, obs)
	if err != nil {
		return nil, err
	}

	return forward(n, pi, b, a, obs)
}

// forward is the unchecked kernel behind Forward.
func forward(n int, pi []float64, b, a *matrix.Dense, obs []int) (*matrix.Dense, error) {
	alpha, err := matrix.NewDense(n, len(obs))
	if err != nil {
		return nil, hmmErrorf(opForward, err)
	}
	al, ar, br := alpha.RowViews(), a.RowViews(), b.RowViews()

	var i, j, t int
	for i = 0; i < n; i++ {
		al[i][0] = pi[i] * br[i][obs[0]]
	}
	for t = 1; t < len(obs); t++ {
		o := obs[t]
		for i = 0; i < n; i++ {
			var sum float64
			for j = 0; j < n; j++ {
				sum += al[j][t-1] * ar[j][i] // from j into i
			}
			al[i][t] = br[i][o] * sum
		}
	}

	return alpha, nil
}

// Likelihood returns P(obs | π, A, B) = Σ_i α[i][T-1].
//
// No scaling is applied: for long sequences the value underflows to 0.
// Complexity: Time O(N²·T).
func Likelihood(pi []float64, b, a *matrix.Dense, obs []int) (float64, error) {
	n, _, err := validateInputs(opLikelihood, pi, true, b, a, obs)
	if err != nil {
		return 0, err
	}
	alpha, err := forward(n, pi, b, a, obs)
	if err != nil {
		return 0, err
	}

	return terminalMass(alpha), nil
}

// terminalMass sums the last column of α.
func terminalMass(alpha *matrix.Dense) float64 {
	last, _ := alpha.Col(alpha.Cols() - 1) // column index is always valid here
	return floats.Sum(last)
}

// logOf maps a probability to its log, keeping 0 → -Inf explicit.
func logOf(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}

	return math.Log(p)
}

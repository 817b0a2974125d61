// SPDX-License-Identifier: MIT

package hmm

import (
	"github.com/katalvlaran/lvhmm/matrix"
)

// Backward computes the backward lattice β (N×T).
//
// Algorithm:
//  1. β[i][T-1] = 1 for every state (boundary condition).
//  2. For t = T-2 down to 0: β[i][t] = Σ_j A[i][j]·B[j][obs[t+1]]·β[j][t+1].
//
// Errors: same contract as Forward (π is not needed).
// Complexity: Time O(N²·T), Space O(N·T).
func Backward(b, a *matrix.Dense, obs []int) (*matrix.Dense, error) {
	n, _, err := validateInputs(opBackward, nil, false, b, a, obs)
	if err != nil {
		return nil, err
	}

	return backward(n, b, a, obs)
}

// backward is the unchecked kernel behind Backward.
func backward(n int, b, a *matrix.Dense, obs []int) (*matrix.Dense, error) {
	T := len(obs)
	beta, err := matrix.NewDense(n, T)
	if err != nil {
		return nil, hmmErrorf(opBackward, err)
	}
	bl, ar, br := beta.RowViews(), a.RowViews(), b.RowViews()

	var i, j, t int
	for i = 0; i < n; i++ {
		bl[i][T-1] = 1
	}
	for t = T - 2; t >= 0; t-- {
		o := obs[t+1]
		for i = 0; i < n; i++ {
			var sum float64
			for j = 0; j < n; j++ {
				sum += ar[i][j] * br[j][o] * bl[j][t+1]
			}
			bl[i][t] = sum
		}
	}

	return beta, nil
}

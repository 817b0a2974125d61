// SPDX-License-Identifier: MIT

package hmm

import (
	"github.com/katalvlaran/lvhmm/matrix"
)

// Decode runs the Viterbi algorithm and returns the score lattice δ (N×T)
// together with the most likely state path (length T, oldest first).
//
// Algorithm Outline:
//  1. δ[i][0] = π[i]·B[i][obs[0]]; no predecessor.
//  2. For t = 1..T-1:
//     δ[i][t] = B[i][obs[t]] · max_j A[j][i]·δ[j][t-1]
//     ψ[i][t] = argmax_j A[j][i]·δ[j][t-1]
//     The max runs over the from-state j for a fixed to-state i.
//  3. Final state = argmax_i δ[i][T-1].
//  4. Backtrack: path[t-1] = ψ[path[t]][t] for t = T-1..1.
//
// Tie-break: equal maxima always resolve to the lowest state index, in the
// recurrence and in the termination step, so results are reproducible.
//
// The path is a fresh slice; Decode keeps no state between calls.
//
// Errors: same contract as Forward.
// Complexity: Time O(N²·T), Space O(N·T).
func Decode(pi []float64, b, a *matrix.Dense, obs []int) (*matrix.Dense, []int, error) {
	n, _, err := validateInputs(opDecode, pi, true, b, a, obs)
	if err != nil {
		return nil, nil, err
	}
	T := len(obs)

	delta, err := matrix.NewDense(n, T)
	if err != nil {
		return nil, nil, hmmErrorf(opDecode, err)
	}
	psi := make([]int, n*T) // psi[i*T+t]; column 0 unused
	dl, ar, br := delta.RowViews(), a.RowViews(), b.RowViews()

	var i, j, t int
	for i = 0; i < n; i++ {
		dl[i][0] = pi[i] * br[i][obs[0]]
	}
	for t = 1; t < T; t++ {
		o := obs[t]
		for i = 0; i < n; i++ {
			best, bestScore := 0, ar[0][i]*dl[0][t-1]
			for j = 1; j < n; j++ {
				if s := ar[j][i] * dl[j][t-1]; s > bestScore { // strict: lowest index wins ties
					best, bestScore = j, s
				}
			}
			dl[i][t] = br[i][o] * bestScore
			psi[i*T+t] = best
		}
	}

	// Termination over the last column.
	last, _ := delta.Col(T - 1)
	path := make([]int, T)
	path[T-1] = matrix.ArgMax(last)
	for t = T - 1; t > 0; t-- {
		path[t-1] = psi[path[t]*T+t]
	}

	return delta, path, nil
}

// PathProbability returns P(path, obs | π, A, B) by multiplying π, A and B
// along the given state path.
//
// Errors: the Forward contract plus ErrDimensionMismatch when
// len(path) != len(obs) and ErrInvalidState for a state outside [0, N).
// Complexity: O(T).
func PathProbability(pi []float64, b, a *matrix.Dense, obs, path []int) (float64, error) {
	n, _, err := validateInputs(opPathProb, pi, true, b, a, obs)
	if err != nil {
		return 0, err
	}
	if len(path) != len(obs) {
		return 0, detailErrorf(opPathProb, ErrDimensionMismatch, "path length %d, want %d", len(path), len(obs))
	}
	for t, s := range path {
		if s < 0 || s >= n {
			return 0, detailErrorf(opPathProb, ErrInvalidState, "path[%d]=%d, states %d", t, s, n)
		}
	}

	ar, br := a.RowViews(), b.RowViews()
	p := pi[path[0]] * br[path[0]][obs[0]]
	for t := 1; t < len(obs); t++ {
		p *= ar[path[t-1]][path[t]] * br[path[t]][obs[t]]
	}

	return p, nil
}

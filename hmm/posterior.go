// SPDX-License-Identifier: MIT

package hmm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Gamma computes the state-occupation posterior γ (N×T):
//
//	γ[i][t] = α[i][t]·β[i][t] / Σ_j α[j][t]·β[j][t]
//
// Every column of the result sums to 1.
//
// Errors:
//   - ErrDimensionMismatch if α and β differ in shape.
//   - ErrDegenerateNormalization if the denominator for some t is 0 or
//     too small to invert (zero-probability sequence or underflow on long
//     inputs).
//
// Complexity: Time O(N·T), Space O(N·T).
func Gamma(alpha, beta *matrix.Dense) (*matrix.Dense, error) {
	if _, _, err := validateLattices(opGamma, alpha, beta); err != nil {
		return nil, err
	}

	return gamma(alpha, beta)
}

// gamma is the unchecked kernel behind Gamma.
func gamma(alpha, beta *matrix.Dense) (*matrix.Dense, error) {
	n, T := alpha.Rows(), alpha.Cols()
	g, err := matrix.NewDense(n, T)
	if err != nil {
		return nil, hmmErrorf(opGamma, err)
	}
	al, bl, gl := alpha.RowViews(), beta.RowViews(), g.RowViews()
	col := make([]float64, n)

	var i, t int
	for t = 0; t < T; t++ {
		for i = 0; i < n; i++ {
			col[i] = al[i][t] * bl[i][t]
		}
		inv, ok := reciprocal(floats.Sum(col))
		if !ok {
			return nil, detailErrorf(opGamma, ErrDegenerateNormalization, "t=%d", t)
		}
		floats.Scale(inv, col)
		for i = 0; i < n; i++ {
			gl[i][t] = col[i]
		}
	}

	return g, nil
}

// Xi computes the transition posterior ξ (N×N×(T-1)):
//
//	ξ[i][j][t] ∝ α[i][t]·A[i][j]·B[j][obs[t+1]]·β[j][t+1],  t = 0..T-2
//
// normalized so that every time slab sums to 1. For T == 1 the result has
// depth 0.
//
// Errors:
//   - ErrDimensionMismatch if α, β, A, B and obs disagree on N or T.
//   - ErrInvalidSymbol / ErrEmptySequence as for Forward.
//   - ErrDegenerateNormalization if a slab sum is 0 or too small to invert.
//
// Complexity: Time O(N²·T), Space O(N²·T).
func Xi(alpha, beta, a, b *matrix.Dense, obs []int) (*Tensor3, error) {
	n, T, err := validateLattices(opXi, alpha, beta)
	if err != nil {
		return nil, err
	}
	nn, _, err := validateInputs(opXi, nil, false, b, a, obs)
	if err != nil {
		return nil, err
	}
	if nn != n || len(obs) != T {
		return nil, detailErrorf(opXi, ErrDimensionMismatch, "lattice %dx%d, model N=%d, T=%d", n, T, nn, len(obs))
	}

	return xi(alpha, beta, a, b, obs)
}

// xi is the unchecked kernel behind Xi.
func xi(alpha, beta, a, b *matrix.Dense, obs []int) (*Tensor3, error) {
	n, T := alpha.Rows(), alpha.Cols()
	x, err := NewTensor3(n, T-1)
	if err != nil {
		return nil, hmmErrorf(opXi, err)
	}
	al, bl, ar, br := alpha.RowViews(), beta.RowViews(), a.RowViews(), b.RowViews()

	var i, j, t int
	for t = 0; t < T-1; t++ {
		slab := x.slab(t)
		o := obs[t+1]
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				slab[i*n+j] = al[i][t] * ar[i][j] * br[j][o] * bl[j][t+1]
			}
		}
		inv, ok := reciprocal(floats.Sum(slab))
		if !ok {
			return nil, detailErrorf(opXi, ErrDegenerateNormalization, "t=%d", t)
		}
		floats.Scale(inv, slab)
	}

	return x, nil
}

// Posteriors runs Forward, Backward, Gamma and Xi in one call.
// Complexity: Time O(N²·T).
func Posteriors(pi []float64, b, a *matrix.Dense, obs []int) (*matrix.Dense, *Tensor3, error) {
	n, _, err := validateInputs(opPosteriors, pi, true, b, a, obs)
	if err != nil {
		return nil, nil, err
	}
	alpha, err := forward(n, pi, b, a, obs)
	if err != nil {
		return nil, nil, err
	}
	beta, err := backward(n, b, a, obs)
	if err != nil {
		return nil, nil, err
	}
	g, err := gamma(alpha, beta)
	if err != nil {
		return nil, nil, hmmErrorf(opPosteriors, err)
	}
	x, err := xi(alpha, beta, a, b, obs)
	if err != nil {
		return nil, nil, hmmErrorf(opPosteriors, err)
	}

	return g, x, nil
}

// PosteriorDecode returns, for each t, the state with the largest γ[i][t]
// (lowest index on ties). Unlike Decode the result maximizes per-step
// marginals and need not be a feasible path under A.
// Complexity: O(N·T).
func PosteriorDecode(g *matrix.Dense) ([]int, error) {
	if g == nil {
		return nil, detailErrorf(opPosteriorDec, ErrDimensionMismatch, "gamma is nil")
	}
	path := make([]int, g.Cols())
	for t := range path {
		col, err := g.Col(t)
		if err != nil {
			return nil, hmmErrorf(opPosteriorDec, err)
		}
		path[t] = matrix.ArgMax(col)
	}

	return path, nil
}

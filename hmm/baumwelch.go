// SPDX-License-Identifier: MIT

package hmm

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// TrainResult carries the outcome of Train.
type TrainResult struct {
	// Pi, A and B are the final estimates (fresh copies owned by the caller).
	Pi []float64
	A  *matrix.Dense
	B  *matrix.Dense

	// Iterations is the number of completed EM iterations (>= 1).
	Iterations int

	// Delta is the convergence metric of the last iteration:
	// Σ|ΔA| + Σ|ΔB| + Σ|Δπ|.
	Delta float64

	// LogLikelihoods[k] is log P(obs) under the parameters entering iteration k+1.
	LogLikelihoods []float64
}

// Train re-estimates (π, A, B) from one observation sequence with Baum-Welch.
//
// Algorithm (one iteration):
//  1. E-step: α, β, γ, ξ under the current (π, A, B).
//  2. M-step:
//     A[i][j] = Σ_{t<T-1} ξ[i][j][t] / Σ_{t<T-1} γ[i][t]
//     B[i][k] = Σ_{t: obs[t]=k} γ[i][t] / Σ_t γ[i][t]
//     π[i]    = γ[i][0]   (only with WithReestimateInitial(true))
//  3. delta = Σ|A'-A| + Σ|B'-B| + Σ|π'-π|; the new triple replaces the old one.
//
// The loop continues while delta > tolerance and at most WithMaxIterations
// times. The inputs are never modified.
//
// Errors:
//   - ErrInvalidTolerance for a negative or non-finite tolerance.
//   - the Forward contract for shapes and symbols.
//   - ErrDegenerateNormalization from the E-step.
//   - ErrInsufficientData when an M-step denominator is 0 (for example T == 1,
//     or a state with no posterior mass).
//   - ErrNonConvergence when the cap is reached; the last estimate is still
//     returned in the result so callers can inspect or resume from it.
//
// Complexity: Time O(I·N²·T) for I iterations, Space O(N²·T).
func Train(pi []float64, a, b *matrix.Dense, obs []int, tolerance float64, opts ...Option) (*TrainResult, error) {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance < 0 {
		return nil, detailErrorf(opTrain, ErrInvalidTolerance, "got %g", tolerance)
	}
	n, m, err := validateInputs(opTrain, pi, true, b, a, obs)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	log := o.logger.With(
		zap.Int("states", n),
		zap.Int("symbols", m),
		zap.Int("length", len(obs)),
		zap.Float64("tolerance", tolerance),
	)

	cur := emParams{pi: append([]float64(nil), pi...), a: a.CloneDense(), b: b.CloneDense()}
	res := &TrainResult{LogLikelihoods: make([]float64, 0, 16)}

	for iter := 1; iter <= o.maxIterations; iter++ {
		next, ll, err := emIteration(cur, obs, o.reestimateInitial)
		if err != nil {
			log.Debug("baum-welch iteration failed", zap.Int("iteration", iter), zap.Error(err))
			return nil, fmt.Errorf("%s: iteration %d: %w", opTrain, iter, err)
		}
		delta, err := cur.distance(next)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opTrain, iter, err)
		}
		if math.IsNaN(delta) {
			return nil, detailErrorf(opTrain, ErrDegenerateNormalization, "iteration %d: parameter change is NaN", iter)
		}
		cur = next // wholesale replacement; no partial mutation
		res.LogLikelihoods = append(res.LogLikelihoods, ll)
		res.Iterations, res.Delta = iter, delta

		log.Debug("baum-welch iteration",
			zap.Int("iteration", iter),
			zap.Float64("delta", delta),
			zap.Float64("log_likelihood", ll),
		)
		if delta <= tolerance {
			res.Pi, res.A, res.B = cur.pi, cur.a, cur.b
			log.Info("baum-welch converged", zap.Int("iterations", iter), zap.Float64("delta", delta))

			return res, nil
		}
	}

	res.Pi, res.A, res.B = cur.pi, cur.a, cur.b
	log.Warn("baum-welch hit iteration cap",
		zap.Int("max_iterations", o.maxIterations),
		zap.Float64("delta", res.Delta),
	)

	return res, detailErrorf(opTrain, ErrNonConvergence, "delta %g > tolerance %g after %d iterations",
		res.Delta, tolerance, o.maxIterations)
}

// emParams is the (π, A, B) triple threaded through the EM loop.
type emParams struct {
	pi   []float64
	a, b *matrix.Dense
}

// distance is the convergence metric Σ|ΔA| + Σ|ΔB| + Σ|Δπ|.
func (p emParams) distance(q emParams) (float64, error) {
	da, err := matrix.L1Distance(p.a, q.a)
	if err != nil {
		return 0, err
	}
	db, err := matrix.L1Distance(p.b, q.b)
	if err != nil {
		return 0, err
	}

	return da + db + floats.Distance(p.pi, q.pi, 1), nil
}

// emIteration performs one E-step + M-step and returns the new parameters
// together with log P(obs) under the old ones.
func emIteration(cur emParams, obs []int, reestimateInitial bool) (emParams, float64, error) {
	n := cur.a.Rows()
	alpha, err := forward(n, cur.pi, cur.b, cur.a, obs)
	if err != nil {
		return emParams{}, 0, err
	}
	beta, err := backward(n, cur.b, cur.a, obs)
	if err != nil {
		return emParams{}, 0, err
	}
	g, err := gamma(alpha, beta)
	if err != nil {
		return emParams{}, 0, err
	}
	x, err := xi(alpha, beta, cur.a, cur.b, obs)
	if err != nil {
		return emParams{}, 0, err
	}
	ll := logOf(terminalMass(alpha))

	next := emParams{}
	if next.a, err = reestimateTransitions(g, x); err != nil {
		return emParams{}, 0, err
	}
	if next.b, err = reestimateEmissions(g, obs, cur.b.Cols()); err != nil {
		return emParams{}, 0, err
	}
	if reestimateInitial {
		if next.pi, err = g.Col(0); err != nil {
			return emParams{}, 0, err
		}
	} else {
		next.pi = append([]float64(nil), cur.pi...)
	}

	return next, ll, nil
}

// reestimateTransitions computes A[i][j] = Σ_t ξ[i][j][t] / Σ_{t<T-1} γ[i][t].
func reestimateTransitions(g *matrix.Dense, x *Tensor3) (*matrix.Dense, error) {
	n, depth := x.States(), x.Depth()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	ar, gl := a.RowViews(), g.RowViews()

	var i, j, t int
	for i = 0; i < n; i++ {
		inv, ok := reciprocal(floats.Sum(gl[i][:depth]))
		if !ok {
			return nil, detailErrorf(opReestimateTransitions, ErrInsufficientData, "state %d has no outgoing mass", i)
		}
		for t = 0; t < depth; t++ {
			slab := x.slab(t)
			for j = 0; j < n; j++ {
				ar[i][j] += slab[i*n+j]
			}
		}
		floats.Scale(inv, ar[i])
	}

	return a, nil
}

// reestimateEmissions computes B[i][k] = Σ_{t: obs[t]=k} γ[i][t] / Σ_t γ[i][t].
// The denominator equals the row sum of the symbol counts, so the division is
// delegated to matrix.NormalizeRowsL1.
func reestimateEmissions(g *matrix.Dense, obs []int, m int) (*matrix.Dense, error) {
	counts, err := matrix.NewDense(g.Rows(), m)
	if err != nil {
		return nil, err
	}
	cr, gl := counts.RowViews(), g.RowViews()
	for i := range gl {
		for t, o := range obs {
			cr[i][o] += gl[i][t]
		}
	}

	b, err := matrix.NormalizeRowsL1(counts)
	if errors.Is(err, matrix.ErrZeroSum) {
		return nil, fmt.Errorf("%s: %w: %w", opReestimateEmissions, ErrInsufficientData, err)
	}

	return b, err
}

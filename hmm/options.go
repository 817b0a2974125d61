// SPDX-License-Identifier: MIT

// Package hmm: functional configuration for model validation and training.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - eps only affects NewModel's stochasticity checks.
//   - maxIterations, reestimateInitial and logger only affect Train.
//   - DefaultReestimateInitial is false: π stays fixed during training unless
//     the caller opts in with WithReestimateInitial(true).
package hmm

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvhmm/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for "sums to 1" checks in NewModel.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultMaxIterations caps Baum-Welch; hitting it yields ErrNonConvergence.
	DefaultMaxIterations = 1000

	// DefaultReestimateInitial controls whether π ← γ[:,0] in the M-step.
	DefaultReestimateInitial = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "hmm: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterationsInvalid = "hmm: WithMaxIterations: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps               float64     // >= 0; DefaultEpsilon
	maxIterations     int         // >= 1; DefaultMaxIterations
	reestimateInitial bool        // DefaultReestimateInitial
	logger            *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the tolerance used when checking that π and the rows of
// A and B sum to 1.
//
// Errors:
//   - Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations bounds the number of Baum-Welch iterations.
//
// Errors:
//   - Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithReestimateInitial toggles re-estimation of the initial distribution
// from the first-step posterior γ[:,0].
func WithReestimateInitial(on bool) Option {
	return func(o *Options) { o.reestimateInitial = on }
}

// WithLogger routes training progress to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-config policy.
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		maxIterations:     DefaultMaxIterations,
		reestimateInitial: DefaultReestimateInitial,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

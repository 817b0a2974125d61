// SPDX-License-Identifier: MIT

package hmm

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Model is a validated discrete HMM: N labelled states, M labelled symbols,
// an initial distribution π, a row-stochastic transition matrix A (N×N) and
// a row-stochastic emission matrix B (N×M).
//
// A Model is immutable after NewModel; accessors return copies, so a single
// Model may be shared between goroutines.
type Model struct {
	states  []string
	symbols []string
	symIdx  map[string]int

	pi []float64
	a  *matrix.Dense
	b  *matrix.Dense
}

// NewModel validates and copies the parameters into a Model.
//
// Checks (all violations are reported together):
//   - states and symbols are non-empty and free of duplicates,
//   - A is N×N and B is N×M, with N = len(states), M = len(symbols),
//   - π has N entries,
//   - π and every row of A and B are finite, non-negative and sum to 1
//     within eps (WithEpsilon, default DefaultEpsilon).
//
// The returned error aggregates the individual failures; match them with
// errors.Is against ErrDimensionMismatch, ErrNotStochastic, ErrDuplicateLabel.
func NewModel(states, symbols []string, pi []float64, a, b [][]float64, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	var merr *multierror.Error

	n, m := len(states), len(symbols)
	if err := checkLabels("states", states); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := checkLabels("symbols", symbols); err != nil {
		merr = multierror.Append(merr, err)
	}

	ad, err := buildTable("transition", a, n, n, o.eps)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	bd, err := buildTable("emission", b, n, m, o.eps)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	if len(pi) != n {
		merr = multierror.Append(merr, detailErrorf(opNewModel, ErrDimensionMismatch,
			"initial distribution has %d entries, want %d", len(pi), n))
	} else if err := matrix.ValidateDistribution(pi, matrix.WithEpsilon(o.eps)); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("%s: initial distribution: %w: %w", opNewModel, ErrNotStochastic, err))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	symIdx := make(map[string]int, m)
	for k, s := range symbols {
		symIdx[s] = k
	}

	return &Model{
		states:  append([]string(nil), states...),
		symbols: append([]string(nil), symbols...),
		symIdx:  symIdx,
		pi:      append([]float64(nil), pi...),
		a:       ad,
		b:       bd,
	}, nil
}

// checkLabels rejects an empty label set and duplicate labels.
func checkLabels(what string, labels []string) error {
	if len(labels) == 0 {
		return detailErrorf(opNewModel, ErrDimensionMismatch, "%s: no labels", what)
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return detailErrorf(opNewModel, ErrDuplicateLabel, "%s: %q", what, l)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// buildTable copies rows into a Dense and checks shape and stochasticity.
func buildTable(what string, rows [][]float64, wantR, wantC int, eps float64) (*matrix.Dense, error) {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		sentinel := ErrDimensionMismatch
		if errors.Is(err, matrix.ErrNaNInf) {
			sentinel = ErrNotStochastic
		}
		return nil, fmt.Errorf("%s: %s matrix: %w: %w", opNewModel, what, sentinel, err)
	}
	if wantR > 0 && wantC > 0 {
		if err = matrix.ValidateShape(d, wantR, wantC); err != nil {
			return nil, fmt.Errorf("%s: %s matrix: %w: %w", opNewModel, what, ErrDimensionMismatch, err)
		}
	}
	if err = matrix.ValidateRowStochastic(d, matrix.WithEpsilon(eps)); err != nil {
		return nil, fmt.Errorf("%s: %s matrix: %w: %w", opNewModel, what, ErrNotStochastic, err)
	}

	return d, nil
}

// N returns the number of hidden states.
func (m *Model) N() int { return len(m.states) }

// M returns the size of the observation alphabet.
func (m *Model) M() int { return len(m.symbols) }

// States returns a copy of the state labels.
func (m *Model) States() []string { return append([]string(nil), m.states...) }

// Symbols returns a copy of the symbol labels.
func (m *Model) Symbols() []string { return append([]string(nil), m.symbols...) }

// Initial returns a copy of π.
func (m *Model) Initial() []float64 { return append([]float64(nil), m.pi...) }

// Transition returns a copy of A.
func (m *Model) Transition() *matrix.Dense { return m.a.CloneDense() }

// Emission returns a copy of B.
func (m *Model) Emission() *matrix.Dense { return m.b.CloneDense() }

// Forward returns α for obs; see Forward.
func (m *Model) Forward(obs []int) (*matrix.Dense, error) {
	return Forward(m.pi, m.b, m.a, obs)
}

// Backward returns β for obs; see Backward.
func (m *Model) Backward(obs []int) (*matrix.Dense, error) {
	return Backward(m.b, m.a, obs)
}

// Decode returns δ and the Viterbi path for obs; see Decode.
func (m *Model) Decode(obs []int) (*matrix.Dense, []int, error) {
	return Decode(m.pi, m.b, m.a, obs)
}

// Likelihood returns P(obs | model); see Likelihood.
func (m *Model) Likelihood(obs []int) (float64, error) {
	return Likelihood(m.pi, m.b, m.a, obs)
}

// Posteriors returns γ and ξ for obs; see Posteriors.
func (m *Model) Posteriors(obs []int) (*matrix.Dense, *Tensor3, error) {
	return Posteriors(m.pi, m.b, m.a, obs)
}

// PathProbability returns P(path, obs | model); see PathProbability.
func (m *Model) PathProbability(obs, path []int) (float64, error) {
	return PathProbability(m.pi, m.b, m.a, obs, path)
}

// Train runs Baum-Welch starting from m and returns a new Model carrying the
// same labels and the re-estimated parameters. m itself is not modified.
//
// On ErrNonConvergence the returned Model and result hold the last estimate.
func (m *Model) Train(obs []int, tolerance float64, opts ...Option) (*Model, *TrainResult, error) {
	res, err := Train(m.pi, m.a, m.b, obs, tolerance, opts...)
	if res == nil {
		return nil, nil, err
	}

	return &Model{
		states:  m.States(),
		symbols: m.Symbols(),
		symIdx:  m.symIdx,
		pi:      append([]float64(nil), res.Pi...),
		a:       res.A.CloneDense(),
		b:       res.B.CloneDense(),
	}, res, err
}

// EncodeSymbols maps symbol labels to alphabet indices.
// Errors: ErrUnknownLabel for a label outside the alphabet.
func (m *Model) EncodeSymbols(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for t, l := range labels {
		k, ok := m.symIdx[l]
		if !ok {
			return nil, detailErrorf(opEncodeSymbols, ErrUnknownLabel, "labels[%d]=%q", t, l)
		}
		out[t] = k
	}

	return out, nil
}

// StateLabels maps a state path to state labels.
// Errors: ErrInvalidState for an index outside [0, N).
func (m *Model) StateLabels(path []int) ([]string, error) {
	out := make([]string, len(path))
	for t, s := range path {
		if s < 0 || s >= len(m.states) {
			return nil, detailErrorf(opStateLabels, ErrInvalidState, "path[%d]=%d", t, s)
		}
		out[t] = m.states[s]
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package hmm: sentinel error set.
// All exported routines return these sentinels wrapped with an operation tag
// ("Forward: ...", "Train: iteration 3: ..."); callers match via errors.Is.
// Nothing is retried or swallowed internally.

package hmm

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch reports π/A/B/obs shapes inconsistent with N and M.
	ErrDimensionMismatch = errors.New("hmm: dimension mismatch")

	// ErrInvalidSymbol reports an observation index outside [0, M).
	ErrInvalidSymbol = errors.New("hmm: observation symbol out of range")

	// ErrInvalidState reports a state index outside [0, N) in a caller-supplied path.
	ErrInvalidState = errors.New("hmm: state index out of range")

	// ErrEmptySequence reports an observation sequence with T == 0. It is
	// always returned alongside ErrDimensionMismatch.
	ErrEmptySequence = errors.New("hmm: observation sequence is empty")

	// ErrNotStochastic reports a π or a row of A/B that is negative, non-finite,
	// or does not sum to 1 within eps.
	ErrNotStochastic = errors.New("hmm: not a probability distribution")

	// ErrDuplicateLabel reports a repeated state or symbol label.
	ErrDuplicateLabel = errors.New("hmm: duplicate label")

	// ErrUnknownLabel reports a symbol label that is not part of the alphabet.
	ErrUnknownLabel = errors.New("hmm: unknown label")

	// ErrDegenerateNormalization reports a zero posterior normalizer, i.e. the
	// sequence has zero probability under the model or α/β underflowed.
	ErrDegenerateNormalization = errors.New("hmm: posterior normalization is zero")

	// ErrInsufficientData reports a zero M-step denominator: a state carries no
	// posterior mass, so its row cannot be re-estimated.
	ErrInsufficientData = errors.New("hmm: state has no posterior mass")

	// ErrNonConvergence reports that Baum-Welch hit the iteration cap while the
	// parameter change was still above the tolerance.
	ErrNonConvergence = errors.New("hmm: baum-welch did not converge")

	// ErrInvalidTolerance reports a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("hmm: tolerance must be finite and >= 0")
)

// Operation tags used in error wrappers and log fields.
const (
	opForward       = "Forward"
	opBackward      = "Backward"
	opDecode        = "Decode"
	opGamma         = "Gamma"
	opXi            = "Xi"
	opTrain         = "Train"
	opNewModel      = "NewModel"
	opPathProb      = "PathProbability"
	opPosteriorDec  = "PosteriorDecode"
	opEncodeSymbols = "EncodeSymbols"
	opStateLabels   = "StateLabels"
	opLikelihood    = "Likelihood"
	opPosteriors    = "Posteriors"
	opNewTensor3    = "NewTensor3"
	opTensor3At     = "Tensor3.At"
	opTensor3Slice  = "Tensor3.Slice"

	opReestimateTransitions = "reestimateTransitions"
	opReestimateEmissions   = "reestimateEmissions"
)

// hmmErrorf wraps a sentinel with an operation tag.
func hmmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// detailErrorf wraps a sentinel with an operation tag and a formatted detail.
func detailErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}

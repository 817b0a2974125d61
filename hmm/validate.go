// SPDX-License-Identifier: MIT

package hmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhmm/matrix"
)

// validateInputs checks the shared precondition of every inference routine:
//   - A is non-nil and N×N,
//   - B is non-nil with N rows (M = B.Cols()),
//   - π (when required) has length N,
//   - obs is non-empty and every entry lies in [0, M).
//
// Shapes are checked before symbols so a wrong B never masquerades as a bad
// observation. Values are not inspected here; NewModel owns stochasticity.
// Matrix-level failures keep their matrix sentinel and gain ErrDimensionMismatch.
// Complexity: O(T).
func validateInputs(op string, pi []float64, needPi bool, b, a *matrix.Dense, obs []int) (n, m int, err error) {
	if err = matrix.ValidateNotNil(a); err != nil {
		return 0, 0, shapeErrorf(op, "transition matrix", err)
	}
	if err = matrix.ValidateNotNil(b); err != nil {
		return 0, 0, shapeErrorf(op, "emission matrix", err)
	}
	if err = matrix.ValidateSquare(a); err != nil {
		return 0, 0, shapeErrorf(op, "transition matrix", err)
	}
	n, m = a.Rows(), b.Cols()
	if err = matrix.ValidateShape(b, n, m); err != nil {
		return 0, 0, shapeErrorf(op, "emission matrix", err)
	}
	if needPi {
		if err = matrix.ValidateVecLen(pi, n); err != nil {
			return 0, 0, shapeErrorf(op, "initial distribution", err)
		}
	}
	if err = validateObservations(op, obs, m); err != nil {
		return 0, 0, err
	}

	return n, m, nil
}

// shapeErrorf tags a matrix validator failure with ErrDimensionMismatch.
func shapeErrorf(op, what string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", op, what, ErrDimensionMismatch, err)
}

// validateObservations checks T >= 1 and 0 <= obs[t] < m. An empty sequence
// is a shape violation and matches both ErrEmptySequence and
// ErrDimensionMismatch.
func validateObservations(op string, obs []int, m int) error {
	if len(obs) == 0 {
		return fmt.Errorf("%s: %w: %w", op, ErrDimensionMismatch, ErrEmptySequence)
	}
	for t, o := range obs {
		if o < 0 || o >= m {
			return detailErrorf(op, ErrInvalidSymbol, "obs[%d]=%d, alphabet size %d", t, o, m)
		}
	}

	return nil
}

// validateLattices checks that α and β are both N×T.
func validateLattices(op string, alpha, beta *matrix.Dense) (n, t int, err error) {
	if alpha == nil || beta == nil {
		return 0, 0, detailErrorf(op, ErrDimensionMismatch, "lattice is nil")
	}
	if alpha.Rows() != beta.Rows() || alpha.Cols() != beta.Cols() {
		return 0, 0, detailErrorf(op, ErrDimensionMismatch, "alpha %dx%d, beta %dx%d",
			alpha.Rows(), alpha.Cols(), beta.Rows(), beta.Cols())
	}

	return alpha.Rows(), alpha.Cols(), nil
}

// reciprocal returns 1/s and false when s is zero or so small that 1/s is
// not finite. Such a normalizer cannot produce a distribution summing to 1.
func reciprocal(s float64) (float64, bool) {
	inv := 1 / s
	if math.IsNaN(inv) || math.IsInf(inv, 0) {
		return 0, false
	}

	return inv, true
}

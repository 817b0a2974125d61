// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/stochasticity checks here.
//  - Return tagged sentinel errors so call sites can match them via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Stochasticity checks run O(r*c) with a single pass per row.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols. Assumes m is not nil.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows {
		return validatorErrorf(fmt.Sprintf("ValidateShape: Rows %d != %d", m.Rows(), rows), ErrDimensionMismatch)
	}
	if m.Cols() != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: Cols %d != %d", m.Cols(), cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %d != %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateDistribution checks that p is a probability vector: every entry is
// finite and non-negative and Σp = 1 within eps (WithEpsilon).
//
// Errors: ErrDimensionMismatch (empty), ErrNaNInf, ErrNegative, ErrNotStochastic.
// Complexity: O(len(p)).
func ValidateDistribution(p []float64, opts ...Option) error {
	if len(p) == 0 {
		return validatorErrorf("ValidateDistribution", ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if err := checkProbabilities(p, o.eps); err != nil {
		return validatorErrorf("ValidateDistribution", err)
	}

	return nil
}

// ValidateRowStochastic checks that every row of m is a probability vector
// (see ValidateDistribution).
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegative, ErrNotStochastic (tagged with the row).
// Complexity: O(r*c).
func ValidateRowStochastic(m *Dense, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	o := gatherOptions(opts...)
	for i, row := range m.RowViews() {
		if err := checkProbabilities(row, o.eps); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d", i), err)
		}
	}

	return nil
}

// checkProbabilities is the shared kernel: finiteness → sign → sum.
func checkProbabilities(p []float64, eps float64) error {
	for _, v := range p {
		if isNonFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
	}
	if !scalar.EqualWithinAbs(floats.Sum(p), 1, eps) {
		return ErrNotStochastic
	}

	return nil
}

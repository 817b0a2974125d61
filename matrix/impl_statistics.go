// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row statistics an EM loop needs: L1 row normalization and
//     the entrywise L1 distance between two tables.
//   - Delegate the inner loops to gonum's floats kernels.
//
// Exposed API:
//   - NormalizeRowsL1(X)  -> (Y, error)       // copy with every row scaled to sum 1
//   - L1Distance(X, Y)    -> (d, error)       // Σ_ij |X[i,j] - Y[i,j]|
//
// Determinism & Performance:
//   - Fixed i→j traversal; operates on the flat row-major buffers directly.

package matrix

import "gonum.org/v1/gonum/floats"

// Operation name constants for unified error wrapping.
const (
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opL1Distance      = "L1Distance"
)

// NormalizeRowsL1 returns a copy of x with each row divided by its sum.
// Implementation:
//   - Stage 1: validate x.
//   - Stage 2: clone, then scale each row by 1/Σrow.
//
// Behavior highlights:
//   - A row whose sum is zero, or so small that 1/sum overflows, cannot be
//     normalized; ErrZeroSum is returned (tagged with the row) instead of
//     producing Inf or NaN.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(x *Dense) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	out := x.cloneDense()
	for i, row := range out.RowViews() {
		inv := 1 / floats.Sum(row)
		if isNonFinite(inv) {
			return nil, denseErrorf(opNormalizeRowsL1, i, 0, ErrZeroSum)
		}
		floats.Scale(inv, row)
	}

	return out, nil
}

// L1Distance returns Σ_ij |x[i,j] - y[i,j]|, the entrywise L1 norm of x-y.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func L1Distance(x, y *Dense) (float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return 0, matrixErrorf(opL1Distance, err)
	}
	if err := ValidateNotNil(y); err != nil {
		return 0, matrixErrorf(opL1Distance, err)
	}
	if err := ValidateSameShape(x, y); err != nil {
		return 0, matrixErrorf(opL1Distance, err)
	}

	return floats.Distance(x.data, y.data, 1), nil
}

// SPDX-License-Identifier: MIT

// Package matrix: small domain helpers shared by adapters.
package matrix

import "gonum.org/v1/gonum/floats"

// ArgMax returns the index of the largest element of x. Ties resolve to the
// lowest index, which keeps decoders reproducible. It returns -1 for an empty
// slice instead of panicking.
// Complexity: O(len(x)).
func ArgMax(x []float64) int {
	if len(x) == 0 {
		return -1
	}

	return floats.MaxIdx(x)
}

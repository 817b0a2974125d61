// Package matrix offers the dense row-major storage and the probability-table
// validators shared by the hmm package.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major float64 matrix with no-copy row views
//     for hot loops and deep Clone for ownership hand-off.
//   - Validators for shapes, probability vectors and row-stochastic matrices
//     (each row non-negative, summing to 1 within an epsilon).
//   - Row statistics (sums, L1 normalization, L1 distance) built on
//     gonum's floats kernels.
//
// Matrices here are small (N×N, N×M, N×T for an HMM with N states, M symbols
// and T observations), so a single flat buffer per matrix is the whole story.
package matrix

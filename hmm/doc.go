// Package hmm implements inference and learning for discrete-output Hidden
// Markov Models: Forward, Backward, Viterbi decoding, posterior estimation
// and Baum-Welch (EM) re-estimation over one observation sequence.
//
// 🚀 What is an HMM?
//
//	A hidden chain of N states evolves by a transition matrix A (N×N) from an
//	initial distribution π; at every step the current state emits one of M
//	symbols according to an emission matrix B (N×M). Only the symbols are
//	observed.
//
// ✨ Key features:
//   - Forward / Backward lattices α, β (N×T) and the sequence likelihood
//   - Viterbi decoding with a deterministic lowest-index tie-break
//   - Posteriors γ (N×T) and ξ (N×N×(T-1)), plus posterior decoding
//   - Baum-Welch with an iteration cap, optional π re-estimation and
//     structured progress logging (zap)
//   - Model construction that reports every invariant violation at once
//
// ⚙️ Usage:
//
//	m, err := hmm.NewModel(
//		[]string{"Fair", "Biased"}, []string{"Head", "Tail"},
//		[]float64{0.5, 0.5},
//		[][]float64{{0.9, 0.1}, {0.1, 0.9}},
//		[][]float64{{0.5, 0.5}, {0.75, 0.25}},
//	)
//	obs, _ := m.EncodeSymbols([]string{"Head", "Head", "Tail"})
//	_, path, _ := m.Decode(obs)
//	trained, res, err := m.Train(obs, 1e-6, hmm.WithMaxIterations(200))
//
// Numerical note:
//
//	Probabilities are kept in linear space without scaling. For long
//	sequences α and β underflow toward 0; the posterior routines then fail
//	with ErrDegenerateNormalization instead of producing NaN.
//
// Performance:
//
//   - Time:   O(N²·T) per inference call, O(I·N²·T) for I EM iterations
//   - Memory: O(N·T) lattices, O(N²·T) for ξ
package hmm

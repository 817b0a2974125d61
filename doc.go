// Package lvhmm is a small toolkit for discrete-output Hidden Markov Models:
// scoring, decoding and re-estimating a model from one observation sequence.
//
// 🚀 What is lvhmm?
//
//	A pure-Go library that brings together:
//		• Inference: Forward / Backward lattices and the sequence likelihood
//		• Decoding: Viterbi (max-product) and posterior (max-marginal) paths
//		• Posteriors: per-step state marginals γ and transition marginals ξ
//		• Learning: Baum-Welch (EM) with an iteration cap and progress logging
//
// ✨ Why choose lvhmm?
//
//   - Explicit errors – every contract violation is a sentinel matched with errors.Is
//   - Deterministic – fixed loop orders, lowest-index tie-breaks
//   - Re-entrant – no shared state; every call allocates its own lattices
//
// Everything is organized under three subpackages:
//
//	hmm/      — Model, Forward, Backward, Decode, Gamma, Xi, Posteriors, Train
//	matrix/   — row-major Dense storage, stochasticity validators, row statistics
//	config/   — viper-backed training/logging settings and the zap logger factory
//
// Quick example (the occasionally dishonest casino):
//
//	Fair  ──0.9──▶ Fair      Fair  emits Head/Tail with 0.50/0.50
//	Fair  ──0.1──▶ Biased    Biased emits Head/Tail with 0.75/0.25
//
// examples/casino runs decoding and training end to end.
//
//	go get github.com/katalvlaran/lvhmm/hmm
package lvhmm

// Package lvlearn is a compact playground for classic supervised
// learning on small tabular data — from labeled datasets to
// pocket-perceptron training.
//
// 🚀 What is lvlearn?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Labeled datasets: ordered samples, closed two-value label sets,
//		  CSV ingest with bias injection, seeded train/held-out splits
//		• Linear classification: sign-threshold evaluation of w·x
//		• Pocket-perceptron training: per-iteration error traces on both
//		  the training and the held-out subset, explicit model selection
//
// ✨ Why choose lvlearn?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every randomized step takes an explicit seed
//   - Pure Go – no cgo, no hidden state, no ambient randomness
//   - Honest – the trainer returns the full trace; picking the best
//     iteration is your call, not a hidden heuristic
//
// Everything is organized under two subpackages:
//
//	dataset/    — Sample, Dataset, LabelPair, CSV loading, splitting
//	perceptron/ — Classify, Predict, Mismatches, Train, Trace
//
// Quick sketch:
//
//	w·x > 0  →  first label
//	w·x ≤ 0  →  second label
//
// one misclassified point per round nudges w by ±x until the
// training subset is consistent or the iteration budget runs out.
//
// Dive into examples/ for an end-to-end coin-classification walkthrough.
//
//	go get github.com/katalvlaran/lvlearn
package lvlearn

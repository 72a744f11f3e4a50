// Package perceptron implements sign-threshold linear classification
// and pocket-perceptron training over lvlearn datasets.
//
// 🚀 What is pocket-perceptron learning?
//
//	The perceptron rule fixes one misclassified point per round:
//	w ← w + target·x. On non-separable data the weight vector never
//	settles, so the "pocket" variant keeps the record of the best
//	in-sample error seen so far. Here that record is the full Trace:
//	every round's weights and error fractions, on both the training
//	and the held-out subset, returned to the caller for explicit
//	model selection.
//
// ✨ Key features:
//   - Classify / Predict: pure sign-threshold evaluation of w·x;
//     the tie w·x == 0 maps to the second label by documented policy
//   - Mismatches: deterministic first-in-row-order mismatch selection
//   - Train: seeded initialization, snapshot-per-round trace,
//     stops on zero training error or budget exhaustion
//   - Trace.Best: minimal training error, earliest round on ties
//
// ⚙️ Usage:
//
//	opts := perceptron.DefaultOptions()
//	opts.MaxIterations = 50
//	opts.Seed = 42
//
//	trace, err := perceptron.Train(train, holdout, opts)
//	if err != nil {
//	  // handle ErrEmptyDataset, ErrDimensionMismatch, ...
//	}
//	round, best := trace.Best()
//	label, _ := perceptron.Classify(best.Weights, x, train.Labels())
//
// Determinism:
//
//	Same seed, same subsets ⇒ byte-identical traces. Independent runs
//	share no state and are safe to execute concurrently.
//
// See example_test.go for a worked walkthrough and examples/ for the
// end-to-end coin scenario.
package perceptron

package perceptron

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/dataset"
)

// Train runs pocket-perceptron learning on the training subset while
// scoring every round's weights on the held-out subset.
//
// Algorithm Outline:
//  1. Initialize w: a copy of opts.InitialWeights when provided,
//     otherwise d components uniform in [0, InitScale) from the seeded
//     RNG.
//  2. Each round: snapshot w into the trace together with its error
//     fraction on both subsets.
//  3. If the training subset has zero mismatches, stop — w is linearly
//     consistent with all training data.
//  4. If the update budget is exhausted, stop — the final w is simply
//     the last one tried, which is why the trace exists.
//  5. Otherwise take the first misclassified training row (stored
//     order) and apply the perceptron rule w ← w + target·x, where
//     target is +1 for the first label and -1 for the second. Loop.
//
// The trace therefore holds min(MaxIterations, rounds to zero training
// error) + 1 entries: the snapshot precedes both stop checks, so even
// MaxIterations==0 records the initial weights' errors once.
//
// Training never picks a "best" round; callers select explicitly via
// Trace.Best (minimal training error, earliest on ties).
//
// Determinism: same seed (or same InitialWeights) and same subsets ⇒
// identical traces. Runs share no state and may execute concurrently.
//
// Contracts:
//   - both subsets non-empty, same dimension, same label pair.
//   - opts.MaxIterations ≥ 0; opts.InitScale ≥ 0 and finite.
//   - opts.InitialWeights, when non-nil, has the training dimension.
//
// Errors: ErrBadOptions, ErrEmptyDataset, ErrDimensionMismatch,
// ErrLabelMismatch.
//
// Complexity: O(MaxIterations · (n_train + n_holdout) · d) time,
// O(MaxIterations · d) space for the trace.
func Train(train, holdout *dataset.Dataset, opts Options) (Trace, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if train == nil || train.Len() == 0 || holdout == nil || holdout.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if train.Dim() != holdout.Dim() {
		return nil, ErrDimensionMismatch
	}
	if train.Labels() != holdout.Labels() {
		return nil, ErrLabelMismatch
	}

	var (
		labels = train.Labels()
		dim    = train.Dim()
		w      []float64
	)
	if opts.InitialWeights != nil {
		if len(opts.InitialWeights) != dim {
			return nil, ErrDimensionMismatch
		}
		w = make([]float64, dim)
		copy(w, opts.InitialWeights)
	} else {
		w = initialWeights(dim, opts.InitScale, rngFromSeed(opts.Seed))
	}

	trace := make(Trace, 0, opts.MaxIterations+1)
	for iter := 0; ; iter++ {
		predTrain, err := Predict(w, train)
		if err != nil {
			return nil, err
		}
		predHold, err := Predict(w, holdout)
		if err != nil {
			return nil, err
		}

		missTrain, firstMiss, err := Mismatches(train, predTrain)
		if err != nil {
			return nil, err
		}
		missHold, _, err := Mismatches(holdout, predHold)
		if err != nil {
			return nil, err
		}

		trace = append(trace, TraceEntry{
			Weights:    snapshot(w),
			TrainErr:   float64(missTrain) / float64(train.Len()),
			HoldoutErr: float64(missHold) / float64(holdout.Len()),
		})

		if missTrain == 0 {
			// Linearly consistent with all training data.
			break
		}
		if iter == opts.MaxIterations {
			// Budget exhausted after recording this round.
			break
		}

		target, err := labels.Target(train.Label(firstMiss))
		if err != nil {
			return nil, err
		}
		// Perceptron rule: w ← w + target·x over the first mismatch.
		floats.AddScaled(w, target, train.Features(firstMiss))
	}

	return trace, nil
}

// snapshot copies a weight vector for safe keeping in the trace.
func snapshot(w []float64) []float64 {
	out := make([]float64, len(w))
	copy(out, w)

	return out
}

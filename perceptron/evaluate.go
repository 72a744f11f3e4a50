package perceptron

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/dataset"
)

// Classify maps a weight vector and a feature vector to one of the two
// labels: w·x > 0 predicts labels.First, otherwise labels.Second.
// The tie at w·x == 0 resolving to the second label is a deliberate,
// documented boundary policy.
//
// Pure function: no state, no side effects; identical inputs always
// yield the identical label.
//
// Errors: ErrDimensionMismatch (length disagreement or empty vectors),
// dataset.ErrBadLabelPair.
//
// Complexity: O(d).
func Classify(w, x []float64, labels dataset.LabelPair) (dataset.Label, error) {
	if len(w) == 0 || len(w) != len(x) {
		return "", ErrDimensionMismatch
	}
	if err := labels.Validate(); err != nil {
		return "", err
	}

	if floats.Dot(w, x) > 0 {
		return labels.First, nil
	}

	return labels.Second, nil
}

// Predict applies Classify to every sample of d in stored order and
// returns the parallel label slice.
//
// Errors: ErrEmptyDataset, ErrDimensionMismatch.
//
// Complexity: O(n·d).
func Predict(w []float64, d *dataset.Dataset) ([]dataset.Label, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if len(w) != d.Dim() {
		return nil, ErrDimensionMismatch
	}

	var (
		labels = d.Labels()
		out    = make([]dataset.Label, d.Len())
		err    error
	)
	for i := range out {
		out[i], err = Classify(w, d.Features(i), labels)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Mismatches compares a prediction slice against the dataset's true
// labels. It returns the mismatch count and the index of the first
// mismatch in stored row order, or -1 when every row agrees. The
// first-in-order policy is what makes training deterministic for a
// fixed dataset ordering.
//
// Errors: ErrEmptyDataset, ErrLengthMismatch.
//
// Complexity: O(n).
func Mismatches(d *dataset.Dataset, predicted []dataset.Label) (count, first int, err error) {
	if d == nil || d.Len() == 0 {
		return 0, -1, ErrEmptyDataset
	}
	if len(predicted) != d.Len() {
		return 0, -1, ErrLengthMismatch
	}

	first = -1
	for i := 0; i < d.Len(); i++ {
		if predicted[i] != d.Label(i) {
			if first == -1 {
				first = i
			}
			count++
		}
	}

	return count, first, nil
}

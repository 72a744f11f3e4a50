package perceptron_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/perceptron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coinLabels is the fixed label pair used across the perceptron tests.
var coinLabels = dataset.LabelPair{First: "$1", Second: "$2"}

// threeCoins returns the textbook three-point training set:
// two "$1" rows at (1,5,5) and (1,6,6), one "$2" row at (1,1,1).
func threeCoins(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(coinLabels, 3)
	require.NoError(t, err)
	require.NoError(t, ds.Append([]float64{1, 5, 5}, "$1"))
	require.NoError(t, ds.Append([]float64{1, 6, 6}, "$1"))
	require.NoError(t, ds.Append([]float64{1, 1, 1}, "$2"))

	return ds
}

// TestClassify_SignRule maps positive scores to the first label and
// non-positive scores to the second.
func TestClassify_SignRule(t *testing.T) {
	w := []float64{-3, 1, 1}

	got, err := perceptron.Classify(w, []float64{1, 5, 5}, coinLabels)
	require.NoError(t, err)
	assert.Equal(t, dataset.Label("$1"), got, "score 7 > 0 → first label")

	got, err = perceptron.Classify(w, []float64{1, 1, 1}, coinLabels)
	require.NoError(t, err)
	assert.Equal(t, dataset.Label("$2"), got, "score -1 ≤ 0 → second label")
}

// TestClassify_ZeroTie pins the documented boundary policy: a dot
// product of exactly zero yields the second label.
func TestClassify_ZeroTie(t *testing.T) {
	got, err := perceptron.Classify([]float64{0, 0, 0}, []float64{1, 9, 9}, coinLabels)
	require.NoError(t, err)
	assert.Equal(t, dataset.Label("$2"), got)

	// An exactly-cancelling sample behaves the same.
	got, err = perceptron.Classify([]float64{1, -1, 0}, []float64{2, 2, 5}, coinLabels)
	require.NoError(t, err)
	assert.Equal(t, dataset.Label("$2"), got)
}

// TestClassify_Deterministic verifies repeated calls with identical
// inputs yield identical labels.
func TestClassify_Deterministic(t *testing.T) {
	w := []float64{0.3, -0.7, 0.2}
	x := []float64{1, 2.5, 4.25}

	first, err := perceptron.Classify(w, x, coinLabels)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		got, cerr := perceptron.Classify(w, x, coinLabels)
		require.NoError(t, cerr)
		require.Equal(t, first, got)
	}
}

// TestClassify_Errors covers dimension and label-pair validation.
func TestClassify_Errors(t *testing.T) {
	_, err := perceptron.Classify([]float64{1, 2}, []float64{1, 2, 3}, coinLabels)
	assert.ErrorIs(t, err, perceptron.ErrDimensionMismatch)

	_, err = perceptron.Classify(nil, nil, coinLabels)
	assert.ErrorIs(t, err, perceptron.ErrDimensionMismatch)

	_, err = perceptron.Classify([]float64{1}, []float64{1}, dataset.LabelPair{First: "x", Second: "x"})
	assert.ErrorIs(t, err, dataset.ErrBadLabelPair)
}

// TestPredict_OrderPreserved checks the parallel label slice follows
// the dataset's stored row order.
func TestPredict_OrderPreserved(t *testing.T) {
	ds := threeCoins(t)

	pred, err := perceptron.Predict([]float64{-3, 1, 1}, ds)
	require.NoError(t, err)
	assert.Equal(t, []dataset.Label{"$1", "$1", "$2"}, pred)
}

// TestPredict_Errors covers empty datasets and dimension mismatches.
func TestPredict_Errors(t *testing.T) {
	empty, err := dataset.New(coinLabels, 3)
	require.NoError(t, err)
	_, err = perceptron.Predict([]float64{0, 0, 0}, empty)
	assert.ErrorIs(t, err, perceptron.ErrEmptyDataset)

	_, err = perceptron.Predict([]float64{0, 0, 0}, nil)
	assert.ErrorIs(t, err, perceptron.ErrEmptyDataset)

	ds := threeCoins(t)
	_, err = perceptron.Predict([]float64{0, 0}, ds)
	assert.ErrorIs(t, err, perceptron.ErrDimensionMismatch)
}

// TestMismatches_FirstInOrder returns the count and the earliest
// disagreeing row in stored order.
func TestMismatches_FirstInOrder(t *testing.T) {
	ds := threeCoins(t)

	// Zero weights score everything 0 → "$2": rows 0 and 1 disagree.
	pred, err := perceptron.Predict([]float64{0, 0, 0}, ds)
	require.NoError(t, err)

	count, first, err := perceptron.Mismatches(ds, pred)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, first, "first mismatch in stored row order")
}

// TestMismatches_NoneLeft reports count 0 and index -1 when every row
// agrees — the trainer's terminal condition.
func TestMismatches_NoneLeft(t *testing.T) {
	ds := threeCoins(t)

	pred, err := perceptron.Predict([]float64{-3, 1, 1}, ds)
	require.NoError(t, err)

	count, first, err := perceptron.Mismatches(ds, pred)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, -1, first)
}

// TestMismatches_Errors covers empty datasets and non-parallel
// prediction slices.
func TestMismatches_Errors(t *testing.T) {
	ds := threeCoins(t)

	_, _, err := perceptron.Mismatches(ds, []dataset.Label{"$1"})
	assert.ErrorIs(t, err, perceptron.ErrLengthMismatch)

	empty, err := dataset.New(coinLabels, 3)
	require.NoError(t, err)
	_, _, err = perceptron.Mismatches(empty, nil)
	assert.ErrorIs(t, err, perceptron.ErrEmptyDataset)
}

// TestUpdateStep_FlipsPrediction walks the textbook one-step scenario:
// from zero weights, folding the first mismatch (1,5,5)·(+1) into w
// must flip that row's prediction to "$1".
func TestUpdateStep_FlipsPrediction(t *testing.T) {
	ds := threeCoins(t)
	w := []float64{0, 0, 0}

	pred, err := perceptron.Predict(w, ds)
	require.NoError(t, err)
	_, first, err := perceptron.Mismatches(ds, pred)
	require.NoError(t, err)
	require.Equal(t, 0, first)

	target, err := coinLabels.Target(ds.Label(first))
	require.NoError(t, err)
	require.Equal(t, 1.0, target)

	for i, v := range ds.Features(first) {
		w[i] += target * v
	}
	assert.Equal(t, []float64{1, 5, 5}, w)

	got, err := perceptron.Classify(w, ds.Features(first), coinLabels)
	require.NoError(t, err)
	assert.Equal(t, dataset.Label("$1"), got, "the updated weights must reclassify the update target")
}

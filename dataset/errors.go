package dataset

import "errors"

var (
	// ErrBadLabelPair indicates a label pair with empty or identical labels.
	ErrBadLabelPair = errors.New("dataset: label pair must hold two distinct non-empty labels")
	// ErrUnknownLabel indicates a label outside the dataset's closed two-value set.
	ErrUnknownLabel = errors.New("dataset: label not in the dataset's label pair")
	// ErrDimensionMismatch indicates a feature vector whose length disagrees with the dataset dimension.
	ErrDimensionMismatch = errors.New("dataset: feature vector length must equal the dataset dimension")
	// ErrBadDimension indicates a requested dataset dimension below one.
	ErrBadDimension = errors.New("dataset: dimension must be at least 1")
	// ErrEmptyDataset indicates an operation that requires at least one sample.
	ErrEmptyDataset = errors.New("dataset: dataset must contain at least one sample")
	// ErrBadFraction indicates a held-out fraction outside [0, 1).
	ErrBadFraction = errors.New("dataset: held-out fraction must be in [0, 1)")
	// ErrBadColumn indicates a CSV column index that is negative, duplicated, or out of range.
	ErrBadColumn = errors.New("dataset: invalid CSV column selection")
)

package perceptron

import "errors"

var (
	// ErrDimensionMismatch indicates a weight vector and feature vector
	// (or two datasets) that disagree on dimension.
	ErrDimensionMismatch = errors.New("perceptron: weight and feature dimensions must agree")
	// ErrEmptyDataset indicates a training or held-out subset with no
	// samples; error fractions would divide by zero.
	ErrEmptyDataset = errors.New("perceptron: dataset must contain at least one sample")
	// ErrLengthMismatch indicates a prediction slice whose length differs
	// from the dataset it is matched against.
	ErrLengthMismatch = errors.New("perceptron: predictions must be parallel to the dataset")
	// ErrLabelMismatch indicates training and held-out subsets over
	// different label pairs.
	ErrLabelMismatch = errors.New("perceptron: training and held-out subsets must share one label pair")
	// ErrBadOptions indicates a negative iteration budget or invalid
	// initialization scale.
	ErrBadOptions = errors.New("perceptron: invalid options")
)

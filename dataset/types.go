package dataset

// Label is a categorical class name, e.g. "$1" or "$2".
type Label string

// LabelPair is the closed two-value label set of a Dataset.
// The order matters: the linear evaluator maps a positive score to
// First and a non-positive score to Second.
type LabelPair struct {
	First  Label
	Second Label
}

// Validate reports whether the pair holds two distinct non-empty labels.
//
// Errors: ErrBadLabelPair.
//
// Complexity: O(1).
func (p LabelPair) Validate() error {
	if p.First == "" || p.Second == "" || p.First == p.Second {
		return ErrBadLabelPair
	}

	return nil
}

// Contains reports whether l is one of the pair's two labels.
func (p LabelPair) Contains(l Label) bool {
	return l == p.First || l == p.Second
}

// Target maps a label to its perceptron update sign: +1 for First,
// -1 for Second.
//
// Errors: ErrUnknownLabel for labels outside the pair.
//
// Complexity: O(1).
func (p LabelPair) Target(l Label) (float64, error) {
	switch l {
	case p.First:
		return 1, nil
	case p.Second:
		return -1, nil
	default:
		return 0, ErrUnknownLabel
	}
}

// Sample pairs a fixed-dimension feature vector with a label.
// When loaded through LoadCSV with AddBias=true, Features[0] is the
// constant bias term 1.
type Sample struct {
	Features []float64
	Label    Label
}

// Dataset is an ordered, append-only collection of Samples sharing a
// single feature dimension and a closed two-value label set.
// Row order is stable and significant: downstream consumers rely on it
// for deterministic tie-breaking.
//
// Samples are immutable once appended; Append stores a private copy of
// the feature vector.
type Dataset struct {
	labels  LabelPair
	dim     int
	samples []Sample
}

// New returns an empty Dataset over the given label pair and feature
// dimension.
//
// Errors: ErrBadLabelPair, ErrBadDimension.
//
// Complexity: O(1).
func New(labels LabelPair, dim int) (*Dataset, error) {
	if err := labels.Validate(); err != nil {
		return nil, err
	}
	if dim < 1 {
		return nil, ErrBadDimension
	}

	return &Dataset{labels: labels, dim: dim}, nil
}

// Append adds one sample to the end of the dataset, copying features.
//
// Errors: ErrDimensionMismatch, ErrUnknownLabel.
//
// Complexity: O(d).
func (d *Dataset) Append(features []float64, label Label) error {
	if len(features) != d.dim {
		return ErrDimensionMismatch
	}
	if !d.labels.Contains(label) {
		return ErrUnknownLabel
	}

	buf := make([]float64, d.dim)
	copy(buf, features)
	d.samples = append(d.samples, Sample{Features: buf, Label: label})

	return nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.samples) }

// Dim returns the feature dimension shared by all samples.
func (d *Dataset) Dim() int { return d.dim }

// Labels returns the dataset's closed two-value label set.
func (d *Dataset) Labels() LabelPair { return d.labels }

// Sample returns a defensive copy of the i-th sample.
// Panics if i is out of range, mirroring slice indexing.
func (d *Dataset) Sample(i int) Sample {
	s := d.samples[i]
	buf := make([]float64, len(s.Features))
	copy(buf, s.Features)

	return Sample{Features: buf, Label: s.Label}
}

// Features returns the i-th feature vector without copying.
// The returned slice is owned by the Dataset; callers must not modify
// it. Panics if i is out of range.
func (d *Dataset) Features(i int) []float64 { return d.samples[i].Features }

// Label returns the i-th sample's label.
// Panics if i is out of range.
func (d *Dataset) Label(i int) Label { return d.samples[i].Label }

// Samples returns a copy of the sample slice. Feature vectors are
// shared (samples are immutable), the slice itself is the caller's.
//
// Complexity: O(n).
func (d *Dataset) Samples() []Sample {
	out := make([]Sample, len(d.samples))
	copy(out, d.samples)

	return out
}

// append adds an already-owned sample without re-copying features.
// Internal fast path for Split; safe because samples are immutable.
func (d *Dataset) append(s Sample) {
	d.samples = append(d.samples, s)
}

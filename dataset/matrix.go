package dataset

import "gonum.org/v1/gonum/mat"

// FeatureMatrix exports the dataset's features as a dense n×d matrix,
// one row per sample in stored order. The matrix owns its backing
// storage; mutating it does not touch the dataset.
//
// Errors: ErrEmptyDataset.
//
// Complexity: O(n·d) time and space.
func (d *Dataset) FeatureMatrix() (*mat.Dense, error) {
	n := d.Len()
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	m := mat.NewDense(n, d.dim, nil)
	for i, s := range d.samples {
		m.SetRow(i, s.Features)
	}

	return m, nil
}

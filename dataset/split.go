package dataset

import "math/rand"

// defaultSplitSeed is the fixed "zero" seed used when callers pass
// seed==0. Arbitrary but stable, so default splits are reproducible.
const defaultSplitSeed int64 = 1

// splitRNG returns a deterministic *rand.Rand for Split.
// Policy: seed==0 ⇒ defaultSplitSeed; otherwise the seed verbatim.
func splitRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSplitSeed
	}

	return rand.New(rand.NewSource(s))
}

// Split partitions the dataset into a training subset and a held-out
// subset by drawing one uniform variate per row: rows whose draw falls
// below holdoutFraction go to the held-out subset, the rest to
// training. Both subsets preserve the dataset's row order, and the
// partition is fixed by the seed — the same seed always reproduces the
// same split.
//
// A fraction of 0 sends every row to training; the held-out subset may
// then be empty, which the trainer rejects. Feature vectors are shared
// with the receiver (samples are immutable), so Split is O(n) and does
// not duplicate feature storage.
//
// Errors: ErrEmptyDataset, ErrBadFraction.
//
// Complexity: O(n) time, O(n) space.
func (d *Dataset) Split(holdoutFraction float64, seed int64) (train, holdout *Dataset, err error) {
	if d.Len() == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if holdoutFraction < 0 || holdoutFraction >= 1 {
		return nil, nil, ErrBadFraction
	}

	rng := splitRNG(seed)
	train = &Dataset{labels: d.labels, dim: d.dim}
	holdout = &Dataset{labels: d.labels, dim: d.dim}

	for _, s := range d.samples {
		if rng.Float64() < holdoutFraction {
			holdout.append(s)
		} else {
			train.append(s)
		}
	}

	return train, holdout, nil
}

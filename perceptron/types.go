package perceptron

import "math"

// Options configures a pocket-perceptron training run.
//
// Fields:
//   - MaxIterations  — update budget. The trace always holds one entry
//     more than the number of updates performed (the initial weights'
//     errors are recorded before the first update), so MaxIterations=0
//     still yields a single-entry trace.
//   - Seed           — explicit RNG seed for weight initialization.
//     Seed==0 selects a fixed default seed; runs are reproducible
//     either way.
//   - InitScale      — initial weights are uniform in [0, InitScale).
//     InitScale==0 yields the zero vector.
//   - InitialWeights — optional explicit starting weights (copied).
//     When non-nil it overrides the random initialization; length must
//     equal the training dimension.
type Options struct {
	MaxIterations  int
	Seed           int64
	InitScale      float64
	InitialWeights []float64
}

// DefaultOptions returns the canonical training configuration:
// a 100-update budget, the fixed default seed, unit-scale random
// initialization.
func DefaultOptions() Options {
	return Options{MaxIterations: 100, Seed: 0, InitScale: 1}
}

// validate enforces the Options contracts shared by Train.
func (o Options) validate() error {
	if o.MaxIterations < 0 {
		return ErrBadOptions
	}
	if o.InitScale < 0 || math.IsNaN(o.InitScale) || math.IsInf(o.InitScale, 0) {
		return ErrBadOptions
	}

	return nil
}

// TraceEntry records one training round: the weight vector as it stood
// entering the round (a private snapshot, safe to keep), and the error
// fractions of that vector on the training and held-out subsets.
type TraceEntry struct {
	Weights    []float64
	TrainErr   float64
	HoldoutErr float64
}

// Trace is the per-iteration record of a training run, in round order.
// Entry 0 describes the initial weights; the last entry describes the
// final weights. Length is min(MaxIterations, rounds to zero training
// error) + 1.
type Trace []TraceEntry

// Best returns the pocket selection: the index and entry with minimal
// training error, taking the earliest index on ties. An empty trace
// returns (-1, TraceEntry{}).
//
// Complexity: O(len(t)).
func (t Trace) Best() (int, TraceEntry) {
	if len(t) == 0 {
		return -1, TraceEntry{}
	}

	best := 0
	for i := 1; i < len(t); i++ {
		if t[i].TrainErr < t[best].TrainErr {
			best = i
		}
	}

	return best, t[best]
}

// FinalWeights returns the last recorded weight vector, or nil for an
// empty trace. The slice is the trace's own snapshot; treat it as
// read-only.
func (t Trace) FinalWeights() []float64 {
	if len(t) == 0 {
		return nil
	}

	return t[len(t)-1].Weights
}

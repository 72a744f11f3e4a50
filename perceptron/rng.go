// Package perceptron - RNG utilities for weight initialization.
//
// This file centralizes deterministic random generation for training.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial weights ⇒ identical traces.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from errors.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Train call builds its
//     own RNG from Options.Seed, so independent runs never share one.
package perceptron

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// initialWeights draws a length-d weight vector with components uniform
// in [0, scale). scale==0 yields the zero vector (the RNG is still
// consumed d times so traces stay seed-stable across scales).
//
// Complexity: O(d).
func initialWeights(d int, scale float64, rng *rand.Rand) []float64 {
	w := make([]float64, d)
	for i := range w {
		w[i] = rng.Float64() * scale
	}

	return w
}

// Package dataset provides the labeled-point store behind lvlearn's
// linear classifiers: ordered samples over a closed two-value label
// set, with CSV ingest, bias injection, and reproducible splitting.
//
// 🚀 What is a Dataset?
//
//	An append-only, ordered collection of (feature vector, label)
//	samples sharing one fixed dimension. Row order is part of the
//	contract: training picks "the first misclassified row", so a
//	stable order is what makes runs reproducible.
//
// ✨ Key features:
//   - closed label set: exactly two labels, fixed before any append
//   - immutable samples: feature vectors are copied in, never mutated
//   - LoadCSV: header skip, column selection, optional bias column
//     (prepend constant 1), float64 parsing for mixed-type columns
//   - Split: per-row uniform draw against an explicit seed — same
//     seed, same partition, both halves in original row order
//   - FeatureMatrix: gonum mat.Dense export for downstream analysis
//
// ⚙️ Usage:
//
//	labels := dataset.LabelPair{First: "$1", Second: "$2"}
//	ds, err := dataset.LoadCSV(f, dataset.DefaultCSVOptions(labels))
//	if err != nil { ... }
//	train, holdout, err := ds.Split(0.25, 42)
//
// All failures are sentinel errors (errors.go); match with errors.Is.
package dataset

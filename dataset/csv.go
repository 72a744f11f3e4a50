package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVOptions configures LoadCSV.
//
// Fields:
//   - Labels         — the closed two-value label set; every record's
//     label must be one of the two.
//   - FeatureColumns — zero-based indices of the numeric feature
//     columns, in the order they become features.
//   - LabelColumn    — zero-based index of the categorical label column.
//   - SkipHeader     — drop the first record before parsing.
//   - AddBias        — prepend a constant 1 feature to every sample,
//     so the weight vector's first component acts as the bias term.
type CSVOptions struct {
	Labels         LabelPair
	FeatureColumns []int
	LabelColumn    int
	SkipHeader     bool
	AddBias        bool
}

// DefaultCSVOptions returns options for the common two-feature layout:
// columns 0 and 1 are features, column 2 is the label, a header row is
// present, and a bias term is injected.
func DefaultCSVOptions(labels LabelPair) CSVOptions {
	return CSVOptions{
		Labels:         labels,
		FeatureColumns: []int{0, 1},
		LabelColumn:    2,
		SkipHeader:     true,
		AddBias:        true,
	}
}

// LoadCSV reads delimited text from r into a Dataset, preserving record
// order. Integer and float feature cells both parse as float64, so
// mixed-type columns never truncate.
//
// Contracts:
//   - opts.FeatureColumns is non-empty, with unique non-negative indices.
//   - opts.LabelColumn is non-negative and not a feature column.
//   - every record has enough columns for the selection.
//
// Errors: ErrBadLabelPair, ErrBadColumn, ErrUnknownLabel (wrapped with
// the offending record number), and wrapped csv/strconv errors.
//
// Complexity: O(records · d).
func LoadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	if err := validateCSVOptions(opts); err != nil {
		return nil, err
	}

	dim := len(opts.FeatureColumns)
	if opts.AddBias {
		dim++
	}
	ds, err := New(opts.Labels, dim)
	if err != nil {
		return nil, err
	}

	var (
		reader = csv.NewReader(r)
		record []string
		line   int
	)
	// Column counts are validated per record against the selection.
	reader.FieldsPerRecord = -1

	for {
		record, err = reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read CSV: %w", err)
		}
		line++
		if opts.SkipHeader && line == 1 {
			continue
		}

		features := make([]float64, 0, dim)
		if opts.AddBias {
			features = append(features, 1)
		}
		for _, col := range opts.FeatureColumns {
			if col >= len(record) {
				return nil, fmt.Errorf("dataset: record %d: column %d: %w", line, col, ErrBadColumn)
			}
			v, perr := strconv.ParseFloat(record[col], 64)
			if perr != nil {
				return nil, fmt.Errorf("dataset: record %d: column %d: %w", line, col, perr)
			}
			features = append(features, v)
		}

		if opts.LabelColumn >= len(record) {
			return nil, fmt.Errorf("dataset: record %d: column %d: %w", line, opts.LabelColumn, ErrBadColumn)
		}
		label := Label(record[opts.LabelColumn])
		if aerr := ds.Append(features, label); aerr != nil {
			return nil, fmt.Errorf("dataset: record %d: %w", line, aerr)
		}
	}

	return ds, nil
}

// validateCSVOptions enforces the LoadCSV column contracts.
func validateCSVOptions(opts CSVOptions) error {
	if err := opts.Labels.Validate(); err != nil {
		return err
	}
	if len(opts.FeatureColumns) == 0 || opts.LabelColumn < 0 {
		return ErrBadColumn
	}
	seen := make(map[int]struct{}, len(opts.FeatureColumns))
	for _, col := range opts.FeatureColumns {
		if col < 0 || col == opts.LabelColumn {
			return ErrBadColumn
		}
		if _, dup := seen[col]; dup {
			return ErrBadColumn
		}
		seen[col] = struct{}{}
	}

	return nil
}

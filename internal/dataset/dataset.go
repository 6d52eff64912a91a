// Package dataset parses uploaded tabular CSV content into a header plus
// rows and derives per-column types the way the training pipeline needs
// them: integer, floating point, or plain string.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Column dtypes as reported in the experiment schema string.
const (
	DTypeInt    = "int64"
	DTypeFloat  = "float64"
	DTypeString = "string"
)

var (
	// ErrMalformed is returned when the content does not parse as CSV.
	ErrMalformed = errors.New("malformed csv content")
	// ErrEmpty is returned when the CSV has a header but no data rows,
	// or no content at all.
	ErrEmpty = errors.New("empty csv file")
)

// Dataset is a parsed CSV: a header row plus raw string cells.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Parse reads CSV content from r. The first record is the header. Ragged
// rows fail with ErrMalformed; a missing header or zero data rows fail
// with ErrEmpty.
func Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(records) == 0 {
		return nil, ErrEmpty
	}
	if len(records) < 2 {
		return nil, ErrEmpty
	}

	return &Dataset{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// HasColumn reports whether name is one of the header columns.
func (d *Dataset) HasColumn(name string) bool {
	return d.columnIndex(name) >= 0
}

func (d *Dataset) columnIndex(name string) int {
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// DType infers the type of the column at index i across all rows.
func (d *Dataset) DType(i int) string {
	isInt := true
	isFloat := true

	for _, row := range d.Rows {
		cell := row[i]
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			isFloat = false
		}
	}

	switch {
	case isInt:
		return DTypeInt
	case isFloat:
		return DTypeFloat
	default:
		return DTypeString
	}
}

// Split separates the target column from the feature columns and converts
// the features to a numeric matrix. Feature column order follows the header.
// Returns the feature matrix, the raw target values, the feature column
// names and their dtypes.
func (d *Dataset) Split(target string) (features [][]float64, labels []string, featureCols []string, dtypes []string, err error) {
	targetIdx := d.columnIndex(target)
	if targetIdx < 0 {
		return nil, nil, nil, nil, fmt.Errorf("target column %q not in file", target)
	}

	for i, col := range d.Columns {
		if i == targetIdx {
			continue
		}
		dtype := d.DType(i)
		if dtype == DTypeString {
			return nil, nil, nil, nil, fmt.Errorf("feature column %q is not numeric", col)
		}
		featureCols = append(featureCols, col)
		dtypes = append(dtypes, dtype)
	}

	features = make([][]float64, 0, len(d.Rows))
	labels = make([]string, 0, len(d.Rows))

	for _, row := range d.Rows {
		vec := make([]float64, 0, len(row)-1)
		for i, cell := range row {
			if i == targetIdx {
				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, nil, nil, nil, fmt.Errorf("non-numeric value %q in column %q", cell, d.Columns[i])
			}
			vec = append(vec, v)
		}
		features = append(features, vec)
		labels = append(labels, row[targetIdx])
	}

	return features, labels, featureCols, dtypes, nil
}

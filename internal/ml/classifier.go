package ml

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNoTrainingData is returned when Fit is called with no rows.
	ErrNoTrainingData = errors.New("no training data")
	// ErrDimensionMismatch is returned when a prediction input does not
	// match the trained feature width.
	ErrDimensionMismatch = errors.New("input width does not match trained feature count")
)

// NearestCentroid is a stock nearest-centroid classifier: Fit computes one
// mean vector per encoded class, Predict returns the class whose centroid
// is closest in euclidean distance.
type NearestCentroid struct {
	NumFeatures int
	Centroids   [][]float64
	ClassIndex  []int // encoded class per centroid
}

// Fit trains the classifier on a numeric feature matrix and encoded labels.
func (m *NearestCentroid) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 || len(features) != len(labels) {
		return ErrNoTrainingData
	}

	m.NumFeatures = len(features[0])

	sums := make(map[int][]float64)
	counts := make(map[int]int)

	for i, row := range features {
		if len(row) != m.NumFeatures {
			return fmt.Errorf("row %d has %d features, want %d", i, len(row), m.NumFeatures)
		}
		class := labels[i]
		if sums[class] == nil {
			sums[class] = make([]float64, m.NumFeatures)
		}
		floats.Add(sums[class], row)
		counts[class]++
	}

	m.Centroids = m.Centroids[:0]
	m.ClassIndex = m.ClassIndex[:0]

	// Classes were encoded densely starting at zero, keep that order.
	for class := 0; class < len(sums); class++ {
		sum, ok := sums[class]
		if !ok {
			return fmt.Errorf("encoded labels are not dense, missing class %d", class)
		}
		floats.Scale(1/float64(counts[class]), sum)
		m.Centroids = append(m.Centroids, sum)
		m.ClassIndex = append(m.ClassIndex, class)
	}

	return nil
}

// Predict returns the encoded class index for a single feature vector.
func (m *NearestCentroid) Predict(input []float64) (int, error) {
	if len(input) != m.NumFeatures {
		return 0, ErrDimensionMismatch
	}
	if len(m.Centroids) == 0 {
		return 0, ErrNoTrainingData
	}

	best := 0
	bestDist := floats.Distance(input, m.Centroids[0], 2)
	for i := 1; i < len(m.Centroids); i++ {
		if d := floats.Distance(input, m.Centroids[i], 2); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return m.ClassIndex[best], nil
}

// Encode serializes the fitted model with gob.
func (m *NearestCentroid) Encode(w io.Writer) error {
	return gob.NewEncoder(w).Encode(m)
}

// Decode deserializes a model previously written with Encode.
func Decode(r io.Reader) (*NearestCentroid, error) {
	var m NearestCentroid
	if err := gob.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	return &m, nil
}

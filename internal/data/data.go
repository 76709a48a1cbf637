package data

import (
	"errors"
	"fmt"
	"sort"

	"github.com/drakos74/porcino/internal/math/ml"
)

var (
	// ErrMissingColumn is returned when a row is shorter than a referenced column.
	ErrMissingColumn = errors.New("row is missing column")
	// ErrSizeMismatch is returned when parameters and labels do not line up.
	ErrSizeMismatch = errors.New("parameters and labels differ in size")
	// ErrUnknownSet is returned for a toy set name that does not exist.
	ErrUnknownSet = errors.New("unknown data set")
)

// Sampled splits every row into a training sample.
// The params columns form the input and the classes columns the expected output,
// both in column order. A column listed twice is picked once.
func Sampled(rows [][]float64, params, classes []int) ([]ml.TrainingSample, error) {
	params = columnSet(params)
	classes = columnSet(classes)
	samples := make([]ml.TrainingSample, len(rows))
	for i, row := range rows {
		input, err := pick(row, params)
		if err != nil {
			return nil, fmt.Errorf("could not read input of row %d: %w", i, err)
		}
		output, err := pick(row, classes)
		if err != nil {
			return nil, fmt.Errorf("could not read output of row %d: %w", i, err)
		}
		samples[i] = ml.NewSample(input, output)
	}
	return samples, nil
}

// OneHot encodes the labels as one-hot vectors.
// Classes are indexed in order of first appearance and returned in that order.
func OneHot(labels []string) ([][]float64, []string) {
	index := make(map[string]int)
	classes := make([]string, 0)
	for _, label := range labels {
		if _, ok := index[label]; !ok {
			index[label] = len(classes)
			classes = append(classes, label)
		}
	}
	encoded := make([][]float64, len(labels))
	for i, label := range labels {
		v := make([]float64, len(classes))
		v[index[label]] = 1
		encoded[i] = v
	}
	return encoded, classes
}

// Labelled creates the training samples for the given parameters and class labels.
func Labelled(params [][]float64, labels []string) ([]ml.TrainingSample, []string, error) {
	if len(params) != len(labels) {
		return nil, nil, fmt.Errorf("%d parameter rows for %d labels: %w", len(params), len(labels), ErrSizeMismatch)
	}
	encoded, classes := OneHot(labels)
	samples := make([]ml.TrainingSample, len(params))
	for i := range params {
		samples[i] = ml.NewSample(params[i], encoded[i])
	}
	return samples, classes, nil
}

func pick(row []float64, columns []int) ([]float64, error) {
	values := make([]float64, len(columns))
	for i, c := range columns {
		if c < 0 || c >= len(row) {
			return nil, fmt.Errorf("column %d of %d: %w", c, len(row), ErrMissingColumn)
		}
		values[i] = row[c]
	}
	return values, nil
}

// columnSet returns the distinct columns in ascending order.
func columnSet(columns []int) []int {
	cc := append([]int(nil), columns...)
	sort.Ints(cc)
	set := cc[:0]
	for _, c := range cc {
		if len(set) == 0 || c != set[len(set)-1] {
			set = append(set, c)
		}
	}
	return set
}

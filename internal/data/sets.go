package data

import (
	"fmt"

	"github.com/drakos74/porcino/internal/math/ml"
)

var sets = map[string]func() []ml.TrainingSample{
	"xor":       XOR,
	"and":       AND,
	"separable": Separable,
}

// Set returns the toy set of the given name.
func Set(name string) ([]ml.TrainingSample, error) {
	set, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", name, ErrUnknownSet)
	}
	return set(), nil
}

func truthTable(f func(a, b bool) bool) []ml.TrainingSample {
	params := make([][]float64, 0, 4)
	labels := make([]string, 0, 4)
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			params = append(params, []float64{value(a), value(b)})
			labels = append(labels, fmt.Sprintf("%v", f(a, b)))
		}
	}
	samples, _, _ := Labelled(params, labels)
	return samples
}

func value(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// XOR is the exclusive-or truth table with one-hot [false, true] outputs.
func XOR() []ml.TrainingSample {
	return truthTable(func(a, b bool) bool {
		return a != b
	})
}

// AND is the conjunction truth table with one-hot [false, true] outputs.
func AND() []ml.TrainingSample {
	return truthTable(func(a, b bool) bool {
		return a && b
	})
}

// Separable is a linearly separable two-class set.
func Separable() []ml.TrainingSample {
	samples, _, _ := Labelled([][]float64{
		{0.9, 0.1}, {0.1, 0.9},
		{0.8, 0.3}, {0.3, 0.8},
		{1, 0}, {0, 1},
		{0.7, 0.2}, {0.2, 0.7},
	}, []string{"a", "b", "a", "b", "a", "b", "a", "b"})
	return samples
}

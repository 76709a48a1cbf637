package ml

import (
	"gonum.org/v1/gonum/mat"
)

// TrainingSample pairs an input column with the output the network is expected to produce.
type TrainingSample struct {
	Input          *mat.Dense
	ExpectedOutput *mat.Dense
}

// NewSample creates a training sample out of the given input and expected output values.
// The values are copied, both slices must be non-empty.
func NewSample(input, expected []float64) TrainingSample {
	return TrainingSample{
		Input:          column(input),
		ExpectedOutput: column(expected),
	}
}

// column creates a column vector with a copy of the given values.
func column(vv []float64) *mat.Dense {
	data := make([]float64, len(vv))
	copy(data, vv)
	return mat.NewDense(len(data), 1, data)
}

package ml

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is a fully connected feed-forward layer.
// Zs and State hold the pre-activation and activation values of the most recent
// FeedForward call and are overwritten on every call.
type Layer struct {
	Weights    *mat.Dense
	Biases     *mat.Dense
	Zs         *mat.Dense
	State      *mat.Dense
	Activation Activation
}

// NewLayer creates a layer of the given number of neurons fed by the given number of inputs.
func NewLayer(inputs, neurons int, init InitMethod, activation Activation) *Layer {
	return &Layer{
		Weights:    init.weights(neurons, inputs),
		Biases:     mat.NewDense(neurons, 1, nil),
		Zs:         mat.NewDense(neurons, 1, nil),
		State:      mat.NewDense(neurons, 1, nil),
		Activation: activation,
	}
}

// FeedForward computes the layer output for the given input column and caches
// the intermediate results needed for backpropagation.
func (l *Layer) FeedForward(input mat.Matrix) *mat.Dense {
	zs := new(mat.Dense)
	zs.Mul(l.Weights, input)
	zs.Add(zs, l.Biases)
	l.Zs = zs
	l.State = l.Activation.Function(zs)
	return l.State
}

// Neurons returns the number of neurons of the layer.
func (l *Layer) Neurons() int {
	r, _ := l.Weights.Dims()
	return r
}

// Inputs returns the width of the input the layer expects.
func (l *Layer) Inputs() int {
	_, c := l.Weights.Dims()
	return c
}

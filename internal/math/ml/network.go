package ml

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewLayers is returned when a network is described by less than an input and an output layer.
	ErrTooFewLayers = errors.New("network needs at least an input and an output layer")
	// ErrInvalidLayer is returned for layers without neurons.
	ErrInvalidLayer = errors.New("layer must have at least one neuron")
)

// LayerSettings describes one layer of the network.
// The activation of the first (input) settings is not used.
type LayerSettings struct {
	Neurons    int        `json:"neurons"`
	Activation Activation `json:"activation"`
}

// Network is a feed-forward network of fully connected layers.
type Network struct {
	layers []*Layer
}

// New creates a new network out of consecutive layer settings.
// The first settings define the input width, every following one adds a layer.
func New(settings []LayerSettings, init InitMethod) (*Network, error) {
	if len(settings) < 2 {
		return nil, fmt.Errorf("could not create network from %d layer settings: %w", len(settings), ErrTooFewLayers)
	}
	for i, s := range settings {
		if s.Neurons <= 0 {
			return nil, fmt.Errorf("could not create layer %d with %d neurons: %w", i, s.Neurons, ErrInvalidLayer)
		}
	}
	layers := make([]*Layer, len(settings)-1)
	for i := 1; i < len(settings); i++ {
		layers[i-1] = NewLayer(settings[i-1].Neurons, settings[i].Neurons, init, settings[i].Activation)
	}
	return &Network{layers: layers}, nil
}

// Layers returns the layers of the network in feed-forward order.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// InputSize returns the width of the network input.
func (n *Network) InputSize() int {
	return n.layers[0].Inputs()
}

// OutputSize returns the width of the network output.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].Neurons()
}

// Output returns the cached state of the last layer.
func (n *Network) Output() *mat.Dense {
	return n.layers[len(n.layers)-1].State
}

// ProcessData feeds the input column through all layers and returns the network output.
// It must be called before CalculateGradient for the same sample.
func (n *Network) ProcessData(input mat.Matrix) *mat.Dense {
	if r, c := input.Dims(); r != n.InputSize() || c != 1 {
		panic(fmt.Sprintf("input must have shape '(%d, 1)' vs '(%d, %d)'", n.InputSize(), r, c))
	}
	out := input
	for _, layer := range n.layers {
		out = layer.FeedForward(out)
	}
	return n.Output()
}

// CalculateGradient computes the bias and weight gradients of the squared error
// for the given sample, based on the layer caches of the last ProcessData call.
func (n *Network) CalculateGradient(input, expected mat.Matrix) (nablaB, nablaW []*mat.Dense) {
	size := len(n.layers)
	nablaB = make([]*mat.Dense, size)
	nablaW = make([]*mat.Dense, size)

	last := n.layers[size-1]
	mustHaveSameShape(last.State, expected)

	delta := new(mat.Dense)
	delta.Sub(last.State, expected)
	delta.MulElem(delta, last.Activation.Derivative(last.Zs, last.State))

	for l := size - 1; l >= 0; l-- {
		layer := n.layers[l]
		if l < size-1 {
			next := new(mat.Dense)
			next.Mul(n.layers[l+1].Weights.T(), delta)
			next.MulElem(next, layer.Activation.Derivative(layer.Zs, layer.State))
			delta = next
		}
		// the first layer is fed by the raw input
		prev := input
		if l > 0 {
			prev = n.layers[l-1].State
		}
		nw := new(mat.Dense)
		nw.Mul(delta, prev.T())
		nablaB[l] = mat.DenseCopyOf(delta)
		nablaW[l] = nw
	}
	return nablaB, nablaW
}

// GradientDescent performs one full-batch update over the given samples.
// NOTE : gradients are summed over the samples, not averaged,
// so eta needs to be scaled down with the size of the training set.
func (n *Network) GradientDescent(samples []TrainingSample, eta float64) {
	nablaB := make([]*mat.Dense, len(n.layers))
	nablaW := make([]*mat.Dense, len(n.layers))
	for i, layer := range n.layers {
		r, c := layer.Weights.Dims()
		nablaB[i] = mat.NewDense(r, 1, nil)
		nablaW[i] = mat.NewDense(r, c, nil)
	}

	for _, sample := range samples {
		n.ProcessData(sample.Input)
		deltaB, deltaW := n.CalculateGradient(sample.Input, sample.ExpectedOutput)
		for i := range n.layers {
			nablaB[i].Add(nablaB[i], deltaB[i])
			nablaW[i].Add(nablaW[i], deltaW[i])
		}
	}

	for i, layer := range n.layers {
		nablaW[i].Scale(eta, nablaW[i])
		layer.Weights.Sub(layer.Weights, nablaW[i])
		nablaB[i].Scale(eta, nablaB[i])
		layer.Biases.Sub(layer.Biases, nablaB[i])
	}
}

// Evaluate returns the SSE of the network output for each of the given samples.
func (n *Network) Evaluate(samples []TrainingSample) []float64 {
	sse := make([]float64, len(samples))
	for i, sample := range samples {
		sse[i] = SSE(n.ProcessData(sample.Input), sample.ExpectedOutput)
	}
	return sse
}

// Classify counts the samples for which the strongest output neuron
// matches the strongest expected output.
func (n *Network) Classify(samples []TrainingSample) (correct int) {
	for _, sample := range samples {
		output := mat.Col(nil, 0, n.ProcessData(sample.Input))
		expected := mat.Col(nil, 0, sample.ExpectedOutput)
		if floats.MaxIdx(output) == floats.MaxIdx(expected) {
			correct++
		}
	}
	return correct
}

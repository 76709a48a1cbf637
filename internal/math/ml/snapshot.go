package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LayerSnapshot is the serialisable form of a layer's parameters.
type LayerSnapshot struct {
	Neurons    int        `json:"neurons"`
	Inputs     int        `json:"inputs"`
	Activation Activation `json:"activation"`
	Weights    []float64  `json:"weights"`
	Biases     []float64  `json:"biases"`
}

// Snapshot is a point-in-time copy of the network parameters.
type Snapshot struct {
	Layers []LayerSnapshot `json:"layers"`
}

// Snapshot copies the network parameters.
func (n *Network) Snapshot() Snapshot {
	layers := make([]LayerSnapshot, len(n.layers))
	for i, layer := range n.layers {
		layers[i] = LayerSnapshot{
			Neurons:    layer.Neurons(),
			Inputs:     layer.Inputs(),
			Activation: layer.Activation,
			Weights:    flatten(layer.Weights),
			Biases:     flatten(layer.Biases),
		}
	}
	return Snapshot{Layers: layers}
}

// FromSnapshot re-creates a network out of the given snapshot.
func FromSnapshot(s Snapshot) (*Network, error) {
	if len(s.Layers) == 0 {
		return nil, fmt.Errorf("could not restore network without layers: %w", ErrTooFewLayers)
	}
	layers := make([]*Layer, len(s.Layers))
	for i, ls := range s.Layers {
		if ls.Neurons <= 0 || ls.Inputs <= 0 {
			return nil, fmt.Errorf("could not restore layer %d of shape (%d, %d): %w", i, ls.Neurons, ls.Inputs, ErrInvalidLayer)
		}
		if len(ls.Weights) != ls.Neurons*ls.Inputs || len(ls.Biases) != ls.Neurons {
			return nil, fmt.Errorf("layer %d parameters do not match shape (%d, %d)", i, ls.Neurons, ls.Inputs)
		}
		if i > 0 && ls.Inputs != s.Layers[i-1].Neurons {
			return nil, fmt.Errorf("layer %d expects %d inputs but previous layer has %d neurons", i, ls.Inputs, s.Layers[i-1].Neurons)
		}
		layer := NewLayer(ls.Inputs, ls.Neurons, Zero, ls.Activation)
		layer.Weights = mat.NewDense(ls.Neurons, ls.Inputs, append([]float64(nil), ls.Weights...))
		layer.Biases = mat.NewDense(ls.Neurons, 1, append([]float64(nil), ls.Biases...))
		layers[i] = layer
	}
	return &Network{layers: layers}, nil
}

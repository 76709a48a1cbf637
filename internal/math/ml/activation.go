package ml

import (
	"encoding/json"
	"fmt"

	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	"gonum.org/v1/gonum/mat"
)

// Activation defines the activation function of a layer.
// It is a closed set of stateless functions, so it can be shared between layers
// and serialised by name.
type Activation int

const (
	// Sigmoid is the logistic activation a = 1 / (1 + e^-z).
	Sigmoid Activation = iota
	// Linear is the identity activation a = z.
	Linear
)

var activationNames = map[Activation]string{
	Sigmoid: "sigmoid",
	Linear:  "linear",
}

func (a Activation) String() string {
	if name, ok := activationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("activation(%d)", int(a))
}

// ParseActivation returns the activation for the given name.
func ParseActivation(name string) (Activation, error) {
	for a, n := range activationNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown activation '%s'", name)
}

// MarshalJSON encodes the activation by name.
func (a Activation) MarshalJSON() ([]byte, error) {
	if _, ok := activationNames[a]; !ok {
		return nil, fmt.Errorf("cannot encode unknown activation %d", int(a))
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes the activation from its name.
func (a *Activation) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("could not decode activation: %w", err)
	}
	act, err := ParseActivation(name)
	if err != nil {
		return err
	}
	*a = act
	return nil
}

// Function applies the activation elementwise to z.
func (a Activation) Function(z mat.Matrix) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	switch a {
	case Sigmoid:
		out.Apply(func(_, _ int, v float64) float64 {
			return xml.Sigmoid.F(v)
		}, z)
	case Linear:
		out.Copy(z)
	default:
		panic(fmt.Sprintf("unknown activation %v", a))
	}
	return out
}

// Derivative returns the elementwise derivative of the activation at z.
// cached is the activation already computed for z; it can be nil,
// in which case it is recomputed where needed.
func (a Activation) Derivative(z mat.Matrix, cached *mat.Dense) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	switch a {
	case Sigmoid:
		if cached == nil {
			cached = a.Function(z)
		}
		// xml.Sigmoid.D works on the activation value : a(1-a)
		out.Apply(func(_, _ int, v float64) float64 {
			return xml.Sigmoid.D(v)
		}, cached)
	case Linear:
		out.Apply(func(_, _ int, _ float64) float64 {
			return 1
		}, z)
	default:
		panic(fmt.Sprintf("unknown activation %v", a))
	}
	return out
}

package ml

import (
	"encoding/json"
	"fmt"
	"math"

	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/mat"
)

// InitMethod defines how the weights of a new layer are initialised.
// Biases always start at zero.
type InitMethod int

const (
	// Zero sets all weights to 0.
	Zero InitMethod = iota
	// One sets all weights to 1.
	One
	// PseudoSpread derives deterministic weights from the row and column index,
	// for reproducible runs without a random source.
	PseudoSpread
	// Random draws weights uniformly from [-1, 1).
	Random
)

var initNames = map[InitMethod]string{
	Zero:         "zero",
	One:          "one",
	PseudoSpread: "pseudo-spread",
	Random:       "random",
}

func (m InitMethod) String() string {
	if name, ok := initNames[m]; ok {
		return name
	}
	return fmt.Sprintf("init(%d)", int(m))
}

// ParseInitMethod returns the init method for the given name.
func ParseInitMethod(name string) (InitMethod, error) {
	for m, n := range initNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown init method '%s'", name)
}

// MarshalJSON encodes the init method by name.
func (m InitMethod) MarshalJSON() ([]byte, error) {
	if _, ok := initNames[m]; !ok {
		return nil, fmt.Errorf("cannot encode unknown init method %d", int(m))
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes the init method from its name.
func (m *InitMethod) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("could not decode init method: %w", err)
	}
	method, err := ParseInitMethod(name)
	if err != nil {
		return err
	}
	*m = method
	return nil
}

// weights creates a rows x cols weight matrix according to the init method.
func (m InitMethod) weights(rows, cols int) *mat.Dense {
	w := mat.NewDense(rows, cols, nil)
	switch m {
	case Zero:
	case One:
		w.Apply(func(_, _ int, _ float64) float64 {
			return 1
		}, w)
	case PseudoSpread:
		w.Apply(func(i, j int, _ float64) float64 {
			return xml.Sigmoid.F(math.Exp(float64(i+1))*math.Log(float64(j+2))) - 0.5
		}, w)
	case Random:
		gen := xmath.Rand(-1, 1, xmath.Unit)
		for i := 0; i < rows; i++ {
			w.SetRow(i, gen(cols, i))
		}
	default:
		panic(fmt.Sprintf("unknown init method %v", m))
	}
	return w
}

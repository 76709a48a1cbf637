package ml

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestActivation_Function(t *testing.T) {

	type test struct {
		activation Activation
		z          []float64
		a          []float64
	}

	tests := map[string]test{
		"sigmoid": {
			activation: Sigmoid,
			z:          []float64{0, 100, -100},
			a:          []float64{0.5, 1, 0},
		},
		"linear": {
			activation: Linear,
			z:          []float64{0, 3.5, -2},
			a:          []float64{0, 3.5, -2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := tt.activation.Function(mat.NewDense(len(tt.z), 1, tt.z))
			assert.InDeltaSlice(t, tt.a, a.RawMatrix().Data, 1e-9)
		})
	}
}

func TestActivation_Derivative(t *testing.T) {

	z := mat.NewDense(2, 1, []float64{0, 2})

	t.Run("sigmoid-recompute", func(t *testing.T) {
		d := Sigmoid.Derivative(z, nil)
		s := Sigmoid.Function(z).At(1, 0)
		assert.InDelta(t, 0.25, d.At(0, 0), 1e-12)
		assert.InDelta(t, s*(1-s), d.At(1, 0), 1e-12)
	})

	t.Run("sigmoid-cached", func(t *testing.T) {
		// the cached activation takes precedence over z
		cached := mat.NewDense(2, 1, []float64{0.5, 0.9})
		d := Sigmoid.Derivative(z, cached)
		assert.InDelta(t, 0.25, d.At(0, 0), 1e-12)
		assert.InDelta(t, 0.09, d.At(1, 0), 1e-12)
	})

	t.Run("linear", func(t *testing.T) {
		d := Linear.Derivative(mat.NewDense(2, 3, []float64{-1, 0, 1, 2, 3, 4}), nil)
		r, c := d.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		for _, v := range d.RawMatrix().Data {
			assert.Equal(t, 1.0, v)
		}
	})
}

func TestActivation_JSON(t *testing.T) {
	settings := []LayerSettings{
		{Neurons: 2, Activation: Sigmoid},
		{Neurons: 1, Activation: Linear},
	}
	b, err := json.Marshal(settings)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"neurons":2,"activation":"sigmoid"},{"neurons":1,"activation":"linear"}]`, string(b))

	var decoded []LayerSettings
	err = json.Unmarshal(b, &decoded)
	require.NoError(t, err)
	assert.Equal(t, settings, decoded)

	err = json.Unmarshal([]byte(`[{"neurons":2,"activation":"relu"}]`), &decoded)
	assert.Error(t, err)
}

func TestParseInitMethod(t *testing.T) {
	for _, m := range []InitMethod{Zero, One, PseudoSpread, Random} {
		parsed, err := ParseInitMethod(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseInitMethod("xavier")
	assert.Error(t, err)
}

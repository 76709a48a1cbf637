package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/porcino/internal/math/ml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Train(t *testing.T) {
	var cfg Train
	err := Load(".", TrainKey, &cfg)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ml.PseudoSpread, cfg.Init)
	assert.Equal(t, 3, len(cfg.Layers))
	assert.Equal(t, ml.Sigmoid, cfg.Layers[2].Activation)
}

func TestMustLoad(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join("..", "..")))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	var cfg Train
	b := MustLoad(TrainKey, &cfg)
	assert.NotEmpty(t, b)
	assert.NoError(t, cfg.Validate())

	assert.Panics(t, func() {
		MustLoad("missing", &cfg)
	})
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	var cfg Train
	err := Load(dir, "missing", &cfg)
	assert.Error(t, err)

	err = ioutil.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"init":"xavier"}`), 0644)
	require.NoError(t, err)
	err = Load(dir, "bad", &cfg)
	assert.Error(t, err)
}

func TestTrain_Validate(t *testing.T) {

	valid := func() Train {
		return Train{
			Layers:  []ml.LayerSettings{{Neurons: 2}, {Neurons: 1}},
			Eta:     0.1,
			Epochs:  10,
			Dataset: "xor",
		}
	}

	type test struct {
		update func(t *Train)
		err    bool
	}

	tests := map[string]test{
		"valid": {
			update: func(t *Train) {},
		},
		"too-few-layers": {
			update: func(t *Train) { t.Layers = t.Layers[:1] },
			err:    true,
		},
		"empty-layer": {
			update: func(t *Train) { t.Layers[1].Neurons = 0 },
			err:    true,
		},
		"zero-eta": {
			update: func(t *Train) { t.Eta = 0 },
			err:    true,
		},
		"negative-epochs": {
			update: func(t *Train) { t.Epochs = -1 },
			err:    true,
		},
		"no-dataset": {
			update: func(t *Train) { t.Dataset = "" },
			err:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tt.update(&cfg)
			err := cfg.Validate()
			if tt.err {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			assert.NoError(t, err)
		})
	}
}

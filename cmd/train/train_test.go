package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/porcino/infra/config"
	"github.com/drakos74/porcino/internal/data"
	"github.com/drakos74/porcino/internal/math/ml"
	"github.com/drakos74/porcino/internal/storage"
	"github.com/drakos74/porcino/internal/storage/file/json"
	"github.com/drakos74/porcino/internal/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLoad(t *testing.T) {
	*dataset = "xor"
	*epochs = 20
	defer func() {
		*configDir = ""
		*dataset = ""
		*epochs = 0
	}()

	t.Run("config-dir", func(t *testing.T) {
		*configDir = filepath.Join("..", "..", "infra", "config")
		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "xor", cfg.Dataset)
		assert.Equal(t, 20, cfg.Epochs)
	})

	t.Run("default-dir", func(t *testing.T) {
		*configDir = ""
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(filepath.Join("..", "..")))
		defer func() {
			require.NoError(t, os.Chdir(wd))
		}()

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "xor", cfg.Dataset)
		assert.Equal(t, 3, len(cfg.Layers))
	})
}

func train(t *testing.T, network *ml.Network, samples []ml.TrainingSample, epochs int) *trainer.Handle {
	h := trainer.Spawn(network, 0.1)
	for _, signal := range []trainer.Signal{
		trainer.SetData{Samples: samples},
		trainer.EvalData{Samples: samples},
		trainer.SetEpochs{N: epochs},
		trainer.SetReportInterval{N: 10},
		trainer.Start{},
	} {
		require.NoError(t, h.Send(signal))
	}
	wait(h, epochs)
	require.NoError(t, h.Send(trainer.Kill{}))
	return h
}

func TestRun(t *testing.T) {
	network, err := ml.New([]ml.LayerSettings{{Neurons: 2}, {Neurons: 4}, {Neurons: 2}}, ml.PseudoSpread)
	require.NoError(t, err)
	samples := data.Separable()

	h := train(t, network, samples, 100)
	trained := h.Wait()
	assert.Equal(t, 100, h.Status().Epochs)

	dir := t.TempDir()
	shard := json.BlobShardAt(dir, storage.ModelDir)
	ref, err := persist(shard, h.ID(), trained)
	require.NoError(t, err)
	files, err := os.ReadDir(filepath.Join(dir, storage.ModelDir, h.ID()))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	// the stored network picks up training where it stopped
	restored, err := build(config.Train{}, shard, ref)
	require.NoError(t, err)
	input := samples[0].Input
	assert.True(t, mat.EqualApprox(trained.ProcessData(input), restored.ProcessData(input), 1e-12))

	before := h.Status().LastEvalResult
	resumed := train(t, restored, samples, 100)
	resumed.Wait()
	assert.Less(t, resumed.Status().LastEvalResult, before)

	_, err = persist(storage.VoidShard(), h.ID(), trained)
	assert.NoError(t, err)
}

func TestBuild(t *testing.T) {

	cfg := config.Train{
		Layers: []ml.LayerSettings{{Neurons: 2}, {Neurons: 3}, {Neurons: 2}},
		Init:   ml.PseudoSpread,
	}

	type test struct {
		ref      string
		inputs   int
		notFound bool
		err      bool
	}

	tests := map[string]test{
		"new": {
			inputs: 2,
		},
		"invalid-ref": {
			ref: "no-hash",
			err: true,
		},
		"missing": {
			ref:      "trainer/hash",
			err:      true,
			notFound: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			network, err := build(cfg, json.BlobShardAt(t.TempDir(), storage.ModelDir), tt.ref)
			if tt.err {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, storage.NotFoundErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.inputs, network.InputSize())
		})
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/drakos74/porcino/infra/config"
	"github.com/drakos74/porcino/internal/data"
	"github.com/drakos74/porcino/internal/math/ml"
	"github.com/drakos74/porcino/internal/metrics"
	"github.com/drakos74/porcino/internal/storage"
	"github.com/drakos74/porcino/internal/storage/file/json"
	"github.com/drakos74/porcino/internal/trainer"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configDir   = flag.String("config", "", "directory of the train.json config, defaults to infra/config")
	restoreRef  = flag.String("load", "", "stored network to keep training, as '<trainer>/<hash>'")
	dataset     = flag.String("dataset", "", "toy data set to train on: xor, and or separable")
	epochs      = flag.Int("epochs", 0, "number of epochs to train for")
	eta         = flag.Float64("eta", 0, "learning rate")
	report      = flag.Int("report", -1, "evaluation interval in epochs, 0 disables evaluation")
	save        = flag.Bool("save", false, "store the trained network")
	metricsAddr = flag.String("metrics", "", "address to serve prometheus metrics on e.g. ':6122'")
	debug       = flag.Bool("debug", false, "enable debug logs")
)

const (
	poll         = 100 * time.Millisecond
	networkLabel = "network"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	flag.Parse()
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	samples, err := data.Set(cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load data set")
	}

	network, err := build(cfg, json.BlobShard(storage.ModelDir), *restoreRef)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create network")
	}
	if r, _ := samples[0].Input.Dims(); r != network.InputSize() {
		log.Fatal().Int("data", r).Int("network", network.InputSize()).Msg("data set does not fit the network input")
	}
	if r, _ := samples[0].ExpectedOutput.Dims(); r != network.OutputSize() {
		log.Fatal().Int("data", r).Int("network", network.OutputSize()).Msg("data set does not fit the network output")
	}

	if *metricsAddr != "" {
		metrics.Serve(*metricsAddr)
	}

	signals := []trainer.Signal{
		trainer.SetData{Samples: samples},
		trainer.EvalData{Samples: samples},
		trainer.SetEpochs{N: cfg.Epochs},
		trainer.SetReportInterval{N: cfg.ReportInterval},
		trainer.Start{},
	}

	h := trainer.Spawn(network, cfg.Eta,
		trainer.WithHistory(cfg.Epochs+1),
		trainer.WithCommandBuffer(len(signals)+1))
	log.Info().
		Str("trainer", h.ID()).
		Str("dataset", cfg.Dataset).
		Int("epochs", cfg.Epochs).
		Float64("eta", cfg.Eta).
		Msg("training")

	for _, signal := range signals {
		if err := h.Send(signal); err != nil {
			log.Fatal().Err(err).Str("signal", signal.Name()).Msg("could not send signal")
		}
	}

	wait(h, cfg.Epochs)

	if err := h.Send(trainer.Kill{}); err != nil {
		log.Warn().Err(err).Msg("trainer already gone")
	}
	trained := h.Wait()
	status := h.Status()

	summary(h.ID(), status, trained, samples)

	shard := storage.VoidShard()
	if cfg.Save {
		shard = json.BlobShard(storage.ModelDir)
	}
	if _, err := persist(shard, h.ID(), trained); err != nil {
		log.Error().Err(err).Msg("could not save network")
	}
}

func load() (config.Train, error) {
	var cfg config.Train
	if *configDir == "" {
		config.MustLoad(config.TrainKey, &cfg)
	} else if err := config.Load(*configDir, config.TrainKey, &cfg); err != nil {
		return cfg, err
	}
	if *dataset != "" {
		cfg.Dataset = *dataset
	}
	if *epochs > 0 {
		cfg.Epochs = *epochs
	}
	if *eta > 0 {
		cfg.Eta = *eta
	}
	if *report >= 0 {
		cfg.ReportInterval = *report
	}
	if *save {
		cfg.Save = true
	}
	return cfg, cfg.Validate()
}

// wait drains the trainer responses until the epoch budget is done.
func wait(h *trainer.Handle, budget int) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		select {
		case response, ok := <-h.Responses():
			if !ok {
				return
			}
			switch r := response.(type) {
			case trainer.EvalResult:
				log.Info().Int("epoch", r.Epoch).Float64("sse", r.Total).Msg("evaluation")
			case trainer.Epochs:
				log.Debug().Int("done", r.Done).Int("budget", r.Budget).Msg("progress")
			}
		case <-ticker.C:
			status := h.Status()
			if status.Epochs >= budget && !status.Running {
				return
			}
		}
	}
}

func summary(id string, status trainer.Status, network *ml.Network, samples []ml.TrainingSample) {
	if len(status.History) > 1 {
		fmt.Println(asciigraph.Plot(status.History,
			asciigraph.Height(10),
			asciigraph.Caption("evaluation SSE")))
		fmt.Println()
	}

	correct := network.Classify(samples)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"trainer", "epochs", "progress", "sse", "accuracy"})
	table.Append([]string{
		id,
		fmt.Sprintf("%d/%d", status.Epochs, status.EpochsToRun),
		fmt.Sprintf("%.0f%%", 100*status.Progress()),
		fmt.Sprintf("%.6f", status.LastEvalResult),
		fmt.Sprintf("%d/%d", correct, len(samples)),
	})
	table.Render()
}

// build restores the referenced network from the shard, or creates a new one out of the config.
func build(cfg config.Train, shard storage.Shard, ref string) (*ml.Network, error) {
	if ref == "" {
		return ml.New(cfg.Layers, cfg.Init)
	}
	return restore(shard, ref)
}

// persist stores the network snapshot and returns the reference to load it back.
func persist(shard storage.Shard, id string, network *ml.Network) (string, error) {
	st, err := shard(id)
	if err != nil {
		return "", fmt.Errorf("could not init storage: %w", err)
	}
	k := storage.NewKey(networkLabel)
	if err := st.Store(k, network.Snapshot()); err != nil {
		return "", fmt.Errorf("could not store network: %w", err)
	}
	ref := path.Join(id, k.Hash)
	log.Info().Str("trainer", id).Str("ref", ref).Msg("stored network")
	return ref, nil
}

// restore loads the network stored under the '<trainer>/<hash>' reference.
func restore(shard storage.Shard, ref string) (*ml.Network, error) {
	id, hash := path.Split(ref)
	id = strings.TrimSuffix(id, "/")
	if id == "" || hash == "" {
		return nil, fmt.Errorf("invalid network reference '%s'", ref)
	}
	st, err := shard(id)
	if err != nil {
		return nil, fmt.Errorf("could not init storage: %w", err)
	}
	var snapshot ml.Snapshot
	if err := st.Load(storage.Key{Hash: hash, Label: networkLabel}, &snapshot); err != nil {
		return nil, fmt.Errorf("could not load network '%s': %w", ref, err)
	}
	network, err := ml.FromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("could not restore network '%s': %w", ref, err)
	}
	log.Info().Str("ref", ref).Int("layers", len(network.Layers())).Msg("restored network")
	return network, nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/drakos74/porcino/internal/math/ml"
)

// TrainKey is the config key for a training run.
const TrainKey = "train"

// ErrInvalidConfig is returned for a train config that cannot be run.
var ErrInvalidConfig = errors.New("invalid train config")

// Train is the configuration of a training run.
type Train struct {
	Layers         []ml.LayerSettings `json:"layers"`
	Init           ml.InitMethod      `json:"init"`
	Eta            float64            `json:"eta"`
	Epochs         int                `json:"epochs"`
	ReportInterval int                `json:"report_interval"`
	Dataset        string             `json:"dataset"`
	Save           bool               `json:"save"`
}

// Validate checks that the network can be built and trained with the config.
func (t Train) Validate() error {
	if len(t.Layers) < 2 {
		return fmt.Errorf("need at least 2 layers but got %d: %w", len(t.Layers), ErrInvalidConfig)
	}
	for i, l := range t.Layers {
		if l.Neurons <= 0 {
			return fmt.Errorf("layer %d has %d neurons: %w", i, l.Neurons, ErrInvalidConfig)
		}
	}
	if t.Eta <= 0 {
		return fmt.Errorf("eta must be positive but was %f: %w", t.Eta, ErrInvalidConfig)
	}
	if t.Epochs < 0 || t.ReportInterval < 0 {
		return fmt.Errorf("epochs (%d) and report interval (%d) cannot be negative: %w", t.Epochs, t.ReportInterval, ErrInvalidConfig)
	}
	if t.Dataset == "" {
		return fmt.Errorf("dataset is missing: %w", ErrInvalidConfig)
	}
	return nil
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the global metrics collector.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Epochs,
		Observer.prometheus.Signals,
		Observer.prometheus.Dropped,
		Observer.prometheus.Eval,
		Observer.prometheus.Trainers,
	)
}

// Metrics tracks the trainer activity.
type Metrics struct {
	prometheus Prometheus
}

// IncrementEpochs counts one training epoch for the given trainer.
func (m *Metrics) IncrementEpochs(trainer string) {
	m.prometheus.Epochs.WithLabelValues(trainer).Inc()
}

// IncrementSignals counts a signal applied by the given trainer.
func (m *Metrics) IncrementSignals(trainer, signal string) {
	m.prometheus.Signals.WithLabelValues(trainer, signal).Inc()
}

// IncrementDropped counts a response the trainer could not deliver.
func (m *Metrics) IncrementDropped(trainer string) {
	m.prometheus.Dropped.WithLabelValues(trainer).Inc()
}

// SetEval records the last evaluation result of the trainer.
func (m *Metrics) SetEval(trainer string, v float64) {
	m.prometheus.Eval.WithLabelValues(trainer).Set(v)
}

// TrainerStarted marks a trainer worker as running.
func (m *Metrics) TrainerStarted() {
	m.prometheus.Trainers.Inc()
}

// TrainerStopped marks a trainer worker as gone and removes its series.
// signals are the signal names the trainer has counted.
func (m *Metrics) TrainerStopped(trainer string, signals ...string) {
	m.prometheus.Trainers.Dec()
	m.prometheus.Epochs.DeleteLabelValues(trainer)
	m.prometheus.Dropped.DeleteLabelValues(trainer)
	m.prometheus.Eval.DeleteLabelValues(trainer)
	for _, signal := range signals {
		m.prometheus.Signals.DeleteLabelValues(trainer, signal)
	}
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "porcino"

// Prometheus holds the prometheus collectors for the trainers.
type Prometheus struct {
	Epochs   *prometheus.CounterVec
	Signals  *prometheus.CounterVec
	Dropped  *prometheus.CounterVec
	Eval     *prometheus.GaugeVec
	Trainers prometheus.Gauge
}

// NewPrometheusMetrics creates the trainer collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "epochs_total",
				Help:      "full-batch gradient descent updates performed",
			}, []string{"trainer"}),
		Signals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signals_total",
				Help:      "control signals applied by the trainer",
			}, []string{"trainer", "signal"}),
		Dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dropped_responses_total",
				Help:      "status responses that could not be delivered",
			}, []string{"trainer"}),
		Eval: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "eval_result",
				Help:      "last evaluation result",
			}, []string{"trainer"}),
		Trainers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "trainers",
				Help:      "running trainer workers",
			}),
	}
}

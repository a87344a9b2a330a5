package synapse

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the client
type Metrics struct {
	// Write transaction metrics
	TxSubmitted *prometheus.CounterVec
	TxConfirmed *prometheus.CounterVec
	TxFailed    *prometheus.CounterVec
	TxTimedOut  *prometheus.CounterVec

	// Seconds between submission and receipt
	ConfirmLatency *prometheus.HistogramVec

	// Read call metrics
	ContractReads *prometheus.CounterVec
}

// NewMetrics initializes and registers Prometheus metrics
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers Prometheus metrics with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		TxSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synapse_tx_submitted_total",
				Help: "The total number of transactions submitted, by contract and method",
			},
			[]string{"contract", "method"},
		),
		TxConfirmed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synapse_tx_confirmed_total",
				Help: "The total number of transactions mined with success status",
			},
			[]string{"contract", "method"},
		),
		TxFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synapse_tx_failed_total",
				Help: "The total number of transactions mined with failure status",
			},
			[]string{"contract", "method"},
		),
		TxTimedOut: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synapse_tx_timed_out_total",
				Help: "The total number of transactions whose confirmation wait expired",
			},
			[]string{"contract", "method"},
		),
		ConfirmLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "synapse_tx_confirm_latency_seconds",
				Help:    "Time between transaction submission and receipt",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			},
			[]string{"contract"},
		),
		ContractReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synapse_contract_reads_total",
				Help: "The total number of contract read calls, by contract and method",
			},
			[]string{"contract", "method"},
		),
	}
}

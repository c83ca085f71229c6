package completion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_order_autocomplete_sweep_duration_seconds",
			Help:    "Duration of order auto-completion sweeps",
			Buckets: prometheus.DefBuckets,
		},
	)

	SweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_order_autocomplete_sweeps_total",
			Help: "Total number of order auto-completion sweeps",
		},
		[]string{"result"},
	)

	CompletedOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_order_autocomplete_completed_total",
			Help: "Total number of orders marked delivered by the sweep",
		},
	)

	FailedOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_order_autocomplete_failed_total",
			Help: "Total number of orders the sweep failed to process",
		},
	)
)

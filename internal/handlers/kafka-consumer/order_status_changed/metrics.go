package order_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeProcessed = "processed"
	outcomeMalformed = "malformed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeRetried   = "retried"
)

var OrderEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dispatch_order_status_events_total",
		Help: "Upstream order.status.changed messages by processing outcome",
	},
	[]string{"outcome"},
)

package route

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssignedStopsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_route_assigned_stops_total",
			Help: "Total number of route stops created by order assignment",
		},
	)

	AssignmentRejectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_route_assignment_rejects_total",
			Help: "Total number of orders rejected during route assignment",
		},
		[]string{"reason"},
	)

	StopStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_route_stop_status_changes_total",
			Help: "Total number of stop delivery state changes",
		},
		[]string{"status"},
	)
)

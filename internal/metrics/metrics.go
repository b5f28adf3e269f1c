package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Interactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashkit_interactions_total",
		Help: "Total number of dispatched interactions by outcome",
	}, []string{"command", "kind", "outcome"})

	InhibitorVetoes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashkit_inhibitor_vetoes_total",
		Help: "Total number of command executions vetoed by an inhibitor",
	}, []string{"inhibitor"})

	HandlerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slashkit_handler_duration_seconds",
		Help:    "Duration of command, subcommand and autocomplete handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	Deployments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashkit_deployments_total",
		Help: "Total number of command synchronizations by result",
	}, []string{"scope", "result"})

	RemoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashkit_remote_requests_total",
		Help: "Total number of remote command API requests",
	}, []string{"operation", "status"})

	RemoteRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slashkit_remote_request_duration_seconds",
		Help:    "Duration of remote command API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

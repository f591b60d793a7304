// Package metrics records Prometheus metrics for upstream calls and pipeline stages.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushJob = "signflow"

// Registry holds every signflow collector. It is pushed, not scraped.
var Registry = prometheus.NewRegistry()

var (
	upstreamRequestsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "signflow_upstream_requests_total",
			Help: "Total number of requests sent to external services",
		},
		[]string{"service", "operation", "status"},
	)

	upstreamRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signflow_upstream_request_duration_seconds",
			Help:    "External service request duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service", "operation"},
	)

	pipelineStagesTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "signflow_pipeline_stages_total",
			Help: "Pipeline stage outcomes",
		},
		[]string{"stage", "result"},
	)
)

// ObserveUpstream records one call. statusCode 0 means the request never got a response.
func ObserveUpstream(service, operation string, statusCode int, elapsed time.Duration) {
	status := "error"
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}
	upstreamRequestsTotal.WithLabelValues(service, operation, status).Inc()
	upstreamRequestDuration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}

func ObserveStage(stage string, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	pipelineStagesTotal.WithLabelValues(stage, result).Inc()
}

// Push sends the registry to a Pushgateway once.
func Push(ctx context.Context, gatewayURL string) error {
	return push.New(gatewayURL, pushJob).Gatherer(Registry).PushContext(ctx)
}

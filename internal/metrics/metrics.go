// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "larder_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "larder_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Generation metrics, labelled by outcome (ok, rate_limited, payment_required, error)
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_generations_total",
			Help: "Total number of recipe generation requests by outcome",
		},
		[]string{"outcome"},
	)

	GatewayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_gateway_request_duration_seconds",
			Help:    "Duration of chat completion calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "larder_catalog_recipes",
			Help: "Number of recipes sent as context on the last generation",
		},
	)

	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larder_rate_limit_rejects_total",
			Help: "Total number of generation requests rejected by the local rate limiter",
		},
	)

	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larder_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

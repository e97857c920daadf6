package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsProvider owns the service's prometheus registry. Using a private
// registry keeps /metrics scoped to this process even when other libraries
// register against the global default.
type MetricsProvider struct {
	registry *prometheus.Registry

	Seconds  *prometheus.HistogramVec
	Requests *prometheus.CounterVec
}

func NewMetricsProvider(namespace, subsystem string) *MetricsProvider {
	if namespace == "" {
		namespace = "hr_office"
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	seconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_duration_seconds",
		Help:      "Request latencies in seconds.",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
	}, []string{"kind", "operation", "code", "reason"})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_total",
		Help:      "Total number of requests.",
	}, []string{"kind", "operation", "code", "reason"})

	registry.MustRegister(seconds, requests)

	return &MetricsProvider{
		registry: registry,
		Seconds:  seconds,
		Requests: requests,
	}
}

// Handler serves the provider's registry.
func (p *MetricsProvider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// MetricsHandler serves the default registry when metrics are disabled, so the
// /metrics route always answers.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

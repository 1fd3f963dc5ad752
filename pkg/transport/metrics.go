package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/formbind/pkg/form"
)

// MetricsConfig configures the Prometheus instrumentation wrapper.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "formbind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation wrapper.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "formbind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for form submissions.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of form submissions by method and status",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Form submission duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"method"}),

		requestErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_errors_total",
			Help:        "Total number of failed form submissions by error type",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "error_type"}),
	}
}

// instrumented wraps a Transport with Prometheus metrics.
type instrumented struct {
	next form.Transport
	m    *metrics
}

// Instrument wraps next so every submission records a request counter,
// a duration histogram, and an error counter.
//
// Metrics collected:
//   - formbind_requests_total{method,status}
//   - formbind_request_duration_seconds{method}
//   - formbind_request_errors_total{method,error_type}
//
// Example:
//
//	registry := prometheus.NewRegistry()
//	t := transport.Instrument(client, transport.WithRegistry(registry))
func Instrument(next form.Transport, opts ...MetricsOption) form.Transport {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &instrumented{next: next, m: initMetrics(config)}
}

func (t *instrumented) Invoke(ctx context.Context, method, url string, payload *form.Payload) (*form.Response, error) {
	start := time.Now()

	resp, err := t.next.Invoke(ctx, method, url, payload)

	t.m.requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
		t.m.requestErrors.WithLabelValues(method, errorType(err)).Inc()
	}
	t.m.requestsTotal.WithLabelValues(method, status).Inc()

	return resp, err
}

// errorType categorizes an error for the error counter. Categories stay
// coarse to keep label cardinality low.
func errorType(err error) string {
	var se *form.SerializationError
	if errors.As(err, &se) {
		return "serialization"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "canceled"
	}
	var te *form.TransportError
	if errors.As(err, &te) && te.StatusCode != 0 {
		switch {
		case te.StatusCode == http.StatusUnprocessableEntity:
			return "validation"
		case te.StatusCode >= 500:
			return "server"
		case te.StatusCode >= 400:
			return "client"
		}
	}
	return "network"
}

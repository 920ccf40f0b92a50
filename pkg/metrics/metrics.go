// Package metrics collects per-request metrics for the dispatch framework
// using Prometheus. The dispatcher records an observation per handled
// request; exposition happens through Expose, which renders the registry in
// the Prometheus text format so it can be served without an HTTP framework
// dependency.
package metrics

import (
	"bytes"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry owns the Prometheus collectors for request metrics.
type Registry struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

// NewRegistry creates a registry with request counters and latency
// histograms under the given namespace.
func NewRegistry(namespace string) *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of dispatched requests.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request dispatch latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "Total number of requests that resolved to an error status.",
		}, []string{"method", "path", "status"}),
	}

	r.registry.MustRegister(r.requestsTotal, r.requestDuration, r.requestErrors)
	return r
}

// ObserveRequest records one handled request.
func (r *Registry) ObserveRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	r.requestsTotal.WithLabelValues(method, path, code).Inc()
	r.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	if status >= 400 {
		r.requestErrors.WithLabelValues(method, path, code).Inc()
	}
}

// ExpositionContentType is the content type of the body returned by Expose.
func ExpositionContentType() string {
	return string(expfmt.NewFormat(expfmt.TypeTextPlain))
}

// Expose renders the registry in the Prometheus text exposition format.
func (r *Registry) Expose() ([]byte, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

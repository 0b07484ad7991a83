// Package metrics owns the Prometheus registry for the HTTP surface and
// outbound provider calls.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gospelpath"

// Registry holds the process metrics. Use New; the zero value is not usable.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// New creates a Registry with HTTP, upstream and Go runtime collectors.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests served, by route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "requests_total",
				Help:      "Outbound provider requests, by upstream and status code.",
			},
			[]string{"upstream", "code", "method"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "request_duration_seconds",
				Help:      "Outbound provider request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"upstream", "method"},
		),
	}

	r.reg.MustRegister(
		r.HTTPRequests,
		r.HTTPDuration,
		r.UpstreamRequests,
		r.UpstreamDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// InstrumentTransport wraps next (http.DefaultTransport when nil) so every
// round trip is counted and timed under the given upstream label.
func (r *Registry) InstrumentTransport(upstream string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	labels := prometheus.Labels{"upstream": upstream}
	return promhttp.InstrumentRoundTripperCounter(
		r.UpstreamRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(
			r.UpstreamDuration.MustCurryWith(labels),
			next,
		),
	)
}

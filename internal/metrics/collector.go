// Package metrics exposes Prometheus collectors for the HTTP front door and
// the upstream dictionary client.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dictconn"

// Collector owns a private registry, so several collectors can coexist in
// one process (tests, embedded servers).
type Collector struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	lookups          *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector with HTTP, lookup and upstream metrics
// plus the standard Go runtime and process collectors.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status code",
			},
			[]string{"method", "route", "status"},
		),

		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Total number of word lookups by outcome",
			},
			[]string{"outcome"},
		),

		// Upstream latency is bounded by the client timeout (8s by default).
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of dictionary API requests in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
			},
			[]string{"outcome"},
		),
	}
}

// ObserveHTTP records one served HTTP request.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveLookup records the outcome of one word lookup.
func (c *Collector) ObserveLookup(outcome string) {
	c.lookups.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records the outcome and latency of one dictionary API call.
func (c *Collector) ObserveUpstream(outcome string, d time.Duration) {
	c.upstreamDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth outcomes recorded by RecordAuth.
const (
	AuthSignup      = "signup"
	AuthLogin       = "login"
	AuthLoginFailed = "login_failed"
	AuthRejected    = "rejected"
	AuthThrottled   = "throttled"
)

// Recorder is the subset of Collector used by the HTTP layer.
type Recorder interface {
	RecordRequest(method, route string, status int, latency time.Duration)
	RecordAuth(outcome string)
}

// Collector holds the API's Prometheus metrics.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	auth     *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gym_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		auth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_auth_events_total",
			Help: "Authentication events by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.requests, c.latency, c.auth)
	return c
}

// knownMethods are recorded as-is; any other method token becomes "OTHER".
var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

func methodLabel(method string) string {
	if knownMethods[method] {
		return method
	}
	return "OTHER"
}

// RecordRequest counts a finished request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (c *Collector) RecordRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = methodLabel(method)
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (c *Collector) RecordAuth(outcome string) {
	c.auth.WithLabelValues(outcome).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

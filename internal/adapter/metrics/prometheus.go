// Package metrics records service observations in Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"roundup-saver/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "roundup_"

// transportError labels bank calls that never got an HTTP status.
const transportError = "error"

// Recorder implements ports.Metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	transfers           *prometheus.CounterVec
	transferredMinor    prometheus.Counter
	summaries           prometheus.Counter
	pendingMinor        prometheus.Histogram
	bankRequests        *prometheus.CounterVec
	bankLatency         *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New constructs a Recorder and registers its collectors, plus the Go and
// process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		transfers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "transfers_total",
				Help: "Round-up transfer attempts by result",
			},
			[]string{"result"},
		),
		transferredMinor: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "transferred_minor_units_total",
			Help: "Minor units moved into savings goals",
		}),
		summaries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "summaries_total",
			Help: "Weekly summaries computed",
		}),
		pendingMinor: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "summary_pending_minor_units",
			Help:    "Pending round-up per computed summary",
			Buckets: []float64{0, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		bankRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "bank_requests_total",
				Help: "Banking API requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		bankLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "bank_request_duration_seconds",
				Help:    "Banking API latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.transfers,
		r.transferredMinor,
		r.summaries,
		r.pendingMinor,
		r.bankRequests,
		r.bankLatency,
		r.httpRequests,
		r.httpRequestDuration,
	)
	return r
}

// TransferAttempted counts an attempt; only successful amounts are summed.
func (r *Recorder) TransferAttempted(result string, amountMinorUnits int64) {
	r.transfers.WithLabelValues(result).Inc()
	if result == ports.TransferResultSuccess && amountMinorUnits > 0 {
		r.transferredMinor.Add(float64(amountMinorUnits))
	}
}

func (r *Recorder) SummaryComputed(_, pendingMinorUnits int64) {
	r.summaries.Inc()
	r.pendingMinor.Observe(float64(pendingMinorUnits))
}

// BankRequest records one call. A zero status means the request never got a response.
func (r *Recorder) BankRequest(operation string, statusCode int, duration time.Duration) {
	status := transportError
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	r.bankRequests.WithLabelValues(operation, status).Inc()
	r.bankLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// HTTPRequest records one served request. route is the matched pattern, not the raw path.
func (r *Recorder) HTTPRequest(method, route string, statusCode int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	r.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

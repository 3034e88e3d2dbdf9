package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build as many as they like.
// All record methods are safe on a nil *Collector, which disables metrics.
type Collector struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	movementsPosted     *prometheus.CounterVec
	movementsRejected   *prometheus.CounterVec
	accountsProvisioned *prometheus.CounterVec
	statementsGenerated prometheus.Counter
	eventsPublished     *prometheus.CounterVec

	logger *slog.Logger
}

// NewCollector registers every metric of the service on a new registry.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to serve an HTTP request",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		movementsPosted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "movements_posted_total",
			Help: "Total number of movements appended to the ledger",
		}, []string{"kind"}),
		movementsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "movements_rejected_total",
			Help: "Total number of movement requests rejected before any write",
		}, []string{"reason"}),
		accountsProvisioned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_provisioned_total",
			Help: "Customer-created notifications handled, by outcome",
		}, []string{"outcome"}),
		statementsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "statements_generated_total",
			Help: "Total number of account statements generated",
		}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "customer_events_published_total",
			Help: "Customer-created events published, by outcome",
		}, []string{"outcome"}),
		logger: logger,
	}
}

// RecordHTTPRequest records one served request. route is the matched route template.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMovementPosted counts an appended movement.
func (c *Collector) RecordMovementPosted(kind string) {
	if c == nil {
		return
	}
	c.movementsPosted.WithLabelValues(kind).Inc()
}

// RecordMovementRejected counts a movement refused before any write.
func (c *Collector) RecordMovementRejected(reason string) {
	if c == nil {
		return
	}
	c.movementsRejected.WithLabelValues(reason).Inc()
}

// RecordProvisioning counts a handled customer-created notification.
func (c *Collector) RecordProvisioning(outcome string) {
	if c == nil {
		return
	}
	c.accountsProvisioned.WithLabelValues(outcome).Inc()
}

// RecordStatementGenerated counts a statement served.
func (c *Collector) RecordStatementGenerated() {
	if c == nil {
		return
	}
	c.statementsGenerated.Inc()
}

// RecordEventPublished counts a publish attempt.
func (c *Collector) RecordEventPublished(success bool) {
	if c == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.eventsPublished.WithLabelValues(outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// GetHandler returns the scrape handler for this collector's registry.
func (c *Collector) GetHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(c.logger.Handler(), slog.LevelError),
	})
}

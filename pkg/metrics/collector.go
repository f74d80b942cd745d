// Package metrics exposes Prometheus instrumentation for the bot.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aevobot/aevo-helper-bot/internal/intent"
)

var (
	botUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Total number of handled bot updates labeled by action and status",
		},
		[]string{"action", "status"},
	)
	updateDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "update_duration_seconds",
			Help:    "Duration of bot update handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)
	marketRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_requests_total",
			Help: "Total number of market data API requests labeled by path and status",
		},
		[]string{"path", "status"},
	)
	marketRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "market_request_duration_seconds",
			Help:    "Duration of market data API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
	marketBadPayloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_bad_payloads_total",
			Help: "Total number of market data responses that decoded into nothing usable",
		},
		[]string{"path"},
	)
	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors split by type and severity",
		},
		[]string{"type", "severity"},
	)
	pendingIntents = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pending_intents",
			Help: "Number of users with a pending lookup intent",
		},
		[]string{"intent"},
	)
)

// RecordUpdate increments update counters and records handling duration.
func RecordUpdate(action, status string, duration time.Duration) {
	if action == "" {
		action = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	botUpdatesTotal.WithLabelValues(action, status).Inc()
	updateDurationSeconds.WithLabelValues(action).Observe(duration.Seconds())
}

// RecordMarketRequest tracks one outbound market data API call.
func RecordMarketRequest(path, status string, duration time.Duration) {
	if path == "" {
		path = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	marketRequestsTotal.WithLabelValues(path, status).Inc()
	marketRequestDurationSeconds.WithLabelValues(path).Observe(duration.Seconds())
}

// RecordBadPayload counts a 200 response whose body could not be used.
func RecordBadPayload(path string) {
	if path == "" {
		path = "unknown"
	}

	marketBadPayloadsTotal.WithLabelValues(path).Inc()
}

// RecordError increments error counters with metadata.
func RecordError(errType, severity string) {
	if errType == "" {
		errType = "unknown"
	}
	if severity == "" {
		severity = "unknown"
	}

	errorsTotal.WithLabelValues(errType, severity).Inc()
}

// SetPendingIntents updates the gauge for the given intent kind.
func SetPendingIntents(kind string, count int) {
	if kind == "" {
		kind = "unknown"
	}

	pendingIntents.WithLabelValues(kind).Set(float64(count))
}

// IntentCollector periodically counts pending intents per kind and emits gauge metrics.
type IntentCollector struct {
	store    intent.Store
	log      *slog.Logger
	interval time.Duration
}

// NewIntentCollector constructs a collector over the provided store.
func NewIntentCollector(store intent.Store, log *slog.Logger, interval time.Duration) *IntentCollector {
	if log == nil {
		log = slog.Default()
	}

	return &IntentCollector{
		store:    store,
		log:      log,
		interval: interval,
	}
}

// Run updates the pending intent gauges until the context is cancelled.
func (c *IntentCollector) Run(ctx context.Context) {
	if c == nil || c.store == nil || c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

func (c *IntentCollector) collect(ctx context.Context) {
	records, err := c.store.All(ctx)
	if err != nil {
		c.log.Error("intent collector failed to list pending intents", slog.Any("error", err))
		return
	}

	counts := map[intent.Intent]int{
		intent.Price:   0,
		intent.Funding: 0,
	}
	for _, rec := range records {
		counts[rec.Intent]++
	}

	for kind, count := range counts {
		SetPendingIntents(string(kind), count)
	}
}

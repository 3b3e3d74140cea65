package infrastructure

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"weatherbot.app/internal/ports"
)

const metricsNamespace = "weatherbot"

// MetricsCollectorAdapter implements the MetricsCollector port with Prometheus
type MetricsCollectorAdapter struct {
	cacheType string

	cacheLookups     *prometheus.CounterVec   // labels: cache_type, result={hit,miss}
	forecastRequests *prometheus.CounterVec   // labels: operation={geocode,forecast}, outcome={success,error}
	forecastDuration *prometheus.HistogramVec // labels: operation
	dialogueEvents   *prometheus.CounterVec   // labels: state, event
	activeSessions   prometheus.Gauge
	dispatchMessages *prometheus.CounterVec // labels: outcome={sent,failed}
	dispatchDuration prometheus.Histogram
	dispatchLastRun  prometheus.Gauge
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
	CacheType  string
}

// NewMetricsCollectorAdapter creates and registers all bot metrics
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	reg := config.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &MetricsCollectorAdapter{
		cacheType: config.CacheType,
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "geocode_cache_lookups_total",
			Help:      "Geocode cache lookups by cache type and result.",
		}, []string{"cache_type", "result"}),
		forecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "forecast_requests_total",
			Help:      "Forecast API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		forecastDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "forecast_request_duration_seconds",
			Help:      "Forecast API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		dialogueEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "dialogue_events_total",
			Help:      "Conversation events by state and classified input.",
		}, []string{"state", "event"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Open conversation sessions.",
		}),
		dispatchMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "dispatch_messages_total",
			Help:      "Daily forecast messages by outcome.",
		}, []string{"outcome"}),
		dispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Duration of a complete daily dispatch run.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		dispatchLastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dispatch_last_run_timestamp_seconds",
			Help:      "Unix time the last daily dispatch finished.",
		}),
	}

	reg.MustRegister(
		m.cacheLookups,
		m.forecastRequests,
		m.forecastDuration,
		m.dialogueEvents,
		m.activeSessions,
		m.dispatchMessages,
		m.dispatchDuration,
		m.dispatchLastRun,
	)

	return m
}

func (m *MetricsCollectorAdapter) RecordCacheHit(ctx context.Context) {
	m.cacheLookups.WithLabelValues(m.cacheType, "hit").Inc()
}

func (m *MetricsCollectorAdapter) RecordCacheMiss(ctx context.Context) {
	m.cacheLookups.WithLabelValues(m.cacheType, "miss").Inc()
}

func (m *MetricsCollectorAdapter) RecordForecastCall(ctx context.Context, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.forecastRequests.WithLabelValues(operation, outcome).Inc()
	m.forecastDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *MetricsCollectorAdapter) RecordDialogueEvent(ctx context.Context, state, event string) {
	m.dialogueEvents.WithLabelValues(state, event).Inc()
}

func (m *MetricsCollectorAdapter) RecordDispatch(ctx context.Context, result ports.DispatchResult) {
	m.dispatchMessages.WithLabelValues("sent").Add(float64(result.Sent))
	m.dispatchMessages.WithLabelValues("failed").Add(float64(result.Failed))
	if !result.FinishedAt.IsZero() {
		m.dispatchDuration.Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())
		m.dispatchLastRun.Set(float64(result.FinishedAt.Unix()))
	}
}

func (m *MetricsCollectorAdapter) SetActiveSessions(count int) {
	m.activeSessions.Set(float64(count))
}

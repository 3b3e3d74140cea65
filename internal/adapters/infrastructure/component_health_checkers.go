package infrastructure

import (
	"context"

	"github.com/sony/gobreaker"
	"weatherbot.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// BreakerStateReporter is implemented by the circuit-broken forecast client
type BreakerStateReporter interface {
	State() gobreaker.State
}

// ForecastAPIHealthChecker reports the forecast client and its breaker state.
// It never calls the upstream API.
type ForecastAPIHealthChecker struct {
	client  ports.ForecastClient
	breaker BreakerStateReporter
}

// NewForecastAPIHealthChecker creates a new forecast API health checker;
// breaker may be nil when the breaker is disabled.
func NewForecastAPIHealthChecker(client ports.ForecastClient, breaker BreakerStateReporter) *ForecastAPIHealthChecker {
	return &ForecastAPIHealthChecker{client: client, breaker: breaker}
}

func (f *ForecastAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "forecastAPI",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if f.client == nil {
		status.Status = statusUnhealthy
		status.Error = "forecast client is not available"
		return status
	}
	status.Details["client"] = f.client.GetClientName()

	if f.breaker != nil {
		state := f.breaker.State()
		status.Details["breaker"] = state.String()
		switch state {
		case gobreaker.StateOpen:
			status.Status = statusUnhealthy
			status.Error = "circuit breaker is open"
		case gobreaker.StateHalfOpen:
			status.Status = statusDegraded
		}
	}
	return status
}

// Pinger is implemented by caches with a remote backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports geocode cache reachability and hit ratio
type CacheHealthChecker struct {
	cacheType string
	provider  ports.CacheProvider
}

func NewCacheHealthChecker(cacheType string, provider ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, provider: provider}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if pinger, ok := c.provider.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			// lookups fall through to the API, so the bot keeps working
			status.Status = statusDegraded
			status.Error = err.Error()
			return status
		}
	}

	if reporter, ok := c.provider.(ports.CacheStatsReporter); ok {
		stats := reporter.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hit_ratio"] = stats.HitRatio
	}
	return status
}

// ConversationHealthChecker reports how many conversations are open
type ConversationHealthChecker struct {
	activeSessions func() int
}

func NewConversationHealthChecker(activeSessions func() int) *ConversationHealthChecker {
	return &ConversationHealthChecker{activeSessions: activeSessions}
}

func (c *ConversationHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	return ports.HealthStatus{
		Component: "conversations",
		Status:    statusHealthy,
		Details:   map[string]interface{}{"active_sessions": c.activeSessions()},
	}
}

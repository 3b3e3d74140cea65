package infrastructure

import (
	"context"
	"fmt"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherbot.app/internal/mocks"
	"weatherbot.app/internal/ports"
)

type fixedBreaker gobreaker.State

func (b fixedBreaker) State() gobreaker.State { return gobreaker.State(b) }

type pingingCache struct {
	*mocks.CacheProvider
	err error
}

func (p pingingCache) Ping(ctx context.Context) error { return p.err }

func TestDatabaseHealthChecker(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	repo := mocks.NewUserPreferenceRepository(t)
	repo.EXPECT().Count(mock.Anything).Return(int64(12), nil)

	status := NewDatabaseHealthChecker(db, repo).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, int64(12), status.Details["subscribers"])

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status = NewDatabaseHealthChecker(db, nil).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
	assert.NotEmpty(t, status.Error)

	status = NewDatabaseHealthChecker(nil, nil).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
}

func TestForecastAPIHealthChecker(t *testing.T) {
	client := mocks.NewForecastClient(t)
	client.EXPECT().GetClientName().Return("openweathermap")

	tests := []struct {
		name    string
		breaker BreakerStateReporter
		want    string
	}{
		{name: "no breaker", want: "healthy"},
		{name: "closed", breaker: fixedBreaker(gobreaker.StateClosed), want: "healthy"},
		{name: "half open", breaker: fixedBreaker(gobreaker.StateHalfOpen), want: "degraded"},
		{name: "open", breaker: fixedBreaker(gobreaker.StateOpen), want: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := NewForecastAPIHealthChecker(client, tt.breaker).Check(context.Background())
			assert.Equal(t, tt.want, status.Status)
			assert.Equal(t, "openweathermap", status.Details["client"])
		})
	}

	status := NewForecastAPIHealthChecker(nil, nil).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
}

func TestCacheHealthChecker(t *testing.T) {
	status := NewCacheHealthChecker("redis", pingingCache{CacheProvider: mocks.NewCacheProvider(t), err: fmt.Errorf("connection refused")}).Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Contains(t, status.Error, "refused")

	status = NewCacheHealthChecker("redis", pingingCache{CacheProvider: mocks.NewCacheProvider(t)}).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "redis", status.Details["type"])
}

func TestSystemHealthChecker(t *testing.T) {
	healthy := mocks.NewHealthChecker(t)
	healthy.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "conversations", Status: "healthy"})
	broken := mocks.NewHealthChecker(t)
	broken.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "database", Status: "unhealthy"})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{Checkers: map[string]ports.HealthChecker{
		"conversations": healthy,
		"database":      broken,
		"missing":       nil,
	}})

	results := checker.CheckAll(context.Background())
	require.Len(t, results, 2)
	assert.Equal(t, "unhealthy", results["database"].Status)
	assert.Equal(t, "unhealthy", OverallStatus(results))

	report := checker.Report(context.Background())
	assert.Equal(t, "unhealthy", report.Status)
	assert.Len(t, report.Components, 2)

	delete(results, "database")
	assert.Equal(t, "healthy", OverallStatus(results))
	results["cache"] = ports.HealthStatus{Status: "degraded"}
	assert.Equal(t, "degraded", OverallStatus(results))
}

func TestConversationHealthChecker(t *testing.T) {
	status := NewConversationHealthChecker(func() int { return 4 }).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, 4, status.Details["active_sessions"])
}

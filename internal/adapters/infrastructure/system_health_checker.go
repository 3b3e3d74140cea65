package infrastructure

import (
	"context"
	"sync"

	"weatherbot.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// SystemHealthCheckerConfig holds the checkers keyed by component name
type SystemHealthCheckerConfig struct {
	Checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll runs every check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]ports.HealthStatus, len(s.checkers))
	)

	for name, checker := range s.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}()
	}
	wg.Wait()

	return results
}

// Report runs every check and folds the results into one status
func (s *SystemHealthChecker) Report(ctx context.Context) ports.HealthReport {
	results := s.CheckAll(ctx)
	return ports.HealthReport{
		Status:     OverallStatus(results),
		Components: results,
	}
}

// OverallStatus folds component statuses: any unhealthy wins, then degraded
func OverallStatus(results map[string]ports.HealthStatus) string {
	overall := statusHealthy
	for _, r := range results {
		switch r.Status {
		case statusUnhealthy:
			return statusUnhealthy
		case statusDegraded:
			overall = statusDegraded
		}
	}
	return overall
}

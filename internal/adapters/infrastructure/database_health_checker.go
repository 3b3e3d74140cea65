package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"weatherbot.app/internal/ports"
)

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	db   *gorm.DB
	repo ports.UserPreferenceRepository
}

// NewDatabaseHealthChecker creates a new database health checker. repo is
// optional and adds the subscriber count to the details.
func NewDatabaseHealthChecker(db *gorm.DB, repo ports.UserPreferenceRepository) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, repo: repo}
}

// Check verifies database connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = statusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true

	if d.repo != nil {
		if count, err := d.repo.Count(ctx); err == nil {
			status.Details["subscribers"] = count
		}
	}
	return status
}

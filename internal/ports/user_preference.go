package ports

import (
	"context"
	"time"
)

// UserPreferenceData represents a saved city for persistence
type UserPreferenceData struct {
	UserID    int64
	City      string
	Latitude  string
	Longitude string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPreferenceRepository defines the contract for user preference persistence.
// A row exists for a user exactly when that user is subscribed to daily updates.
type UserPreferenceRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*UserPreferenceData, error)
	Upsert(ctx context.Context, pref *UserPreferenceData) error
	Delete(ctx context.Context, userID int64) (bool, error)
	ListAll(ctx context.Context) ([]*UserPreferenceData, error)
	Count(ctx context.Context) (int64, error)
}

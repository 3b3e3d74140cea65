package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// UserPreferenceModel represents the database model for saved cities
type UserPreferenceModel struct {
	UserID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Latitude  string `gorm:"column:lat;not null"`
	Longitude string `gorm:"column:lon;not null"`
	City      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserPreferenceModel) TableName() string {
	return "users"
}

// UserPreferenceRepositoryAdapter implements the UserPreferenceRepository port using GORM
type UserPreferenceRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserPreferenceRepositoryAdapter creates a new user preference repository adapter
func NewUserPreferenceRepositoryAdapter(db *gorm.DB) ports.UserPreferenceRepository {
	return &UserPreferenceRepositoryAdapter{db: db}
}

// FindByUserID retrieves the saved city for a user
func (r *UserPreferenceRepositoryAdapter) FindByUserID(ctx context.Context, userID int64) (*ports.UserPreferenceData, error) {
	if userID <= 0 {
		return nil, errors.NewValidationError("user ID must be positive")
	}

	var model UserPreferenceModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user preference not found")
		}
		return nil, errors.NewDatabaseError("failed to find user preference", result.Error)
	}

	return r.modelToData(&model), nil
}

// Upsert inserts the preference or replaces city and coordinates of an
// existing row in a single statement
func (r *UserPreferenceRepositoryAdapter) Upsert(ctx context.Context, pref *ports.UserPreferenceData) error {
	if pref == nil {
		return errors.NewValidationError("user preference cannot be nil")
	}
	if pref.UserID <= 0 {
		return errors.NewValidationError("user ID must be positive")
	}

	model := r.dataToModel(pref)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lon", "city", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to upsert user preference", result.Error)
	}

	pref.CreatedAt = model.CreatedAt
	pref.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes the saved city and reports whether a row existed
func (r *UserPreferenceRepositoryAdapter) Delete(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, errors.NewValidationError("user ID must be positive")
	}

	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&UserPreferenceModel{})
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to delete user preference", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListAll retrieves every saved city for the daily dispatch
func (r *UserPreferenceRepositoryAdapter) ListAll(ctx context.Context) ([]*ports.UserPreferenceData, error) {
	var models []UserPreferenceModel
	result := r.db.WithContext(ctx).Order("user_id").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list user preferences", result.Error)
	}

	prefs := make([]*ports.UserPreferenceData, len(models))
	for i := range models {
		prefs[i] = r.modelToData(&models[i])
	}

	return prefs, nil
}

// Count returns the number of subscribed users
func (r *UserPreferenceRepositoryAdapter) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&UserPreferenceModel{}).Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count user preferences", result.Error)
	}

	return count, nil
}

func (r *UserPreferenceRepositoryAdapter) dataToModel(data *ports.UserPreferenceData) *UserPreferenceModel {
	return &UserPreferenceModel{
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		City:      data.City,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func (r *UserPreferenceRepositoryAdapter) modelToData(model *UserPreferenceModel) *ports.UserPreferenceData {
	return &ports.UserPreferenceData{
		UserID:    model.UserID,
		City:      model.City,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

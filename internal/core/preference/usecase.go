package preference

import (
	"context"
	"fmt"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

type UseCase struct {
	repo   ports.UserPreferenceRepository
	logger ports.Logger
}

type UseCaseDependencies struct {
	Repository ports.UserPreferenceRepository
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("user preference repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repo:   deps.Repository,
		logger: deps.Logger,
	}, nil
}

// Get returns the saved city, or a not-found error when there is none
func (uc *UseCase) Get(ctx context.Context, userID int64) (*Preference, error) {
	data, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("find preference for user %d: %w", userID, err)
	}
	return dataToPreference(data), nil
}

// Save creates or fully replaces the user's preference in one statement
func (uc *UseCase) Save(ctx context.Context, pref *Preference) error {
	if pref == nil {
		return errors.NewValidationError("preference cannot be nil")
	}
	if err := pref.Validate(); err != nil {
		return err
	}

	if err := uc.repo.Upsert(ctx, preferenceToData(pref)); err != nil {
		return fmt.Errorf("save preference for user %d: %w", pref.UserID, err)
	}

	uc.logger.Info("User preference saved",
		ports.F("user_id", pref.UserID),
		ports.F("city", pref.City))
	return nil
}

// Cancel removes the preference; a user with nothing saved gets a
// not-subscribed error and nothing changes.
func (uc *UseCase) Cancel(ctx context.Context, userID int64) error {
	deleted, err := uc.repo.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete preference for user %d: %w", userID, err)
	}
	if !deleted {
		return errors.NewNotSubscribedError(fmt.Sprintf("user %d is not subscribed", userID))
	}

	uc.logger.Info("User unsubscribed", ports.F("user_id", userID))
	return nil
}

// ListSubscribed returns every saved preference
func (uc *UseCase) ListSubscribed(ctx context.Context) ([]*Preference, error) {
	rows, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	prefs := make([]*Preference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, dataToPreference(row))
	}
	return prefs, nil
}

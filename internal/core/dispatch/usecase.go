package dispatch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"weatherbot.app/internal/core/preference"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// ForecastRenderer renders the rest-of-today summary for a saved city
type ForecastRenderer interface {
	RenderToday(ctx context.Context, latitude, longitude, label string) (string, error)
}

// SubscriberSource lists users subscribed to the daily forecast
type SubscriberSource interface {
	ListSubscribed(ctx context.Context) ([]*preference.Preference, error)
}

type UseCase struct {
	subscribers SubscriberSource
	forecasts   ForecastRenderer
	messenger   ports.Messenger
	config      ports.ConfigProvider
	logger      ports.Logger
	metrics     ports.MetricsCollector
}

type UseCaseDependencies struct {
	Subscribers SubscriberSource
	Forecasts   ForecastRenderer
	Messenger   ports.Messenger
	Config      ports.ConfigProvider
	Logger      ports.Logger
	Metrics     ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Subscribers == nil {
		return nil, errors.NewValidationError("subscriber source is required")
	}
	if deps.Forecasts == nil {
		return nil, errors.NewValidationError("forecast renderer is required")
	}
	if deps.Messenger == nil {
		return nil, errors.NewValidationError("messenger is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		subscribers: deps.Subscribers,
		forecasts:   deps.Forecasts,
		messenger:   deps.Messenger,
		config:      deps.Config,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}, nil
}

// RunDaily pushes today's forecast to every subscriber. A failure for one
// user is logged and counted; the scan always covers everyone.
func (uc *UseCase) RunDaily(ctx context.Context) (ports.DispatchResult, error) {
	result := ports.DispatchResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	prefs, err := uc.subscribers.ListSubscribed(ctx)
	if err != nil {
		return result, fmt.Errorf("dispatch %s: %w", result.RunID, err)
	}
	result.Total = len(prefs)

	if len(prefs) == 0 {
		uc.logger.Debug("No subscribers for daily forecast", ports.F("run_id", result.RunID))
		result.FinishedAt = time.Now()
		uc.metrics.RecordDispatch(ctx, result)
		return result, nil
	}

	workers := uc.config.GetSchedulerConfig().DispatchConcurrency
	if workers < 1 {
		workers = 1
	}

	uc.logger.Info("Starting daily forecast dispatch",
		ports.F("run_id", result.RunID),
		ports.F("subscribers", len(prefs)),
		ports.F("workers", workers))

	var sent, failed atomic.Int64
	group := new(errgroup.Group)
	group.SetLimit(workers)

	for _, pref := range prefs {
		group.Go(func() error {
			if err := uc.sendOne(ctx, pref); err != nil {
				failed.Add(1)
				uc.logger.Error("Failed to send daily forecast",
					ports.F("run_id", result.RunID),
					ports.F("user_id", pref.UserID),
					ports.F("city", pref.City),
					ports.F("error", err))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = group.Wait()

	result.Sent = int(sent.Load())
	result.Failed = int(failed.Load())
	result.FinishedAt = time.Now()
	uc.metrics.RecordDispatch(ctx, result)

	uc.logger.Info("Daily forecast dispatch completed",
		ports.F("run_id", result.RunID),
		ports.F("total", result.Total),
		ports.F("sent", result.Sent),
		ports.F("failed", result.Failed),
		ports.F("duration_ms", result.FinishedAt.Sub(result.StartedAt).Milliseconds()))

	if result.Failed > 0 {
		return result, fmt.Errorf("failed to send %d out of %d daily forecasts", result.Failed, result.Total)
	}
	return result, nil
}

func (uc *UseCase) sendOne(ctx context.Context, pref *preference.Preference) error {
	text, err := uc.forecasts.RenderToday(ctx, pref.Latitude, pref.Longitude, pref.City)
	if err != nil {
		return err
	}
	return uc.messenger.Send(ctx, ports.OutboundMessage{
		ChatID:   pref.UserID,
		Text:     text,
		Markdown: true,
	})
}

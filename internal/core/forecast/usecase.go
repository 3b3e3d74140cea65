package forecast

import (
	"context"
	"fmt"
	"strings"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
	"weatherbot.app/pkg/validation"
)

type UseCase struct {
	client  ports.ForecastClient
	cache   ports.GeocodeCache
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsCollector
}

type UseCaseDependencies struct {
	Client  ports.ForecastClient
	Cache   ports.GeocodeCache
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("forecast client is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("geocode cache is required")
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
		client:  deps.Client,
		cache:   deps.Cache,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// FindCities geocodes free text and returns the deduplicated city options.
// The query is capitalized first and that text is what the labels show.
func (uc *UseCase) FindCities(ctx context.Context, text string) ([]CityOption, error) {
	query, ok := validation.TrimAndValidate(text)
	if !ok || !validation.IsCityName(query) {
		return nil, errors.NewValidationError("city name contains unsupported characters")
	}
	query = validation.Capitalize(query)

	candidates, err := uc.geocodeWithCache(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geocode %s: %w", query, err)
	}

	options := make([]CityOption, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		label := CandidateLabel(query, c)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		options = append(options, CityOption{
			Label:     label,
			Latitude:  FormatCoordinate(c.Latitude),
			Longitude: FormatCoordinate(c.Longitude),
		})
	}

	if len(options) == 0 {
		return nil, errors.NewNoMatchError("no city matches " + query)
	}

	uc.logger.Debug("Geocoding matched cities",
		ports.F("query", query),
		ports.F("candidates", len(candidates)),
		ports.F("options", len(options)))
	return options, nil
}

// PrepareDays fetches a fresh forecast and renders all five day summaries
func (uc *UseCase) PrepareDays(ctx context.Context, latitude, longitude, label string) (*DayMenu, error) {
	series, err := uc.client.ForecastByCoordinates(ctx, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", label, err)
	}

	menu, err := PrerenderDays(series, label)
	if err != nil {
		uc.logger.Warn("Forecast series could not be sliced",
			ports.F("label", label),
			ports.F("samples", len(series.Samples)),
			ports.F("error", err))
		return nil, err
	}

	return menu, nil
}

// RenderToday fetches a fresh forecast and renders only day 0
func (uc *UseCase) RenderToday(ctx context.Context, latitude, longitude, label string) (string, error) {
	series, err := uc.client.ForecastByCoordinates(ctx, latitude, longitude)
	if err != nil {
		return "", fmt.Errorf("forecast for %s: %w", label, err)
	}
	return RenderDay(series, 0, label)
}

func (uc *UseCase) geocodeWithCache(ctx context.Context, query string) ([]ports.GeoCandidate, error) {
	cacheCfg := uc.config.GetCacheConfig()
	if cacheCfg.Type == "none" {
		return uc.client.Geocode(ctx, query)
	}

	key := strings.ToLower(query)
	cached, err := uc.cache.Get(ctx, key)
	if err == nil {
		uc.metrics.RecordCacheHit(ctx)
		uc.logger.Debug("Geocode cache hit", ports.F("query", query))
		return cached, nil
	}
	uc.metrics.RecordCacheMiss(ctx)
	if !errors.IsNotFoundError(err) {
		uc.logger.Warn("Geocode cache read failed", ports.F("query", query), ports.F("error", err))
	}

	candidates, err := uc.client.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(candidates) > 0 {
		if err := uc.cache.Set(ctx, key, candidates, cacheCfg.GeocodeTTL); err != nil {
			uc.logger.Warn("Failed to cache geocoding result", ports.F("query", query), ports.F("error", err))
		}
	}
	return candidates, nil
}

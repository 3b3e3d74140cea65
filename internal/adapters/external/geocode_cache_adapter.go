package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

const geocodeKeyPrefix = "geocode:"

// GeocodeCacheAdapter bridges generic CacheProvider to the GeocodeCache port
type GeocodeCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewGeocodeCacheAdapter creates a geocode cache on top of a generic cache provider
func NewGeocodeCacheAdapter(cacheProvider ports.CacheProvider) ports.GeocodeCache {
	return &GeocodeCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves cached candidates for a city name
func (g *GeocodeCacheAdapter) Get(ctx context.Context, cityName string) ([]ports.GeoCandidate, error) {
	data, err := g.cacheProvider.Get(ctx, geocodeKeyPrefix+cityName)
	if err != nil {
		return nil, err
	}

	var candidates []ports.GeoCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, errors.Wrap(errors.ErrorTypeDatabase, "failed to deserialize geocode candidates", err)
	}

	return candidates, nil
}

// Set stores candidates for a city name
func (g *GeocodeCacheAdapter) Set(ctx context.Context, cityName string, candidates []ports.GeoCandidate, ttl time.Duration) error {
	if cityName == "" {
		return errors.NewValidationError("city name cannot be empty")
	}

	data, err := json.Marshal(candidates)
	if err != nil {
		return errors.Wrap(errors.ErrorTypeDatabase, "failed to serialize geocode candidates", err)
	}

	return g.cacheProvider.Set(ctx, geocodeKeyPrefix+cityName, data, ttl)
}

package ports

import (
	"context"
	"time"
)

// GeoCandidate is one geocoding match for a typed city name
type GeoCandidate struct {
	City      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
}

// ForecastSample is a single point of the forecast series
type ForecastSample struct {
	Timestamp    time.Time
	TemperatureK float64
	FeelsLikeK   float64
	Description  string
	WindSpeed    float64
	Humidity     int
}

// ForecastSeries is an ascending, fixed-cadence series of samples expressed in
// the city's local zone
type ForecastSeries struct {
	City     string
	Location *time.Location
	Samples  []ForecastSample
}

// ForecastClient defines the contract for geocoding and forecast lookups.
// Implementations never retry and report failures as transport errors.
type ForecastClient interface {
	Geocode(ctx context.Context, cityName string) ([]GeoCandidate, error)
	ForecastByCoordinates(ctx context.Context, latitude, longitude string) (*ForecastSeries, error)
	GetClientName() string
}

// GeocodeCache defines the contract for caching geocoding results
type GeocodeCache interface {
	Get(ctx context.Context, cityName string) ([]GeoCandidate, error)
	Set(ctx context.Context, cityName string, candidates []GeoCandidate, ttl time.Duration) error
}

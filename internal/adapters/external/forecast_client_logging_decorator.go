package external

import (
	"context"
	"time"

	"weatherbot.app/internal/ports"
)

// ForecastClientLoggingDecorator decorates forecast clients with structured logging
type ForecastClientLoggingDecorator struct {
	client ports.ForecastClient
	logger ports.Logger
}

// NewForecastClientLoggingDecorator creates a new logging decorator for forecast clients
func NewForecastClientLoggingDecorator(client ports.ForecastClient, logger ports.Logger) ports.ForecastClient {
	return &ForecastClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// Geocode wraps the geocoding call with structured logging
func (d *ForecastClientLoggingDecorator) Geocode(ctx context.Context, cityName string) ([]ports.GeoCandidate, error) {
	clientName := d.client.GetClientName()

	d.logger.Info("Geocoding request started",
		ports.F("client", clientName),
		ports.F("city", cityName),
		ports.F("event", "request"))

	startTime := time.Now()
	candidates, err := d.client.Geocode(ctx, cityName)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("client", clientName),
			ports.F("city", cityName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("client", clientName),
		ports.F("city", cityName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("candidates", len(candidates)))

	return candidates, nil
}

// ForecastByCoordinates wraps the forecast call with structured logging
func (d *ForecastClientLoggingDecorator) ForecastByCoordinates(ctx context.Context, latitude, longitude string) (*ports.ForecastSeries, error) {
	clientName := d.client.GetClientName()

	d.logger.Info("Forecast request started",
		ports.F("client", clientName),
		ports.F("lat", latitude),
		ports.F("lon", longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	series, err := d.client.ForecastByCoordinates(ctx, latitude, longitude)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("client", clientName),
			ports.F("lat", latitude),
			ports.F("lon", longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast request completed",
		ports.F("client", clientName),
		ports.F("city", series.City),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(series.Samples)))

	return series, nil
}

// GetClientName returns the name of the wrapped client with logging indication
func (d *ForecastClientLoggingDecorator) GetClientName() string {
	return "logged(" + d.client.GetClientName() + ")"
}

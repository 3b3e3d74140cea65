package external

import (
	"context"
	"time"

	"weatherbot.app/internal/ports"
)

// ForecastClientMetricsDecorator records request outcome and latency per operation
type ForecastClientMetricsDecorator struct {
	client  ports.ForecastClient
	metrics ports.MetricsCollector
}

// NewForecastClientMetricsDecorator wraps client with metrics collection
func NewForecastClientMetricsDecorator(client ports.ForecastClient, metrics ports.MetricsCollector) ports.ForecastClient {
	return &ForecastClientMetricsDecorator{client: client, metrics: metrics}
}

func (d *ForecastClientMetricsDecorator) Geocode(ctx context.Context, cityName string) ([]ports.GeoCandidate, error) {
	start := time.Now()
	candidates, err := d.client.Geocode(ctx, cityName)
	d.metrics.RecordForecastCall(ctx, "geocode", err == nil, time.Since(start))
	return candidates, err
}

func (d *ForecastClientMetricsDecorator) ForecastByCoordinates(ctx context.Context, latitude, longitude string) (*ports.ForecastSeries, error) {
	start := time.Now()
	series, err := d.client.ForecastByCoordinates(ctx, latitude, longitude)
	d.metrics.RecordForecastCall(ctx, "forecast", err == nil, time.Since(start))
	return series, err
}

func (d *ForecastClientMetricsDecorator) GetClientName() string {
	return d.client.GetClientName()
}

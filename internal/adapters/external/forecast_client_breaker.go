package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

const (
	breakerMaxRequests      = 5
	breakerInterval         = time.Minute
	breakerOpenTimeout      = 2 * time.Minute
	breakerFailureThreshold = 5
)

// BreakerForecastClient fails fast while the upstream keeps failing. It
// never retries; an open breaker surfaces as the server transport error.
type BreakerForecastClient struct {
	client  ports.ForecastClient
	circuit *gobreaker.CircuitBreaker
	logger  ports.Logger
}

// NewBreakerForecastClient wraps client with a circuit breaker
func NewBreakerForecastClient(client ports.ForecastClient, logger ports.Logger) *BreakerForecastClient {
	b := &BreakerForecastClient{client: client, logger: logger}
	b.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        client.GetClientName(),
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.IsTransportError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Forecast client circuit breaker changed state",
				ports.F("client", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})
	return b
}

func (b *BreakerForecastClient) Geocode(ctx context.Context, cityName string) ([]ports.GeoCandidate, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		return b.client.Geocode(ctx, cityName)
	})
	if err != nil {
		return nil, b.translate(err)
	}
	candidates, _ := result.([]ports.GeoCandidate)
	return candidates, nil
}

func (b *BreakerForecastClient) ForecastByCoordinates(ctx context.Context, latitude, longitude string) (*ports.ForecastSeries, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		return b.client.ForecastByCoordinates(ctx, latitude, longitude)
	})
	if err != nil {
		return nil, b.translate(err)
	}
	series, ok := result.(*ports.ForecastSeries)
	if !ok {
		return nil, errors.NewServerError(fmt.Errorf("unexpected result type from circuit breaker"))
	}
	return series, nil
}

func (b *BreakerForecastClient) GetClientName() string {
	return b.client.GetClientName()
}

// State exposes the breaker state for health checks
func (b *BreakerForecastClient) State() gobreaker.State {
	return b.circuit.State()
}

func (b *BreakerForecastClient) translate(err error) error {
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewServerError(fmt.Errorf("circuit breaker open: %w", err))
	}
	return err
}

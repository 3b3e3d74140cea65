package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

const (
	defaultForecastURL  = "https://api.openweathermap.org/data/2.5"
	defaultGeocodingURL = "https://api.openweathermap.org/geo/1.0"
	defaultGeocodeLimit = 5
)

// OpenWeatherMapClientAdapter implements the ForecastClient port for OpenWeatherMap
type OpenWeatherMapClientAdapter struct {
	apiKey       string
	forecastURL  string
	geocodingURL string
	geocodeLimit int
	client       HTTPClient
	logger       ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client
type OpenWeatherMapClientParams struct {
	APIKey       string
	ForecastURL  string
	GeocodingURL string
	GeocodeLimit int
	Timeout      time.Duration
	HTTPClient   HTTPClient
	Logger       ports.Logger
}

type geocodeEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// forecastResponse represents the 5 day / 3 hour forecast payload
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// NewOpenWeatherMapClientAdapter creates a new OpenWeatherMap client adapter
func NewOpenWeatherMapClientAdapter(params OpenWeatherMapClientParams) *OpenWeatherMapClientAdapter {
	forecastURL := params.ForecastURL
	if forecastURL == "" {
		forecastURL = defaultForecastURL
	}
	geocodingURL := params.GeocodingURL
	if geocodingURL == "" {
		geocodingURL = defaultGeocodingURL
	}
	limit := params.GeocodeLimit
	if limit <= 0 {
		limit = defaultGeocodeLimit
	}
	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapClientAdapter{
		apiKey:       params.APIKey,
		forecastURL:  forecastURL,
		geocodingURL: geocodingURL,
		geocodeLimit: limit,
		client:       client,
		logger:       params.Logger,
	}
}

// Geocode resolves a city name to at most geocodeLimit candidates
func (c *OpenWeatherMapClientAdapter) Geocode(ctx context.Context, cityName string) ([]ports.GeoCandidate, error) {
	if cityName == "" {
		return nil, errors.NewValidationError("city name cannot be empty")
	}

	query := url.Values{}
	query.Set("q", cityName)
	query.Set("limit", strconv.Itoa(c.geocodeLimit))
	query.Set("appid", c.apiKey)

	var entries []geocodeEntry
	if err := c.getJSON(ctx, c.geocodingURL+"/direct?"+query.Encode(), &entries); err != nil {
		return nil, err
	}

	candidates := make([]ports.GeoCandidate, 0, len(entries))
	for _, e := range entries {
		candidates = append(candidates, ports.GeoCandidate{
			City:      e.Name,
			State:     e.State,
			Country:   e.Country,
			Latitude:  e.Lat,
			Longitude: e.Lon,
		})
	}
	return candidates, nil
}

// ForecastByCoordinates fetches the 3-hourly forecast and converts it to city-local time
func (c *OpenWeatherMapClientAdapter) ForecastByCoordinates(ctx context.Context, latitude, longitude string) (*ports.ForecastSeries, error) {
	if latitude == "" || longitude == "" {
		return nil, errors.NewValidationError("coordinates cannot be empty")
	}

	query := url.Values{}
	query.Set("lat", latitude)
	query.Set("lon", longitude)
	query.Set("appid", c.apiKey)

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"/forecast?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	loc := time.FixedZone(resp.City.Name, resp.City.Timezone)
	series := &ports.ForecastSeries{
		City:     resp.City.Name,
		Location: loc,
		Samples:  make([]ports.ForecastSample, 0, len(resp.List)),
	}
	for _, item := range resp.List {
		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}
		series.Samples = append(series.Samples, ports.ForecastSample{
			Timestamp:    time.Unix(item.Dt, 0).In(loc),
			TemperatureK: item.Main.Temp,
			FeelsLikeK:   item.Main.FeelsLike,
			Description:  description,
			WindSpeed:    item.Wind.Speed,
			Humidity:     item.Main.Humidity,
		})
	}

	return series, nil
}

// GetClientName returns the name of this forecast client
func (c *OpenWeatherMapClientAdapter) GetClientName() string {
	return "openweathermap"
}

func (c *OpenWeatherMapClientAdapter) getJSON(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewServerError(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewConnectionError(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.NewServerError(fmt.Errorf("OpenWeatherMap returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewServerError(fmt.Errorf("failed to decode OpenWeatherMap response: %w", err))
	}

	return nil
}

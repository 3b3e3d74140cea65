package forecast

import (
	"strconv"
	"strings"
	"time"

	"weatherbot.app/internal/ports"
)

const (
	// DaysAvailable is how many day buttons a forecast offers, today included
	DaysAvailable = 5

	kelvinOffset   = 273.15
	defaultCadence = 3 * time.Hour
	dateLayout     = "2006-01-02"
)

// CityOption is a deduplicated geocoding match ready to be shown as a button
type CityOption struct {
	Label     string
	Latitude  string
	Longitude string
}

// DayOption is a day-choice button; Data is the day index as text
type DayOption struct {
	Label string
	Data  string
}

// DayMenu holds the five pre-rendered day summaries for one forecast
type DayMenu struct {
	Messages [DaysAvailable]string
	Options  []DayOption
}

// CandidateLabel builds the "City, State, Country" text shown on a candidate
// button. The city part is the user's own capitalized query.
func CandidateLabel(query string, candidate ports.GeoCandidate) string {
	parts := []string{query}
	if strings.TrimSpace(candidate.State) != "" {
		parts = append(parts, candidate.State)
	}
	parts = append(parts, candidate.Country)
	return strings.Join(parts, ", ")
}

// FormatCoordinate renders a coordinate with the shortest exact representation
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CelsiusFromKelvin converts an upstream Kelvin reading
func CelsiusFromKelvin(k float64) float64 {
	return k - kelvinOffset
}

package forecast

import (
	"fmt"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// Cadence returns the spacing between samples, falling back to three hours
// when the series is too short to tell.
func Cadence(samples []ports.ForecastSample) time.Duration {
	if len(samples) < 2 {
		return defaultCadence
	}
	step := samples[1].Timestamp.Sub(samples[0].Timestamp)
	if step <= 0 {
		return defaultCadence
	}
	return step
}

// SamplesPerDay is the number of samples in a full local day
func SamplesPerDay(samples []ports.ForecastSample) int {
	perDay := int((24 * time.Hour) / Cadence(samples))
	if perDay < 1 {
		return 1
	}
	return perDay
}

// DayBoundary returns the index of the last sample that falls on the first
// sample's local date. It is derived from the time left until local midnight
// rather than by scanning for a particular hour.
func DayBoundary(series *ports.ForecastSeries) (int, error) {
	if series == nil || len(series.Samples) == 0 {
		return 0, errors.NewForecastDataError("forecast series is empty")
	}

	first := localTime(series, series.Samples[0].Timestamp)
	midnight := time.Date(first.Year(), first.Month(), first.Day()+1, 0, 0, 0, 0, first.Location())
	cadence := Cadence(series.Samples)

	remaining := midnight.Sub(first)
	count := int((remaining + cadence - 1) / cadence)
	boundary := count - 1

	if boundary >= len(series.Samples)-1 {
		return 0, errors.NewForecastDataError(
			fmt.Sprintf("forecast series of %d samples does not extend past the first local day", len(series.Samples)))
	}
	return boundary, nil
}

// SliceDay returns the samples for day n, where day 0 is the rest of the
// first local day and day n >= 1 is the n-th full day after it.
func SliceDay(series *ports.ForecastSeries, day int) ([]ports.ForecastSample, error) {
	if day < 0 || day >= DaysAvailable {
		return nil, errors.NewValidationError(fmt.Sprintf("day index must be between 0 and %d", DaysAvailable-1))
	}

	boundary, err := DayBoundary(series)
	if err != nil {
		return nil, err
	}

	if day == 0 {
		return series.Samples[:boundary+1], nil
	}

	perDay := SamplesPerDay(series.Samples)
	start := boundary + 1 + (day-1)*perDay
	if start >= len(series.Samples) {
		return nil, errors.NewForecastDataError(fmt.Sprintf("forecast series has no samples for day %d", day))
	}
	end := start + perDay
	if end > len(series.Samples) {
		end = len(series.Samples)
	}
	return series.Samples[start:end], nil
}

func localTime(series *ports.ForecastSeries, t time.Time) time.Time {
	if series.Location == nil {
		return t
	}
	return t.In(series.Location)
}

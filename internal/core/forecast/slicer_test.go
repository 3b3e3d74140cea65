package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// buildSeries returns count samples spaced three hours apart starting at
// the given local wall time.
func buildSeries(loc *time.Location, start time.Time, count int) *ports.ForecastSeries {
	series := &ports.ForecastSeries{City: "Tel Aviv", Location: loc}
	for i := 0; i < count; i++ {
		series.Samples = append(series.Samples, ports.ForecastSample{
			Timestamp:    start.Add(time.Duration(i) * 3 * time.Hour),
			TemperatureK: 293.15 + float64(i),
			FeelsLikeK:   292.15 + float64(i),
			Description:  "clear sky",
			WindSpeed:    4,
			Humidity:     50 + i,
		})
	}
	return series
}

func TestDayBoundary(t *testing.T) {
	loc := time.FixedZone("IDT", 3*3600)

	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{name: "starts at noon", start: time.Date(2024, 6, 1, 12, 0, 0, 0, loc), want: 3},
		{name: "starts at midnight", start: time.Date(2024, 6, 1, 0, 0, 0, 0, loc), want: 7},
		{name: "starts late evening", start: time.Date(2024, 6, 1, 21, 0, 0, 0, loc), want: 0},
		{name: "odd hour offset", start: time.Date(2024, 6, 1, 13, 0, 0, 0, loc), want: 3},
		{name: "one hour before midnight", start: time.Date(2024, 6, 1, 23, 0, 0, 0, loc), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := buildSeries(loc, tt.start, 40)

			boundary, err := DayBoundary(series)
			require.NoError(t, err)
			assert.Equal(t, tt.want, boundary)

			last := series.Samples[boundary].Timestamp.In(loc)
			next := series.Samples[boundary+1].Timestamp.In(loc)
			assert.Equal(t, tt.start.Day(), last.Day())
			assert.NotEqual(t, tt.start.Day(), next.Day())
		})
	}
}

func TestDayBoundary_UsesSeriesZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	// 09:00 UTC is 12:00 in the city
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	boundary, err := DayBoundary(buildSeries(loc, start, 40))
	require.NoError(t, err)
	assert.Equal(t, 3, boundary)
}

func TestDayBoundary_Errors(t *testing.T) {
	loc := time.UTC

	_, err := DayBoundary(&ports.ForecastSeries{Location: loc})
	require.Error(t, err)
	assert.True(t, errors.IsForecastDataError(err))

	_, err = DayBoundary(nil)
	assert.True(t, errors.IsForecastDataError(err))

	short := buildSeries(loc, time.Date(2024, 6, 1, 12, 0, 0, 0, loc), 4)
	_, err = DayBoundary(short)
	require.Error(t, err)
	assert.True(t, errors.IsForecastDataError(err))
}

func TestSliceDay(t *testing.T) {
	loc := time.FixedZone("IDT", 3*3600)
	series := buildSeries(loc, time.Date(2024, 6, 1, 12, 0, 0, 0, loc), 40)

	today, err := SliceDay(series, 0)
	require.NoError(t, err)
	require.Len(t, today, 4)
	assert.Equal(t, 12, today[0].Timestamp.In(loc).Hour())
	assert.Equal(t, 21, today[3].Timestamp.In(loc).Hour())

	for day := 1; day <= 4; day++ {
		samples, err := SliceDay(series, day)
		require.NoError(t, err)
		require.Len(t, samples, 8, "day %d", day)
		first := samples[0].Timestamp.In(loc)
		assert.Equal(t, 0, first.Hour())
		assert.Equal(t, 1+day, first.Day())
		assert.Equal(t, 21, samples[7].Timestamp.In(loc).Hour())
	}
}

func TestSliceDay_ClampsLastDay(t *testing.T) {
	loc := time.UTC
	// boundary 0, so day 4 starts at sample 25 and only 15 samples remain
	series := buildSeries(loc, time.Date(2024, 6, 1, 21, 0, 0, 0, loc), 30)

	samples, err := SliceDay(series, 4)
	require.NoError(t, err)
	assert.Len(t, samples, 5)

	series = buildSeries(loc, time.Date(2024, 6, 1, 21, 0, 0, 0, loc), 20)
	_, err = SliceDay(series, 4)
	require.Error(t, err)
	assert.True(t, errors.IsForecastDataError(err))
}

func TestSliceDay_InvalidDay(t *testing.T) {
	series := buildSeries(time.UTC, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 40)

	for _, day := range []int{-1, 5} {
		_, err := SliceDay(series, day)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestCadence(t *testing.T) {
	assert.Equal(t, 3*time.Hour, Cadence(nil))

	series := buildSeries(time.UTC, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 2)
	assert.Equal(t, 3*time.Hour, Cadence(series.Samples))
	assert.Equal(t, 8, SamplesPerDay(series.Samples))

	hourly := []ports.ForecastSample{
		{Timestamp: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Timestamp: time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC)},
	}
	assert.Equal(t, time.Hour, Cadence(hourly))
	assert.Equal(t, 24, SamplesPerDay(hourly))
}

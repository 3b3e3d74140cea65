package forecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/validation"
)

// FormatDay renders the Markdown summary for one day's samples
func FormatDay(series *ports.ForecastSeries, label string, samples []ports.ForecastSample) string {
	var b strings.Builder

	date := ""
	if len(samples) > 0 {
		date = localTime(series, samples[0].Timestamp).Format(dateLayout)
	}
	fmt.Fprintf(&b, "*Weather Forecast for %s \n %s* 🌐\n\n", label, date)

	for _, s := range samples {
		at := localTime(series, s.Timestamp)
		fmt.Fprintf(&b, "_• %02d:00_\n", at.Hour())
		fmt.Fprintf(&b, "*🌡️  Temperature:* %.2f°C\n", CelsiusFromKelvin(s.TemperatureK))
		fmt.Fprintf(&b, "*💓  Feels Like:* %.2f°C\n", CelsiusFromKelvin(s.FeelsLikeK))
		fmt.Fprintf(&b, "*📰  Description:* %s\n", validation.Capitalize(s.Description))
		fmt.Fprintf(&b, "*🌬️  Wind Speed:* %s m/s\n", formatWindSpeed(s.WindSpeed))
		fmt.Fprintf(&b, "*💦  Humidity:* %d%%\n\n", s.Humidity)
	}

	return b.String()
}

// RenderDay slices and formats a single day
func RenderDay(series *ports.ForecastSeries, day int, label string) (string, error) {
	samples, err := SliceDay(series, day)
	if err != nil {
		return "", err
	}
	return FormatDay(series, label, samples), nil
}

// PrerenderDays renders every available day and the matching buttons
func PrerenderDays(series *ports.ForecastSeries, label string) (*DayMenu, error) {
	menu := &DayMenu{Options: make([]DayOption, 0, DaysAvailable)}

	for day := 0; day < DaysAvailable; day++ {
		samples, err := SliceDay(series, day)
		if err != nil {
			return nil, err
		}
		menu.Messages[day] = FormatDay(series, label, samples)
		menu.Options = append(menu.Options, DayOption{
			Label: dayButtonLabel(day, localTime(series, samples[0].Timestamp).Format(dateLayout)),
			Data:  strconv.Itoa(day),
		})
	}

	return menu, nil
}

func dayButtonLabel(day int, date string) string {
	switch day {
	case 0:
		return "Today, " + date
	case 1:
		return "Tomorrow, " + date
	default:
		return date
	}
}

// formatWindSpeed prints whole numbers with one decimal ("4.0") and keeps
// the upstream precision otherwise ("3.61").
func formatWindSpeed(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

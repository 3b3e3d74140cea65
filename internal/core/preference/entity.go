package preference

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// maxPayloadBytes is Telegram's limit for inline button callback data
const maxPayloadBytes = 64

var validate = validator.New()

// Preference is a user's saved city. It exists only while the user is
// subscribed to the daily forecast.
type Preference struct {
	UserID    int64  `validate:"gt=0"`
	City      string `validate:"required"`
	Latitude  string `validate:"required,latitude"`
	Longitude string `validate:"required,longitude"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the preference before it is persisted
func (p *Preference) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.NewValidationError("invalid preference: " + err.Error())
	}
	return nil
}

// LocationChoice is what a pressed candidate button carries
type LocationChoice struct {
	Label     string
	Latitude  string
	Longitude string
}

// EncodeLocationPayload packs a candidate into "<label>:<lon>,<lat>". The
// label is shortened when needed so the payload fits in a callback; the
// coordinates are never cut.
func EncodeLocationPayload(label, latitude, longitude string) string {
	suffix := ":" + longitude + "," + latitude
	budget := maxPayloadBytes - len(suffix)
	if budget < 0 {
		budget = 0
	}
	label = strings.ReplaceAll(label, ":", " ")
	for len(label) > budget {
		_, size := utf8.DecodeLastRuneInString(label)
		label = label[:len(label)-size]
	}
	return strings.TrimRight(label, " ,") + suffix
}

// ParseLocationPayload reverses EncodeLocationPayload: the label ends at the
// first ':' and the longitude at the following ','.
func ParseLocationPayload(data string) (LocationChoice, error) {
	colon := strings.Index(data, ":")
	if colon <= 0 {
		return LocationChoice{}, errors.NewUnrecognizedInputError("callback payload has no label")
	}
	coords := data[colon+1:]
	comma := strings.Index(coords, ",")
	if comma <= 0 || comma == len(coords)-1 {
		return LocationChoice{}, errors.NewUnrecognizedInputError("callback payload has no coordinates")
	}

	choice := LocationChoice{
		Label:     data[:colon],
		Longitude: coords[:comma],
		Latitude:  coords[comma+1:],
	}
	if validate.Var(choice.Latitude, "latitude") != nil || validate.Var(choice.Longitude, "longitude") != nil {
		return LocationChoice{}, errors.NewUnrecognizedInputError("callback payload has invalid coordinates")
	}
	return choice, nil
}

func dataToPreference(data *ports.UserPreferenceData) *Preference {
	return &Preference{
		UserID:    data.UserID,
		City:      data.City,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func preferenceToData(p *Preference) *ports.UserPreferenceData {
	return &ports.UserPreferenceData{
		UserID:    p.UserID,
		City:      p.City,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

package preference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/pkg/errors"
)

func TestLocationPayload_RoundTrip(t *testing.T) {
	payload := EncodeLocationPayload("Tel Aviv, IL", "32.0852997", "34.7818064")
	assert.Equal(t, "Tel Aviv, IL:34.7818064,32.0852997", payload)

	choice, err := ParseLocationPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, LocationChoice{Label: "Tel Aviv, IL", Latitude: "32.0852997", Longitude: "34.7818064"}, choice)
}

func TestEncodeLocationPayload_FitsCallbackLimit(t *testing.T) {
	label := "Llanfairpwllgwyngyll, Wales, Gwynedd County Council Area, GB"
	payload := EncodeLocationPayload(label, "53.2214419", "-4.2036489")

	assert.LessOrEqual(t, len(payload), maxPayloadBytes)
	assert.True(t, strings.HasSuffix(payload, ":-4.2036489,53.2214419"))

	choice, err := ParseLocationPayload(payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(label, choice.Label))
	assert.Equal(t, "53.2214419", choice.Latitude)
}

func TestEncodeLocationPayload_MultiByteLabel(t *testing.T) {
	label := strings.Repeat("Тель-Авив ", 6)
	payload := EncodeLocationPayload(label, "32.08", "34.78")

	assert.LessOrEqual(t, len(payload), maxPayloadBytes)
	choice, err := ParseLocationPayload(payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(label, choice.Label))
}

func TestEncodeLocationPayload_ReplacesColon(t *testing.T) {
	payload := EncodeLocationPayload("Odd:Name, XX", "1.5", "2.5")

	choice, err := ParseLocationPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "Odd Name, XX", choice.Label)
	assert.Equal(t, "2.5", choice.Longitude)
}

func TestParseLocationPayload_Invalid(t *testing.T) {
	for _, data := range []string{"", "0", "no-colon", ":1,2", "Paris:", "Paris:2.35", "Paris:2.35,", "Paris:abc,48.85", "Paris:2.35,99.5"} {
		_, err := ParseLocationPayload(data)
		require.Error(t, err, data)
		assert.True(t, errors.IsUnrecognizedInputError(err), data)
	}
}

func TestPreference_Validate(t *testing.T) {
	valid := Preference{UserID: 42, City: "Paris, FR", Latitude: "48.85", Longitude: "2.35"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *Preference)
	}{
		{name: "zero user", mutate: func(p *Preference) { p.UserID = 0 }},
		{name: "empty city", mutate: func(p *Preference) { p.City = "" }},
		{name: "latitude out of range", mutate: func(p *Preference) { p.Latitude = "91" }},
		{name: "longitude not a number", mutate: func(p *Preference) { p.Longitude = "east" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := NewValidationError("user id must be positive")
	assert.Equal(t, "VALIDATION_ERROR: user id must be positive", plain.Error())

	cause := fmt.Errorf("dial tcp: refused")
	wrapped := NewDatabaseError("failed to save preference", cause)
	assert.Equal(t, "DATABASE_ERROR: failed to save preference (caused by: dial tcp: refused)", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsHelpers_FollowWrapChain(t *testing.T) {
	base := NewNotFoundError("preference not found")
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsDatabaseError(wrapped))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain")))
}

func TestTransportErrors_CarryUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "connection", err: NewConnectionError(fmt.Errorf("no route")), want: ConnectionProblemMessage},
		{name: "server", err: NewServerError(fmt.Errorf("status 502")), want: ServerProblemMessage},
		{name: "wrapped server", err: fmt.Errorf("forecast: %w", NewServerError(nil)), want: ServerProblemMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, IsTransportError(tt.err))
			msg, ok := UserMessage(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}

	_, ok := UserMessage(NewDatabaseError("boom", nil))
	assert.False(t, ok)
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "FORECAST_DATA_ERROR", ErrorTypeForecastData.String())
	assert.Equal(t, "UNRECOGNIZED_INPUT_ERROR", ErrorTypeUnrecognizedInput.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}

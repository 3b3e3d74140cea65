package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := &HTTPServerAdapter{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "validation", err: errors.NewValidationError("validation failed"), wantStatus: http.StatusBadRequest, wantError: "validation failed"},
		{name: "not found", err: errors.NewNotFoundError("resource not found"), wantStatus: http.StatusNotFound, wantError: "resource not found"},
		{name: "transport", err: errors.NewServerError(stderrors.New("502")), wantStatus: http.StatusServiceUnavailable, wantError: "External service unavailable"},
		{name: "messaging", err: errors.NewMessagingError("send failed", nil), wantStatus: http.StatusBadGateway, wantError: "Unable to reach messaging platform"},
		{name: "database", err: errors.NewDatabaseError("database connection failed", nil), wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
		{name: "configuration", err: errors.NewConfigurationError("configuration error", nil), wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
		{name: "plain error", err: stderrors.New("boom"), wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				server.handleError(c, tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantError, response.Error)
		})
	}
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherbot.app/internal/ports"
)

// dispatchTimeout bounds a manual dispatch run
const dispatchTimeout = 30 * time.Minute

type dispatchResponse struct {
	RunID      string `json:"run_id"`
	Total      int    `json:"total"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	report := s.healthChecker.Report(c.Request.Context())

	statusCode := http.StatusOK
	if report.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, report)
}

// runDispatch handles POST /api/dispatch by running the daily job once.
// Partial delivery failures still answer 200 with the counts. The run
// outlives a client that hangs up.
func (s *HTTPServerAdapter) runDispatch(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), dispatchTimeout)
	defer cancel()

	result, err := s.dispatcher.RunDaily(ctx)
	if err != nil && result.Total == 0 {
		s.logger.Error("Manual dispatch failed", ports.F("run_id", result.RunID), ports.F("error", err))
		s.handleError(c, err)
		return
	}

	resp := dispatchResponse{
		RunID:      result.RunID,
		Total:      result.Total,
		Sent:       result.Sent,
		Failed:     result.Failed,
		DurationMS: result.FinishedAt.Sub(result.StartedAt).Milliseconds(),
	}
	if err != nil {
		resp.Error = err.Error()
	}

	s.logger.Info("Manual dispatch finished",
		ports.F("run_id", result.RunID),
		ports.F("sent", result.Sent),
		ports.F("failed", result.Failed))
	c.JSON(http.StatusOK, resp)
}

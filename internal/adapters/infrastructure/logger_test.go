package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/mocks"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/logger"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, slog.LevelInfo))

	adapter.Debug("hidden")
	adapter.Warn("Geocode cache read failed", ports.F("query", "London"), ports.F("error", fmt.Errorf("redis down")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Geocode cache read failed", entry["msg"])
	assert.Equal(t, "London", entry["query"])
	assert.Equal(t, "redis down", entry["error"])
}

func TestSlogLoggerAdapter_NilFallsBackToDefault(t *testing.T) {
	adapter := NewSlogLoggerAdapter(nil)
	assert.NotNil(t, adapter.logger)
}

func TestTeeLogger(t *testing.T) {
	first := mocks.NewLogger(t)
	second := mocks.NewLogger(t)
	field := ports.F("user_id", int64(42))

	first.EXPECT().Info("hello", field).Once()
	second.EXPECT().Info("hello", field).Once()
	first.EXPECT().Error("boom").Once()
	second.EXPECT().Error("boom").Once()

	tee := NewTeeLogger(first, second)
	tee.Info("hello", field)
	tee.Error("boom")
}

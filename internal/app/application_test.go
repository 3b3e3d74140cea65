package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"weatherbot.app/internal/config"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/logger"
)

type fakeBot struct {
	mu      sync.Mutex
	sent    []tgbotapi.MessageConfig
	updates chan tgbotapi.Update
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update, 10)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.mu.Lock()
		b.sent = append(b.sent, msg)
		b.mu.Unlock()
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {}

func (b *fakeBot) messages() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), b.sent...)
}

// forecastServer serves five days of 3-hourly samples for Tel Aviv
func forecastServer(t *testing.T) *httptest.Server {
	t.Helper()

	type item struct {
		Dt   int64                    `json:"dt"`
		Main map[string]float64       `json:"main"`
		Wind map[string]float64       `json:"wind"`
		Desc []map[string]interface{} `json:"weather"`
	}
	const start = int64(1717232400)
	list := make([]item, 0, 40)
	for i := int64(0); i < 40; i++ {
		list = append(list, item{
			Dt:   start + i*3*3600,
			Main: map[string]float64{"temp": 300.15, "feels_like": 301.15, "humidity": 40},
			Wind: map[string]float64{"speed": 4},
			Desc: []map[string]interface{}{{"description": "clear sky"}},
		})
	}
	body, err := json.Marshal(map[string]interface{}{
		"list": list,
		"city": map[string]interface{}{"name": "Tel Aviv", "timezone": 10800},
	})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/forecast"):
			_, _ = w.Write(body)
		case strings.HasSuffix(r.URL.Path, "/direct"):
			_, _ = w.Write([]byte(`[{"name":"Tel Aviv","lat":32.0853,"lon":34.7818,"country":"IL"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(weatherURL string) *config.Config {
	return &config.Config{
		Telegram: config.TelegramConfig{BotToken: "123:test", PollTimeoutSeconds: 1},
		Server:   config.ServerConfig{Port: 0},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "key",
			OpenWeatherMapBaseURL: weatherURL + "/data/2.5",
			GeocodingBaseURL:      weatherURL + "/geo/1.0",
			HTTPTimeoutSeconds:    2,
			GeocodeLimit:          5,
			EnableBreaker:         true,
		},
		Cache:        config.CacheConfig{Type: config.CacheTypeMemory, GeocodeTTLMinutes: 60},
		Scheduler:    config.SchedulerConfig{DispatchTime: "07:00", DispatchTimezone: "Asia/Tel_Aviv", DispatchConcurrency: 2},
		Conversation: config.ConversationConfig{TimeoutSeconds: 120, SweepSeconds: 5},
		LogLevel:     "error",
	}
}

func newTestApplication(t *testing.T) (*Application, *fakeBot) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := forecastServer(t)
	bot := newFakeBot()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	application, err := NewApplicationWithOptions(testConfig(server.URL), Options{
		Dependencies: DependencyOptions{
			Dialector: sqlite.Open(dsn),
			Logger:    logger.NewWithWriter(io.Discard, slog.LevelError),
		},
		Bot:      bot,
		Registry: prometheus.NewRegistry(),
		Clock:    clockwork.NewFakeClock(),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = application.Shutdown(ctx)
	})
	return application, bot
}

func TestApplication_ConversationOverPolling(t *testing.T) {
	application, bot := newTestApplication(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan error, 1)
	go func() { started <- application.Start(ctx) }()

	bot.updates <- tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: 42},
			Chat:      &tgbotapi.Chat{ID: 42},
			Text:      "/start",
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
		},
	}

	require.Eventually(t, func() bool { return len(bot.messages()) == 1 }, 2*time.Second, 10*time.Millisecond)
	greeting := bot.messages()[0]
	assert.Equal(t, int64(42), greeting.ChatID)
	assert.Contains(t, greeting.Text, "7:00")
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, greeting.ReplyMarkup)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	require.NoError(t, application.Shutdown(shutdownCtx))

	select {
	case err := <-started:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestApplication_HealthAndMetrics(t *testing.T) {
	application, _ := newTestApplication(t)
	router := application.GetRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var report ports.HealthReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "healthy", report.Status)
	assert.ElementsMatch(t, []string{"database", "forecastAPI", "cache", "conversations"}, keys(report.Components))
	assert.Equal(t, "closed", report.Components["forecastAPI"].Details["breaker"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weatherbot_active_sessions")
}

func TestApplication_RunDispatchOnce(t *testing.T) {
	application, bot := newTestApplication(t)
	ctx := context.Background()

	result, err := application.RunDispatchOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)

	repo := application.ports.UserPreferenceRepository
	require.NoError(t, repo.Upsert(ctx, &ports.UserPreferenceData{UserID: 7, City: "Tel Aviv, IL", Latitude: "32.0853", Longitude: "34.7818"}))
	require.NoError(t, repo.Upsert(ctx, &ports.UserPreferenceData{UserID: 8, City: "Tel Aviv, IL", Latitude: "32.0853", Longitude: "34.7818"}))

	result, err = application.RunDispatchOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Sent)

	sent := bot.messages()
	require.Len(t, sent, 2)
	chats := []int64{sent[0].ChatID, sent[1].ChatID}
	assert.ElementsMatch(t, []int64{7, 8}, chats)
	assert.Contains(t, sent[0].Text, "Tel Aviv, IL")
	assert.Equal(t, tgbotapi.ModeMarkdown, sent[0].ParseMode)
}

func keys(m map[string]ports.HealthStatus) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

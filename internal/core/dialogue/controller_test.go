package dialogue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/core/forecast"
	"weatherbot.app/internal/core/preference"
	"weatherbot.app/internal/mocks"
	"weatherbot.app/internal/ports"
	"weatherbot.app/internal/testutil"
	"weatherbot.app/pkg/errors"
)

const (
	testUserID = int64(42)
	testChatID = int64(4242)
)

type harness struct {
	controller *Controller
	sessions   *SessionStore
	clock      *clockwork.FakeClock
	client     *mocks.ForecastClient
	repo       *mocks.UserPreferenceRepository

	mu   sync.Mutex
	sent []ports.OutboundMessage
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		clock:  clockwork.NewFakeClock(),
		client: mocks.NewForecastClient(t),
		repo:   mocks.NewUserPreferenceRepository(t),
	}
	h.sessions = NewSessionStore(h.clock, 2*time.Minute)

	logger := testutil.PermissiveLogger(t)

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetCacheConfig().Return(ports.CacheConfig{Type: "none"}).Maybe()
	config.EXPECT().GetSchedulerConfig().Return(ports.SchedulerConfig{DispatchTime: "07:00", DisplayTime: "7:00"}).Maybe()

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordDialogueEvent(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().SetActiveSessions(mock.Anything).Maybe()

	messenger := mocks.NewMessenger(t)
	messenger.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, msg ports.OutboundMessage) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.sent = append(h.sent, msg)
		return nil
	}).Maybe()
	messenger.EXPECT().AnswerCallback(mock.Anything, mock.Anything).Return(nil).Maybe()

	forecasts, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Client:  h.client,
		Cache:   mocks.NewGeocodeCache(t),
		Config:  config,
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)

	preferences, err := preference.NewUseCase(preference.UseCaseDependencies{
		Repository: h.repo,
		Logger:     logger,
	})
	require.NoError(t, err)

	h.controller, err = NewController(ControllerDependencies{
		Sessions:    h.sessions,
		Forecasts:   forecasts,
		Preferences: preferences,
		Messenger:   messenger,
		Config:      config,
		Logger:      logger,
		Metrics:     metrics,
	})
	require.NoError(t, err)
	return h
}

func (h *harness) text(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, h.controller.HandleEvent(context.Background(), ports.InboundEvent{
		UserID: testUserID, ChatID: testChatID, Text: text,
	}))
}

func (h *harness) press(t *testing.T, data string) {
	t.Helper()
	require.NoError(t, h.controller.HandleEvent(context.Background(), ports.InboundEvent{
		UserID: testUserID, ChatID: testChatID, CallbackID: "cb-1", CallbackData: data,
	}))
}

// drain returns and forgets everything sent so far
func (h *harness) drain() []ports.OutboundMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.sent
	h.sent = nil
	return out
}

func (h *harness) last(t *testing.T) ports.OutboundMessage {
	t.Helper()
	msgs := h.drain()
	require.NotEmpty(t, msgs)
	return msgs[len(msgs)-1]
}

func (h *harness) state(t *testing.T) State {
	t.Helper()
	sess, _ := h.sessions.Lookup(testUserID)
	require.NotNil(t, sess, "expected an open session")
	return sess.State
}

func (h *harness) startWithoutCity(t *testing.T) {
	t.Helper()
	h.repo.EXPECT().FindByUserID(mock.Anything, testUserID).Return(nil, errors.NewNotFoundError("no preference")).Once()
	h.text(t, "/start")
	h.drain()
}

func londonCandidates() []ports.GeoCandidate {
	return []ports.GeoCandidate{
		{City: "London", Country: "GB", Latitude: 51.5073219, Longitude: -0.1276474},
		{City: "London", State: "Ontario", Country: "CA", Latitude: 42.9832406, Longitude: -81.243372},
	}
}

func testSeries() *ports.ForecastSeries {
	loc := time.FixedZone("BST", 3600)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)
	series := &ports.ForecastSeries{City: "London", Location: loc}
	for i := 0; i < 40; i++ {
		series.Samples = append(series.Samples, ports.ForecastSample{
			Timestamp:    start.Add(time.Duration(i) * 3 * time.Hour),
			TemperatureK: 290,
			FeelsLikeK:   289,
			Description:  "scattered clouds",
			WindSpeed:    5.1,
			Humidity:     70,
		})
	}
	return series
}

func TestController_OutsideConversation(t *testing.T) {
	h := newHarness(t)

	h.text(t, "hello")
	msg := h.last(t)
	assert.Equal(t, msgOutside, msg.Text)
	assert.Equal(t, testChatID, msg.ChatID)

	h.text(t, "/help")
	msg = h.last(t)
	assert.Equal(t, msgHelp, msg.Text)
	assert.True(t, msg.Markdown)
	assert.Equal(t, 0, h.sessions.Len())
}

func TestController_StartGreeting(t *testing.T) {
	t.Run("without saved city", func(t *testing.T) {
		h := newHarness(t)
		h.repo.EXPECT().FindByUserID(mock.Anything, testUserID).Return(nil, errors.NewNotFoundError("no preference"))

		h.text(t, "/start")

		msg := h.last(t)
		assert.Equal(t, msgGreeting+"You can choose *Update my city* to get daily weather information at 7:00 ⌚", msg.Text)
		assert.True(t, msg.Markdown)
		assert.Equal(t, MainMenu(), msg.ReplyKeyboard)
		assert.Equal(t, StateChoosing, h.state(t))
	})

	t.Run("with saved city", func(t *testing.T) {
		h := newHarness(t)
		h.repo.EXPECT().FindByUserID(mock.Anything, testUserID).Return(&ports.UserPreferenceData{
			UserID: testUserID, City: "Haifa, IL", Latitude: "32.79", Longitude: "34.98",
		}, nil)

		h.text(t, "/start")

		assert.Equal(t, msgGreeting+"Your current city is Haifa, IL 😃", h.last(t).Text)
	})
}

func TestController_StartWhileInConversation(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Choose city")
	h.drain()
	require.Equal(t, StateTypingReply, h.state(t))

	h.text(t, "/start")
	msg := h.last(t)
	assert.Equal(t, msgAlreadyInConv, msg.Text)
	assert.Equal(t, MainMenu(), msg.ReplyKeyboard)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_ChooseCityFlow(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Choose city")
	msg := h.last(t)
	assert.Equal(t, msgChoosePrompt, msg.Text)
	assert.True(t, msg.RemoveKeyboard)
	assert.Equal(t, StateTypingReply, h.state(t))

	h.client.EXPECT().Geocode(mock.Anything, "London").Return(londonCandidates(), nil)
	h.text(t, "london")
	msg = h.last(t)
	assert.Equal(t, msgWhichCity, msg.Text)
	require.Len(t, msg.InlineKeyboard, 2)
	assert.Equal(t, "London, GB", msg.InlineKeyboard[0][0].Text)
	assert.Equal(t, "London, GB:-0.1276474,51.5073219", msg.InlineKeyboard[0][0].Data)
	assert.Equal(t, "London, Ontario, CA", msg.InlineKeyboard[1][0].Text)
	assert.Equal(t, StateTypingReply, h.state(t))

	h.client.EXPECT().ForecastByCoordinates(mock.Anything, "51.5073219", "-0.1276474").Return(testSeries(), nil)
	h.press(t, msg.InlineKeyboard[0][0].Data)
	msg = h.last(t)
	assert.Equal(t, msgChooseDay, msg.Text)
	require.Len(t, msg.InlineKeyboard, 3)
	assert.Len(t, msg.InlineKeyboard[0], 2)
	assert.Len(t, msg.InlineKeyboard[2], 1)
	assert.Equal(t, "Tomorrow, 2024-06-02", msg.InlineKeyboard[0][1].Text)
	assert.Equal(t, StateDailyWeather, h.state(t))

	h.press(t, "1")
	msgs := h.drain()
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].Markdown)
	assert.Contains(t, msgs[0].Text, "*Weather Forecast for London, GB \n 2024-06-02* 🌐")
	assert.Contains(t, msgs[0].Text, "*🌬️  Wind Speed:* 5.1 m/s")
	assert.Equal(t, msgAnythingElse, msgs[1].Text)
	assert.Equal(t, MainMenu(), msgs[1].ReplyKeyboard)
	assert.Equal(t, StateChoosing, h.state(t))

	sess, _ := h.sessions.Lookup(testUserID)
	assert.Nil(t, sess.Days)
}

func TestController_DayButtonSendsPrerenderedText(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Choose city")
	h.drain()
	h.client.EXPECT().Geocode(mock.Anything, "London").Return(londonCandidates(), nil)
	h.text(t, "London")
	choice := h.last(t).InlineKeyboard[0][0]

	h.client.EXPECT().ForecastByCoordinates(mock.Anything, "51.5073219", "-0.1276474").Return(testSeries(), nil)
	h.press(t, choice.Data)
	h.drain()
	require.Equal(t, StateDailyWeather, h.state(t))

	menu, err := forecast.PrerenderDays(testSeries(), choice.Text)
	require.NoError(t, err)

	h.press(t, "2")
	msgs := h.drain()
	require.Len(t, msgs, 2)
	assert.Equal(t, menu.Messages[2], msgs[0].Text)
	assert.True(t, msgs[0].Markdown)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_UpdateCityFlow(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Update my city")
	assert.Equal(t, msgUpdatePrompt, h.last(t).Text)
	assert.Equal(t, StateUpdateTypingReply, h.state(t))

	h.client.EXPECT().Geocode(mock.Anything, "London").Return(londonCandidates(), nil)
	h.text(t, "London")
	msg := h.last(t)

	h.repo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(p *ports.UserPreferenceData) bool {
		return p.UserID == testUserID && p.City == "London, Ontario, CA" &&
			p.Latitude == "42.9832406" && p.Longitude == "-81.243372"
	})).Return(nil)
	h.press(t, msg.InlineKeyboard[1][0].Data)

	msgs := h.drain()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Your city has been changed to London, Ontario, CA!😃", msgs[0].Text)
	assert.True(t, msgs[0].RemoveKeyboard)
	assert.Equal(t, msgAnythingElse, msgs[1].Text)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_MyCityWeather(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.repo.EXPECT().FindByUserID(mock.Anything, testUserID).Return(nil, errors.NewNotFoundError("no preference")).Once()
	h.text(t, "My city weather")
	msg := h.last(t)
	assert.Equal(t, msgNoSavedCity, msg.Text)
	assert.Equal(t, StateChoosing, h.state(t))

	h.repo.EXPECT().FindByUserID(mock.Anything, testUserID).Return(&ports.UserPreferenceData{
		UserID: testUserID, City: "London, GB", Latitude: "51.5073219", Longitude: "-0.1276474",
	}, nil).Once()
	h.client.EXPECT().ForecastByCoordinates(mock.Anything, "51.5073219", "-0.1276474").Return(testSeries(), nil)
	h.text(t, "My city weather")
	assert.Equal(t, msgChooseDay, h.last(t).Text)
	assert.Equal(t, StateDailyWeather, h.state(t))
}

func TestController_CancelUpdates(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.repo.EXPECT().Delete(mock.Anything, testUserID).Return(false, nil).Once()
	h.text(t, "Cancel updates")
	assert.Equal(t, msgNotSubscribed, h.last(t).Text)

	h.repo.EXPECT().Delete(mock.Anything, testUserID).Return(true, nil).Once()
	h.text(t, "Cancel updates")
	msg := h.last(t)
	assert.Equal(t, msgUnsubscribed, msg.Text)
	assert.Equal(t, MainMenu(), msg.ReplyKeyboard)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_Done(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Done")
	msg := h.last(t)
	assert.Equal(t, msgFarewell, msg.Text)
	assert.True(t, msg.RemoveKeyboard)
	assert.Equal(t, 0, h.sessions.Len())
}

func TestController_UnknownInput(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "what's up?")
	msg := h.last(t)
	assert.Equal(t, msgUnknown, msg.Text)
	assert.Equal(t, MainMenu(), msg.ReplyKeyboard)
	assert.Equal(t, StateChoosing, h.state(t))

	h.text(t, "Update my city")
	h.drain()
	h.text(t, "123")
	assert.Equal(t, msgUnknown, h.last(t).Text)
	assert.Equal(t, StateChoosing, h.state(t))

	h.text(t, "Choose city")
	h.drain()
	h.press(t, "garbage")
	assert.Equal(t, msgUnknown, h.last(t).Text)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_DailyWeatherRejectsText(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Choose city")
	h.client.EXPECT().Geocode(mock.Anything, "London").Return(londonCandidates(), nil)
	h.text(t, "London")
	payload := h.last(t).InlineKeyboard[0][0].Data
	h.client.EXPECT().ForecastByCoordinates(mock.Anything, mock.Anything, mock.Anything).Return(testSeries(), nil)
	h.press(t, payload)
	h.drain()

	h.text(t, "tomorrow please")
	assert.Equal(t, msgUnknown, h.last(t).Text)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_NoMatch(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.text(t, "Choose city")
	h.client.EXPECT().Geocode(mock.Anything, "Atlantis").Return([]ports.GeoCandidate{}, nil)
	h.text(t, "Atlantis")

	assert.Equal(t, msgNoMatch, h.last(t).Text)
	assert.Equal(t, StateTypingReply, h.state(t))
}

func TestController_TransportErrorEndsConversation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "connection", err: errors.NewConnectionError(fmt.Errorf("timeout")), want: errors.ConnectionProblemMessage},
		{name: "server", err: errors.NewServerError(fmt.Errorf("status 500")), want: errors.ServerProblemMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.startWithoutCity(t)
			h.text(t, "Choose city")

			h.client.EXPECT().Geocode(mock.Anything, "London").Return(nil, tt.err)
			h.text(t, "London")

			msg := h.last(t)
			assert.Equal(t, tt.want, msg.Text)
			assert.Equal(t, 0, h.sessions.Len())
		})
	}
}

func TestController_ShortForecastEndsConversation(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)
	h.text(t, "Choose city")
	h.client.EXPECT().Geocode(mock.Anything, "London").Return(londonCandidates(), nil)
	h.text(t, "London")
	payload := h.last(t).InlineKeyboard[0][0].Data

	short := testSeries()
	short.Samples = short.Samples[:3]
	h.client.EXPECT().ForecastByCoordinates(mock.Anything, mock.Anything, mock.Anything).Return(short, nil)
	h.press(t, payload)

	assert.Equal(t, errors.ServerProblemMessage, h.last(t).Text)
	assert.Equal(t, 0, h.sessions.Len())
}

func TestController_StorageFailureKeepsState(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.repo.EXPECT().Delete(mock.Anything, testUserID).Return(false, errors.NewDatabaseError("db down", nil))
	err := h.controller.HandleEvent(context.Background(), ports.InboundEvent{
		UserID: testUserID, ChatID: testChatID, Text: "Cancel updates",
	})

	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
	assert.Equal(t, msgStorageFailure, h.last(t).Text)
	assert.Equal(t, StateChoosing, h.state(t))
}

func TestController_Timeout(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)
	h.text(t, "Choose city")
	h.drain()

	h.clock.Advance(2*time.Minute + time.Second)
	h.text(t, "London")

	msgs := h.drain()
	require.Len(t, msgs, 2)
	assert.Equal(t, msgFarewell, msgs[0].Text)
	assert.Equal(t, msgOutside, msgs[1].Text)
	assert.Equal(t, 0, h.sessions.Len())
}

func TestController_SweeperFarewell(t *testing.T) {
	h := newHarness(t)
	h.startWithoutCity(t)

	h.clock.Advance(3 * time.Minute)
	for _, sess := range h.sessions.Sweep() {
		h.controller.Expire(context.Background(), sess)
	}

	msg := h.last(t)
	assert.Equal(t, msgFarewell, msg.Text)
	assert.Equal(t, testChatID, msg.ChatID)
}

func TestController_UsersAreIndependent(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().FindByUserID(mock.Anything, mock.Anything).Return(nil, errors.NewNotFoundError("no preference"))

	var wg sync.WaitGroup
	for i := int64(1); i <= 10; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			assert.NoError(t, h.controller.HandleEvent(context.Background(), ports.InboundEvent{
				UserID: userID, ChatID: userID, Text: "/start",
			}))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, h.sessions.Len())
	assert.Len(t, h.drain(), 10)
}

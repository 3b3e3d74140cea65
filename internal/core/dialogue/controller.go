package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"weatherbot.app/internal/core/forecast"
	"weatherbot.app/internal/core/preference"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
	"weatherbot.app/pkg/validation"
)

// ForecastService is what the controller needs from the forecast use case
type ForecastService interface {
	FindCities(ctx context.Context, text string) ([]forecast.CityOption, error)
	PrepareDays(ctx context.Context, latitude, longitude, label string) (*forecast.DayMenu, error)
}

// PreferenceService is what the controller needs from the preference use case
type PreferenceService interface {
	Get(ctx context.Context, userID int64) (*preference.Preference, error)
	Save(ctx context.Context, pref *preference.Preference) error
	Cancel(ctx context.Context, userID int64) error
}

// Controller runs the conversation state machine. Events of one user are
// handled one at a time; different users proceed concurrently.
type Controller struct {
	sessions    *SessionStore
	forecasts   ForecastService
	preferences PreferenceService
	messenger   ports.Messenger
	config      ports.ConfigProvider
	logger      ports.Logger
	metrics     ports.MetricsCollector
}

type ControllerDependencies struct {
	Sessions    *SessionStore
	Forecasts   ForecastService
	Preferences PreferenceService
	Messenger   ports.Messenger
	Config      ports.ConfigProvider
	Logger      ports.Logger
	Metrics     ports.MetricsCollector
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Sessions == nil {
		return nil, errors.NewValidationError("session store is required")
	}
	if deps.Forecasts == nil {
		return nil, errors.NewValidationError("forecast service is required")
	}
	if deps.Preferences == nil {
		return nil, errors.NewValidationError("preference service is required")
	}
	if deps.Messenger == nil {
		return nil, errors.NewValidationError("messenger is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &Controller{
		sessions:    deps.Sessions,
		forecasts:   deps.Forecasts,
		preferences: deps.Preferences,
		messenger:   deps.Messenger,
		config:      deps.Config,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}, nil
}

// HandleEvent processes one inbound text message or button press
func (c *Controller) HandleEvent(ctx context.Context, event ports.InboundEvent) error {
	release := c.sessions.Acquire(event.UserID)
	defer release()

	if event.IsCallback() {
		if err := c.messenger.AnswerCallback(ctx, event.CallbackID); err != nil {
			c.logger.Warn("Failed to acknowledge callback",
				ports.F("user_id", event.UserID),
				ports.F("error", err))
		}
	}

	sess, expired := c.sessions.Lookup(event.UserID)
	if expired != nil {
		c.Expire(ctx, expired)
	}

	kind := classify(event)
	if sess == nil {
		c.metrics.RecordDialogueEvent(ctx, "none", kind.String())
		return c.handleIdle(ctx, event, kind)
	}

	c.sessions.Touch(sess)
	c.metrics.RecordDialogueEvent(ctx, sess.State.String(), kind.String())
	c.logger.Debug("Handling conversation event",
		ports.F("user_id", event.UserID),
		ports.F("state", sess.State.String()),
		ports.F("input", kind.String()))

	switch kind {
	case inputDone:
		return c.finish(ctx, sess)
	case inputStart:
		sess.State = StateChoosing
		sess.Days = nil
		return c.send(ctx, withMenu(sess.ChatID, msgAlreadyInConv, false))
	case inputHelp:
		sess.State = StateChoosing
		sess.Days = nil
		return c.send(ctx, withMenu(sess.ChatID, msgHelp, true))
	}

	switch sess.State {
	case StateChoosing:
		return c.handleChoosing(ctx, sess, kind)
	case StateTypingReply, StateUpdateTypingReply:
		return c.handleTyping(ctx, sess, event, kind)
	case StateDailyWeather:
		return c.handleDailyWeather(ctx, sess, event, kind)
	default:
		return c.unknown(ctx, sess)
	}
}

// Expire says goodbye to a session that timed out
func (c *Controller) Expire(ctx context.Context, sess *Session) {
	c.logger.Info("Conversation timed out",
		ports.F("user_id", sess.UserID),
		ports.F("state", sess.State.String()))
	c.metrics.RecordDialogueEvent(ctx, sess.State.String(), "timeout")
	if err := c.messenger.Send(ctx, withoutKeyboard(sess.ChatID, msgFarewell, false)); err != nil {
		c.logger.Warn("Failed to send farewell", ports.F("user_id", sess.UserID), ports.F("error", err))
	}
	c.metrics.SetActiveSessions(c.sessions.Len())
}

func (c *Controller) handleIdle(ctx context.Context, event ports.InboundEvent, kind input) error {
	switch kind {
	case inputStart:
		sess := c.sessions.Start(event.UserID, event.ChatID)
		c.metrics.SetActiveSessions(c.sessions.Len())
		return c.greet(ctx, sess)
	case inputHelp:
		return c.send(ctx, withMenu(event.ChatID, msgHelp, true))
	default:
		return c.send(ctx, plain(event.ChatID, msgOutside, false))
	}
}

func (c *Controller) greet(ctx context.Context, sess *Session) error {
	text := msgGreeting
	pref, err := c.preferences.Get(ctx, sess.UserID)
	switch {
	case err == nil:
		text += fmt.Sprintf(msgCurrentCity, pref.City)
	case errors.IsNotFoundError(err):
		text += fmt.Sprintf(msgNoCityHint, c.config.GetSchedulerConfig().DisplayTime)
	default:
		return c.storageFailure(ctx, sess, err)
	}
	return c.send(ctx, withMenu(sess.ChatID, text, true))
}

func (c *Controller) handleChoosing(ctx context.Context, sess *Session, kind input) error {
	switch kind {
	case inputUpdateCity:
		sess.State = StateUpdateTypingReply
		return c.send(ctx, withoutKeyboard(sess.ChatID, msgUpdatePrompt, false))
	case inputChooseCity:
		sess.State = StateTypingReply
		return c.send(ctx, withoutKeyboard(sess.ChatID, msgChoosePrompt, false))
	case inputMyCity:
		return c.showSavedCity(ctx, sess)
	case inputCancelUpdates:
		return c.cancelUpdates(ctx, sess)
	default:
		return c.unknown(ctx, sess)
	}
}

func (c *Controller) showSavedCity(ctx context.Context, sess *Session) error {
	pref, err := c.preferences.Get(ctx, sess.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return c.send(ctx, withMenu(sess.ChatID, msgNoSavedCity, true))
		}
		return c.storageFailure(ctx, sess, err)
	}
	return c.offerDays(ctx, sess, pref.Latitude, pref.Longitude, pref.City)
}

func (c *Controller) cancelUpdates(ctx context.Context, sess *Session) error {
	err := c.preferences.Cancel(ctx, sess.UserID)
	switch {
	case err == nil:
		return c.send(ctx, withMenu(sess.ChatID, msgUnsubscribed, false))
	case errors.IsNotSubscribedError(err):
		return c.send(ctx, plain(sess.ChatID, msgNotSubscribed, true))
	default:
		return c.storageFailure(ctx, sess, err)
	}
}

// handleTyping covers both typing states; they differ only in what a
// pressed candidate does.
func (c *Controller) handleTyping(ctx context.Context, sess *Session, event ports.InboundEvent, kind input) error {
	if kind == inputCallback {
		choice, err := preference.ParseLocationPayload(event.CallbackData)
		if err != nil {
			return c.unknown(ctx, sess)
		}
		if sess.State == StateUpdateTypingReply {
			return c.saveCity(ctx, sess, choice)
		}
		return c.offerDays(ctx, sess, choice.Latitude, choice.Longitude, choice.Label)
	}

	if !validation.IsCityName(strings.TrimSpace(event.Text)) {
		return c.unknown(ctx, sess)
	}

	options, err := c.forecasts.FindCities(ctx, event.Text)
	switch {
	case err == nil:
		return c.send(ctx, ports.OutboundMessage{
			ChatID:         sess.ChatID,
			Text:           msgWhichCity,
			InlineKeyboard: cityKeyboard(options),
		})
	case errors.IsNoMatchError(err):
		return c.send(ctx, withoutKeyboard(sess.ChatID, msgNoMatch, false))
	default:
		return c.upstreamFailure(ctx, sess, err)
	}
}

func (c *Controller) saveCity(ctx context.Context, sess *Session, choice preference.LocationChoice) error {
	err := c.preferences.Save(ctx, &preference.Preference{
		UserID:    sess.UserID,
		City:      choice.Label,
		Latitude:  choice.Latitude,
		Longitude: choice.Longitude,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			return c.unknown(ctx, sess)
		}
		return c.storageFailure(ctx, sess, err)
	}

	sess.State = StateChoosing
	if err := c.send(ctx, withoutKeyboard(sess.ChatID, fmt.Sprintf(msgCityChanged, choice.Label), false)); err != nil {
		return err
	}
	return c.send(ctx, withMenu(sess.ChatID, msgAnythingElse, false))
}

func (c *Controller) offerDays(ctx context.Context, sess *Session, latitude, longitude, label string) error {
	menu, err := c.forecasts.PrepareDays(ctx, latitude, longitude, label)
	if err != nil {
		return c.upstreamFailure(ctx, sess, err)
	}

	sess.Days = menu
	sess.State = StateDailyWeather
	return c.send(ctx, ports.OutboundMessage{
		ChatID:         sess.ChatID,
		Text:           msgChooseDay,
		Markdown:       true,
		InlineKeyboard: dayKeyboard(menu.Options),
	})
}

func (c *Controller) handleDailyWeather(ctx context.Context, sess *Session, event ports.InboundEvent, kind input) error {
	if kind != inputCallback || sess.Days == nil {
		return c.unknown(ctx, sess)
	}
	day, err := strconv.Atoi(event.CallbackData)
	if err != nil || day < 0 || day >= forecast.DaysAvailable {
		return c.unknown(ctx, sess)
	}

	text := sess.Days.Messages[day]
	sess.Days = nil
	sess.State = StateChoosing
	if err := c.send(ctx, withoutKeyboard(sess.ChatID, text, true)); err != nil {
		return err
	}
	return c.send(ctx, withMenu(sess.ChatID, msgAnythingElse, false))
}

func (c *Controller) finish(ctx context.Context, sess *Session) error {
	c.sessions.End(sess.UserID)
	c.metrics.SetActiveSessions(c.sessions.Len())
	return c.send(ctx, withoutKeyboard(sess.ChatID, msgFarewell, false))
}

func (c *Controller) unknown(ctx context.Context, sess *Session) error {
	sess.State = StateChoosing
	sess.Days = nil
	return c.send(ctx, withMenu(sess.ChatID, msgUnknown, false))
}

// upstreamFailure reports a forecast or geocoding failure to the user and
// ends the conversation.
func (c *Controller) upstreamFailure(ctx context.Context, sess *Session, err error) error {
	text, ok := errors.UserMessage(err)
	if !ok {
		text = errors.ServerProblemMessage
	}
	c.logger.Warn("Forecast lookup failed, ending conversation",
		ports.F("user_id", sess.UserID),
		ports.F("state", sess.State.String()),
		ports.F("error", err))

	c.sessions.End(sess.UserID)
	c.metrics.SetActiveSessions(c.sessions.Len())
	return c.send(ctx, withoutKeyboard(sess.ChatID, text, false))
}

// storageFailure apologizes, keeps the state and hands the error back to
// the transport so it gets logged there.
func (c *Controller) storageFailure(ctx context.Context, sess *Session, err error) error {
	if sendErr := c.send(ctx, plain(sess.ChatID, msgStorageFailure, false)); sendErr != nil {
		c.logger.Warn("Failed to send storage apology", ports.F("user_id", sess.UserID), ports.F("error", sendErr))
	}
	return fmt.Errorf("user %d in state %s: %w", sess.UserID, sess.State, err)
}

func (c *Controller) send(ctx context.Context, msg ports.OutboundMessage) error {
	if err := c.messenger.Send(ctx, msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", msg.ChatID, err)
	}
	return nil
}

func classify(event ports.InboundEvent) input {
	if event.IsCallback() {
		return inputCallback
	}

	text := strings.TrimSpace(event.Text)
	switch text {
	case commandStart:
		return inputStart
	case commandHelp:
		return inputHelp
	case buttonDone:
		return inputDone
	case buttonUpdateCity:
		return inputUpdateCity
	case buttonCancelUpdates:
		return inputCancelUpdates
	case buttonMyCity:
		return inputMyCity
	case buttonChooseCity:
		return inputChooseCity
	}
	if validation.IsCityName(text) {
		return inputCityName
	}
	return inputOther
}

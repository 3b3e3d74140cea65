// Package telegram adapts the Telegram Bot API to the messaging ports.
package telegram

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// BotParams holds parameters for connecting to the Bot API
type BotParams struct {
	Token  string
	Debug  bool
	Logger ports.Logger

	// Endpoint overrides tgbotapi.APIEndpoint; it must contain two %s verbs
	// for the token and the method name.
	Endpoint   string
	HTTPClient *http.Client
}

// NewBotAPI connects to Telegram and verifies the token with getMe
func NewBotAPI(params BotParams) (*tgbotapi.BotAPI, error) {
	if params.Token == "" {
		return nil, errors.NewConfigurationError("telegram bot token is required", nil)
	}

	endpoint := params.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	if params.Logger != nil {
		if err := tgbotapi.SetLogger(&botLogger{logger: params.Logger}); err != nil {
			return nil, errors.NewConfigurationError("failed to install telegram logger", err)
		}
	}

	bot, err := tgbotapi.NewBotAPIWithClient(params.Token, endpoint, client)
	if err != nil {
		return nil, errors.NewMessagingError("failed to authorize telegram bot", err)
	}
	bot.Debug = params.Debug

	if params.Logger != nil {
		params.Logger.Info("Authorized on Telegram", ports.F("username", bot.Self.UserName))
	}
	return bot, nil
}

// botLogger routes the library's own log lines into the structured logger
type botLogger struct {
	logger ports.Logger
}

func (l *botLogger) Println(v ...interface{}) {
	l.logger.Debug(fmt.Sprint(v...), ports.F("component", "telegram"))
}

func (l *botLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), ports.F("component", "telegram"))
}

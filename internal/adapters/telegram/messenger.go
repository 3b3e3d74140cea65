package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// Sender is the part of *tgbotapi.BotAPI the messenger uses
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// MessengerAdapter implements the Messenger port on top of the Bot API
type MessengerAdapter struct {
	bot    Sender
	logger ports.Logger
}

// NewMessengerAdapter creates a new Telegram messenger
func NewMessengerAdapter(bot Sender, logger ports.Logger) *MessengerAdapter {
	return &MessengerAdapter{bot: bot, logger: logger}
}

// Send delivers one message with its keyboard
func (m *MessengerAdapter) Send(ctx context.Context, msg ports.OutboundMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.NewMessagingError("message not sent", err)
	}

	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if msg.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}

	switch {
	case len(msg.InlineKeyboard) > 0:
		out.ReplyMarkup = inlineKeyboard(msg.InlineKeyboard)
	case len(msg.ReplyKeyboard) > 0:
		out.ReplyMarkup = replyKeyboard(msg.ReplyKeyboard)
	case msg.RemoveKeyboard:
		out.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := m.bot.Send(out); err != nil {
		m.logger.Warn("Telegram rejected message",
			ports.F("chat_id", msg.ChatID),
			ports.F("error", err))
		return errors.NewMessagingError("failed to send telegram message", err)
	}
	return nil
}

// AnswerCallback stops the client-side spinner on a pressed inline button
func (m *MessengerAdapter) AnswerCallback(ctx context.Context, callbackID string) error {
	if callbackID == "" {
		return errors.NewValidationError("callback id cannot be empty")
	}
	if _, err := m.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return errors.NewMessagingError("failed to answer callback query", err)
	}
	return nil
}

func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	buttons := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		line := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, text := range row {
			line = append(line, tgbotapi.NewKeyboardButton(text))
		}
		buttons = append(buttons, tgbotapi.NewKeyboardButtonRow(line...))
	}

	keyboard := tgbotapi.NewReplyKeyboard(buttons...)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}

func inlineKeyboard(rows [][]ports.InlineButton) tgbotapi.InlineKeyboardMarkup {
	buttons := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		line := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			line = append(line, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(line...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

package telegram

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/ports"
	"weatherbot.app/internal/testutil"
	"weatherbot.app/pkg/errors"
)

func TestMessengerAdapter_SendReplyKeyboard(t *testing.T) {
	fake := newFakeTelegram(t)
	messenger := NewMessengerAdapter(fake.bot(t), testutil.PermissiveLogger(t))

	err := messenger.Send(context.Background(), ports.OutboundMessage{
		ChatID:        4242,
		Text:          "*Hi*",
		Markdown:      true,
		ReplyKeyboard: [][]string{{"Update my city", "Cancel updates"}, {"Done"}},
	})
	require.NoError(t, err)

	calls := fake.callsTo("sendMessage")
	require.Len(t, calls, 1)
	form := calls[0].Form
	assert.Equal(t, "4242", form.Get("chat_id"))
	assert.Equal(t, "*Hi*", form.Get("text"))
	assert.Equal(t, "Markdown", form.Get("parse_mode"))

	var markup struct {
		Keyboard [][]struct {
			Text string `json:"text"`
		} `json:"keyboard"`
		Resize  bool `json:"resize_keyboard"`
		OneTime bool `json:"one_time_keyboard"`
	}
	require.NoError(t, json.Unmarshal([]byte(form.Get("reply_markup")), &markup))
	require.Len(t, markup.Keyboard, 2)
	assert.Equal(t, "Cancel updates", markup.Keyboard[0][1].Text)
	assert.True(t, markup.Resize)
	assert.True(t, markup.OneTime)
}

func TestMessengerAdapter_SendInlineKeyboard(t *testing.T) {
	fake := newFakeTelegram(t)
	messenger := NewMessengerAdapter(fake.bot(t), testutil.PermissiveLogger(t))

	err := messenger.Send(context.Background(), ports.OutboundMessage{
		ChatID: 1,
		Text:   "Which city is yours?\n",
		InlineKeyboard: [][]ports.InlineButton{
			{{Text: "London, GB", Data: "London, GB:-0.1276474,51.5073219"}},
		},
	})
	require.NoError(t, err)

	form := fake.callsTo("sendMessage")[0].Form
	assert.Empty(t, form.Get("parse_mode"))

	var markup struct {
		InlineKeyboard [][]struct {
			Text string `json:"text"`
			Data string `json:"callback_data"`
		} `json:"inline_keyboard"`
	}
	require.NoError(t, json.Unmarshal([]byte(form.Get("reply_markup")), &markup))
	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, "London, GB:-0.1276474,51.5073219", markup.InlineKeyboard[0][0].Data)
}

func TestMessengerAdapter_SendRemoveKeyboard(t *testing.T) {
	fake := newFakeTelegram(t)
	messenger := NewMessengerAdapter(fake.bot(t), testutil.PermissiveLogger(t))

	require.NoError(t, messenger.Send(context.Background(), ports.OutboundMessage{
		ChatID: 1, Text: "See you next time! 👋", RemoveKeyboard: true,
	}))

	var markup struct {
		Remove bool `json:"remove_keyboard"`
	}
	require.NoError(t, json.Unmarshal([]byte(fake.callsTo("sendMessage")[0].Form.Get("reply_markup")), &markup))
	assert.True(t, markup.Remove)
}

func TestMessengerAdapter_SendFailure(t *testing.T) {
	fake := newFakeTelegram(t)
	bot := fake.bot(t)
	fake.failOn["sendMessage"] = "Forbidden: bot was blocked by the user"
	messenger := NewMessengerAdapter(bot, testutil.PermissiveLogger(t))

	err := messenger.Send(context.Background(), ports.OutboundMessage{ChatID: 1, Text: "hi"})
	require.Error(t, err)
	assert.True(t, errors.IsMessagingError(err))
	assert.Contains(t, err.Error(), "blocked")
}

func TestMessengerAdapter_AnswerCallback(t *testing.T) {
	fake := newFakeTelegram(t)
	messenger := NewMessengerAdapter(fake.bot(t), testutil.PermissiveLogger(t))

	require.NoError(t, messenger.AnswerCallback(context.Background(), "cb-7"))
	calls := fake.callsTo("answerCallbackQuery")
	require.Len(t, calls, 1)
	assert.Equal(t, "cb-7", calls[0].Form.Get("callback_query_id"))

	err := messenger.AnswerCallback(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestNewBotAPI(t *testing.T) {
	fake := newFakeTelegram(t)

	bot, err := NewBotAPI(BotParams{
		Token:      testToken,
		Endpoint:   fake.endpoint(),
		HTTPClient: fake.server.Client(),
		Logger:     testutil.PermissiveLogger(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "weather_test_bot", bot.Self.UserName)

	_, err = NewBotAPI(BotParams{})
	assert.True(t, errors.IsConfigurationError(err))
}

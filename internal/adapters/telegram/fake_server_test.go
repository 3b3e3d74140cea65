package telegram

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

const testToken = "123:test-token"

type apiCall struct {
	Method string
	Form   url.Values
}

// fakeTelegram records Bot API calls and answers them the way Telegram does
type fakeTelegram struct {
	server *httptest.Server

	mu      sync.Mutex
	calls   []apiCall
	updates []tgbotapi.Update
	failOn  map[string]string
}

func newFakeTelegram(t *testing.T) *fakeTelegram {
	f := &fakeTelegram{failOn: map[string]string{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeTelegram) endpoint() string {
	return f.server.URL + "/bot%s/%s"
}

func (f *fakeTelegram) bot(t *testing.T) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPIWithClient(testToken, f.endpoint(), f.server.Client())
	require.NoError(t, err)
	return bot
}

func (f *fakeTelegram) queue(updates ...tgbotapi.Update) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updates...)
}

func (f *fakeTelegram) callsTo(method string) []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []apiCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: method, Form: r.Form})
	failure, fail := f.failOn[method]
	var pending []tgbotapi.Update
	if method == "getUpdates" {
		pending = f.updates
		f.updates = nil
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail {
		_, _ = fmt.Fprintf(w, `{"ok":false,"error_code":403,"description":%q}`, failure)
		return
	}

	var result interface{}
	switch method {
	case "getMe":
		result = map[string]interface{}{"id": 1, "is_bot": true, "first_name": "Weather", "username": "weather_test_bot"}
	case "sendMessage":
		chatID, _ := json.Number(r.Form.Get("chat_id")).Int64()
		result = map[string]interface{}{"message_id": 1, "date": 0, "chat": map[string]interface{}{"id": chatID, "type": "private"}}
	case "getUpdates":
		if pending == nil {
			// long polling stand-in
			time.Sleep(20 * time.Millisecond)
			pending = []tgbotapi.Update{}
		}
		result = pending
	default:
		result = true
	}

	_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "result": result})
}

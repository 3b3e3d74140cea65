package telegram

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// UpdateSource is the part of *tgbotapi.BotAPI the poller uses
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// eventTimeout bounds the handling of a single update
const eventTimeout = time.Minute

// Poller long-polls Telegram and hands updates to the conversation handler.
// Each user has a FIFO queue drained by one worker, so a user's updates are
// handled in arrival order while different users run concurrently.
type Poller struct {
	source  UpdateSource
	handler ports.ConversationHandler
	timeout int
	logger  ports.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	queues map[int64][]ports.InboundEvent
}

type PollerParams struct {
	Source      UpdateSource
	Handler     ports.ConversationHandler
	PollTimeout int
	Logger      ports.Logger
}

func NewPoller(params PollerParams) (*Poller, error) {
	if params.Source == nil {
		return nil, errors.NewValidationError("update source is required")
	}
	if params.Handler == nil {
		return nil, errors.NewValidationError("conversation handler is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Poller{
		source:  params.Source,
		handler: params.Handler,
		timeout: params.PollTimeout,
		logger:  params.Logger,
		queues:  make(map[int64][]ports.InboundEvent),
	}, nil
}

// Start begins polling in the background
func (p *Poller) Start(ctx context.Context) error {
	if p.done != nil {
		return errors.New(errors.ErrorTypeMessaging, "poller already started")
	}

	handlerCtx := context.WithoutCancel(ctx)
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	update := tgbotapi.NewUpdate(0)
	update.Timeout = p.timeout
	updates := p.source.GetUpdatesChan(update)

	go func() {
		defer close(p.done)
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-updates:
				if !ok {
					return
				}
				event, ok := ToEvent(u)
				if !ok {
					continue
				}
				p.enqueue(handlerCtx, event)
			}
		}
	}()

	p.logger.Info("Telegram polling started", ports.F("timeout_seconds", p.timeout))
	return nil
}

// Stop ends polling and waits for queued and in-flight events to finish
func (p *Poller) Stop(ctx context.Context) error {
	if p.done == nil {
		return nil
	}

	p.source.StopReceivingUpdates()
	p.cancel()

	finished := make(chan struct{})
	go func() {
		<-p.done
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		p.logger.Info("Telegram polling stopped")
		return nil
	case <-ctx.Done():
		return errors.New(errors.ErrorTypeMessaging, "timed out waiting for in-flight updates")
	}
}

func (p *Poller) enqueue(ctx context.Context, event ports.InboundEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pending, busy := p.queues[event.UserID]
	p.queues[event.UserID] = append(pending, event)
	if busy {
		return
	}

	p.wg.Add(1)
	go p.drain(ctx, event.UserID)
}

// drain handles userID's events in order and exits once the queue is empty
func (p *Poller) drain(ctx context.Context, userID int64) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		pending := p.queues[userID]
		if len(pending) == 0 {
			delete(p.queues, userID)
			p.mu.Unlock()
			return
		}
		event := pending[0]
		p.queues[userID] = pending[1:]
		p.mu.Unlock()

		p.dispatch(ctx, event)
	}
}

func (p *Poller) dispatch(parent context.Context, event ports.InboundEvent) {
	ctx, cancel := context.WithTimeout(parent, eventTimeout)
	defer cancel()

	correlationID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Panic while handling update",
				ports.F("correlation_id", correlationID),
				ports.F("update_id", event.UpdateID),
				ports.F("panic", r))
		}
	}()

	if err := p.handler.HandleEvent(ctx, event); err != nil {
		p.logger.Error("Failed to handle update",
			ports.F("correlation_id", correlationID),
			ports.F("update_id", event.UpdateID),
			ports.F("user_id", event.UserID),
			ports.F("error", err))
	}
}

// ToEvent normalizes a Telegram update. Commands lose any "@botname" suffix
// and arguments. Updates that are neither text nor button presses are
// dropped.
func ToEvent(u tgbotapi.Update) (ports.InboundEvent, bool) {
	switch {
	case u.CallbackQuery != nil:
		q := u.CallbackQuery
		if q.From == nil {
			return ports.InboundEvent{}, false
		}
		chatID := q.From.ID
		if q.Message != nil && q.Message.Chat != nil {
			chatID = q.Message.Chat.ID
		}
		return ports.InboundEvent{
			UpdateID:     u.UpdateID,
			UserID:       q.From.ID,
			ChatID:       chatID,
			CallbackID:   q.ID,
			CallbackData: q.Data,
		}, true

	case u.Message != nil:
		m := u.Message
		if m.From == nil || m.Chat == nil || m.Text == "" {
			return ports.InboundEvent{}, false
		}
		text := m.Text
		if m.IsCommand() {
			text = "/" + m.Command()
		}
		return ports.InboundEvent{
			UpdateID: u.UpdateID,
			UserID:   m.From.ID,
			ChatID:   m.Chat.ID,
			Text:     text,
		}, true
	}
	return ports.InboundEvent{}, false
}

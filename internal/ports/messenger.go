package ports

import "context"

// InlineButton is a button attached to a message that reports Data back when pressed
type InlineButton struct {
	Text string
	Data string
}

// OutboundMessage describes one message sent to a chat. At most one of
// ReplyKeyboard, RemoveKeyboard and InlineKeyboard is set.
type OutboundMessage struct {
	ChatID         int64
	Text           string
	Markdown       bool
	ReplyKeyboard  [][]string
	RemoveKeyboard bool
	InlineKeyboard [][]InlineButton
}

// Messenger defines the contract for the outbound side of the chat platform
type Messenger interface {
	Send(ctx context.Context, msg OutboundMessage) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

// InboundEvent is a normalized update from the chat platform: either free text
// (commands included) or a button press carrying callback data.
type InboundEvent struct {
	UpdateID     int
	UserID       int64
	ChatID       int64
	Text         string
	CallbackID   string
	CallbackData string
}

// IsCallback reports whether the event is an inline button press
func (e InboundEvent) IsCallback() bool {
	return e.CallbackID != ""
}

// ConversationHandler consumes inbound events
type ConversationHandler interface {
	HandleEvent(ctx context.Context, event InboundEvent) error
}

package dialogue

import (
	"time"

	"weatherbot.app/internal/core/forecast"
)

// State is the conversation position of a user with an open session
type State int

const (
	StateChoosing State = iota
	StateTypingReply
	StateUpdateTypingReply
	StateDailyWeather
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateChoosing:
		return "choosing"
	case StateTypingReply:
		return "typing_reply"
	case StateUpdateTypingReply:
		return "update_typing_reply"
	case StateDailyWeather:
		return "daily_weather"
	default:
		return "unknown"
	}
}

// Session is the per-user conversation record. Days holds the pre-rendered
// forecast between the day-choice prompt and the button press.
type Session struct {
	UserID       int64
	ChatID       int64
	State        State
	Days         *forecast.DayMenu
	LastActivity time.Time
}

// input is the classified form of an inbound event
type input int

const (
	inputOther input = iota
	inputStart
	inputHelp
	inputDone
	inputUpdateCity
	inputCancelUpdates
	inputMyCity
	inputChooseCity
	inputCityName
	inputCallback
)

func (i input) String() string {
	switch i {
	case inputStart:
		return "start"
	case inputHelp:
		return "help"
	case inputDone:
		return "done"
	case inputUpdateCity:
		return "update_city"
	case inputCancelUpdates:
		return "cancel_updates"
	case inputMyCity:
		return "my_city"
	case inputChooseCity:
		return "choose_city"
	case inputCityName:
		return "city_name"
	case inputCallback:
		return "callback"
	default:
		return "other"
	}
}

package dialogue

import (
	"weatherbot.app/internal/core/forecast"
	"weatherbot.app/internal/core/preference"
	"weatherbot.app/internal/ports"
)

const (
	commandStart = "/start"
	commandHelp  = "/help"

	buttonUpdateCity    = "Update my city"
	buttonCancelUpdates = "Cancel updates"
	buttonMyCity        = "My city weather"
	buttonChooseCity    = "Choose city"
	buttonDone          = "Done"
)

const (
	msgGreeting       = "Hi! I'm here to provide you weather information about your city! "
	msgCurrentCity    = "Your current city is %s 😃"
	msgNoCityHint     = "You can choose *Update my city* to get daily weather information at %s ⌚"
	msgUpdatePrompt   = "Enter the city for which you want to receive daily weather updates 💌"
	msgChoosePrompt   = "Enter city that you want to get weather information about 🌇"
	msgNoMatch        = "I didn't find such a city 😔 Check if you typed it correctly and try again."
	msgWhichCity      = "Which city is yours?\n"
	msgChooseDay      = "Choose a day you want to get weather information 📆"
	msgNoSavedCity    = "You have not chosen the city yet, choose *Update my city* to do it 😸"
	msgCityChanged    = "Your city has been changed to %s!😃"
	msgAnythingElse   = "Is there anything else I can help with? 😇"
	msgUnsubscribed   = "You unsubscribed successfully!"
	msgNotSubscribed  = "You are not subscribed to daily updates yet 😞. Choose *Update my city* to get daily updates."
	msgUnknown        = "Unknown command. Please choose the options below 👇"
	msgOutside        = "Type /start to start the conversation 🏃"
	msgAlreadyInConv  = "You are already in conversation, choose the options below 👇"
	msgFarewell       = "See you next time! 👋"
	msgStorageFailure = "I couldn't reach my storage right now 😔 Please try again in a moment."
	msgHelp           = "*Update my city*: Set your city to get updates ☀️\n\n" +
		"*Cancel updates*: Temporarily pause weather notifications 🌤 \n\n" +
		"*My city weather*: Receive instant weather details for your saved city 🌦 \n\n" +
		"*Choose city*: Explore and select a new location ⛈ \n\n" +
		"*Done*: End conversation, or type /start at any time to return to the main menu 🌈 \n\n" +
		"*/help*: Access a quick guide to commands and usage ❄️ \n\n" +
		"*/start*: Begin your weather journey with Weather Bot 💦"
)

// MainMenu is the reply keyboard shown while choosing
func MainMenu() [][]string {
	return [][]string{
		{buttonUpdateCity, buttonCancelUpdates, buttonMyCity},
		{buttonChooseCity},
		{buttonDone},
	}
}

func withMenu(chatID int64, text string, markdown bool) ports.OutboundMessage {
	return ports.OutboundMessage{ChatID: chatID, Text: text, Markdown: markdown, ReplyKeyboard: MainMenu()}
}

func withoutKeyboard(chatID int64, text string, markdown bool) ports.OutboundMessage {
	return ports.OutboundMessage{ChatID: chatID, Text: text, Markdown: markdown, RemoveKeyboard: true}
}

func plain(chatID int64, text string, markdown bool) ports.OutboundMessage {
	return ports.OutboundMessage{ChatID: chatID, Text: text, Markdown: markdown}
}

// cityKeyboard puts one candidate per row
func cityKeyboard(options []forecast.CityOption) [][]ports.InlineButton {
	rows := make([][]ports.InlineButton, 0, len(options))
	for _, o := range options {
		rows = append(rows, []ports.InlineButton{{
			Text: o.Label,
			Data: preference.EncodeLocationPayload(o.Label, o.Latitude, o.Longitude),
		}})
	}
	return rows
}

// dayKeyboard lays the day buttons out two per row
func dayKeyboard(options []forecast.DayOption) [][]ports.InlineButton {
	rows := make([][]ports.InlineButton, 0, (len(options)+1)/2)
	for i := 0; i < len(options); i += 2 {
		row := []ports.InlineButton{{Text: options[i].Label, Data: options[i].Data}}
		if i+1 < len(options) {
			row = append(row, ports.InlineButton{Text: options[i+1].Label, Data: options[i+1].Data})
		}
		rows = append(rows, row)
	}
	return rows
}

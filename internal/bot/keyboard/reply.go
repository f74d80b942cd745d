// Package keyboard builds the bot's reply and inline keyboards.
package keyboard

import (
	telebot "gopkg.in/telebot.v3"
)

// Labels of the persistent main menu buttons. The router matches inbound
// message text against these exact strings.
const (
	BtnAbout   = "📍About"
	BtnLinks   = "🖌Links"
	BtnAssets  = "⚡Assets"
	BtnPrice   = "📈Price"
	BtnFunding = "📊Funding"
)

// MainMenu builds the persistent reply keyboard shown with the welcome message.
func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: false,
	}

	about := markup.Text(BtnAbout)
	links := markup.Text(BtnLinks)
	assets := markup.Text(BtnAssets)
	price := markup.Text(BtnPrice)
	funding := markup.Text(BtnFunding)

	markup.Reply(
		markup.Row(about, links, assets),
		markup.Row(price, funding),
	)

	return markup
}

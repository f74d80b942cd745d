package handlers

import (
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/bot/keyboard"
)

// NewStartHandler greets the user and attaches the persistent main menu keyboard.
func NewStartHandler(log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("start handler invoked without sender")
			return nil
		}

		return c.Send(MsgWelcome, keyboard.MainMenu(), telebot.ModeMarkdown)
	}
}

// NewHelpHandler lists every function the bot currently offers.
func NewHelpHandler(log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("help handler invoked without sender")
			return nil
		}

		return c.Send(MsgHelp, telebot.ModeMarkdown)
	}
}

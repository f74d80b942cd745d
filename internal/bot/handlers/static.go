package handlers

import (
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/bot/keyboard"
)

// NewAboutHandler sends the fixed project description.
func NewAboutHandler(log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("about handler invoked without sender")
			return nil
		}

		return c.Send(MsgAbout, telebot.ModeMarkdown)
	}
}

// NewLinksHandler sends the inline keyboard of official AEVO links.
func NewLinksHandler(log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("links handler invoked without sender")
			return nil
		}

		return c.Send(MsgLinks, keyboard.Links())
	}
}

// NewIdleHandler answers free text that arrives while nothing is pending.
func NewIdleHandler(log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("idle handler invoked without sender")
			return nil
		}

		return c.Send(MsgIdle)
	}
}

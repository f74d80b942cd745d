package handlers

import (
	"context"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/intent"
)

// NewCancelHandler drops whatever lookup was pending for the user.
func NewCancelHandler(store intent.Store, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("cancel handler invoked without sender")
			return nil
		}

		ctx := context.Background()
		userID := c.Sender().ID

		if err := store.Clear(ctx, userID); err != nil {
			log.Error("failed to clear pending intent", slog.Int64("user_id", userID), slog.Any("error", err))
			return err
		}

		return c.Send(MsgCancelled)
	}
}

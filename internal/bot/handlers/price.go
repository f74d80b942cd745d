package handlers

import (
	"context"
	"fmt"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/intent"
)

// NewPriceButtonHandler marks the user as awaiting a symbol for a price lookup
// and prompts for it. Any previously pending intent is silently replaced.
func NewPriceButtonHandler(store intent.Store, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("price button handler invoked without sender")
			return nil
		}

		ctx := context.Background()
		userID := c.Sender().ID

		if err := store.Set(ctx, userID, intent.Price); err != nil {
			log.Error("failed to set pending intent", slog.Int64("user_id", userID), slog.Any("error", err))
			return err
		}

		return c.Send(MsgPricePrompt)
	}
}

// NewPriceResolveHandler treats the message text as an asset symbol, looks up
// its index price, and always clears the pending intent afterward.
func NewPriceResolveHandler(store intent.Store, md MarketData, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("price resolve handler invoked without sender")
			return nil
		}

		ctx := context.Background()
		userID := c.Sender().ID
		asset := c.Text()

		defer func() {
			if err := store.Clear(ctx, userID); err != nil {
				log.Error("failed to clear pending intent", slog.Int64("user_id", userID), slog.Any("error", err))
			}
		}()

		if err := c.Send(MsgPleaseWait); err != nil {
			return err
		}

		result, err := md.IndexPrice(ctx, asset)
		if err != nil {
			log.Warn("index price unavailable",
				slog.Int64("user_id", userID), slog.String("asset", asset), slog.Any("error", err))
			return c.Send(MsgFailure)
		}

		return c.Send(fmt.Sprintf("%s - %s$", asset, result.Price.StringFixed(2)))
	}
}

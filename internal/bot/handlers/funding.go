package handlers

import (
	"context"
	"fmt"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/intent"
)

// NewFundingButtonHandler marks the user as awaiting a symbol for a funding
// rate lookup and prompts for it. Any previously pending intent is silently replaced.
func NewFundingButtonHandler(store intent.Store, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("funding button handler invoked without sender")
			return nil
		}

		ctx := context.Background()
		userID := c.Sender().ID

		if err := store.Set(ctx, userID, intent.Funding); err != nil {
			log.Error("failed to set pending intent", slog.Int64("user_id", userID), slog.Any("error", err))
			return err
		}

		return c.Send(MsgFundingPrompt)
	}
}

// NewFundingResolveHandler treats the message text as an asset symbol, looks
// up the perpetual's funding rate, and always clears the pending intent afterward.
func NewFundingResolveHandler(store intent.Store, md MarketData, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("funding resolve handler invoked without sender")
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

		result, err := md.FundingRate(ctx, asset)
		if err != nil {
			log.Warn("funding rate unavailable",
				slog.Int64("user_id", userID), slog.String("asset", asset), slog.Any("error", err))
			return c.Send(MsgFailure)
		}

		return c.Send(fmt.Sprintf("%s - %s", asset, result.Rate.StringFixed(6)))
	}
}

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	telebot "gopkg.in/telebot.v3"
)

// NewAssetsHandler acknowledges the request, fetches the tradeable asset list,
// and replies with a 1-indexed enumeration in API order.
func NewAssetsHandler(md MarketData, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("assets handler invoked without sender")
			return nil
		}

		if err := c.Send(MsgPleaseWait); err != nil {
			return err
		}

		assets, err := md.Assets(context.Background())
		if err != nil {
			log.Warn("asset list unavailable", slog.Int64("user_id", c.Sender().ID), slog.Any("error", err))
			return c.Send(MsgFailure)
		}

		return c.Send(formatAssetList(assets))
	}
}

func formatAssetList(assets []string) string {
	lines := make([]string, len(assets))
	for i, asset := range assets {
		lines[i] = fmt.Sprintf("%d) %s", i+1, asset)
	}

	return strings.Join(lines, "\n")
}

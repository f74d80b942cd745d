package handlers

import (
	"context"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/market"
)

// Handler processes one inbound update.
type Handler func(c telebot.Context) error

// Middleware wraps handlers with additional behavior.
type Middleware func(Handler) Handler

// MarketData is the subset of the market client the handlers depend on.
type MarketData interface {
	IndexPrice(ctx context.Context, asset string) (market.IndexPrice, error)
	Assets(ctx context.Context) ([]string, error)
	FundingRate(ctx context.Context, asset string) (market.FundingRate, error)
}

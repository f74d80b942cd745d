// Package bot wires the Telegram transport to the dialogue handlers.
package bot

import (
	"fmt"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/bot/handlers"
	"github.com/aevobot/aevo-helper-bot/internal/bot/keyboard"
	errs "github.com/aevobot/aevo-helper-bot/internal/errors"
	"github.com/aevobot/aevo-helper-bot/internal/intent"
	"github.com/aevobot/aevo-helper-bot/pkg/config"
)

// Bot wraps telebot.Bot with the application dependencies required for handling updates.
type Bot struct {
	telebot    *telebot.Bot
	log        *slog.Logger
	store      intent.Store
	router     *Router
	dispatcher *Dispatcher
	errHandler *errs.Handler
}

// New builds a telegram bot instance configured according to the application settings.
func New(
	cfg config.Config,
	log *slog.Logger,
	store intent.Store,
	md handlers.MarketData,
) (*Bot, error) {
	settings := telebot.Settings{
		Token: cfg.Bot.Token,
		Poller: &telebot.LongPoller{
			Timeout: cfg.Bot.Timeout,
		},
	}

	tb, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("initialize telebot: %w", err)
	}

	dispatcher := NewDispatcher(store, log)
	router := NewRouter(dispatcher, log)
	errHandler := errs.NewHandler(log, cfg.Sentry.Enabled)

	b := &Bot{
		telebot:    tb,
		log:        log,
		store:      store,
		router:     router,
		dispatcher: dispatcher,
		errHandler: errHandler,
	}

	b.setupRouter(md)
	b.telebot.Handle(telebot.OnText, b.router.Route)

	return b, nil
}

// Start runs the telegram bot event loop.
func (b *Bot) Start() {
	if b.telebot != nil {
		b.telebot.Start()
	}
}

// Stop gracefully stops the telegram bot.
func (b *Bot) Stop() {
	if b.telebot == nil {
		return
	}

	if b.log != nil {
		b.log.Info("stopping telegram bot...")
	}

	b.telebot.Stop()
}

// Telebot exposes the underlying telebot.Bot instance for integrations such as health checks.
func (b *Bot) Telebot() *telebot.Bot {
	return b.telebot
}

func (b *Bot) setupRouter(md handlers.MarketData) {
	b.router.Use(RecoveryMiddleware(b.log, b.errHandler))
	b.router.Use(ErrorHandlingMiddleware(b.errHandler))
	b.router.Use(LoggingMiddleware(b.log))
	b.router.Use(MetricsMiddleware)

	b.router.RegisterCommand(CommandStart, handlers.NewStartHandler(b.log))
	b.router.RegisterCommand(CommandHelp, handlers.NewHelpHandler(b.log))
	b.router.RegisterCommand(CommandCancel, handlers.NewCancelHandler(b.store, b.log))

	b.router.RegisterButton(keyboard.BtnAbout, handlers.NewAboutHandler(b.log))
	b.router.RegisterButton(keyboard.BtnLinks, handlers.NewLinksHandler(b.log))
	b.router.RegisterButton(keyboard.BtnAssets, handlers.NewAssetsHandler(md, b.log))
	b.router.RegisterButton(keyboard.BtnPrice, handlers.NewPriceButtonHandler(b.store, b.log))
	b.router.RegisterButton(keyboard.BtnFunding, handlers.NewFundingButtonHandler(b.store, b.log))

	b.dispatcher.RegisterIntentHandler(intent.Price, handlers.NewPriceResolveHandler(b.store, md, b.log))
	b.dispatcher.RegisterIntentHandler(intent.Funding, handlers.NewFundingResolveHandler(b.store, md, b.log))
	b.dispatcher.SetIdleHandler(handlers.NewIdleHandler(b.log))
}

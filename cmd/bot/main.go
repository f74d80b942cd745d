package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aevobot/aevo-helper-bot/internal/bot"
	"github.com/aevobot/aevo-helper-bot/internal/health"
	"github.com/aevobot/aevo-helper-bot/internal/intent"
	"github.com/aevobot/aevo-helper-bot/internal/lifecycle"
	"github.com/aevobot/aevo-helper-bot/internal/market"
	"github.com/aevobot/aevo-helper-bot/pkg/config"
	"github.com/aevobot/aevo-helper-bot/pkg/graceful"
	"github.com/aevobot/aevo-helper-bot/pkg/logger"
	"github.com/aevobot/aevo-helper-bot/pkg/metrics"
	redisclient "github.com/aevobot/aevo-helper-bot/pkg/redis"
)

const intentGaugeInterval = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, v, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:         cfg.LogLevel,
		File:          cfg.Log.File,
		MaxSizeMB:     cfg.Log.MaxSizeMB,
		MaxBackups:    cfg.Log.MaxBackups,
		MaxAgeDays:    cfg.Log.MaxAgeDays,
		SentryEnabled: cfg.Sentry.Enabled,
	})
	config.WatchLogLevel(v, log, logger.SetLevel)

	log.Info("starting aevo helper bot",
		slog.String("env", cfg.AppEnv),
		slog.String("intent_backend", cfg.Intent.Backend),
		slog.String("market_base_url", cfg.Market.BaseURL),
	)

	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			log.Error("failed to initialize sentry", slog.Any("error", err))
			os.Exit(1)
		}
		defer sentry.Flush(2 * time.Second)
	}

	shutdown := lifecycle.NewShutdown(log)
	checker := health.NewChecker(log)

	var store intent.Store
	if cfg.Intent.Backend == "redis" {
		rdb, err := redisclient.New(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}

		store = intent.NewRedisStore(rdb.Client, log)
		checker.AddCheck("redis", health.NewRedisChecker(rdb.Client))
		shutdown.Register("redis", func(context.Context) error { return rdb.Close() })
	} else {
		store = intent.NewMemoryStore()
	}

	marketClient := market.NewClient(market.Config{
		BaseURL: cfg.Market.BaseURL,
		Timeout: cfg.Market.Timeout,
	}, log)
	checker.AddCheck("market_api", marketClient)

	b, err := bot.New(*cfg, log, store, marketClient)
	if err != nil {
		log.Error("failed to initialize bot", slog.Any("error", err))
		os.Exit(1)
	}
	checker.AddCheck("telegram", health.NewBotChecker(b.Telebot()))
	shutdown.Register("telegram", func(context.Context) error {
		b.Stop()
		return nil
	})

	mux := http.NewServeMux()
	mux.Handle("/healthz", checker.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	srv := graceful.NewServer(log, &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: logger.Middleware(mux),
	}, cfg.Server.ShutdownTimeout)

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil {
			log.Error("ops http server stopped", slog.Any("error", err))
		}
	}()

	collector := metrics.NewIntentCollector(store, log, intentGaugeInterval)
	go collector.Run(ctx)

	if cfg.Intent.TTL > 0 {
		cleaner := intent.NewCleaner(store, log, cfg.Intent.TTL, cfg.Intent.CleanInterval)
		go cleaner.Run(ctx)
	}

	go b.Start()
	log.Info("bot is running")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := shutdown.Execute(shutdownCtx); err != nil {
		log.Error("shutdown finished with errors", slog.Any("error", err))
	}

	log.Info("aevo helper bot stopped")
}

package bot

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/bot/handlers"
	"github.com/aevobot/aevo-helper-bot/internal/bot/keyboard"
	errs "github.com/aevobot/aevo-helper-bot/internal/errors"
	"github.com/aevobot/aevo-helper-bot/pkg/metrics"
)

// RecoveryMiddleware catches panics, reports them via the centralized handler, and notifies the user.
func RecoveryMiddleware(log *slog.Logger, errHandler *errs.Handler) handlers.Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(next handlers.Handler) handlers.Handler {
		if next == nil {
			return nil
		}

		return func(c telebot.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic recovered in handler",
						slog.Any("panic", r), slog.String("stack", string(debug.Stack())))

					userMsg := "Something went wrong on our side. Please try again later."
					if errHandler != nil {
						if msg, _ := errHandler.Handle(context.Background(), panicError(r)); msg != "" {
							userMsg = msg
						}
					}

					if c != nil {
						if sendErr := c.Send(userMsg); sendErr != nil {
							log.Error("failed to notify user about panic", slog.Any("error", sendErr))
						}
					}

					err = nil
				}
			}()

			return next(c)
		}
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return errs.NewTransportError(err)
	}
	return errs.NewTransportError(nil)
}

// ErrorHandlingMiddleware centralizes error reporting and user messaging for handler failures.
func ErrorHandlingMiddleware(errHandler *errs.Handler) handlers.Middleware {
	return func(next handlers.Handler) handlers.Handler {
		if next == nil {
			return nil
		}

		return func(c telebot.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			userMsg := "Something went wrong on our side. Please try again later."
			if errHandler != nil {
				if msg, _ := errHandler.Handle(context.Background(), err); msg != "" {
					userMsg = msg
				}
			}

			if c != nil {
				_ = c.Send(userMsg)
			}

			return nil
		}
	}
}

// LoggingMiddleware logs basic telemetry about incoming updates.
func LoggingMiddleware(log *slog.Logger) handlers.Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(next handlers.Handler) handlers.Handler {
		if next == nil {
			return nil
		}

		return func(c telebot.Context) error {
			start := time.Now()

			userID := int64(0)
			action := ""
			if c != nil {
				if c.Sender() != nil {
					userID = c.Sender().ID
				}
				action = c.Text()
			}

			log.Info("handling update", slog.Int64("user_id", userID), slog.String("action", action))
			err := next(c)
			log.Info("handled update",
				slog.Int64("user_id", userID),
				slog.String("action", action),
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err),
			)

			return err
		}
	}
}

// MetricsMiddleware reports update counts and handling durations to Prometheus.
func MetricsMiddleware(next handlers.Handler) handlers.Handler {
	if next == nil {
		return nil
	}

	return func(c telebot.Context) error {
		start := time.Now()

		err := next(c)

		status := "success"
		if err != nil {
			status = "error"
		}

		metrics.RecordUpdate(actionLabel(c), status, time.Since(start))
		return err
	}
}

var buttonActions = map[string]string{
	keyboard.BtnAbout:   "about",
	keyboard.BtnLinks:   "links",
	keyboard.BtnAssets:  "assets",
	keyboard.BtnPrice:   "price",
	keyboard.BtnFunding: "funding",
}

// actionLabel collapses free text into a single label to keep metric cardinality bounded.
func actionLabel(c telebot.Context) string {
	if c == nil {
		return "unknown"
	}

	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return commandName(text)
	}
	if action, ok := buttonActions[text]; ok {
		return action
	}
	return "free_text"
}

package bot

import (
	"context"
	"log/slog"
	"sync"

	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/bot/handlers"
	"github.com/aevobot/aevo-helper-bot/internal/intent"
)

// Dispatcher routes free-text messages to the handler of the sender's pending intent.
type Dispatcher struct {
	store          intent.Store
	intentHandlers map[intent.Intent]handlers.Handler
	idleHandler    handlers.Handler
	log            *slog.Logger
	mu             sync.RWMutex
}

// NewDispatcher creates a Dispatcher with an empty handlers registry.
func NewDispatcher(store intent.Store, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	return &Dispatcher{
		store:          store,
		intentHandlers: make(map[intent.Intent]handlers.Handler),
		log:            log,
	}
}

// RegisterIntentHandler registers a handler for free text arriving under the given pending intent.
func (d *Dispatcher) RegisterIntentHandler(in intent.Intent, h handlers.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.intentHandlers[in] = h
}

// SetIdleHandler registers the handler for free text with no pending intent.
func (d *Dispatcher) SetIdleHandler(h handlers.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.idleHandler = h
}

// Dispatch routes the update based on the sender's pending intent.
func (d *Dispatcher) Dispatch(c telebot.Context) error {
	if c == nil || c.Sender() == nil {
		d.log.Warn("cannot dispatch without sender information")
		return nil
	}

	ctx := context.Background()
	userID := c.Sender().ID

	pending, err := d.store.Get(ctx, userID)
	if err != nil {
		// A broken store read must not crash the conversation; fall back to
		// the idle response and let the user retry.
		d.log.Error("failed to read pending intent", slog.Int64("user_id", userID), slog.Any("error", err))
		pending = intent.None
	}

	handler := d.getHandler(pending)
	if handler == nil {
		d.log.Info("no handler registered for pending intent",
			slog.String("intent", string(pending)), slog.Int64("user_id", userID))
		return nil
	}

	return handler(c)
}

func (d *Dispatcher) getHandler(in intent.Intent) handlers.Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if in == intent.None {
		return d.idleHandler
	}

	if h, ok := d.intentHandlers[in]; ok {
		return h
	}

	return d.idleHandler
}

package intent

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner periodically drops pending intents that a user abandoned without
// replying. The bot works correctly without it (an abandoned intent simply
// lingers until the user resumes), so the cleaner stays disabled unless a TTL
// is configured.
type Cleaner struct {
	store    Store
	log      *slog.Logger
	ttl      time.Duration
	interval time.Duration
}

// NewCleaner constructs a Cleaner instance.
func NewCleaner(store Store, log *slog.Logger, ttl, interval time.Duration) *Cleaner {
	if log == nil {
		log = slog.Default()
	}

	return &Cleaner{
		store:    store,
		log:      log,
		ttl:      ttl,
		interval: interval,
	}
}

// Run starts the cleanup loop until the context is cancelled.
func (c *Cleaner) Run(ctx context.Context) {
	if c == nil || c.store == nil || c.ttl <= 0 || c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("intent cleaner stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *Cleaner) sweep(ctx context.Context) {
	records, err := c.store.All(ctx)
	if err != nil {
		c.log.Error("intent cleaner failed to list pending intents", slog.Any("error", err))
		return
	}

	for _, rec := range records {
		if ctx.Err() != nil {
			return
		}

		if time.Since(rec.UpdatedAt) <= c.ttl {
			continue
		}

		if err := c.store.Clear(ctx, rec.UserID); err != nil {
			c.log.Error("intent cleaner failed to clear pending intent",
				slog.Int64("user_id", rec.UserID), slog.Any("error", err))
			continue
		}

		c.log.Info("abandoned pending intent cleared",
			slog.Int64("user_id", rec.UserID), slog.String("intent", string(rec.Intent)))
	}
}

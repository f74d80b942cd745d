// Package intent tracks the pending lookup a user's next free-text message answers.
package intent

import (
	"context"
	"time"
)

// Intent marks which lookup the bot is waiting for from a user.
type Intent string

const (
	// None indicates no lookup is pending for the user.
	None Intent = ""
	// Price indicates the next free-text message is an asset symbol for an index price lookup.
	Price Intent = "price"
	// Funding indicates the next free-text message is an asset symbol for a funding rate lookup.
	Funding Intent = "funding"
)

// Record is a stored pending intent together with its owner and last update time.
type Record struct {
	UserID    int64     `json:"user_id"`
	Intent    Intent    `json:"intent"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the persistence contract for pending intents. A user with no entry
// has intent None; Set overwrites whatever was pending before.
type Store interface {
	// Get returns the pending intent for the user, None when absent.
	Get(ctx context.Context, userID int64) (Intent, error)
	// Set records the pending intent for the user, replacing any prior one.
	Set(ctx context.Context, userID int64, in Intent) error
	// Clear removes the pending intent for the user.
	Clear(ctx context.Context, userID int64) error
	// All returns every stored pending intent.
	All(ctx context.Context) ([]Record, error)
}

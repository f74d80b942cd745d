package intent

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending intents in process memory. It is the default
// backend: the bot makes no promise to survive restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int64]Record
}

// NewMemoryStore returns an empty in-memory Store implementation.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[int64]Record),
	}
}

// Get returns the pending intent for the user, None when no entry exists.
func (s *MemoryStore) Get(_ context.Context, userID int64) (Intent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return None, nil
	}

	return rec.Intent, nil
}

// Set stores the pending intent for the user, overwriting any prior entry.
func (s *MemoryStore) Set(_ context.Context, userID int64, in Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[userID] = Record{
		UserID:    userID,
		Intent:    in,
		UpdatedAt: time.Now().UTC(),
	}

	return nil
}

// Clear removes the pending intent for the user. Clearing an absent entry is a no-op.
func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, userID)
	return nil
}

// All returns a snapshot of every stored pending intent.
func (s *MemoryStore) All(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, rec)
	}

	return result, nil
}

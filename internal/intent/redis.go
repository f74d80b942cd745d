package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	intentKeyPattern    = "intent:user:%d"
	intentScanPattern   = "intent:user:*"
	intentScanBatchSize = 100
)

// RedisStore persists pending intents in Redis so that multiple bot instances
// can share them. Entries are written without expiry; the optional Cleaner
// takes care of abandoned conversations when enabled.
type RedisStore struct {
	client *redis.Client
	log    *slog.Logger
}

// NewRedisStore initializes a Redis-backed Store implementation.
func NewRedisStore(client *redis.Client, log *slog.Logger) *RedisStore {
	if log == nil {
		log = slog.Default()
	}

	return &RedisStore{
		client: client,
		log:    log,
	}
}

// Get returns the pending intent for the user, None when no key exists.
func (s *RedisStore) Get(ctx context.Context, userID int64) (Intent, error) {
	data, err := s.client.Get(ctx, redisIntentKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return None, nil
		}

		s.log.Error("failed to get pending intent from redis", "user_id", userID, "error", err)
		return None, err
	}

	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		s.log.Error("failed to decode pending intent", "user_id", userID, "error", err)
		return None, err
	}

	return rec.Intent, nil
}

// Set stores the pending intent for the user without expiry, overwriting any prior entry.
func (s *RedisStore) Set(ctx context.Context, userID int64, in Intent) error {
	rec := Record{
		UserID:    userID,
		Intent:    in,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Error("failed to encode pending intent", "user_id", userID, "error", err)
		return err
	}

	if err := s.client.Set(ctx, redisIntentKey(userID), data, 0).Err(); err != nil {
		s.log.Error("failed to save pending intent in redis", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// Clear removes the pending intent for the user.
func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, redisIntentKey(userID)).Err(); err != nil {
		s.log.Error("failed to clear pending intent", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// All retrieves every stored pending intent by scanning Redis keys.
func (s *RedisStore) All(ctx context.Context) ([]Record, error) {
	var (
		cursor uint64
		result []Record
	)

	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, intentScanPattern, intentScanBatchSize).Result()
		if err != nil {
			s.log.Error("failed to scan pending intents", "error", err)
			return nil, err
		}

		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}

				s.log.Error("failed to fetch pending intent", "key", key, "error", err)
				return nil, err
			}

			var rec Record
			if err := json.Unmarshal([]byte(data), &rec); err != nil {
				s.log.Error("failed to decode pending intent", "key", key, "error", err)
				continue
			}

			result = append(result, rec)
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return result, nil
}

func redisIntentKey(userID int64) string {
	return fmt.Sprintf(intentKeyPattern, userID)
}

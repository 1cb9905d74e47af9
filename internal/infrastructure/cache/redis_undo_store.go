package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultUndoKeyPrefix = "ledger:undo:"

// RedisUndoStore keeps each project's undo slot as a JSON value with a TTL.
// Take uses GETDEL so two instances cannot both restore the same replace.
type RedisUndoStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisUndoStore creates a store on an existing client
func NewRedisUndoStore(client *redis.Client, ttl time.Duration, keyPrefix string) *RedisUndoStore {
	if keyPrefix == "" {
		keyPrefix = defaultUndoKeyPrefix
	}
	return &RedisUndoStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (s *RedisUndoStore) key(projectID uuid.UUID) string {
	return s.keyPrefix + projectID.String()
}

// Put overwrites the project's slot and restarts its TTL
func (s *RedisUndoStore) Put(ctx context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode replacement: %w", err)
	}
	if err := s.client.Set(ctx, s.key(projectID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save replacement: %w", err)
	}
	return nil
}

// Take removes and returns the project's slot, nil when empty
func (s *RedisUndoStore) Take(ctx context.Context, projectID uuid.UUID) (*ledger.DocumentReplacement, error) {
	data, err := s.client.GetDel(ctx, s.key(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take replacement: %w", err)
	}
	return decodeReplacement(data)
}

// Discard deletes the slot under WATCH, so a newer Put is left alone
func (s *RedisUndoStore) Discard(ctx context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	key := s.key(projectID)
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		cur, err := decodeReplacement(data)
		if err != nil {
			return err
		}
		if !cur.Same(r) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
	// the slot changed while watched, so it no longer holds r
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to discard replacement: %w", err)
	}
	return nil
}

func decodeReplacement(data []byte) (*ledger.DocumentReplacement, error) {
	var r ledger.DocumentReplacement
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode replacement: %w", err)
	}
	return &r, nil
}

// Ensure RedisUndoStore implements UndoStore
var _ ledger.UndoStore = (*RedisUndoStore)(nil)

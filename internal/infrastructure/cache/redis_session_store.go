package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultSessionKeyPrefix = "ledger:session-links:"

// RedisSessionLinkStore implements SessionLinkStore with one sorted set per
// project. Scores are member expiry times in unix milliseconds; the key
// itself expires ttl after the last Add.
type RedisSessionLinkStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSessionLinkStore creates a store on an existing client
func NewRedisSessionLinkStore(client *redis.Client, ttl time.Duration, keyPrefix string) *RedisSessionLinkStore {
	if keyPrefix == "" {
		keyPrefix = defaultSessionKeyPrefix
	}
	return &RedisSessionLinkStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (s *RedisSessionLinkStore) key(projectID uuid.UUID) string {
	return s.keyPrefix + projectID.String()
}

// Add marks supplierID linked and restarts its TTL
func (s *RedisSessionLinkStore) Add(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	key := s.key(projectID)
	now := time.Now()
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.Add(s.ttl).UnixMilli()), Member: supplierID})
		pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(now.UnixMilli(), 10))
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add session link: %w", err)
	}
	return nil
}

// Remove drops supplierID from the project's set
func (s *RedisSessionLinkStore) Remove(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	if err := s.client.ZRem(ctx, s.key(projectID), supplierID).Err(); err != nil {
		return fmt.Errorf("failed to remove session link: %w", err)
	}
	return nil
}

// Members returns the unexpired suppliers of a project
func (s *RedisSessionLinkStore) Members(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	members, err := s.client.ZRangeByScore(ctx, s.key(projectID), &redis.ZRangeBy{
		Min: "(" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session links: %w", err)
	}
	return members, nil
}

// Ensure RedisSessionLinkStore implements SessionLinkStore
var _ ledger.SessionLinkStore = (*RedisSessionLinkStore)(nil)

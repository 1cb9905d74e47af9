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

const defaultWizardKeyPrefix = "ledger:wizard:"

// RedisWizardStore keeps invoice wizards as JSON values with a TTL, so any
// instance can continue a wizard started on another one
type RedisWizardStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisWizardStore creates a store on an existing client
func NewRedisWizardStore(client *redis.Client, ttl time.Duration, keyPrefix string) *RedisWizardStore {
	if keyPrefix == "" {
		keyPrefix = defaultWizardKeyPrefix
	}
	return &RedisWizardStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

// Get loads a wizard or returns ErrWizardNotFound
func (s *RedisWizardStore) Get(ctx context.Context, id uuid.UUID) (*ledger.InvoiceWizard, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ledger.ErrWizardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard: %w", err)
	}

	var wizard ledger.InvoiceWizard
	if err := json.Unmarshal(data, &wizard); err != nil {
		return nil, fmt.Errorf("failed to decode wizard: %w", err)
	}
	return &wizard, nil
}

// Save writes the wizard and restarts its TTL
func (s *RedisWizardStore) Save(ctx context.Context, wizard *ledger.InvoiceWizard) error {
	data, err := json.Marshal(wizard)
	if err != nil {
		return fmt.Errorf("failed to encode wizard: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+wizard.ID.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save wizard: %w", err)
	}
	return nil
}

// Delete removes a wizard
func (s *RedisWizardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.keyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard: %w", err)
	}
	return nil
}

// Ensure RedisWizardStore implements WizardStore
var _ ledger.WizardStore = (*RedisWizardStore)(nil)

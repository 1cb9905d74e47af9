package cache

import (
	"errors"
	"fmt"
	"io"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Stores groups the session-scoped stores of the ledger
type Stores struct {
	Sessions ledger.SessionLinkStore
	Wizards  ledger.WizardStore
	Undo     ledger.UndoStore
	// Redis is nil when the stores are in memory
	Redis *redis.Client

	closers []io.Closer
}

// Close releases the stores and the Redis client
func (s *Stores) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StoreFactory creates stores based on configuration
type StoreFactory struct {
	redisConfig           config.RedisConfig
	ledgerConfig          config.LedgerConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory stores when Redis is unavailable.
// Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(redisCfg config.RedisConfig, ledgerCfg config.LedgerConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redisConfig:           redisCfg,
		ledgerConfig:          ledgerCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateInMemoryStores creates process-local stores
func (f *StoreFactory) CreateInMemoryStores() *Stores {
	sessions := NewInMemorySessionLinkStore(f.ledgerConfig.SessionLinkTTL)
	wizards := NewInMemoryWizardStore(f.ledgerConfig.WizardTTL)
	undo := NewInMemoryUndoStore(f.ledgerConfig.UndoWindow)
	return &Stores{
		Sessions: sessions,
		Wizards:  wizards,
		Undo:     undo,
		closers:  []io.Closer{sessions, wizards, undo},
	}
}

// CreateRedisStores creates stores shared by every instance
func (f *StoreFactory) CreateRedisStores() (*Stores, error) {
	client, err := NewRedisClient(f.redisConfig)
	if err != nil {
		return nil, err
	}
	return &Stores{
		Sessions: NewRedisSessionLinkStore(client, f.ledgerConfig.SessionLinkTTL, ""),
		Wizards:  NewRedisWizardStore(client, f.ledgerConfig.WizardTTL, ""),
		Undo:     NewRedisUndoStore(client, f.ledgerConfig.UndoWindow, ""),
		Redis:    client,
		closers:  []io.Closer{client},
	}, nil
}

// CreateStores uses Redis when enabled, falling back to memory if allowed
func (f *StoreFactory) CreateStores() (*Stores, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-memory session stores")
		return f.CreateInMemoryStores(), nil
	}

	stores, err := f.CreateRedisStores()
	if err == nil {
		f.logger.Info("using Redis session stores", zap.String("addr", f.redisConfig.Addr()))
		return stores, nil
	}
	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for session stores but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory session stores. "+
		"Wizards, session links and undo slots will not be shared between instances.",
		zap.Error(err),
	)
	return f.CreateInMemoryStores(), nil
}

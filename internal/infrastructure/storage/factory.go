package storage

import (
	"fmt"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New returns the DocumentStorage selected by cfg.Driver
func New(cfg *config.StorageConfig, logger *zap.Logger) (ledger.DocumentStorage, error) {
	switch cfg.Driver {
	case config.StorageS3:
		return NewS3DocumentStorage(cfg, WithLogger(logger))
	case config.StorageMemory, "":
		logger.Warn("Using in-memory document storage, uploads are lost on restart")
		return NewMemoryDocumentStorage(cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

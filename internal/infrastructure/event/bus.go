// Package event delivers ledger change notices inside one process.
package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ChangeBus implements ChangePublisher and ChangeSubscriber with in-memory
// fan-out. Handlers run synchronously on the publishing goroutine and must
// not block.
type ChangeBus struct {
	logger   *zap.Logger
	nextID   atomic.Uint64
	mu       sync.RWMutex
	handlers map[uint64]ledger.ChangeHandler
}

// NewChangeBus creates a new in-memory change bus
func NewChangeBus(logger *zap.Logger) *ChangeBus {
	return &ChangeBus{
		logger:   logger,
		handlers: make(map[uint64]ledger.ChangeHandler),
	}
}

// Publish delivers the notice to every current subscriber
func (b *ChangeBus) Publish(ctx context.Context, notice ledger.ChangeNotice) error {
	b.mu.RLock()
	handlers := make([]ledger.ChangeHandler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	telemetry.RecordChangeNotice(ctx, notice.Table)
	for _, h := range handlers {
		b.dispatch(h, notice)
	}
	return nil
}

// Subscribe registers handler and returns a function that removes it
func (b *ChangeBus) Subscribe(handler ledger.ChangeHandler) func() {
	id := b.nextID.Add(1)

	b.mu.Lock()
	b.handlers[id] = handler
	b.mu.Unlock()
	b.logger.Debug("change handler subscribed", zap.Uint64("subscription", id))

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
			b.logger.Debug("change handler unsubscribed", zap.Uint64("subscription", id))
		})
	}
}

// Subscribers returns the number of registered handlers
func (b *ChangeBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

func (b *ChangeBus) dispatch(handler ledger.ChangeHandler, notice ledger.ChangeNotice) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("change handler panicked",
				zap.String("table", notice.Table),
				zap.Any("panic", r),
			)
		}
	}()
	handler(notice)
}

// Ensure ChangeBus implements the change contracts
var (
	_ ledger.ChangePublisher  = (*ChangeBus)(nil)
	_ ledger.ChangeSubscriber = (*ChangeBus)(nil)
)

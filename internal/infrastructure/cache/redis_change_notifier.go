package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCloseTimeout = 5 * time.Second

// LocalChangeBus delivers notices to the subscribers of this process
type LocalChangeBus interface {
	ledger.ChangePublisher
	ledger.ChangeSubscriber
}

// RedisChangeNotifier fans change notices out to every instance through a
// Redis Pub/Sub channel. Notices received from the channel, including this
// instance's own, are relayed into the local bus.
type RedisChangeNotifier struct {
	client    *redis.Client
	channel   string
	local     LocalChangeBus
	logger    *zap.Logger
	cancelFn  context.CancelFunc
	doneCh    chan struct{}
	doneOnce  sync.Once
	mu        sync.Mutex
	isRunning bool
}

// RedisChangeNotifierOption is a functional option for configuring the notifier
type RedisChangeNotifierOption func(*RedisChangeNotifier)

// WithNotifierChannel sets the Pub/Sub channel name
func WithNotifierChannel(channel string) RedisChangeNotifierOption {
	return func(n *RedisChangeNotifier) {
		if channel != "" {
			n.channel = channel
		}
	}
}

// WithNotifierLogger sets the logger for the notifier
func WithNotifierLogger(logger *zap.Logger) RedisChangeNotifierOption {
	return func(n *RedisChangeNotifier) {
		n.logger = logger
	}
}

// NewRedisChangeNotifier creates a notifier on an existing client. The
// caller keeps ownership of the client.
func NewRedisChangeNotifier(client *redis.Client, local LocalChangeBus, opts ...RedisChangeNotifierOption) *RedisChangeNotifier {
	n := &RedisChangeNotifier{
		client:  client,
		channel: "ledger:changes",
		local:   local,
		logger:  zap.NewNop(),
		doneCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Publish sends a notice to every instance
func (n *RedisChangeNotifier) Publish(ctx context.Context, notice ledger.ChangeNotice) error {
	if notice.Timestamp.IsZero() {
		notice.Timestamp = time.Now()
	}

	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal change notice: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		n.logger.Error("Failed to publish change notice",
			zap.String("channel", n.channel),
			zap.String("table", notice.Table),
			zap.Error(err))
		return fmt.Errorf("failed to publish change notice: %w", err)
	}
	return nil
}

// Subscribe registers a handler on the local bus
func (n *RedisChangeNotifier) Subscribe(handler ledger.ChangeHandler) func() {
	return n.local.Subscribe(handler)
}

// Run relays notices from Redis to the local bus until ctx is cancelled or
// Close is called. It blocks; run it in a goroutine.
func (n *RedisChangeNotifier) Run(ctx context.Context) error {
	n.mu.Lock()
	if n.isRunning {
		n.mu.Unlock()
		return fmt.Errorf("subscription already running")
	}
	n.isRunning = true
	subCtx, cancel := context.WithCancel(ctx)
	n.cancelFn = cancel
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		n.isRunning = false
		n.mu.Unlock()
		n.markDone()
	}()

	pubsub := n.client.Subscribe(subCtx, n.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(subCtx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}
	n.logger.Info("Subscribed to change channel", zap.String("channel", n.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-subCtx.Done():
			n.logger.Info("Change subscription stopped")
			return subCtx.Err()
		case msg, ok := <-ch:
			if !ok {
				n.logger.Warn("Change channel closed")
				return nil
			}

			var notice ledger.ChangeNotice
			if err := json.Unmarshal([]byte(msg.Payload), &notice); err != nil {
				n.logger.Error("Failed to unmarshal change notice",
					zap.String("payload", msg.Payload),
					zap.Error(err))
				continue
			}
			if err := n.local.Publish(subCtx, notice); err != nil {
				n.logger.Warn("Failed to relay change notice", zap.Error(err))
			}
		}
	}
}

func (n *RedisChangeNotifier) markDone() {
	n.doneOnce.Do(func() {
		close(n.doneCh)
	})
}

// Close stops Run and waits for it to return
func (n *RedisChangeNotifier) Close() error {
	n.mu.Lock()
	cancelFn := n.cancelFn
	n.mu.Unlock()

	if cancelFn != nil {
		cancelFn()
		select {
		case <-n.doneCh:
		case <-time.After(defaultCloseTimeout):
			n.logger.Warn("Timeout waiting for change subscription to stop")
		}
	}
	return nil
}

// Ensure RedisChangeNotifier implements the change contracts
var (
	_ ledger.ChangePublisher  = (*RedisChangeNotifier)(nil)
	_ ledger.ChangeSubscriber = (*RedisChangeNotifier)(nil)
)

package ledger

import (
	"context"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notifier publishes change notices; a failed publish never fails the write
type notifier struct {
	publisher ledger.ChangePublisher
	logger    *zap.Logger
}

func (n notifier) notify(ctx context.Context, table string, projectID uuid.UUID) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, ledger.NewChangeNotice(table, projectID)); err != nil {
		n.logger.Warn("Failed to publish change notice",
			zap.String("table", table),
			zap.String("project_id", projectID.String()),
			zap.Error(err))
	}
}

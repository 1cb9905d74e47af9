package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
)

// requireCatalogSupplier rejects supplier IDs that are missing from the catalog
// or deleted from it. Expenses and deposits may only reference live suppliers.
func requireCatalogSupplier(ctx context.Context, suppliers ledger.SupplierRepository, id string) error {
	supplier, err := suppliers.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return ledger.ErrUnknownSupplier
	}
	if err != nil {
		return fmt.Errorf("load supplier: %w", err)
	}
	if supplier.IsDeleted() {
		return ledger.ErrUnknownSupplier
	}
	return nil
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryWizardStore(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	store := NewInMemoryWizardStore(2 * time.Hour)
	store.now = clock.Now
	defer store.Close()

	w := ledger.NewInvoiceWizard(uuid.New())
	w.Items = []ledger.LineItemDraft{{Designation: "Ciment", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)}}
	require.NoError(t, store.Save(ctx, w))

	t.Run("get returns an independent copy", func(t *testing.T) {
		got, err := store.Get(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, w.ID, got.ID)
		require.Len(t, got.Items, 1)

		got.Items[0].Designation = "changed"
		again, err := store.Get(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ciment", again.Items[0].Designation)
	})

	t.Run("missing wizard", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ledger.ErrWizardNotFound)
	})

	t.Run("expired wizard", func(t *testing.T) {
		clock.Advance(3 * time.Hour)
		_, err := store.Get(ctx, w.ID)
		assert.ErrorIs(t, err, ledger.ErrWizardNotFound)
		assert.Zero(t, store.Size())
	})

	t.Run("delete", func(t *testing.T) {
		other := ledger.NewInvoiceWizard(uuid.New())
		require.NoError(t, store.Save(ctx, other))
		require.NoError(t, store.Delete(ctx, other.ID))
		_, err := store.Get(ctx, other.ID)
		assert.ErrorIs(t, err, ledger.ErrWizardNotFound)
	})
}

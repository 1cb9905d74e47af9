package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLedgerService_Load(t *testing.T) {
	projectID := uuid.New()
	now := time.Now()

	catalog := []ledger.Supplier{
		{ID: "acier", Name: "Acier"},
		{ID: "beton", Name: "Béton"},
		{ID: "bois", Name: "Bois"},
		{ID: "old", Name: "Old"},
		{ID: "unused", Name: "Unused"},
	}
	expenses := []ledger.Expense{
		{ProjectID: projectID, SupplierID: "beton", Price: d("100"), Status: ledger.ExpenseStatusPaid, Date: now.Add(-time.Hour)},
		{ProjectID: projectID, SupplierID: "beton", Price: d("50"), Status: ledger.ExpenseStatusPending, Date: now},
		{ProjectID: projectID, SupplierID: "acier", Price: d("120"), Status: ledger.ExpenseStatusPending, Date: now},
	}
	deposits := []ledger.Deposit{{ProjectID: projectID, SupplierID: "acier", Amount: d("200"), Date: now}}
	archivedLinks := []ledger.ProjectSupplierLink{{ProjectID: projectID, SupplierID: "old", DeletedAt: &now}}

	setup := func(t *testing.T, linksErr error) (*LedgerService, *memorySessions) {
		repos := newTestRepos()
		repos.suppliers.On("FindAll", mock.Anything).Return(catalog, nil)
		repos.expenses.On("FindByProject", mock.Anything, projectID).Return(expenses, nil)
		repos.deposits.On("FindByProject", mock.Anything, projectID).Return(deposits, nil)
		if linksErr != nil {
			repos.links.On("FindByProject", mock.Anything, projectID).Return(nil, linksErr)
			repos.links.On("FindArchived", mock.Anything, projectID).Return(nil, linksErr)
		} else {
			repos.links.On("FindByProject", mock.Anything, projectID).Return([]ledger.ProjectSupplierLink{{ProjectID: projectID, SupplierID: "bois"}}, nil)
			repos.links.On("FindArchived", mock.Anything, projectID).Return(archivedLinks, nil)
		}
		repos.documents.On("FindByProject", mock.Anything, projectID).Return([]ledger.UploadedDocument{
			{ID: uuid.New(), ProjectID: projectID, SupplierID: "beton", FileURL: "u", FileName: "bl.pdf"},
		}, nil)
		repos.settings.On("Get", mock.Anything, projectID, ledger.GeneralNoteKey).Return("chantier A", nil)

		sessions := newMemorySessions()
		return NewLedgerService(repos.repositories(), sessions, NewOrderBook(), zaptest.NewLogger(t)), sessions
	}

	t.Run("builds summaries, visibility and archive list", func(t *testing.T) {
		svc, _ := setup(t, nil)

		view, err := svc.Load(context.Background(), projectID)
		require.NoError(t, err)

		ids := make([]string, 0, len(view.Suppliers))
		for _, s := range view.Suppliers {
			ids = append(ids, s.Supplier.ID)
		}
		assert.Equal(t, []string{"bois", "acier", "beton"}, ids)

		byID := make(map[string]SupplierLedger)
		for _, s := range view.Suppliers {
			byID[s.Supplier.ID] = s
		}
		beton := byID["beton"]
		assert.True(t, beton.Summary.TotalCost.Equal(d("150")))
		assert.True(t, beton.Summary.TotalPaid.Equal(d("100")))
		assert.True(t, beton.Summary.Remaining.Equal(d("-50")))
		assert.Equal(t, "status", beton.Summary.Mode)
		require.Len(t, beton.Expenses, 2)
		assert.True(t, beton.Expenses[0].Price.Equal(d("50")), "newest expense first")
		assert.Len(t, beton.Documents, 1)

		acier := byID["acier"]
		assert.True(t, acier.Summary.Remaining.Equal(d("80")))
		assert.Equal(t, "deposit", acier.Summary.Mode)

		assert.True(t, view.Summary.GrandTotal.Equal(d("270")))
		assert.True(t, view.Summary.TotalPaid.Equal(d("300")))
		assert.True(t, view.Summary.TotalRemaining.Equal(d("-50")))

		require.Len(t, view.Archived, 1)
		assert.Equal(t, "old", view.Archived[0].ID)
		assert.Equal(t, "chantier A", view.GeneralNote)
		assert.Empty(t, view.Warnings)
	})

	t.Run("session-linked suppliers show without links table", func(t *testing.T) {
		svc, sessions := setup(t, shared.ErrSystemNotProvisioned)
		require.NoError(t, sessions.Add(context.Background(), projectID, "unused"))

		view, err := svc.Load(context.Background(), projectID)
		require.NoError(t, err)

		ids := make([]string, 0, len(view.Suppliers))
		for _, s := range view.Suppliers {
			ids = append(ids, s.Supplier.ID)
		}
		assert.ElementsMatch(t, []string{"acier", "beton", "unused"}, ids)
		assert.Equal(t, []string{WarningLinksUnavailable}, view.Warnings)
	})

	t.Run("expenses of a supplier deleted from the catalog stay out of the totals", func(t *testing.T) {
		repos := newTestRepos()
		repos.suppliers.On("FindAll", mock.Anything).Return([]ledger.Supplier{{ID: "beton", Name: "Béton"}}, nil)
		repos.expenses.On("FindByProject", mock.Anything, projectID).Return([]ledger.Expense{
			{ProjectID: projectID, SupplierID: "beton", Price: d("100"), Status: ledger.ExpenseStatusPending, Date: now},
			{ProjectID: projectID, SupplierID: "gone", Price: d("900"), Status: ledger.ExpenseStatusPending, Date: now},
		}, nil)
		repos.deposits.On("FindByProject", mock.Anything, projectID).Return([]ledger.Deposit{}, nil)
		repos.links.On("FindByProject", mock.Anything, projectID).Return([]ledger.ProjectSupplierLink{}, nil)
		repos.links.On("FindArchived", mock.Anything, projectID).Return([]ledger.ProjectSupplierLink{}, nil)
		repos.documents.On("FindByProject", mock.Anything, projectID).Return([]ledger.UploadedDocument{}, nil)
		repos.settings.On("Get", mock.Anything, projectID, ledger.GeneralNoteKey).Return("", nil)
		svc := NewLedgerService(repos.repositories(), nil, nil, zaptest.NewLogger(t))

		view, err := svc.Load(context.Background(), projectID)
		require.NoError(t, err)

		require.Len(t, view.Suppliers, 1)
		assert.Equal(t, "beton", view.Suppliers[0].Supplier.ID)
		assert.True(t, view.Summary.GrandTotal.Equal(d("100")))
		assert.True(t, view.Summary.TotalRemaining.Equal(d("-100")))
	})

	t.Run("missing supplier table is fatal", func(t *testing.T) {
		repos := newTestRepos()
		repos.suppliers.On("FindAll", mock.Anything).Return(nil, shared.ErrSystemNotProvisioned)
		repos.expenses.On("FindByProject", mock.Anything, projectID).Return([]ledger.Expense{}, nil).Maybe()
		repos.deposits.On("FindByProject", mock.Anything, projectID).Return([]ledger.Deposit{}, nil).Maybe()
		repos.links.On("FindByProject", mock.Anything, projectID).Return([]ledger.ProjectSupplierLink{}, nil).Maybe()
		repos.links.On("FindArchived", mock.Anything, projectID).Return([]ledger.ProjectSupplierLink{}, nil).Maybe()
		repos.documents.On("FindByProject", mock.Anything, projectID).Return([]ledger.UploadedDocument{}, nil).Maybe()
		repos.settings.On("Get", mock.Anything, projectID, ledger.GeneralNoteKey).Return("", nil).Maybe()
		svc := NewLedgerService(repos.repositories(), nil, nil, zaptest.NewLogger(t))

		_, err := svc.Load(context.Background(), projectID)
		assert.ErrorIs(t, err, shared.ErrSystemNotProvisioned)
	})

	t.Run("session order wins over link order", func(t *testing.T) {
		svc, _ := setup(t, nil)
		svc.orders.SetInMemory(projectID, []string{"beton", "acier"})

		view, err := svc.Load(context.Background(), projectID)
		require.NoError(t, err)
		assert.Equal(t, "beton", view.Suppliers[0].Supplier.ID)
		assert.Equal(t, "acier", view.Suppliers[1].Supplier.ID)
		assert.Equal(t, "bois", view.Suppliers[2].Supplier.ID)
	})
}

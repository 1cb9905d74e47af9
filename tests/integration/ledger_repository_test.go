package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSupplierAndLinkRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewSharedTestDB(t)
	suppliers := persistence.NewGormSupplierRepository(testDB.DB)
	links := persistence.NewGormLinkRepository(testDB.DB)
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("upsert keeps one row per slug", func(t *testing.T) {
		first, err := ledger.NewSupplier("Béton  Atlas", "bg-red-500")
		require.NoError(t, err)
		require.NoError(t, suppliers.Upsert(ctx, first))

		again, err := ledger.NewSupplier("béton atlas", "bg-blue-500")
		require.NoError(t, err)
		require.NoError(t, suppliers.Upsert(ctx, again))

		found, err := suppliers.FindByID(ctx, "béton_atlas")
		require.NoError(t, err)
		assert.Equal(t, "béton atlas", found.Name)
		assert.Equal(t, "bg-blue-500", found.Color)
	})

	t.Run("duplicate link is an already-exists error", func(t *testing.T) {
		link := &ledger.ProjectSupplierLink{ProjectID: projectID, SupplierID: "béton_atlas", CreatedAt: time.Now()}
		require.NoError(t, links.Insert(ctx, link))

		err := links.Insert(ctx, &ledger.ProjectSupplierLink{ProjectID: projectID, SupplierID: "béton_atlas", CreatedAt: time.Now()})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("archive and restore", func(t *testing.T) {
		require.NoError(t, links.Archive(ctx, projectID, "béton_atlas", time.Now()))

		live, err := links.FindByProject(ctx, projectID)
		require.NoError(t, err)
		assert.Empty(t, live)

		archived, err := links.FindArchived(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, archived, 1)
		assert.True(t, archived[0].IsArchived())

		require.NoError(t, links.Restore(ctx, projectID, "béton_atlas"))
		live, err = links.FindByProject(ctx, projectID)
		require.NoError(t, err)
		assert.Len(t, live, 1)
	})

	t.Run("sort orders upsert missing links", func(t *testing.T) {
		s, err := ledger.NewSupplier("Fer Sud", "")
		require.NoError(t, err)
		require.NoError(t, suppliers.Upsert(ctx, s))

		require.NoError(t, links.UpsertSortOrders(ctx, []ledger.ProjectSupplierLink{
			{ProjectID: projectID, SupplierID: "fer_sud", SortOrder: 0, CreatedAt: time.Now()},
			{ProjectID: projectID, SupplierID: "béton_atlas", SortOrder: 1, CreatedAt: time.Now()},
		}))

		live, err := links.FindByProject(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, live, 2)
		orders := map[string]int{}
		for _, l := range live {
			orders[l.SupplierID] = l.SortOrder
		}
		assert.Equal(t, map[string]int{"fer_sud": 0, "béton_atlas": 1}, orders)
	})

	t.Run("soft delete hides supplier from catalog", func(t *testing.T) {
		require.NoError(t, suppliers.SoftDelete(ctx, "fer_sud", time.Now()))

		all, err := suppliers.FindAll(ctx)
		require.NoError(t, err)
		for _, s := range all {
			assert.NotEqual(t, "fer_sud", s.ID)
		}
	})
}

func TestExpenseRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewSharedTestDB(t)
	repo := persistence.NewGormExpenseRepository(testDB.DB)
	ctx := context.Background()
	projectID := uuid.New()

	acier, err := ledger.NewSupplier("Acier", "")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormSupplierRepository(testDB.DB).Upsert(ctx, acier))

	t.Run("expense of an unknown supplier violates the foreign key", func(t *testing.T) {
		orphan, err := ledger.NewExpense(projectID, "ghost_supplier", "BL 1", decimal.NewFromInt(9), day("2024-03-01"), ledger.ExpenseStatusPending)
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, orphan))
	})

	cheap, err := ledger.NewExpense(projectID, "acier", "Rond à béton", decimal.RequireFromString("120.5"), day("2024-03-01"), ledger.ExpenseStatusPaid)
	require.NoError(t, err)
	pricey, err := ledger.NewExpense(projectID, "acier", "Treillis", decimal.RequireFromString("980"), day("2024-02-10"), ledger.ExpenseStatusPending)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, cheap))
	require.NoError(t, repo.Create(ctx, pricey))

	t.Run("items load with their expense", func(t *testing.T) {
		items := []ledger.InvoiceLineItem{{
			BaseEntity:  shared.NewBaseEntity(),
			ProjectID:   projectID,
			ExpenseID:   pricey.ID,
			Designation: "Treillis 6mm",
			Quantity:    decimal.NewFromInt(4),
			UnitPrice:   decimal.NewFromInt(245),
			TotalTTC:    decimal.NewFromInt(980),
		}}
		require.NoError(t, repo.CreateItems(ctx, items))

		found, err := repo.FindByID(ctx, pricey.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Treillis 6mm", found.Items[0].Designation)
		assert.True(t, decimal.NewFromInt(980).Equal(found.Items[0].TotalTTC))
	})

	t.Run("filter and sort", func(t *testing.T) {
		paid, err := repo.FindBySupplier(ctx, projectID, "acier", ledger.ExpenseFilter{Status: ledger.ExpenseStatusPaid})
		require.NoError(t, err)
		require.Len(t, paid, 1)
		assert.Equal(t, cheap.ID, paid[0].ID)

		byPrice, err := repo.FindBySupplier(ctx, projectID, "acier", ledger.ExpenseFilter{SortBy: ledger.SortByPrice, Desc: true})
		require.NoError(t, err)
		require.Len(t, byPrice, 2)
		assert.Equal(t, pricey.ID, byPrice[0].ID)

		byDate, err := repo.FindBySupplier(ctx, projectID, "acier", ledger.ExpenseFilter{SortBy: ledger.SortByDate})
		require.NoError(t, err)
		assert.Equal(t, pricey.ID, byDate[0].ID)
	})

	t.Run("status and invoice image", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, pricey.ID, ledger.ExpenseStatusPaid))
		require.NoError(t, repo.SetInvoiceImage(ctx, pricey.ID, "https://files.example/invoices/a.pdf"))

		found, err := repo.FindByID(ctx, pricey.ID)
		require.NoError(t, err)
		assert.True(t, found.IsPaid())
		require.NotNil(t, found.InvoiceImage)
		assert.Equal(t, "https://files.example/invoices/a.pdf", *found.InvoiceImage)
	})

	t.Run("soft delete by supplier keeps rows", func(t *testing.T) {
		require.NoError(t, repo.SoftDeleteBySupplier(ctx, projectID, "acier", time.Now()))

		listed, err := repo.FindBySupplier(ctx, projectID, "acier", ledger.ExpenseFilter{})
		require.NoError(t, err)
		assert.Empty(t, listed)

		require.NoError(t, repo.RestoreBySupplier(ctx, projectID, "acier"))
		listed, err = repo.FindBySupplier(ctx, projectID, "acier", ledger.ExpenseFilter{})
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})

	t.Run("delete removes items", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, pricey.ID))

		_, err := repo.FindByID(ctx, pricey.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var count int64
		require.NoError(t, testDB.DB.Table(ledger.TableInvoiceItems).Where("expense_id = ?", pricey.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestDocumentAndSettingRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewSharedTestDB(t)
	docs := persistence.NewGormDocumentRepository(testDB.DB)
	settings := persistence.NewGormSettingRepository(testDB.DB)
	ctx := context.Background()
	projectID := uuid.New()

	older := ledger.NewUploadedDocument(projectID, "sable", "https://files.example/documents/1.pdf", "bl-1.pdf")
	older.UploadedAt = time.Now().Add(-time.Hour)
	newer := ledger.NewUploadedDocument(projectID, "sable", "https://files.example/documents/2.pdf", "bl-2.pdf")
	other := ledger.NewUploadedDocument(projectID, "gravier", "https://files.example/documents/3.pdf", "bl-3.pdf")
	for _, d := range []*ledger.UploadedDocument{older, newer, other} {
		require.NoError(t, docs.Create(ctx, d))
	}

	listed, err := docs.FindByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, older.ID, listed[2].ID)

	require.NoError(t, docs.UpdateNote(ctx, newer.ID, "signed copy"))
	found, err := docs.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "signed copy", found.Note)

	removed, err := docs.DeleteBySupplier(ctx, projectID, "sable")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	value, err := settings.Get(ctx, projectID, ledger.GeneralNoteKey)
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, settings.Upsert(ctx, &ledger.ProjectSetting{ProjectID: projectID, Key: ledger.GeneralNoteKey, Value: "first"}))
	require.NoError(t, settings.Upsert(ctx, &ledger.ProjectSetting{ProjectID: projectID, Key: ledger.GeneralNoteKey, Value: "second"}))
	value, err = settings.Get(ctx, projectID, ledger.GeneralNoteKey)
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

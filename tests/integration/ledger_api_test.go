package integration

import (
	"net/http"
	"testing"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/router"
	"github.com/erp/ledger/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newAPI(t *testing.T, app *ledgerApp) *gin.Engine {
	t.Helper()
	engine := router.NewEngine(router.EngineConfig{
		HTTP: config.HTTPConfig{
			MaxBodySize:   1 << 20,
			MaxUploadSize: 10 << 20,
		},
		ServiceName: "ledger-integration",
		Logger:      zaptest.NewLogger(t),
	}, nil)

	r := router.NewRouter(engine)
	for _, g := range router.LedgerRoutes(router.Handlers{
		Ledger:    handler.NewLedgerHandler(app.ledger, app.entries),
		Suppliers: handler.NewSupplierHandler(app.suppliers),
		Entries:   handler.NewEntryHandler(app.entries),
		Documents: handler.NewDocumentHandler(app.documents),
		Invoices:  handler.NewInvoiceHandler(app.invoices),
		Orders:    handler.NewPurchaseOrderHandler(app.orders),
		Articles:  handler.NewArticleHandler(app.articles),
		Changes:   handler.NewChangesHandler(app.bus),
		System:    handler.NewSystemHandler("ledger", "test", nil),
	}) {
		r.Register(g)
	}
	r.Setup()
	return engine
}

func TestLedgerAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewSharedTestDB(t)
	app := newLedgerApp(t, testDB)
	api := newAPI(t, app)
	projectID := uuid.New()
	base := "/api/v1/projects/" + projectID.String()

	supplier := testutil.RequireSuccess[ledgerapp.SupplierResponse](t,
		testutil.DoJSON(t, api, http.MethodPost, base+"/suppliers", map[string]any{"name": "Plâtre Est"}),
		http.StatusCreated)
	assert.Equal(t, "plâtre_est", supplier.ID)

	t.Run("expense entry and reload", func(t *testing.T) {
		expense := testutil.RequireSuccess[ledgerapp.ExpenseResponse](t,
			testutil.DoJSON(t, api, http.MethodPost, base+"/suppliers/"+supplier.ID+"/expenses", map[string]any{
				"item": "Plâtre 25kg", "price": "420.75", "date": "2024-05-06",
			}),
			http.StatusCreated)
		assert.Equal(t, "pending", expense.Status)

		paid := testutil.RequireSuccess[ledgerapp.ExpenseResponse](t,
			testutil.DoJSON(t, api, http.MethodPatch, "/api/v1/expenses/"+expense.ID.String()+"/status", map[string]any{"status": "paid"}),
			http.StatusOK)
		assert.Equal(t, "paid", paid.Status)

		view := testutil.RequireSuccess[ledgerapp.LedgerView](t,
			testutil.DoJSON(t, api, http.MethodGet, base+"/ledger", nil),
			http.StatusOK)
		require.Len(t, view.Suppliers, 1)
		assert.True(t, decimal.RequireFromString("420.75").Equal(view.Suppliers[0].Summary.TotalPaid))
		assert.True(t, decimal.Zero.Equal(view.Summary.TotalRemaining))
	})

	t.Run("deposit must be positive", func(t *testing.T) {
		w := testutil.DoJSON(t, api, http.MethodPost, base+"/suppliers/"+supplier.ID+"/deposits", map[string]any{
			"amount": "0",
		})
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, dto.ErrCodeInvalidAmount)
	})

	t.Run("invoice wizard over HTTP", func(t *testing.T) {
		wizard := testutil.RequireSuccess[ledgerapp.WizardResponse](t,
			testutil.DoJSON(t, api, http.MethodPost, base+"/invoice-wizards", nil),
			http.StatusCreated)
		assert.Equal(t, string(ledger.WizardModeChoice), wizard.State)
		wbase := "/api/v1/invoice-wizards/" + wizard.ID.String()

		testutil.RequireSuccess[ledgerapp.WizardResponse](t,
			testutil.DoJSON(t, api, http.MethodPost, wbase+"/mode", map[string]any{"mode": "manual"}),
			http.StatusOK)
		testutil.RequireSuccess[ledgerapp.WizardResponse](t,
			testutil.DoJSON(t, api, http.MethodPut, wbase+"/header", map[string]any{
				"supplier_id": supplier.ID, "label": "Facture 88", "amount": "100", "date": "2024-05-07",
			}),
			http.StatusOK)
		testutil.RequireSuccess[ledgerapp.WizardResponse](t,
			testutil.DoJSON(t, api, http.MethodPost, wbase+"/advance", nil),
			http.StatusOK)
		items := testutil.RequireSuccess[ledgerapp.WizardResponse](t,
			testutil.DoJSON(t, api, http.MethodPut, wbase+"/items", map[string]any{
				"items": []map[string]any{{"designation": "Enduit", "quantity": "2", "unit_price": "35"}},
			}),
			http.StatusOK)
		assert.True(t, decimal.NewFromInt(70).Equal(items.FinalPrice))

		result := testutil.RequireSuccess[ledgerapp.CommitResult](t,
			testutil.DoJSON(t, api, http.MethodPost, wbase+"/commit", nil),
			http.StatusCreated)
		assert.Equal(t, 1, result.ItemCount)
		assert.Equal(t, []string{ledgerapp.StepInsertExpense, ledgerapp.StepInsertItems}, result.Steps)

		committed := testutil.RequireSuccess[ledgerapp.WizardResponse](t,
			testutil.DoJSON(t, api, http.MethodGet, wbase, nil),
			http.StatusOK)
		assert.Equal(t, string(ledger.WizardCommitted), committed.State)

		w := testutil.DoJSON(t, api, http.MethodPost, wbase+"/commit", nil)
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState)

		require.Equal(t, http.StatusNoContent, testutil.DoJSON(t, api, http.MethodDelete, wbase, nil).Code)
		w = testutil.DoJSON(t, api, http.MethodGet, wbase, nil)
		testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeWizardNotFound)
	})

	t.Run("purchase order delivered over HTTP", func(t *testing.T) {
		order := testutil.RequireSuccess[ledgerapp.PurchaseOrderResponse](t,
			testutil.DoJSON(t, api, http.MethodPost, base+"/orders", map[string]any{
				"supplier_id": supplier.ID, "date": "2024-05-08",
				"items": []map[string]any{{"article_name": "Plâtre 25kg", "quantity": "12", "unit_price": "40"}},
			}),
			http.StatusCreated)
		assert.True(t, decimal.NewFromInt(480).Equal(order.Total))

		delivered := testutil.RequireSuccess[ledgerapp.PurchaseOrderResponse](t,
			testutil.DoJSON(t, api, http.MethodPatch, "/api/v1/orders/"+order.ID.String()+"/status", map[string]any{"status": "delivered"}),
			http.StatusOK)
		require.NotNil(t, delivered.ExpenseID)

		w := testutil.DoJSON(t, api, http.MethodPut, "/api/v1/orders/"+order.ID.String(), map[string]any{"supplier_id": supplier.ID})
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState)

		catalog := testutil.RequireSuccess[ledgerapp.ArticleCatalogResponse](t,
			testutil.DoJSON(t, api, http.MethodGet, "/api/v1/articles?q=25kg", nil),
			http.StatusOK)
		assert.NotEmpty(t, catalog.BySupplier)
	})

	t.Run("global delete needs the typed name", func(t *testing.T) {
		w := testutil.DoJSON(t, api, http.MethodDelete, "/api/v1/suppliers/"+supplier.ID, map[string]any{"confirm_name": "platre est"})
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeConfirmMismatch)

		w = testutil.DoJSON(t, api, http.MethodDelete, "/api/v1/suppliers/"+supplier.ID, map[string]any{"confirm_name": "Plâtre Est"})
		assert.Equal(t, http.StatusNoContent, w.Code)

		var sawGlobal bool
		for _, n := range app.changes.Notices() {
			if n.Table == ledger.TableSuppliers && n.ProjectID == uuid.Nil {
				sawGlobal = true
			}
		}
		assert.True(t, sawGlobal)
	})

	t.Run("deleted supplier restored over HTTP", func(t *testing.T) {
		deleted := testutil.RequireSuccess[[]ledgerapp.SupplierResponse](t,
			testutil.DoJSON(t, api, http.MethodGet, "/api/v1/suppliers/deleted", nil),
			http.StatusOK)
		ids := make([]string, 0, len(deleted))
		for _, d := range deleted {
			ids = append(ids, d.ID)
		}
		assert.Contains(t, ids, supplier.ID)

		restored := testutil.RequireSuccess[ledgerapp.SupplierResponse](t,
			testutil.DoJSON(t, api, http.MethodPost, "/api/v1/suppliers/"+supplier.ID+"/restore", nil),
			http.StatusOK)
		assert.Nil(t, restored.DeletedAt)
	})
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// doJSON sends a request through r and returns the recorder
func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rdr = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			rdr = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// MockLedger implements LedgerLoader and GeneralNoteWriter
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Load(ctx context.Context, projectID uuid.UUID) (*ledgerapp.LedgerView, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.LedgerView), args.Error(1)
}

func (m *MockLedger) SaveGeneralNote(ctx context.Context, projectID uuid.UUID, req ledgerapp.GeneralNoteRequest) error {
	return m.Called(ctx, projectID, req).Error(0)
}

// MockSuppliers implements SupplierUseCases
type MockSuppliers struct {
	mock.Mock
}

func (m *MockSuppliers) AddSupplier(ctx context.Context, projectID uuid.UUID, req ledgerapp.AddSupplierRequest) (*ledgerapp.SupplierResponse, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.SupplierResponse), args.Error(1)
}

func (m *MockSuppliers) Link(ctx context.Context, projectID uuid.UUID, supplierID string) (*ledgerapp.LinkResult, error) {
	args := m.Called(ctx, projectID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.LinkResult), args.Error(1)
}

func (m *MockSuppliers) Archive(ctx context.Context, projectID uuid.UUID, supplierID string) (*ledgerapp.ArchiveResult, error) {
	args := m.Called(ctx, projectID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.ArchiveResult), args.Error(1)
}

func (m *MockSuppliers) Restore(ctx context.Context, projectID uuid.UUID, supplierID string) (*ledgerapp.RestoreResult, error) {
	args := m.Called(ctx, projectID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.RestoreResult), args.Error(1)
}

func (m *MockSuppliers) GlobalDelete(ctx context.Context, supplierID string, req ledgerapp.DeleteSupplierRequest) error {
	return m.Called(ctx, supplierID, req).Error(0)
}

func (m *MockSuppliers) Reorder(ctx context.Context, projectID uuid.UUID, req ledgerapp.ReorderRequest) (*ledgerapp.OrderResponse, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.OrderResponse), args.Error(1)
}

func (m *MockSuppliers) UpdateDetails(ctx context.Context, supplierID string, req ledgerapp.UpdateSupplierRequest) (*ledgerapp.SupplierResponse, error) {
	args := m.Called(ctx, supplierID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.SupplierResponse), args.Error(1)
}

func (m *MockSuppliers) UpdateNotes(ctx context.Context, supplierID string, req ledgerapp.UpdateNotesRequest) (*ledgerapp.SupplierResponse, error) {
	args := m.Called(ctx, supplierID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.SupplierResponse), args.Error(1)
}

func (m *MockSuppliers) ListDeleted(ctx context.Context) ([]ledgerapp.SupplierResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledgerapp.SupplierResponse), args.Error(1)
}

func (m *MockSuppliers) GlobalRestore(ctx context.Context, supplierID string) (*ledgerapp.SupplierResponse, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.SupplierResponse), args.Error(1)
}

// MockEntries implements EntryUseCases
type MockEntries struct {
	mock.Mock
}

func (m *MockEntries) ListExpenses(ctx context.Context, projectID uuid.UUID, supplierID string, query ledgerapp.ExpenseListQuery) ([]ledgerapp.ExpenseResponse, error) {
	args := m.Called(ctx, projectID, supplierID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledgerapp.ExpenseResponse), args.Error(1)
}

func (m *MockEntries) CreateExpense(ctx context.Context, projectID uuid.UUID, supplierID string, req ledgerapp.SaveExpenseRequest) (*ledgerapp.ExpenseResponse, error) {
	args := m.Called(ctx, projectID, supplierID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.ExpenseResponse), args.Error(1)
}

func (m *MockEntries) UpdateExpense(ctx context.Context, expenseID uuid.UUID, req ledgerapp.SaveExpenseRequest) (*ledgerapp.ExpenseResponse, error) {
	args := m.Called(ctx, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.ExpenseResponse), args.Error(1)
}

func (m *MockEntries) SetExpenseStatus(ctx context.Context, expenseID uuid.UUID, req ledgerapp.UpdateStatusRequest) (*ledgerapp.ExpenseResponse, error) {
	args := m.Called(ctx, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.ExpenseResponse), args.Error(1)
}

func (m *MockEntries) DeleteExpense(ctx context.Context, expenseID uuid.UUID) error {
	return m.Called(ctx, expenseID).Error(0)
}

func (m *MockEntries) CreateDeposit(ctx context.Context, projectID uuid.UUID, supplierID string, req ledgerapp.SaveDepositRequest) (*ledgerapp.DepositResponse, error) {
	args := m.Called(ctx, projectID, supplierID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.DepositResponse), args.Error(1)
}

func (m *MockEntries) UpdateDeposit(ctx context.Context, depositID uuid.UUID, req ledgerapp.SaveDepositRequest) (*ledgerapp.DepositResponse, error) {
	args := m.Called(ctx, depositID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.DepositResponse), args.Error(1)
}

func (m *MockEntries) DeleteDeposit(ctx context.Context, depositID uuid.UUID) error {
	return m.Called(ctx, depositID).Error(0)
}

// MockDocuments implements DocumentUseCases
type MockDocuments struct {
	mock.Mock
}

func (m *MockDocuments) Upload(ctx context.Context, projectID uuid.UUID, supplierID string, files []ledgerapp.UploadFile, progress ledgerapp.ProgressFunc) (*ledgerapp.UploadResult, error) {
	args := m.Called(ctx, projectID, supplierID, files, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.UploadResult), args.Error(1)
}

func (m *MockDocuments) LinkToExpense(ctx context.Context, expenseID, documentID uuid.UUID) (*ledgerapp.ExpenseResponse, error) {
	args := m.Called(ctx, expenseID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.ExpenseResponse), args.Error(1)
}

func (m *MockDocuments) LinkToDeposit(ctx context.Context, depositID, documentID uuid.UUID) (*ledgerapp.DepositResponse, error) {
	args := m.Called(ctx, depositID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.DepositResponse), args.Error(1)
}

func (m *MockDocuments) Replace(ctx context.Context, documentID uuid.UUID, file ledgerapp.UploadFile) (*ledgerapp.DocumentResponse, error) {
	args := m.Called(ctx, documentID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.DocumentResponse), args.Error(1)
}

func (m *MockDocuments) UndoReplace(ctx context.Context, projectID uuid.UUID) (*ledgerapp.UndoResult, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.UndoResult), args.Error(1)
}

func (m *MockDocuments) Delete(ctx context.Context, documentID uuid.UUID) error {
	return m.Called(ctx, documentID).Error(0)
}

func (m *MockDocuments) DeleteAll(ctx context.Context, projectID uuid.UUID, supplierID string) (int64, error) {
	args := m.Called(ctx, projectID, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocuments) UpdateNote(ctx context.Context, documentID uuid.UUID, req ledgerapp.UpdateDocumentNoteRequest) (*ledgerapp.DocumentResponse, error) {
	args := m.Called(ctx, documentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.DocumentResponse), args.Error(1)
}

// MockInvoices implements InvoiceUseCases
type MockInvoices struct {
	mock.Mock
}

func (m *MockInvoices) wizard(args mock.Arguments) (*ledgerapp.WizardResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.WizardResponse), args.Error(1)
}

func (m *MockInvoices) Start(ctx context.Context, projectID uuid.UUID) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, projectID))
}

func (m *MockInvoices) Get(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID))
}

func (m *MockInvoices) ChooseMode(ctx context.Context, wizardID uuid.UUID, req ledgerapp.ChooseModeRequest) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID, req))
}

func (m *MockInvoices) SetHeader(ctx context.Context, wizardID uuid.UUID, req ledgerapp.InvoiceHeaderRequest) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID, req))
}

func (m *MockInvoices) Attach(ctx context.Context, wizardID uuid.UUID, file ledgerapp.UploadFile) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID, file))
}

func (m *MockInvoices) Advance(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID))
}

func (m *MockInvoices) Back(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID))
}

func (m *MockInvoices) SetItems(ctx context.Context, wizardID uuid.UUID, req ledgerapp.SetItemsRequest) (*ledgerapp.WizardResponse, error) {
	return m.wizard(m.Called(ctx, wizardID, req))
}

func (m *MockInvoices) Abort(ctx context.Context, wizardID uuid.UUID) error {
	return m.Called(ctx, wizardID).Error(0)
}

func (m *MockInvoices) Commit(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.CommitResult, error) {
	args := m.Called(ctx, wizardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.CommitResult), args.Error(1)
}

func (m *MockInvoices) CreateInvoice(ctx context.Context, projectID uuid.UUID, req ledgerapp.CreateInvoiceRequest, attachment *ledgerapp.UploadFile) (*ledgerapp.CommitResult, error) {
	args := m.Called(ctx, projectID, req, attachment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.CommitResult), args.Error(1)
}

// MockOrders implements PurchaseOrderUseCases
type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) order(args mock.Arguments) (*ledgerapp.PurchaseOrderResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.PurchaseOrderResponse), args.Error(1)
}

func (m *MockOrders) List(ctx context.Context, projectID uuid.UUID) ([]ledgerapp.PurchaseOrderResponse, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledgerapp.PurchaseOrderResponse), args.Error(1)
}

func (m *MockOrders) Create(ctx context.Context, projectID uuid.UUID, req ledgerapp.SavePurchaseOrderRequest) (*ledgerapp.PurchaseOrderResponse, error) {
	return m.order(m.Called(ctx, projectID, req))
}

func (m *MockOrders) Update(ctx context.Context, orderID uuid.UUID, req ledgerapp.SavePurchaseOrderRequest) (*ledgerapp.PurchaseOrderResponse, error) {
	return m.order(m.Called(ctx, orderID, req))
}

func (m *MockOrders) SetStatus(ctx context.Context, orderID uuid.UUID, req ledgerapp.OrderStatusRequest) (*ledgerapp.PurchaseOrderResponse, error) {
	return m.order(m.Called(ctx, orderID, req))
}

func (m *MockOrders) Deliver(ctx context.Context, orderID uuid.UUID) (*ledgerapp.DeliveryResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.DeliveryResult), args.Error(1)
}

func (m *MockOrders) Delete(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

// MockArticles implements ArticleUseCases
type MockArticles struct {
	mock.Mock
}

func (m *MockArticles) Catalog(ctx context.Context, q ledgerapp.ArticleQuery) (*ledgerapp.ArticleCatalogResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerapp.ArticleCatalogResponse), args.Error(1)
}

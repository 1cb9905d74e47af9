package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindAll(ctx context.Context) ([]ledger.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id string) (*ledger.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Upsert(ctx context.Context, supplier *ledger.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *ledger.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockSupplierRepository) FindDeleted(ctx context.Context) ([]ledger.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Restore(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.ProjectSupplierLink, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.ProjectSupplierLink), args.Error(1)
}

func (m *MockLinkRepository) FindArchived(ctx context.Context, projectID uuid.UUID) ([]ledger.ProjectSupplierLink, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.ProjectSupplierLink), args.Error(1)
}

func (m *MockLinkRepository) Insert(ctx context.Context, link *ledger.ProjectSupplierLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockLinkRepository) Archive(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error {
	return m.Called(ctx, projectID, supplierID, at).Error(0)
}

func (m *MockLinkRepository) Restore(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	return m.Called(ctx, projectID, supplierID).Error(0)
}

func (m *MockLinkRepository) UpsertSortOrders(ctx context.Context, links []ledger.ProjectSupplierLink) error {
	return m.Called(ctx, links).Error(0)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.Expense, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAllLive(ctx context.Context) ([]ledger.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, filter ledger.ExpenseFilter) ([]ledger.Expense, error) {
	args := m.Called(ctx, projectID, supplierID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *ledger.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) CreateItems(ctx context.Context, items []ledger.InvoiceLineItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *ledger.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.ExpenseStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockExpenseRepository) SetInvoiceImage(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExpenseRepository) SoftDeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error {
	return m.Called(ctx, projectID, supplierID, at).Error(0)
}

func (m *MockExpenseRepository) RestoreBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	return m.Called(ctx, projectID, supplierID).Error(0)
}

type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.Deposit, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Deposit), args.Error(1)
}

func (m *MockDepositRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Deposit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Deposit), args.Error(1)
}

func (m *MockDepositRepository) Create(ctx context.Context, deposit *ledger.Deposit) error {
	return m.Called(ctx, deposit).Error(0)
}

func (m *MockDepositRepository) Save(ctx context.Context, deposit *ledger.Deposit) error {
	return m.Called(ctx, deposit).Error(0)
}

func (m *MockDepositRepository) SetReceiptImage(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockDepositRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDepositRepository) SoftDeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error {
	return m.Called(ctx, projectID, supplierID, at).Error(0)
}

func (m *MockDepositRepository) RestoreBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	return m.Called(ctx, projectID, supplierID).Error(0)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.UploadedDocument, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.UploadedDocument), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.UploadedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.UploadedDocument), args.Error(1)
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *ledger.UploadedDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) Save(ctx context.Context, doc *ledger.UploadedDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) UpdateNote(ctx context.Context, id uuid.UUID, note string) error {
	return m.Called(ctx, id, note).Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentRepository) DeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) (int64, error) {
	args := m.Called(ctx, projectID, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, projectID uuid.UUID, key string) (string, error) {
	args := m.Called(ctx, projectID, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *ledger.ProjectSetting) error {
	return m.Called(ctx, setting).Error(0)
}

// =============================================================================
// Mock collaborators
// =============================================================================

type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.PurchaseOrder, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Create(ctx context.Context, order *ledger.PurchaseOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *ledger.PurchaseOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockPurchaseOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.PurchaseOrderStatus, expenseID *uuid.UUID) error {
	return m.Called(ctx, id, status, expenseID).Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, buckets []string, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, buckets, key, data, contentType)
	return args.String(0), args.Error(1)
}

type MockUndoStore struct {
	mock.Mock
}

func (m *MockUndoStore) Put(ctx context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	return m.Called(ctx, projectID, r).Error(0)
}

func (m *MockUndoStore) Take(ctx context.Context, projectID uuid.UUID) (*ledger.DocumentReplacement, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DocumentReplacement), args.Error(1)
}

func (m *MockUndoStore) Discard(ctx context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	return m.Called(ctx, projectID, r).Error(0)
}

// recordingPublisher keeps every notice it receives
type recordingPublisher struct {
	mu      sync.Mutex
	notices []ledger.ChangeNotice
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, n ledger.ChangeNotice) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, n)
	return p.err
}

func (p *recordingPublisher) tables() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.notices))
	for _, n := range p.notices {
		out = append(out, n.Table)
	}
	return out
}

// memorySessions is a plain set per project
type memorySessions struct {
	mu   sync.Mutex
	sets map[uuid.UUID]map[string]struct{}
	err  error
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sets: make(map[uuid.UUID]map[string]struct{})}
}

func (s *memorySessions) Add(_ context.Context, projectID uuid.UUID, supplierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sets[projectID] == nil {
		s.sets[projectID] = make(map[string]struct{})
	}
	s.sets[projectID][supplierID] = struct{}{}
	return s.err
}

func (s *memorySessions) Remove(_ context.Context, projectID uuid.UUID, supplierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets[projectID], supplierID)
	return nil
}

func (s *memorySessions) Members(_ context.Context, projectID uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sets[projectID]))
	for id := range s.sets[projectID] {
		out = append(out, id)
	}
	return out, nil
}

func (s *memorySessions) has(projectID uuid.UUID, supplierID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sets[projectID][supplierID]
	return ok
}

// memoryWizards keeps wizards in a map
type memoryWizards struct {
	mu      sync.Mutex
	wizards map[uuid.UUID]*ledger.InvoiceWizard
}

func newMemoryWizards() *memoryWizards {
	return &memoryWizards{wizards: make(map[uuid.UUID]*ledger.InvoiceWizard)}
}

func (s *memoryWizards) Get(_ context.Context, id uuid.UUID) (*ledger.InvoiceWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, ledger.ErrWizardNotFound
	}
	return w, nil
}

func (s *memoryWizards) Save(_ context.Context, w *ledger.InvoiceWizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[w.ID] = w
	return nil
}

func (s *memoryWizards) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, id)
	return nil
}

type testRepos struct {
	suppliers *MockSupplierRepository
	links     *MockLinkRepository
	expenses  *MockExpenseRepository
	deposits  *MockDepositRepository
	documents *MockDocumentRepository
	settings  *MockSettingRepository
	orders    *MockPurchaseOrderRepository
}

func newTestRepos() *testRepos {
	return &testRepos{
		suppliers: new(MockSupplierRepository),
		links:     new(MockLinkRepository),
		expenses:  new(MockExpenseRepository),
		deposits:  new(MockDepositRepository),
		documents: new(MockDocumentRepository),
		settings:  new(MockSettingRepository),
		orders:    new(MockPurchaseOrderRepository),
	}
}

func (r *testRepos) repositories() Repositories {
	return Repositories{
		Suppliers: r.suppliers,
		Links:     r.links,
		Expenses:  r.expenses,
		Deposits:  r.deposits,
		Documents: r.documents,
		Settings:  r.settings,
		Orders:    r.orders,
	}
}

package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Archive saga steps
const (
	StepArchiveLink     = "archive_link"
	StepArchiveExpenses = "archive_expenses"
	StepArchiveDeposits = "archive_deposits"
)

// Restore batch steps
const (
	StepRestoreLink     = "restore_link"
	StepRestoreExpenses = "restore_expenses"
	StepRestoreDeposits = "restore_deposits"
)

// SupplierService manages a supplier's membership in projects and its catalog entry
type SupplierService struct {
	repos    Repositories
	sessions ledger.SessionLinkStore
	orders   *OrderBook
	notifier notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(
	repos Repositories,
	sessions ledger.SessionLinkStore,
	orders *OrderBook,
	publisher ledger.ChangePublisher,
	logger *zap.Logger,
) *SupplierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if orders == nil {
		orders = NewOrderBook()
	}
	return &SupplierService{
		repos:    repos,
		sessions: sessions,
		orders:   orders,
		notifier: notifier{publisher: publisher, logger: logger},
		logger:   logger,
		now:      time.Now,
	}
}

// AddSupplier upserts a catalog supplier by slug and links it to the project
func (s *SupplierService) AddSupplier(ctx context.Context, projectID uuid.UUID, req AddSupplierRequest) (*SupplierResponse, error) {
	supplier, err := ledger.NewSupplier(req.Name, req.Color)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Suppliers.Upsert(ctx, supplier); err != nil {
		return nil, fmt.Errorf("upsert supplier: %w", err)
	}
	if err := s.insertLink(ctx, projectID, supplier.ID); err != nil {
		return nil, fmt.Errorf("link supplier: %w", err)
	}
	s.markSession(ctx, projectID, supplier.ID)

	s.logger.Info("Supplier added to project",
		zap.String("project_id", projectID.String()),
		zap.String("supplier_id", supplier.ID))
	s.notifier.notify(ctx, ledger.TableSuppliers, projectID)
	s.notifier.notify(ctx, ledger.TableProjectSuppliers, projectID)

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Link attaches an existing supplier to a project. It is idempotent: an existing
// link counts as success. A failed write is logged and the supplier is still
// held in the session set so the current session shows it.
func (s *SupplierService) Link(ctx context.Context, projectID uuid.UUID, supplierID string) (*LinkResult, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ledger.ErrSupplierRequired
	}
	result := &LinkResult{ProjectID: projectID, SupplierID: supplierID, Persisted: true}
	if err := s.insertLink(ctx, projectID, supplierID); err != nil {
		s.logger.Warn("Failed to persist project link, keeping session link only",
			zap.String("project_id", projectID.String()),
			zap.String("supplier_id", supplierID),
			zap.Error(err))
		result.Persisted = false
	}
	s.markSession(ctx, projectID, supplierID)
	if result.Persisted {
		s.notifier.notify(ctx, ledger.TableProjectSuppliers, projectID)
	}
	return result, nil
}

// insertLink writes the link and treats a unique violation as success
func (s *SupplierService) insertLink(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	link := &ledger.ProjectSupplierLink{
		ProjectID:  projectID,
		SupplierID: supplierID,
		CreatedAt:  s.now(),
	}
	err := s.repos.Links.Insert(ctx, link)
	if errors.Is(err, shared.ErrAlreadyExists) {
		s.logger.Debug("Project link already exists",
			zap.String("project_id", projectID.String()),
			zap.String("supplier_id", supplierID))
		return nil
	}
	return err
}

func (s *SupplierService) markSession(ctx context.Context, projectID uuid.UUID, supplierID string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Add(ctx, projectID, supplierID); err != nil {
		s.logger.Warn("Failed to record session link",
			zap.String("project_id", projectID.String()),
			zap.String("supplier_id", supplierID),
			zap.Error(err))
	}
}

// Archive removes a supplier from a project: the link, then its expenses, then
// its deposits are soft-deleted in that order. The first failure stops the
// sequence and is returned as a *SagaError; earlier steps stay applied.
func (s *SupplierService) Archive(ctx context.Context, projectID uuid.UUID, supplierID string) (*ArchiveResult, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ledger.ErrSupplierRequired
	}
	at := s.now()
	saga := NewSaga("supplier_archive", s.logger)

	if err := saga.Run(ctx, StepArchiveLink, func(ctx context.Context) error {
		return s.repos.Links.Archive(ctx, projectID, supplierID, at)
	}); err != nil {
		return nil, err
	}
	if err := saga.Run(ctx, StepArchiveExpenses, func(ctx context.Context) error {
		return s.repos.Expenses.SoftDeleteBySupplier(ctx, projectID, supplierID, at)
	}); err != nil {
		s.notifier.notify(ctx, ledger.TableProjectSuppliers, projectID)
		return nil, err
	}
	if err := saga.Run(ctx, StepArchiveDeposits, func(ctx context.Context) error {
		return s.repos.Deposits.SoftDeleteBySupplier(ctx, projectID, supplierID, at)
	}); err != nil {
		s.notifier.notify(ctx, ledger.TableExpenses, projectID)
		return nil, err
	}

	if s.sessions != nil {
		if err := s.sessions.Remove(ctx, projectID, supplierID); err != nil {
			s.logger.Warn("Failed to drop session link", zap.String("supplier_id", supplierID), zap.Error(err))
		}
	}
	s.orders.Remove(projectID, supplierID)

	s.logger.Info("Supplier archived from project",
		zap.String("project_id", projectID.String()),
		zap.String("supplier_id", supplierID))
	s.notifier.notify(ctx, ledger.TableProjectSuppliers, projectID)
	s.notifier.notify(ctx, ledger.TableExpenses, projectID)
	s.notifier.notify(ctx, ledger.TableDeposits, projectID)

	return &ArchiveResult{SupplierID: supplierID, Steps: saga.Completed()}, nil
}

// Restore un-archives the link, expenses and deposits concurrently.
// Each write is independent; failures are logged and reported, never fatal.
func (s *SupplierService) Restore(ctx context.Context, projectID uuid.UUID, supplierID string) (*RestoreResult, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ledger.ErrSupplierRequired
	}
	result := &RestoreResult{SupplierID: supplierID}
	var mu sync.Mutex
	record := func(step string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			s.logger.Error("Restore step failed",
				zap.String("project_id", projectID.String()),
				zap.String("supplier_id", supplierID),
				zap.String("step", step),
				zap.Error(err))
			result.Failures = append(result.Failures, StepFailure{Step: step, Error: err.Error()})
			return
		}
		result.Restored = append(result.Restored, step)
	}

	var g errgroup.Group
	g.Go(func() error {
		record(StepRestoreLink, s.repos.Links.Restore(ctx, projectID, supplierID))
		return nil
	})
	g.Go(func() error {
		record(StepRestoreExpenses, s.repos.Expenses.RestoreBySupplier(ctx, projectID, supplierID))
		return nil
	})
	g.Go(func() error {
		record(StepRestoreDeposits, s.repos.Deposits.RestoreBySupplier(ctx, projectID, supplierID))
		return nil
	})
	_ = g.Wait()

	s.notifier.notify(ctx, ledger.TableProjectSuppliers, projectID)
	s.notifier.notify(ctx, ledger.TableExpenses, projectID)
	s.notifier.notify(ctx, ledger.TableDeposits, projectID)
	return result, nil
}

// GlobalDelete soft-deletes a supplier from the catalog once the caller typed
// its exact name. The supplier disappears from every project.
func (s *SupplierService) GlobalDelete(ctx context.Context, supplierID string, req DeleteSupplierRequest) error {
	supplier, err := s.repos.Suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if err := supplier.ConfirmDeletion(req.ConfirmName); err != nil {
		return err
	}
	if err := s.repos.Suppliers.SoftDelete(ctx, supplierID, s.now()); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	s.logger.Info("Supplier deleted from catalog", zap.String("supplier_id", supplierID))
	s.notifier.notify(ctx, ledger.TableSuppliers, uuid.Nil)
	return nil
}

// ListDeleted returns the suppliers deleted from the catalog
func (s *SupplierService) ListDeleted(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.repos.Suppliers.FindDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deleted suppliers: %w", err)
	}
	out := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, ToSupplierResponse(&suppliers[i]))
	}
	return out, nil
}

// GlobalRestore brings a supplier deleted from the catalog back into every
// project that still links it. Archived project links stay archived.
func (s *SupplierService) GlobalRestore(ctx context.Context, supplierID string) (*SupplierResponse, error) {
	supplier, err := s.repos.Suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.IsDeleted() {
		return nil, ledger.ErrSupplierNotDeleted
	}
	if err := s.repos.Suppliers.Restore(ctx, supplierID); err != nil {
		return nil, fmt.Errorf("restore supplier: %w", err)
	}
	supplier.DeletedAt = nil
	s.logger.Info("Supplier restored to catalog", zap.String("supplier_id", supplierID))
	s.notifier.notify(ctx, ledger.TableSuppliers, uuid.Nil)
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Reorder sets the project's display order. The session order changes
// immediately; the stored order is written afterwards and a failure there is
// only logged, leaving Persisted behind InMemory.
func (s *SupplierService) Reorder(ctx context.Context, projectID uuid.UUID, req ReorderRequest) (*OrderResponse, error) {
	seen := make(map[string]struct{}, len(req.SupplierIDs))
	for _, id := range req.SupplierIDs {
		if _, dup := seen[id]; dup {
			return nil, shared.NewDomainError("INVALID_INPUT", "Supplier order contains duplicates")
		}
		seen[id] = struct{}{}
	}

	s.orders.SetInMemory(projectID, req.SupplierIDs)

	links := make([]ledger.ProjectSupplierLink, len(req.SupplierIDs))
	now := s.now()
	for i, id := range req.SupplierIDs {
		links[i] = ledger.ProjectSupplierLink{
			ProjectID:  projectID,
			SupplierID: id,
			SortOrder:  i,
			CreatedAt:  now,
		}
	}
	if err := s.repos.Links.UpsertSortOrders(ctx, links); err != nil {
		s.logger.Error("Failed to persist supplier order",
			zap.String("project_id", projectID.String()),
			zap.Error(err))
	} else {
		s.orders.MarkPersisted(projectID, req.SupplierIDs)
		s.notifier.notify(ctx, ledger.TableProjectSuppliers, projectID)
	}

	order := s.orders.Get(projectID)
	return &OrderResponse{ProjectID: projectID, InMemory: order.InMemory, Persisted: order.Persisted}, nil
}

// UpdateDetails replaces a supplier's descriptive fields
func (s *SupplierService) UpdateDetails(ctx context.Context, supplierID string, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.repos.Suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	supplier.UpdateDetails(ledger.SupplierDetails{
		Description: req.Description,
		Address:     req.Address,
		TVA:         req.TVA,
		Tel:         req.Tel,
		ClientName:  req.ClientName,
		Color:       req.Color,
	})
	if err := s.repos.Suppliers.Save(ctx, supplier); err != nil {
		return nil, fmt.Errorf("save supplier: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableSuppliers, uuid.Nil)
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// UpdateNotes replaces a supplier's notes
func (s *SupplierService) UpdateNotes(ctx context.Context, supplierID string, req UpdateNotesRequest) (*SupplierResponse, error) {
	supplier, err := s.repos.Suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	supplier.Notes = req.Notes
	if err := s.repos.Suppliers.Save(ctx, supplier); err != nil {
		return nil, fmt.Errorf("save supplier notes: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableSuppliers, uuid.Nil)
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Repositories groups the ledger's record stores
type Repositories struct {
	Suppliers ledger.SupplierRepository
	Links     ledger.LinkRepository
	Expenses  ledger.ExpenseRepository
	Deposits  ledger.DepositRepository
	Documents ledger.DocumentRepository
	Settings  ledger.SettingRepository
	Orders    ledger.PurchaseOrderRepository
}

// WarningLinksUnavailable is reported when the project_suppliers table is missing
const WarningLinksUnavailable = "project supplier links are unavailable; showing suppliers with activity and session links only"

// LedgerService reloads a project's full ledger view
type LedgerService struct {
	repos    Repositories
	sessions ledger.SessionLinkStore
	orders   *OrderBook
	logger   *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repos Repositories, sessions ledger.SessionLinkStore, orders *OrderBook, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		repos:    repos,
		sessions: sessions,
		orders:   orders,
		logger:   logger,
	}
}

type projectSnapshot struct {
	catalog       []ledger.Supplier
	expenses      []ledger.Expense
	deposits      []ledger.Deposit
	links         []ledger.ProjectSupplierLink
	archivedLinks []ledger.ProjectSupplierLink
	documents     []ledger.UploadedDocument
	generalNote   string
	sessionLinked []string
	warnings      []string
}

// Load fetches every collection of a project concurrently and rebuilds the view.
// Nothing is cached between loads.
func (s *LedgerService) Load(ctx context.Context, projectID uuid.UUID) (*LedgerView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", "load", telemetry.WithAttribute(telemetry.SpanAttrProjectID, projectID.String()))
	defer span.End()

	snap, err := s.fetch(ctx, projectID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	view := s.build(projectID, snap)
	telemetry.SetAttributes(span, "visible_suppliers", len(view.Suppliers), "archived_suppliers", len(view.Archived))
	return view, nil
}

func (s *LedgerService) fetch(ctx context.Context, projectID uuid.UUID) (*projectSnapshot, error) {
	snap := &projectSnapshot{}
	var linksWarning, archivedWarning bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		catalog, err := s.repos.Suppliers.FindAll(gctx)
		if err != nil {
			if errors.Is(err, shared.ErrSystemNotProvisioned) {
				return err
			}
			return fmt.Errorf("load suppliers: %w", err)
		}
		snap.catalog = catalog
		return nil
	})
	g.Go(func() error {
		expenses, err := s.repos.Expenses.FindByProject(gctx, projectID)
		if err != nil {
			return fmt.Errorf("load expenses: %w", err)
		}
		snap.expenses = expenses
		return nil
	})
	g.Go(func() error {
		deposits, err := s.repos.Deposits.FindByProject(gctx, projectID)
		if err != nil {
			return fmt.Errorf("load deposits: %w", err)
		}
		snap.deposits = deposits
		return nil
	})
	g.Go(func() error {
		links, err := s.repos.Links.FindByProject(gctx, projectID)
		if errors.Is(err, shared.ErrSystemNotProvisioned) {
			linksWarning = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("load project links: %w", err)
		}
		snap.links = links
		return nil
	})
	g.Go(func() error {
		archived, err := s.repos.Links.FindArchived(gctx, projectID)
		if errors.Is(err, shared.ErrSystemNotProvisioned) {
			archivedWarning = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("load archived links: %w", err)
		}
		snap.archivedLinks = archived
		return nil
	})
	g.Go(func() error {
		docs, err := s.repos.Documents.FindByProject(gctx, projectID)
		if err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		snap.documents = docs
		return nil
	})
	g.Go(func() error {
		note, err := s.repos.Settings.Get(gctx, projectID, ledger.GeneralNoteKey)
		if err != nil {
			return fmt.Errorf("load general note: %w", err)
		}
		snap.generalNote = note
		return nil
	})
	g.Go(func() error {
		if s.sessions == nil {
			return nil
		}
		members, err := s.sessions.Members(gctx, projectID)
		if err != nil {
			s.logger.Warn("Failed to read session-linked suppliers",
				zap.String("project_id", projectID.String()),
				zap.Error(err))
			return nil
		}
		snap.sessionLinked = members
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if linksWarning || archivedWarning {
		s.logger.Warn("project_suppliers relation missing, continuing without links",
			zap.String("project_id", projectID.String()))
		snap.warnings = append(snap.warnings, WarningLinksUnavailable)
	}
	return snap, nil
}

func (s *LedgerService) build(projectID uuid.UUID, snap *projectSnapshot) *LedgerView {
	visible := ledger.VisibleSuppliers(ledger.ProjectRecords{
		Catalog:       snap.catalog,
		Expenses:      snap.expenses,
		Deposits:      snap.deposits,
		Links:         snap.links,
		SessionLinked: snap.sessionLinked,
	})
	var inMemory []string
	if s.orders != nil {
		inMemory = s.orders.Get(projectID).InMemory
	}
	visible = ledger.OrderSuppliers(visible, inMemory, snap.links)

	ids := make([]string, len(visible))
	for i, sup := range visible {
		ids[i] = sup.ID
	}
	rec := ledger.Reconcile(ids, snap.expenses, snap.deposits)

	expensesBy := make(map[string][]ExpenseResponse)
	sorted := append([]ledger.Expense(nil), snap.expenses...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	for i := range sorted {
		e := &sorted[i]
		if e.DeletedAt != nil {
			continue
		}
		expensesBy[e.SupplierID] = append(expensesBy[e.SupplierID], ToExpenseResponse(e))
	}
	depositsBy := make(map[string][]DepositResponse)
	for i := range snap.deposits {
		d := &snap.deposits[i]
		if d.DeletedAt != nil {
			continue
		}
		depositsBy[d.SupplierID] = append(depositsBy[d.SupplierID], ToDepositResponse(d))
	}
	docsBy := make(map[string][]DocumentResponse)
	for i := range snap.documents {
		d := &snap.documents[i]
		docsBy[d.SupplierID] = append(docsBy[d.SupplierID], ToDocumentResponse(d))
	}

	view := &LedgerView{
		ProjectID:   projectID,
		Suppliers:   make([]SupplierLedger, 0, len(visible)),
		Archived:    make([]SupplierResponse, 0),
		Catalog:     make([]SupplierResponse, 0, len(snap.catalog)),
		GeneralNote: snap.generalNote,
		Warnings:    snap.warnings,
		Summary: GlobalSummaryResponse{
			GrandTotal:     rec.Global.GrandTotal,
			TotalPaid:      rec.Global.TotalPaid,
			TotalRemaining: rec.Global.TotalRemaining,
		},
	}
	for i := range visible {
		sup := &visible[i]
		sum := rec.Suppliers[sup.ID]
		view.Suppliers = append(view.Suppliers, SupplierLedger{
			Supplier: ToSupplierResponse(sup),
			Summary: SummaryResponse{
				TotalCost: sum.TotalCost,
				TotalPaid: sum.TotalPaid,
				Remaining: sum.Remaining,
				Mode:      sum.Mode.Name(),
			},
			Expenses:  nonNil(expensesBy[sup.ID]),
			Deposits:  nonNil(depositsBy[sup.ID]),
			Documents: nonNil(docsBy[sup.ID]),
		})
	}

	allLinks := append(append([]ledger.ProjectSupplierLink(nil), snap.links...), snap.archivedLinks...)
	for _, sup := range ledger.ArchivedSuppliers(snap.catalog, allLinks) {
		view.Archived = append(view.Archived, ToSupplierResponse(&sup))
	}
	for i := range snap.catalog {
		view.Catalog = append(view.Catalog, ToSupplierResponse(&snap.catalog[i]))
	}
	return view
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Invoice commit steps
const (
	StepCreateSupplier   = "create_supplier"
	StepUploadAttachment = "upload_attachment"
	StepInsertExpense    = "insert_expense"
	StepInsertItems      = "insert_items"
)

// InvoiceService drives the invoice wizard and commits invoices
type InvoiceService struct {
	repos    Repositories
	storage  ledger.DocumentStorage
	sessions ledger.SessionLinkStore
	wizards  ledger.WizardStore
	notifier notifier
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	repos Repositories,
	storage ledger.DocumentStorage,
	sessions ledger.SessionLinkStore,
	wizards ledger.WizardStore,
	publisher ledger.ChangePublisher,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		repos:    repos,
		storage:  storage,
		sessions: sessions,
		wizards:  wizards,
		notifier: notifier{publisher: publisher, logger: logger},
		logger:   logger,
	}
}

// Start opens a new wizard on the mode choice
func (s *InvoiceService) Start(ctx context.Context, projectID uuid.UUID) (*WizardResponse, error) {
	w := ledger.NewInvoiceWizard(projectID)
	if err := w.Start(); err != nil {
		return nil, err
	}
	return s.save(ctx, w)
}

// Get returns a wizard's current state
func (s *InvoiceService) Get(ctx context.Context, wizardID uuid.UUID) (*WizardResponse, error) {
	w, err := s.wizards.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	resp := ToWizardResponse(w)
	return &resp, nil
}

// ChooseMode selects manual or AI entry
func (s *InvoiceService) ChooseMode(ctx context.Context, wizardID uuid.UUID, req ChooseModeRequest) (*WizardResponse, error) {
	return s.step(ctx, wizardID, func(w *ledger.InvoiceWizard) error {
		return w.ChooseMode(ledger.EntryMode(req.Mode))
	})
}

// SetHeader replaces the header draft
func (s *InvoiceService) SetHeader(ctx context.Context, wizardID uuid.UUID, req InvoiceHeaderRequest) (*WizardResponse, error) {
	header, err := req.toHeader()
	if err != nil {
		return nil, err
	}
	return s.step(ctx, wizardID, func(w *ledger.InvoiceWizard) error {
		return w.SetHeader(header)
	})
}

// Attach stores a file to be uploaded on commit
func (s *InvoiceService) Attach(ctx context.Context, wizardID uuid.UUID, file UploadFile) (*WizardResponse, error) {
	return s.step(ctx, wizardID, func(w *ledger.InvoiceWizard) error {
		return w.Attach(ledger.Attachment{
			FileName:    CleanFileName(file.Name),
			ContentType: file.ContentType,
			Data:        file.Data,
		})
	})
}

// Advance moves from header entry to line items
func (s *InvoiceService) Advance(ctx context.Context, wizardID uuid.UUID) (*WizardResponse, error) {
	return s.step(ctx, wizardID, func(w *ledger.InvoiceWizard) error {
		return w.Advance()
	})
}

// Back returns from line items to header entry
func (s *InvoiceService) Back(ctx context.Context, wizardID uuid.UUID) (*WizardResponse, error) {
	return s.step(ctx, wizardID, func(w *ledger.InvoiceWizard) error {
		return w.Back()
	})
}

// SetItems replaces the line item drafts
func (s *InvoiceService) SetItems(ctx context.Context, wizardID uuid.UUID, req SetItemsRequest) (*WizardResponse, error) {
	items := toLineItemDrafts(req.Items)
	return s.step(ctx, wizardID, func(w *ledger.InvoiceWizard) error {
		return w.SetItems(items)
	})
}

// Abort discards a wizard
func (s *InvoiceService) Abort(ctx context.Context, wizardID uuid.UUID) error {
	w, err := s.wizards.Get(ctx, wizardID)
	if err != nil {
		return err
	}
	w.Abort()
	return s.wizards.Delete(ctx, w.ID)
}

// Commit writes the wizard's invoice and moves it to Committed
func (s *InvoiceService) Commit(ctx context.Context, wizardID uuid.UUID) (*CommitResult, error) {
	w, err := s.wizards.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	result, err := s.commit(ctx, w)
	if err != nil {
		return nil, err
	}
	if err := w.MarkCommitted(); err != nil {
		return nil, err
	}
	if err := s.wizards.Save(ctx, w); err != nil {
		s.logger.Warn("Failed to store committed wizard", zap.String("wizard_id", w.ID.String()), zap.Error(err))
	}
	return result, nil
}

// CreateInvoice runs the whole wizard for one request: manual mode, header,
// line items, commit
func (s *InvoiceService) CreateInvoice(ctx context.Context, projectID uuid.UUID, req CreateInvoiceRequest, attachment *UploadFile) (*CommitResult, error) {
	header, err := req.Header.toHeader()
	if err != nil {
		return nil, err
	}
	w := ledger.NewInvoiceWizard(projectID)
	steps := []func() error{
		w.Start,
		func() error { return w.ChooseMode(ledger.EntryModeManual) },
		func() error { return w.SetHeader(header) },
		func() error {
			if attachment == nil {
				return nil
			}
			return w.Attach(ledger.Attachment{
				FileName:    CleanFileName(attachment.Name),
				ContentType: attachment.ContentType,
				Data:        attachment.Data,
			})
		},
		w.Advance,
		func() error { return w.SetItems(toLineItemDrafts(req.Items)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	result, err := s.commit(ctx, w)
	if err != nil {
		return nil, err
	}
	if err := w.MarkCommitted(); err != nil {
		return nil, err
	}
	return result, nil
}

// commit runs the invoice saga. Steps run strictly in order and nothing is
// compensated: a failure after the expense insert leaves the expense in place.
func (s *InvoiceService) commit(ctx context.Context, w *ledger.InvoiceWizard) (*CommitResult, error) {
	if err := w.CanCommit(); err != nil {
		return nil, err
	}
	choice := w.Header.Supplier
	supplierID := choice.SupplierID()

	expense, err := ledger.NewExpense(w.ProjectID, supplierID, w.Header.Label, w.FinalPrice(), w.Header.Date, w.Header.Status)
	if err != nil {
		return nil, err
	}
	expense.SetQuantity(w.Header.Quantity)
	expense.ExpenseHeader = w.Header.Details

	drafts := w.CommittableItems()
	items := make([]ledger.InvoiceLineItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, ledger.InvoiceLineItem{
			BaseEntity:  shared.NewBaseEntity(),
			ProjectID:   w.ProjectID,
			ExpenseID:   expense.ID,
			Designation: strings.TrimSpace(d.Designation),
			Quantity:    d.Quantity,
			Unit:        d.Unit,
			UnitPrice:   d.UnitPrice,
			UnitPriceHT: decimal.Zero,
			Remise:      decimal.Zero,
			TVA:         decimal.Zero,
			TotalTTC:    d.Total(),
		})
	}

	if !choice.IsDraft() {
		if err := requireCatalogSupplier(ctx, s.repos.Suppliers, supplierID); err != nil {
			return nil, err
		}
	}

	saga := NewSaga("invoice_commit", s.logger)
	result := &CommitResult{SupplierID: supplierID}

	if choice.IsDraft() {
		supplier, err := ledger.NewSupplier(choice.Draft.Name, choice.Draft.Color)
		if err != nil {
			return nil, err
		}
		if err := saga.Run(ctx, StepCreateSupplier, func(ctx context.Context) error {
			if err := s.repos.Suppliers.Upsert(ctx, supplier); err != nil {
				return fmt.Errorf("upsert supplier: %w", err)
			}
			link := &ledger.ProjectSupplierLink{ProjectID: w.ProjectID, SupplierID: supplier.ID, CreatedAt: supplier.CreatedAt}
			if err := s.repos.Links.Insert(ctx, link); err != nil && !errors.Is(err, shared.ErrAlreadyExists) {
				return fmt.Errorf("link supplier: %w", err)
			}
			if s.sessions != nil {
				if err := s.sessions.Add(ctx, w.ProjectID, supplier.ID); err != nil {
					s.logger.Warn("Failed to record session link", zap.String("supplier_id", supplier.ID), zap.Error(err))
				}
			}
			return nil
		}); err != nil {
			return nil, err
		}
		result.CreatedSupplier = true
		s.notifier.notify(ctx, ledger.TableSuppliers, w.ProjectID)
	}

	if a := w.Attachment; a != nil && s.storage != nil {
		saga.Try(ctx, StepUploadAttachment, func(ctx context.Context) error {
			url, err := s.storage.Upload(ctx, []string{ledger.BucketDocuments}, InvoiceObjectKey(a.FileName), a.Data, a.ContentType)
			if err != nil {
				return err
			}
			expense.LinkDocument(url)
			return nil
		})
	}

	if err := saga.Run(ctx, StepInsertExpense, func(ctx context.Context) error {
		return s.repos.Expenses.Create(ctx, expense)
	}); err != nil {
		return nil, err
	}
	s.notifier.notify(ctx, ledger.TableExpenses, w.ProjectID)

	if err := saga.Run(ctx, StepInsertItems, func(ctx context.Context) error {
		if len(items) == 0 {
			return nil
		}
		return s.repos.Expenses.CreateItems(ctx, items)
	}); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		s.notifier.notify(ctx, ledger.TableInvoiceItems, w.ProjectID)
	}

	result.ExpenseID = expense.ID
	result.Price = expense.Price
	result.ItemCount = len(items)
	result.InvoiceImage = expense.InvoiceImage
	result.Steps = saga.Completed()
	result.Skipped = saga.Skipped()

	s.logger.Info("Invoice committed",
		zap.String("project_id", w.ProjectID.String()),
		zap.String("supplier_id", supplierID),
		zap.String("expense_id", expense.ID.String()),
		zap.Int("items", len(items)),
		zap.Strings("skipped", result.Skipped))
	return result, nil
}

func (s *InvoiceService) step(ctx context.Context, wizardID uuid.UUID, fn func(w *ledger.InvoiceWizard) error) (*WizardResponse, error) {
	w, err := s.wizards.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	return s.save(ctx, w)
}

func (s *InvoiceService) save(ctx context.Context, w *ledger.InvoiceWizard) (*WizardResponse, error) {
	if err := s.wizards.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("store wizard: %w", err)
	}
	resp := ToWizardResponse(w)
	return &resp, nil
}

func (r InvoiceHeaderRequest) toHeader() (ledger.InvoiceHeader, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ledger.InvoiceHeader{}, err
	}
	status, err := ledger.ParseExpenseStatus(r.Status)
	if err != nil {
		return ledger.InvoiceHeader{}, err
	}
	amount := decimal.Zero
	if r.Amount != nil {
		amount = *r.Amount
	}
	choice := ledger.SupplierChoice{ExistingID: strings.TrimSpace(r.SupplierID)}
	if choice.ExistingID == "" && strings.TrimSpace(r.NewSupplierName) != "" {
		choice.Draft = &ledger.SupplierDraft{
			Name:  strings.TrimSpace(r.NewSupplierName),
			Color: r.NewSupplierColor,
		}
	}
	return ledger.InvoiceHeader{
		Supplier: choice,
		Label:    strings.TrimSpace(r.Label),
		Amount:   amount,
		Date:     date,
		Status:   status,
		Quantity: r.Quantity,
		Details:  r.Details,
	}, nil
}

func toLineItemDrafts(reqs []LineItemRequest) []ledger.LineItemDraft {
	items := make([]ledger.LineItemDraft, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, ledger.LineItemDraft{
			Designation: r.Designation,
			Quantity:    r.Quantity,
			Unit:        r.Unit,
			UnitPrice:   r.UnitPrice,
		})
	}
	return items
}

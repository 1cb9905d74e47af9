package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntryService edits individual expenses, deposits and project notes
type EntryService struct {
	repos    Repositories
	notifier notifier
	logger   *zap.Logger
}

// NewEntryService creates a new EntryService
func NewEntryService(repos Repositories, publisher ledger.ChangePublisher, logger *zap.Logger) *EntryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryService{
		repos:    repos,
		notifier: notifier{publisher: publisher, logger: logger},
		logger:   logger,
	}
}

// ListExpenses returns a supplier's expenses in a project, filtered and sorted
func (s *EntryService) ListExpenses(ctx context.Context, projectID uuid.UUID, supplierID string, query ExpenseListQuery) ([]ExpenseResponse, error) {
	expenses, err := s.repos.Expenses.FindBySupplier(ctx, projectID, supplierID, query.ToFilter())
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, ToExpenseResponse(&expenses[i]))
	}
	return out, nil
}

// CreateExpense records a single-line expense
func (s *EntryService) CreateExpense(ctx context.Context, projectID uuid.UUID, supplierID string, req SaveExpenseRequest) (*ExpenseResponse, error) {
	if req.Price == nil {
		return nil, ledger.ErrInvalidAmount
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	status, err := ledger.ParseExpenseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	expense, err := ledger.NewExpense(projectID, supplierID, req.Item, *req.Price, date, status)
	if err != nil {
		return nil, err
	}
	expense.SetQuantity(req.Quantity)
	if err := requireCatalogSupplier(ctx, s.repos.Suppliers, supplierID); err != nil {
		return nil, err
	}
	if err := s.repos.Expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableExpenses, projectID)
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// UpdateExpense replaces an expense's label, price, date, status and quantity
func (s *EntryService) UpdateExpense(ctx context.Context, expenseID uuid.UUID, req SaveExpenseRequest) (*ExpenseResponse, error) {
	if req.Price == nil {
		return nil, ledger.ErrInvalidAmount
	}
	if strings.TrimSpace(req.Item) == "" {
		return nil, ledger.ErrLabelRequired
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	status, err := ledger.ParseExpenseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	expense, err := s.repos.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	expense.Item = strings.TrimSpace(req.Item)
	expense.Price = ledger.RoundMoney(*req.Price)
	if !date.IsZero() {
		expense.Date = date
	}
	if err := expense.SetStatus(status); err != nil {
		return nil, err
	}
	expense.SetQuantity(req.Quantity)
	if err := s.repos.Expenses.Save(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableExpenses, expense.ProjectID)
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// SetExpenseStatus marks an expense paid or pending
func (s *EntryService) SetExpenseStatus(ctx context.Context, expenseID uuid.UUID, req UpdateStatusRequest) (*ExpenseResponse, error) {
	status, err := ledger.ParseExpenseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	expense, err := s.repos.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := expense.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.repos.Expenses.UpdateStatus(ctx, expenseID, status); err != nil {
		return nil, fmt.Errorf("update expense status: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableExpenses, expense.ProjectID)
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// DeleteExpense removes an expense and its line items
func (s *EntryService) DeleteExpense(ctx context.Context, expenseID uuid.UUID) error {
	expense, err := s.repos.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if err := s.repos.Expenses.Delete(ctx, expenseID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableExpenses, expense.ProjectID)
	return nil
}

// CreateDeposit records an advance payment
func (s *EntryService) CreateDeposit(ctx context.Context, projectID uuid.UUID, supplierID string, req SaveDepositRequest) (*DepositResponse, error) {
	if req.Amount == nil {
		return nil, ledger.ErrInvalidAmount
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	deposit, err := ledger.NewDeposit(projectID, supplierID, *req.Amount, date, req.details())
	if err != nil {
		return nil, err
	}
	if err := requireCatalogSupplier(ctx, s.repos.Suppliers, supplierID); err != nil {
		return nil, err
	}
	if err := s.repos.Deposits.Create(ctx, deposit); err != nil {
		return nil, fmt.Errorf("create deposit: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableDeposits, projectID)
	resp := ToDepositResponse(deposit)
	return &resp, nil
}

// UpdateDeposit replaces a deposit's amount, date and details
func (s *EntryService) UpdateDeposit(ctx context.Context, depositID uuid.UUID, req SaveDepositRequest) (*DepositResponse, error) {
	if req.Amount == nil {
		return nil, ledger.ErrInvalidAmount
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	deposit, err := s.repos.Deposits.FindByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if err := deposit.Update(*req.Amount, date, req.details()); err != nil {
		return nil, err
	}
	if err := s.repos.Deposits.Save(ctx, deposit); err != nil {
		return nil, fmt.Errorf("update deposit: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableDeposits, deposit.ProjectID)
	resp := ToDepositResponse(deposit)
	return &resp, nil
}

// DeleteDeposit removes a deposit
func (s *EntryService) DeleteDeposit(ctx context.Context, depositID uuid.UUID) error {
	deposit, err := s.repos.Deposits.FindByID(ctx, depositID)
	if err != nil {
		return err
	}
	if err := s.repos.Deposits.Delete(ctx, depositID); err != nil {
		return fmt.Errorf("delete deposit: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableDeposits, deposit.ProjectID)
	return nil
}

// SaveGeneralNote upserts the project's general note
func (s *EntryService) SaveGeneralNote(ctx context.Context, projectID uuid.UUID, req GeneralNoteRequest) error {
	setting := &ledger.ProjectSetting{
		ProjectID: projectID,
		Key:       ledger.GeneralNoteKey,
		Value:     req.Note,
		UpdatedAt: time.Now(),
	}
	if err := s.repos.Settings.Upsert(ctx, setting); err != nil {
		return fmt.Errorf("save general note: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableProjectSettings, projectID)
	return nil
}

func (r SaveDepositRequest) details() ledger.DepositDetails {
	return ledger.DepositDetails{
		Ref:        strings.TrimSpace(r.Ref),
		Payer:      strings.TrimSpace(r.Payer),
		Commercial: strings.TrimSpace(r.Commercial),
	}
}

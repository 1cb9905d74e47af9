package persistence

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ledger.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindByProject returns live expenses with items
func (r *GormExpenseRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.Expense, error) {
	var expenses []ledger.Expense
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("project_id = ? AND deleted_at IS NULL", projectID).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, translateError(err)
	}
	return expenses, nil
}

// FindAllLive returns live expenses of every project with items
func (r *GormExpenseRepository) FindAllLive(ctx context.Context) ([]ledger.Expense, error) {
	var expenses []ledger.Expense
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("deleted_at IS NULL").
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, translateError(err)
	}
	return expenses, nil
}

// FindBySupplier lists a supplier's live expenses
func (r *GormExpenseRepository) FindBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, filter ledger.ExpenseFilter) ([]ledger.Expense, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("project_id = ? AND supplier_id = ? AND deleted_at IS NULL", projectID, supplierID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var expenses []ledger.Expense
	if err := query.Order(expenseOrder(filter)).Find(&expenses).Error; err != nil {
		return nil, translateError(err)
	}
	return expenses, nil
}

// FindByID finds an expense with items
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	var expense ledger.Expense
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		First(&expense, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &expense, nil
}

// Create inserts the expense row; items are written by CreateItems
func (r *GormExpenseRepository) Create(ctx context.Context, expense *ledger.Expense) error {
	return translateError(r.db.WithContext(ctx).Omit("Items").Create(expense).Error)
}

// CreateItems inserts line items in one statement
func (r *GormExpenseRepository) CreateItems(ctx context.Context, items []ledger.InvoiceLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Create(&items).Error)
}

// Save updates the expense row
func (r *GormExpenseRepository) Save(ctx context.Context, expense *ledger.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"item":     expense.Item,
			"price":    expense.Price,
			"date":     expense.Date,
			"status":   expense.Status,
			"quantity": expense.Quantity,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateStatus sets the payment status
func (r *GormExpenseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.ExpenseStatus) error {
	return r.updateColumn(ctx, id, "status", status)
}

// SetInvoiceImage points the expense at a document URL
func (r *GormExpenseRepository) SetInvoiceImage(ctx context.Context, id uuid.UUID, url string) error {
	return r.updateColumn(ctx, id, "invoice_image", url)
}

func (r *GormExpenseRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the expense and its items in one transaction
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expense_id = ?", id).Delete(&ledger.InvoiceLineItem{}).Error; err != nil {
			return translateError(err)
		}
		result := tx.Where("id = ?", id).Delete(&ledger.Expense{})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// SoftDeleteBySupplier marks a supplier's live expenses deleted
func (r *GormExpenseRepository) SoftDeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Where("project_id = ? AND supplier_id = ? AND deleted_at IS NULL", projectID, supplierID).
		Update("deleted_at", at).Error
	return translateError(err)
}

// RestoreBySupplier clears the deletion mark on a supplier's expenses
func (r *GormExpenseRepository) RestoreBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	err := r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Where("project_id = ? AND supplier_id = ? AND deleted_at IS NOT NULL", projectID, supplierID).
		Update("deleted_at", nil).Error
	return translateError(err)
}

package persistence

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDepositRepository implements ledger.DepositRepository using GORM
type GormDepositRepository struct {
	db *gorm.DB
}

// NewGormDepositRepository creates a new GormDepositRepository
func NewGormDepositRepository(db *gorm.DB) *GormDepositRepository {
	return &GormDepositRepository{db: db}
}

// FindByProject returns live deposits, newest first
func (r *GormDepositRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.Deposit, error) {
	var deposits []ledger.Deposit
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND deleted_at IS NULL", projectID).
		Order("date DESC, created_at DESC").
		Find(&deposits).Error; err != nil {
		return nil, translateError(err)
	}
	return deposits, nil
}

// FindByID finds a deposit
func (r *GormDepositRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Deposit, error) {
	var deposit ledger.Deposit
	if err := r.db.WithContext(ctx).First(&deposit, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &deposit, nil
}

// Create inserts a deposit
func (r *GormDepositRepository) Create(ctx context.Context, deposit *ledger.Deposit) error {
	return translateError(r.db.WithContext(ctx).Create(deposit).Error)
}

// Save updates amount, date and details
func (r *GormDepositRepository) Save(ctx context.Context, deposit *ledger.Deposit) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Deposit{}).
		Where("id = ?", deposit.ID).
		Updates(map[string]any{
			"amount":     deposit.Amount,
			"date":       deposit.Date,
			"ref":        deposit.Ref,
			"payer":      deposit.Payer,
			"commercial": deposit.Commercial,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetReceiptImage points the deposit at a document URL
func (r *GormDepositRepository) SetReceiptImage(ctx context.Context, id uuid.UUID, url string) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Deposit{}).
		Where("id = ?", id).
		Update("receipt_image", url)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a deposit
func (r *GormDepositRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ledger.Deposit{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SoftDeleteBySupplier marks a supplier's live deposits deleted
func (r *GormDepositRepository) SoftDeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&ledger.Deposit{}).
		Where("project_id = ? AND supplier_id = ? AND deleted_at IS NULL", projectID, supplierID).
		Update("deleted_at", at).Error
	return translateError(err)
}

// RestoreBySupplier clears the deletion mark on a supplier's deposits
func (r *GormDepositRepository) RestoreBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	err := r.db.WithContext(ctx).
		Model(&ledger.Deposit{}).
		Where("project_id = ? AND supplier_id = ? AND deleted_at IS NOT NULL", projectID, supplierID).
		Update("deleted_at", nil).Error
	return translateError(err)
}

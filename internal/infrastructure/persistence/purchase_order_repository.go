package persistence

import (
	"context"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements ledger.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByProject returns the project's orders with items, newest first
func (r *GormPurchaseOrderRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.PurchaseOrder, error) {
	var orders []ledger.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, translateError(err)
	}
	return orders, nil
}

// FindByID finds an order with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.PurchaseOrder, error) {
	var order ledger.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		First(&order, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

// Create inserts the order and its items in one transaction
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, order *ledger.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return translateError(err)
		}
		if len(order.Items) == 0 {
			return nil
		}
		return translateError(tx.Create(&order.Items).Error)
	})
}

// Save updates the order row and swaps its items for the current ones
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *ledger.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ledger.PurchaseOrder{}).
			Where("id = ?", order.ID).
			Updates(map[string]any{
				"supplier_id": order.SupplierID,
				"date":        order.Date,
				"notes":       order.Notes,
			})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&ledger.PurchaseOrderItem{}).Error; err != nil {
			return translateError(err)
		}
		if len(order.Items) == 0 {
			return nil
		}
		return translateError(tx.Create(&order.Items).Error)
	})
}

// UpdateStatus sets the status and the booked expense
func (r *GormPurchaseOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.PurchaseOrderStatus, expenseID *uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.PurchaseOrder{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"expense_id": expenseID,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the order and its items in one transaction
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ledger.PurchaseOrderItem{}).Error; err != nil {
			return translateError(err)
		}
		result := tx.Where("id = ?", id).Delete(&ledger.PurchaseOrder{})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ ledger.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)

package persistence

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSupplierRepository implements ledger.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindAll returns the live catalog ordered by name
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]ledger.Supplier, error) {
	var suppliers []ledger.Supplier
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&suppliers).Error; err != nil {
		return nil, translateError(err)
	}
	return suppliers, nil
}

// FindByID finds a supplier by its slug, deleted or not
func (r *GormSupplierRepository) FindByID(ctx context.Context, id string) (*ledger.Supplier, error) {
	var supplier ledger.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &supplier, nil
}

// Upsert inserts the supplier; an existing row gets the new name and color
// and is revived if it had been deleted
func (r *GormSupplierRepository) Upsert(ctx context.Context, supplier *ledger.Supplier) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       supplier.Name,
				"color":      supplier.Color,
				"deleted_at": nil,
			}),
		}).
		Create(supplier).Error
	return translateError(err)
}

// Save updates descriptive fields and notes
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *ledger.Supplier) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Supplier{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]any{
			"name":        supplier.Name,
			"color":       supplier.Color,
			"description": supplier.Description,
			"address":     supplier.Address,
			"tva":         supplier.TVA,
			"tel":         supplier.Tel,
			"client_name": supplier.ClientName,
			"notes":       supplier.Notes,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SoftDelete marks the supplier deleted everywhere
func (r *GormSupplierRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Supplier{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindDeleted returns the globally deleted suppliers ordered by name
func (r *GormSupplierRepository) FindDeleted(ctx context.Context) ([]ledger.Supplier, error) {
	var suppliers []ledger.Supplier
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL").
		Order("name ASC").
		Find(&suppliers).Error; err != nil {
		return nil, translateError(err)
	}
	return suppliers, nil
}

// Restore clears the deletion mark of a deleted supplier
func (r *GormSupplierRepository) Restore(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Supplier{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

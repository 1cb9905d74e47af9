package persistence

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLinkRepository implements ledger.LinkRepository using GORM
type GormLinkRepository struct {
	db *gorm.DB
}

// NewGormLinkRepository creates a new GormLinkRepository
func NewGormLinkRepository(db *gorm.DB) *GormLinkRepository {
	return &GormLinkRepository{db: db}
}

var linkConflict = []clause.Column{{Name: "project_id"}, {Name: "supplier_id"}}

// FindByProject returns live links ordered by sort_order
func (r *GormLinkRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.ProjectSupplierLink, error) {
	var links []ledger.ProjectSupplierLink
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND deleted_at IS NULL", projectID).
		Order("sort_order ASC").
		Find(&links).Error; err != nil {
		return nil, translateError(err)
	}
	return links, nil
}

// FindArchived returns soft-deleted links
func (r *GormLinkRepository) FindArchived(ctx context.Context, projectID uuid.UUID) ([]ledger.ProjectSupplierLink, error) {
	var links []ledger.ProjectSupplierLink
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND deleted_at IS NOT NULL", projectID).
		Order("deleted_at DESC").
		Find(&links).Error; err != nil {
		return nil, translateError(err)
	}
	return links, nil
}

// Insert creates a link. An existing row, archived or not, yields ErrAlreadyExists.
func (r *GormLinkRepository) Insert(ctx context.Context, link *ledger.ProjectSupplierLink) error {
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}
	return translateError(r.db.WithContext(ctx).Create(link).Error)
}

// Archive soft-deletes the link, creating an archived row when the supplier
// was only visible through activity
func (r *GormLinkRepository) Archive(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error {
	link := &ledger.ProjectSupplierLink{
		ProjectID:  projectID,
		SupplierID: supplierID,
		CreatedAt:  at,
		DeletedAt:  &at,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   linkConflict,
			DoUpdates: clause.Assignments(map[string]any{"deleted_at": at}),
		}).
		Create(link).Error
	return translateError(err)
}

// Restore clears the deletion mark
func (r *GormLinkRepository) Restore(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	err := r.db.WithContext(ctx).
		Model(&ledger.ProjectSupplierLink{}).
		Where("project_id = ? AND supplier_id = ?", projectID, supplierID).
		Update("deleted_at", nil).Error
	return translateError(err)
}

// UpsertSortOrders writes sort_order for each (project, supplier) pair,
// inserting links that do not exist yet
func (r *GormLinkRepository) UpsertSortOrders(ctx context.Context, links []ledger.ProjectSupplierLink) error {
	if len(links) == 0 {
		return nil
	}
	now := time.Now()
	for i := range links {
		if links[i].CreatedAt.IsZero() {
			links[i].CreatedAt = now
		}
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   linkConflict,
			DoUpdates: clause.AssignmentColumns([]string{"sort_order"}),
		}).
		Create(&links).Error
	return translateError(err)
}

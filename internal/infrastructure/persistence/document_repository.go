package persistence

import (
	"context"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements ledger.DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByProject returns the project's documents, newest first
func (r *GormDocumentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]ledger.UploadedDocument, error) {
	var docs []ledger.UploadedDocument
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("uploaded_at DESC").
		Find(&docs).Error; err != nil {
		return nil, translateError(err)
	}
	return docs, nil
}

// FindByID finds a document
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.UploadedDocument, error) {
	var doc ledger.UploadedDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &doc, nil
}

// Create inserts a document record
func (r *GormDocumentRepository) Create(ctx context.Context, doc *ledger.UploadedDocument) error {
	return translateError(r.db.WithContext(ctx).Create(doc).Error)
}

// Save overwrites URL, name and upload time
func (r *GormDocumentRepository) Save(ctx context.Context, doc *ledger.UploadedDocument) error {
	return r.update(ctx, doc.ID, map[string]any{
		"file_url":    doc.FileURL,
		"file_name":   doc.FileName,
		"uploaded_at": doc.UploadedAt,
	})
}

// UpdateNote sets the document note
func (r *GormDocumentRepository) UpdateNote(ctx context.Context, id uuid.UUID, note string) error {
	return r.update(ctx, id, map[string]any{"note": note})
}

func (r *GormDocumentRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.UploadedDocument{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a document record; the stored object is left in place
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ledger.UploadedDocument{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBySupplier removes every document of a supplier in a project
func (r *GormDocumentRepository) DeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND supplier_id = ?", projectID, supplierID).
		Delete(&ledger.UploadedDocument{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

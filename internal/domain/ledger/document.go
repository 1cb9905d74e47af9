package ledger

import (
	"time"

	"github.com/google/uuid"
)

// UploadedDocument is a file in a supplier's per-project document pool.
// Linking copies FileURL onto an expense or deposit; the document stays in the pool.
type UploadedDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_project_supplier,priority:1"`
	SupplierID string    `gorm:"type:varchar(200);not null;index:idx_documents_project_supplier,priority:2"`
	FileURL    string    `gorm:"type:text;not null"`
	FileName   string    `gorm:"type:varchar(500);not null"`
	Note       string    `gorm:"type:text"`
	UploadedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UploadedDocument) TableName() string {
	return "uploaded_documents"
}

// NewUploadedDocument creates a pool entry for a stored file
func NewUploadedDocument(projectID uuid.UUID, supplierID, url, name string) *UploadedDocument {
	return &UploadedDocument{
		ID:         uuid.New(),
		ProjectID:  projectID,
		SupplierID: supplierID,
		FileURL:    url,
		FileName:   name,
		UploadedAt: time.Now(),
	}
}

// DocumentReplacement is what a replace overwrote, kept so it can be undone
type DocumentReplacement struct {
	DocumentID     uuid.UUID `json:"document_id"`
	PrevURL        string    `json:"prev_url"`
	PrevName       string    `json:"prev_name"`
	PrevUploadedAt time.Time `json:"prev_uploaded_at"`
	ReplacedAt     time.Time `json:"replaced_at"`
}

// Same reports whether r and other describe the same replace
func (r DocumentReplacement) Same(other DocumentReplacement) bool {
	return r.DocumentID == other.DocumentID && r.ReplacedAt.Equal(other.ReplacedAt)
}

// GeneralNoteKey is the project_settings key holding the project's free-text note
const GeneralNoteKey = "general_note"

// ProjectSetting is a per-project key/value pair
type ProjectSetting struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ProjectSetting) TableName() string {
	return "project_settings"
}

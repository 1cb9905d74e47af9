package ledger

import (
	"regexp"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultSupplierColor is the badge color given to suppliers created without one
const DefaultSupplierColor = "bg-slate-500"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Supplier is an entry of the cross-project supplier catalog.
// Its ID is a slug derived from the name, so two projects naming the same
// supplier share one row.
type Supplier struct {
	ID          string     `gorm:"type:varchar(200);primaryKey"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Color       string     `gorm:"type:varchar(50);not null;default:'bg-slate-500'"`
	Description string     `gorm:"type:text"`
	Address     string     `gorm:"type:text"`
	TVA         string     `gorm:"column:tva;type:varchar(50)"`
	Tel         string     `gorm:"type:varchar(50)"`
	ClientName  string     `gorm:"type:varchar(200)"`
	Notes       string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null"`
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierIDFromName derives the catalog ID: lowercase, whitespace runs collapsed to "_"
func SupplierIDFromName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// NewSupplier creates a catalog entry keyed by the slug of name
func NewSupplier(name, color string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSupplierRequired
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultSupplierColor
	}
	return &Supplier{
		ID:        SupplierIDFromName(name),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}, nil
}

// IsDeleted reports whether the supplier was removed from the catalog
func (s *Supplier) IsDeleted() bool {
	return s.DeletedAt != nil
}

// ConfirmDeletion checks the typed confirmation against the exact supplier name
func (s *Supplier) ConfirmDeletion(typedName string) error {
	if typedName != s.Name {
		return ErrConfirmationMismatch
	}
	return nil
}

// SupplierDetails holds the editable descriptive fields of a supplier
type SupplierDetails struct {
	Description string
	Address     string
	TVA         string
	Tel         string
	ClientName  string
	Color       string
}

// UpdateDetails replaces the descriptive fields, keeping the color when none is given
func (s *Supplier) UpdateDetails(d SupplierDetails) {
	s.Description = d.Description
	s.Address = d.Address
	s.TVA = d.TVA
	s.Tel = d.Tel
	s.ClientName = d.ClientName
	if strings.TrimSpace(d.Color) != "" {
		s.Color = d.Color
	}
}

// ProjectSupplierLink records that a supplier belongs to a project.
// It is unique on (project, supplier) and soft-deleted on archive.
type ProjectSupplierLink struct {
	ProjectID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SupplierID string     `gorm:"type:varchar(200);primaryKey"`
	SortOrder  int        `gorm:"not null;default:0"`
	CreatedAt  time.Time  `gorm:"not null"`
	DeletedAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (ProjectSupplierLink) TableName() string {
	return "project_suppliers"
}

// IsArchived reports whether the link was soft-deleted
func (l *ProjectSupplierLink) IsArchived() bool {
	return l.DeletedAt != nil
}

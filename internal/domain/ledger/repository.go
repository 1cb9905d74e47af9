package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SupplierRepository persists the global supplier catalog
type SupplierRepository interface {
	// FindAll returns every supplier that is not globally deleted, ordered by name
	FindAll(ctx context.Context) ([]Supplier, error)

	// FindByID finds a supplier by its slug ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// Upsert inserts the supplier or updates name and color of an existing row
	Upsert(ctx context.Context, supplier *Supplier) error

	// Save updates the descriptive fields and notes
	Save(ctx context.Context, supplier *Supplier) error

	// SoftDelete hides the supplier from every project
	SoftDelete(ctx context.Context, id string, at time.Time) error

	// FindDeleted returns the globally deleted suppliers, ordered by name
	FindDeleted(ctx context.Context) ([]Supplier, error)

	// Restore clears the supplier's deletion mark
	Restore(ctx context.Context, id string) error
}

// LinkRepository persists project/supplier membership
type LinkRepository interface {
	// FindByProject returns the live links of a project
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]ProjectSupplierLink, error)

	// FindArchived returns the soft-deleted links of a project
	FindArchived(ctx context.Context, projectID uuid.UUID) ([]ProjectSupplierLink, error)

	// Insert creates a link; a duplicate surfaces as a unique violation
	Insert(ctx context.Context, link *ProjectSupplierLink) error

	// Archive soft-deletes the link
	Archive(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error

	// Restore clears the link's deletion mark
	Restore(ctx context.Context, projectID uuid.UUID, supplierID string) error

	// UpsertSortOrders writes sort_order keyed by (project, supplier)
	UpsertSortOrders(ctx context.Context, links []ProjectSupplierLink) error
}

// SortField is the column expenses are listed by
type SortField string

const (
	SortByDate  SortField = "date"
	SortByPrice SortField = "price"
)

// ExpenseFilter narrows and orders a supplier's expense list
type ExpenseFilter struct {
	Status ExpenseStatus // empty means all
	SortBy SortField
	Desc   bool
}

// ExpenseRepository persists expenses and their line items
type ExpenseRepository interface {
	// FindByProject returns the live expenses of a project with their items
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]Expense, error)

	// FindAllLive returns the live expenses of every project with their items
	FindAllLive(ctx context.Context) ([]Expense, error)

	// FindBySupplier lists a supplier's live expenses in a project
	FindBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, filter ExpenseFilter) ([]Expense, error)

	// FindByID finds an expense with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// Create inserts the expense row only
	Create(ctx context.Context, expense *Expense) error

	// CreateItems inserts line items
	CreateItems(ctx context.Context, items []InvoiceLineItem) error

	// Save updates an existing expense row
	Save(ctx context.Context, expense *Expense) error

	// UpdateStatus sets the payment status
	UpdateStatus(ctx context.Context, id uuid.UUID, status ExpenseStatus) error

	// SetInvoiceImage points the expense at a document URL
	SetInvoiceImage(ctx context.Context, id uuid.UUID, url string) error

	// Delete removes the expense and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// SoftDeleteBySupplier marks a supplier's expenses in a project as deleted
	SoftDeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error

	// RestoreBySupplier clears the deletion mark of a supplier's expenses in a project
	RestoreBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) error
}

// DepositRepository persists deposits
type DepositRepository interface {
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]Deposit, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Deposit, error)
	Create(ctx context.Context, deposit *Deposit) error
	Save(ctx context.Context, deposit *Deposit) error
	SetReceiptImage(ctx context.Context, id uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID) error
	SoftDeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string, at time.Time) error
	RestoreBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) error
}

// DocumentRepository persists the per-supplier document pool
type DocumentRepository interface {
	// FindByProject returns the project's documents, newest first
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]UploadedDocument, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UploadedDocument, error)
	Create(ctx context.Context, doc *UploadedDocument) error
	// Save overwrites URL, name and upload time
	Save(ctx context.Context, doc *UploadedDocument) error
	UpdateNote(ctx context.Context, id uuid.UUID, note string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySupplier(ctx context.Context, projectID uuid.UUID, supplierID string) (int64, error)
}

// PurchaseOrderRepository persists purchase orders and their lines
type PurchaseOrderRepository interface {
	// FindByProject returns the project's orders with items, newest first
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]PurchaseOrder, error)

	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// Create inserts the order and its items
	Create(ctx context.Context, order *PurchaseOrder) error

	// Save updates the order row and replaces its items
	Save(ctx context.Context, order *PurchaseOrder) error

	// UpdateStatus sets the status and the booked expense, if any
	UpdateStatus(ctx context.Context, id uuid.UUID, status PurchaseOrderStatus, expenseID *uuid.UUID) error

	// Delete removes the order and its items
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingRepository persists per-project settings
type SettingRepository interface {
	// Get returns the value or "" when the key is unset
	Get(ctx context.Context, projectID uuid.UUID, key string) (string, error)
	Upsert(ctx context.Context, setting *ProjectSetting) error
}

package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Buckets used for stored files
const (
	BucketInvoices  = "invoices"
	BucketDocuments = "documents"
)

// DocumentStorage stores files and returns public URLs
type DocumentStorage interface {
	// Upload stores data under key in the first of buckets that accepts it
	// and returns the object's public URL
	Upload(ctx context.Context, buckets []string, key string, data []byte, contentType string) (string, error)
}

// Tables named in change notices
const (
	TableSuppliers        = "suppliers"
	TableProjectSuppliers = "project_suppliers"
	TableExpenses         = "expenses"
	TableInvoiceItems     = "invoice_items"
	TableDeposits         = "deposits"
	TableDocuments        = "uploaded_documents"
	TableProjectSettings  = "project_settings"
	TableOrders           = "orders"
	TableOrderItems       = "order_items"
)

// ChangeNotice tells clients that a table changed. The only valid reaction
// is a full reload of the project ledger.
type ChangeNotice struct {
	Table     string    `json:"table"`
	ProjectID uuid.UUID `json:"project_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeNotice stamps a notice with the current time
func NewChangeNotice(table string, projectID uuid.UUID) ChangeNotice {
	return ChangeNotice{Table: table, ProjectID: projectID, Timestamp: time.Now()}
}

// ChangePublisher emits change notices
type ChangePublisher interface {
	Publish(ctx context.Context, notice ChangeNotice) error
}

// ChangeHandler receives change notices
type ChangeHandler func(notice ChangeNotice)

// ChangeSubscriber delivers change notices to handlers
type ChangeSubscriber interface {
	// Subscribe registers handler and returns a function that removes it
	Subscribe(handler ChangeHandler) (unsubscribe func())
}

// SessionLinkStore is a time-boxed set of suppliers linked to a project
// during the current session. It covers the gap between a link write and
// the next authoritative reload, including writes that failed.
type SessionLinkStore interface {
	Add(ctx context.Context, projectID uuid.UUID, supplierID string) error
	Remove(ctx context.Context, projectID uuid.UUID, supplierID string) error
	Members(ctx context.Context, projectID uuid.UUID) ([]string, error)
}

// WizardStore keeps in-progress invoice wizards between requests
type WizardStore interface {
	Get(ctx context.Context, id uuid.UUID) (*InvoiceWizard, error)
	Save(ctx context.Context, wizard *InvoiceWizard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UndoStore holds one pending replacement per project. Put overwrites the
// slot and Take empties it, so at most one caller restores a given replace.
type UndoStore interface {
	Put(ctx context.Context, projectID uuid.UUID, r DocumentReplacement) error
	// Take removes and returns the slot; nil when it is empty
	Take(ctx context.Context, projectID uuid.UUID) (*DocumentReplacement, error)
	// Discard empties the slot only while it still holds r
	Discard(ctx context.Context, projectID uuid.UUID, r DocumentReplacement) error
}

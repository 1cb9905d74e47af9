package ledger

import (
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Supplier DTOs
// =============================================================================

// AddSupplierRequest creates (or reuses) a catalog supplier and links it to a project
type AddSupplierRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Color string `json:"color" binding:"max=50"`
}

// UpdateSupplierRequest replaces a supplier's descriptive fields
type UpdateSupplierRequest struct {
	Description string `json:"description"`
	Address     string `json:"address" binding:"max=500"`
	TVA         string `json:"tva" binding:"max=50"`
	Tel         string `json:"tel" binding:"max=50"`
	ClientName  string `json:"client_name" binding:"max=200"`
	Color       string `json:"color" binding:"max=50"`
}

// UpdateNotesRequest replaces a free-text note
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// DeleteSupplierRequest carries the typed confirmation for a global delete
type DeleteSupplierRequest struct {
	ConfirmName string `json:"confirm_name" binding:"required"`
}

// ReorderRequest is the full display order of a project's suppliers
type ReorderRequest struct {
	SupplierIDs []string `json:"supplier_ids" binding:"required,min=1,dive,required"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Color       string     `json:"color"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address,omitempty"`
	TVA         string     `json:"tva,omitempty"`
	Tel         string     `json:"tel,omitempty"`
	ClientName  string     `json:"client_name,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// ToSupplierResponse converts a domain supplier
func ToSupplierResponse(s *ledger.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Color:       s.Color,
		Description: s.Description,
		Address:     s.Address,
		TVA:         s.TVA,
		Tel:         s.Tel,
		ClientName:  s.ClientName,
		Notes:       s.Notes,
		DeletedAt:   s.DeletedAt,
	}
}

// LinkResult reports a link attempt. Persisted is false when the write failed
// and the supplier is only held in the session set.
type LinkResult struct {
	ProjectID  uuid.UUID `json:"project_id"`
	SupplierID string    `json:"supplier_id"`
	Persisted  bool      `json:"persisted"`
}

// ArchiveResult lists the completed archive steps
type ArchiveResult struct {
	SupplierID string   `json:"supplier_id"`
	Steps      []string `json:"steps"`
}

// StepFailure is one failed step of a best-effort batch
type StepFailure struct {
	Step  string `json:"step"`
	Error string `json:"error"`
}

// RestoreResult reports each restore write
type RestoreResult struct {
	SupplierID string        `json:"supplier_id"`
	Restored   []string      `json:"restored"`
	Failures   []StepFailure `json:"failures,omitempty"`
}

// OrderResponse shows the session order and the last persisted order
type OrderResponse struct {
	ProjectID uuid.UUID `json:"project_id"`
	InMemory  []string  `json:"in_memory"`
	Persisted []string  `json:"persisted"`
}

// =============================================================================
// Expense and deposit DTOs
// =============================================================================

// ExpenseHeaderDTO carries optional delivery-note fields
type ExpenseHeaderDTO = ledger.ExpenseHeader

// SaveExpenseRequest creates or updates a single-line expense
type SaveExpenseRequest struct {
	Item     string           `json:"item" binding:"required,min=1,max=500"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Date     string           `json:"date"`
	Status   string           `json:"status" binding:"omitempty,oneof=pending paid"`
	Quantity string           `json:"quantity" binding:"max=50"`
}

// UpdateStatusRequest sets an expense's payment status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid"`
}

// ExpenseListQuery filters and sorts a supplier's expenses
type ExpenseListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=all pending paid"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=date price"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// ToFilter converts the query to a repository filter
func (q ExpenseListQuery) ToFilter() ledger.ExpenseFilter {
	f := ledger.ExpenseFilter{SortBy: ledger.SortByDate, Desc: true}
	if q.Status == string(ledger.ExpenseStatusPending) || q.Status == string(ledger.ExpenseStatusPaid) {
		f.Status = ledger.ExpenseStatus(q.Status)
	}
	if q.SortBy == string(ledger.SortByPrice) {
		f.SortBy = ledger.SortByPrice
	}
	if q.Order == "asc" {
		f.Desc = false
	}
	return f
}

// SaveDepositRequest creates or updates a deposit
type SaveDepositRequest struct {
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Date       string           `json:"date"`
	Ref        string           `json:"ref" binding:"max=100"`
	Payer      string           `json:"payer" binding:"max=200"`
	Commercial string           `json:"commercial" binding:"max=200"`
}

// LinkDocumentRequest copies a pooled document's URL onto an expense or deposit
type LinkDocumentRequest struct {
	DocumentID uuid.UUID `json:"document_id" binding:"required"`
}

// GeneralNoteRequest replaces a project's general note
type GeneralNoteRequest struct {
	Note string `json:"note"`
}

// LineItemResponse represents an invoice row
type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code,omitempty"`
	Designation string          `json:"designation"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitPriceHT decimal.Decimal `json:"unit_price_ht"`
	Remise      decimal.Decimal `json:"remise"`
	TVA         decimal.Decimal `json:"tva"`
	TotalTTC    decimal.Decimal `json:"total_ttc"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           uuid.UUID          `json:"id"`
	ProjectID    uuid.UUID          `json:"project_id"`
	SupplierID   string             `json:"supplier_id"`
	Date         string             `json:"date"`
	Item         string             `json:"item"`
	Quantity     string             `json:"quantity"`
	Price        decimal.Decimal    `json:"price"`
	Status       string             `json:"status"`
	InvoiceImage *string            `json:"invoice_image,omitempty"`
	IsPayment    bool               `json:"is_payment"`
	Header       ExpenseHeaderDTO   `json:"header"`
	Items        []LineItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ToExpenseResponse converts a domain expense
func ToExpenseResponse(e *ledger.Expense) ExpenseResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			Code:        it.Code,
			Designation: it.Designation,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			UnitPriceHT: it.UnitPriceHT,
			Remise:      it.Remise,
			TVA:         it.TVA,
			TotalTTC:    it.TotalTTC,
		})
	}
	return ExpenseResponse{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		SupplierID:   e.SupplierID,
		Date:         formatDate(e.Date),
		Item:         e.Item,
		Quantity:     e.Quantity,
		Price:        e.Price,
		Status:       string(e.Status),
		InvoiceImage: e.InvoiceImage,
		IsPayment:    e.IsPayment(),
		Header:       e.ExpenseHeader,
		Items:        items,
		CreatedAt:    e.CreatedAt,
	}
}

// DepositResponse represents a deposit in API responses
type DepositResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProjectID    uuid.UUID       `json:"project_id"`
	SupplierID   string          `json:"supplier_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Ref          string          `json:"ref,omitempty"`
	Payer        string          `json:"payer,omitempty"`
	Commercial   string          `json:"commercial,omitempty"`
	ReceiptImage *string         `json:"receipt_image,omitempty"`
}

// ToDepositResponse converts a domain deposit
func ToDepositResponse(d *ledger.Deposit) DepositResponse {
	return DepositResponse{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		SupplierID:   d.SupplierID,
		Amount:       d.Amount,
		Date:         formatDate(d.Date),
		Ref:          d.Ref,
		Payer:        d.Payer,
		Commercial:   d.Commercial,
		ReceiptImage: d.ReceiptImage,
	}
}

// =============================================================================
// Document DTOs
// =============================================================================

// UploadFile is a file received from a client
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// DocumentResponse represents a pooled document
type DocumentResponse struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	SupplierID string    `json:"supplier_id"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	Note       string    `json:"note,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ToDocumentResponse converts a domain document
func ToDocumentResponse(d *ledger.UploadedDocument) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		SupplierID: d.SupplierID,
		FileURL:    d.FileURL,
		FileName:   d.FileName,
		Note:       d.Note,
		UploadedAt: d.UploadedAt,
	}
}

// FileFailure is a file of a batch that could not be stored
type FileFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// Upload outcomes of a single file in a batch
const (
	FileStatusUploaded = "uploaded"
	FileStatusFailed   = "failed"
)

// FileProgress is the batch position reached after one file was handled
type FileProgress struct {
	FileName  string `json:"file_name"`
	Status    string `json:"status"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// UploadResult reports a batch upload. Progress holds one entry per file in
// the order the files were handled.
type UploadResult struct {
	Total    int                `json:"total"`
	Uploaded []DocumentResponse `json:"uploaded"`
	Failed   []FileFailure      `json:"failed,omitempty"`
	Progress []FileProgress     `json:"progress"`
}

// UpdateDocumentNoteRequest replaces a document's note
type UpdateDocumentNoteRequest struct {
	Note string `json:"note"`
}

// UndoResult reports an undo attempt
type UndoResult struct {
	Restored bool              `json:"restored"`
	Document *DocumentResponse `json:"document,omitempty"`
}

// =============================================================================
// Invoice wizard DTOs
// =============================================================================

// ChooseModeRequest picks the entry mode
type ChooseModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=manual ai"`
}

// InvoiceHeaderRequest is the header step of the invoice wizard.
// Either SupplierID or NewSupplierName must be set.
type InvoiceHeaderRequest struct {
	SupplierID       string           `json:"supplier_id" binding:"max=200"`
	NewSupplierName  string           `json:"new_supplier_name" binding:"max=200"`
	NewSupplierColor string           `json:"new_supplier_color" binding:"max=50"`
	Label            string           `json:"label" binding:"max=500"`
	Amount           *decimal.Decimal `json:"amount"`
	Date             string           `json:"date"`
	Status           string           `json:"status" binding:"omitempty,oneof=pending paid"`
	Quantity         string           `json:"quantity" binding:"max=50"`
	Details          ExpenseHeaderDTO `json:"details"`
}

// LineItemRequest is an invoice row draft
type LineItemRequest struct {
	Designation string          `json:"designation" binding:"max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" binding:"max=50"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SetItemsRequest replaces the line item drafts
type SetItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"dive"`
}

// CreateInvoiceRequest runs the whole wizard in one request
type CreateInvoiceRequest struct {
	Header InvoiceHeaderRequest `json:"header"`
	Items  []LineItemRequest    `json:"items" binding:"dive"`
}

// LineItemDraftResponse is a line item draft with its computed total
type LineItemDraftResponse struct {
	Designation string          `json:"designation"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// WizardResponse shows the wizard's state and drafts
type WizardResponse struct {
	ID               uuid.UUID               `json:"id"`
	ProjectID        uuid.UUID               `json:"project_id"`
	State            string                  `json:"state"`
	SupplierID       string                  `json:"supplier_id,omitempty"`
	NewSupplierName  string                  `json:"new_supplier_name,omitempty"`
	NewSupplierColor string                  `json:"new_supplier_color,omitempty"`
	Label            string                  `json:"label"`
	Amount           decimal.Decimal         `json:"amount"`
	Date             string                  `json:"date,omitempty"`
	Status           string                  `json:"status"`
	Quantity         string                  `json:"quantity"`
	Details          ExpenseHeaderDTO        `json:"details"`
	AttachmentName   string                  `json:"attachment_name,omitempty"`
	Items            []LineItemDraftResponse `json:"items"`
	ItemsTotal       decimal.Decimal         `json:"items_total"`
	FinalPrice       decimal.Decimal         `json:"final_price"`
}

// ToWizardResponse converts a wizard
func ToWizardResponse(w *ledger.InvoiceWizard) WizardResponse {
	resp := WizardResponse{
		ID:         w.ID,
		ProjectID:  w.ProjectID,
		State:      string(w.State),
		SupplierID: w.Header.Supplier.ExistingID,
		Label:      w.Header.Label,
		Amount:     w.Header.Amount,
		Status:     string(w.Header.Status),
		Quantity:   w.Header.Quantity,
		Details:    w.Header.Details,
		Items:      make([]LineItemDraftResponse, 0, len(w.Items)),
		ItemsTotal: w.ItemsTotal(),
		FinalPrice: w.FinalPrice(),
	}
	if d := w.Header.Supplier.Draft; d != nil {
		resp.NewSupplierName = d.Name
		resp.NewSupplierColor = d.Color
	}
	if !w.Header.Date.IsZero() {
		resp.Date = formatDate(w.Header.Date)
	}
	if w.Attachment != nil {
		resp.AttachmentName = w.Attachment.FileName
	}
	for _, it := range w.Items {
		resp.Items = append(resp.Items, LineItemDraftResponse{
			Designation: it.Designation,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total(),
		})
	}
	return resp
}

// CommitResult reports a committed invoice
type CommitResult struct {
	ExpenseID       uuid.UUID       `json:"expense_id"`
	SupplierID      string          `json:"supplier_id"`
	CreatedSupplier bool            `json:"created_supplier"`
	Price           decimal.Decimal `json:"price"`
	ItemCount       int             `json:"item_count"`
	InvoiceImage    *string         `json:"invoice_image,omitempty"`
	Steps           []string        `json:"steps"`
	Skipped         []string        `json:"skipped,omitempty"`
}

// =============================================================================
// Ledger view DTOs
// =============================================================================

// SummaryResponse is one supplier's reconciled position
type SummaryResponse struct {
	TotalCost decimal.Decimal `json:"total_cost"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	Remaining decimal.Decimal `json:"remaining"`
	Mode      string          `json:"mode"`
}

// GlobalSummaryResponse aggregates a project
type GlobalSummaryResponse struct {
	GrandTotal     decimal.Decimal `json:"grand_total"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
}

// SupplierLedger is one visible supplier with its records and summary
type SupplierLedger struct {
	Supplier  SupplierResponse   `json:"supplier"`
	Summary   SummaryResponse    `json:"summary"`
	Expenses  []ExpenseResponse  `json:"expenses"`
	Deposits  []DepositResponse  `json:"deposits"`
	Documents []DocumentResponse `json:"documents"`
}

// LedgerView is the whole reloaded state of a project
type LedgerView struct {
	ProjectID   uuid.UUID             `json:"project_id"`
	Suppliers   []SupplierLedger      `json:"suppliers"`
	Archived    []SupplierResponse    `json:"archived"`
	Catalog     []SupplierResponse    `json:"catalog"`
	Summary     GlobalSummaryResponse `json:"summary"`
	GeneralNote string                `json:"general_note"`
	Warnings    []string              `json:"warnings,omitempty"`
}

// =============================================================================
// Purchase order DTOs
// =============================================================================

// OrderLineRequest is one ordered article
type OrderLineRequest struct {
	ArticleName string          `json:"article_name" binding:"max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" binding:"max=50"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SavePurchaseOrderRequest creates or edits a pending order. Lines without
// an article name are dropped.
type SavePurchaseOrderRequest struct {
	SupplierID string             `json:"supplier_id" binding:"required,max=200"`
	Date       string             `json:"date"`
	Notes      string             `json:"notes"`
	Items      []OrderLineRequest `json:"items" binding:"dive"`
}

func (r SavePurchaseOrderRequest) lines() []ledger.OrderLine {
	lines := make([]ledger.OrderLine, len(r.Items))
	for i, it := range r.Items {
		lines[i] = ledger.OrderLine{
			ArticleName: it.ArticleName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
		}
	}
	return lines
}

// OrderStatusRequest moves an order to pending, delivered or cancelled
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending delivered cancelled"`
}

// OrderItemResponse represents an ordered article
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleName string          `json:"article_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// PurchaseOrderResponse represents an order in API responses
type PurchaseOrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	ProjectID  uuid.UUID           `json:"project_id"`
	SupplierID string              `json:"supplier_id"`
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes,omitempty"`
	ExpenseID  *uuid.UUID          `json:"expense_id,omitempty"`
	Total      decimal.Decimal     `json:"total"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ToPurchaseOrderResponse converts a domain order
func ToPurchaseOrderResponse(o *ledger.PurchaseOrder) PurchaseOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          it.ID,
			ArticleName: it.ArticleName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.Total(),
		})
	}
	return PurchaseOrderResponse{
		ID:         o.ID,
		ProjectID:  o.ProjectID,
		SupplierID: o.SupplierID,
		Date:       formatDate(o.Date),
		Status:     string(o.Status),
		Notes:      o.Notes,
		ExpenseID:  o.ExpenseID,
		Total:      o.Total(),
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}

// DeliveryResult reports a delivered order and the expense booked for it
type DeliveryResult struct {
	Order   PurchaseOrderResponse `json:"order"`
	Expense ExpenseResponse       `json:"expense"`
	Steps   []string              `json:"steps"`
}

// =============================================================================
// Article catalog DTOs
// =============================================================================

// ArticleQuery narrows the article catalog. A nil ProjectID covers every project.
type ArticleQuery struct {
	ProjectID *uuid.UUID `form:"-"`
	Search    string     `form:"q" binding:"max=200"`
}

// ArticlePriceResponse is an article's latest price at one supplier
type ArticlePriceResponse struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Date         string          `json:"date"`
	Best         bool            `json:"best"`
}

// ArticleRowResponse is one article of the price matrix
type ArticleRowResponse struct {
	Article string                 `json:"article"`
	Prices  []ArticlePriceResponse `json:"prices"`
}

// ArticlePurchaseResponse is one purchase line of a supplier
type ArticlePurchaseResponse struct {
	ExpenseID   uuid.UUID       `json:"expense_id"`
	ProjectID   uuid.UUID       `json:"project_id"`
	Date        string          `json:"date"`
	Reference   string          `json:"reference,omitempty"`
	Designation string          `json:"designation"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SupplierPurchasesResponse groups a supplier's purchase lines
type SupplierPurchasesResponse struct {
	SupplierID   string                    `json:"supplier_id"`
	SupplierName string                    `json:"supplier_name"`
	Total        decimal.Decimal           `json:"total"`
	Purchases    []ArticlePurchaseResponse `json:"purchases"`
}

// ArticleCatalogResponse is the price matrix plus the purchases it was built from
type ArticleCatalogResponse struct {
	Suppliers  []SupplierResponse          `json:"suppliers"`
	Rows       []ArticleRowResponse        `json:"rows"`
	BySupplier []SupplierPurchasesResponse `json:"by_supplier"`
}

// =============================================================================
// Helpers
// =============================================================================

const (
	isoDate    = "2006-01-02"
	frenchDate = "02/01/2006"
)

// parseDate accepts ISO and DD/MM/YYYY dates; empty input yields the zero time
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{isoDate, frenchDate, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ledger.ErrInvalidDate
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoDate)
}

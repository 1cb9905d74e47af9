package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WizardState is a step of the invoice creation wizard
type WizardState string

const (
	WizardIdle          WizardState = "idle"
	WizardModeChoice    WizardState = "mode_choice"
	WizardHeaderEntry   WizardState = "header_entry"
	WizardLineItemEntry WizardState = "line_item_entry"
	WizardCommitted     WizardState = "committed"
)

// EntryMode is the way invoice data is entered
type EntryMode string

const (
	EntryModeManual EntryMode = "manual"
	// EntryModeAI has no extraction behind it and leaves the wizard on the mode choice
	EntryModeAI EntryMode = "ai"
)

// SupplierDraft is a supplier to be created when the invoice is committed
type SupplierDraft struct {
	Name  string
	Color string
}

// SupplierChoice is either an existing catalog ID or a draft to create
type SupplierChoice struct {
	ExistingID string
	Draft      *SupplierDraft
}

// IsDraft reports whether the supplier does not exist yet
func (c SupplierChoice) IsDraft() bool {
	return c.ExistingID == "" && c.Draft != nil
}

// IsSet reports whether an existing supplier or a named draft was given
func (c SupplierChoice) IsSet() bool {
	if strings.TrimSpace(c.ExistingID) != "" {
		return true
	}
	return c.Draft != nil && strings.TrimSpace(c.Draft.Name) != ""
}

// SupplierID returns the ID the supplier has, or will have once created
func (c SupplierChoice) SupplierID() string {
	if c.ExistingID != "" {
		return c.ExistingID
	}
	if c.Draft != nil {
		return SupplierIDFromName(c.Draft.Name)
	}
	return ""
}

// InvoiceHeader is what the header step captures
type InvoiceHeader struct {
	Supplier SupplierChoice
	Label    string
	Amount   decimal.Decimal
	Date     time.Time
	Status   ExpenseStatus
	Quantity string
	Details  ExpenseHeader
}

// Attachment is a file waiting to be uploaded on commit
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// LineItemDraft is an editable invoice row
type LineItemDraft struct {
	Designation string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
}

// Total is quantity times unit price
func (d LineItemDraft) Total() decimal.Decimal {
	return RoundMoney(d.Quantity.Mul(d.UnitPrice))
}

// IsBlank reports whether the row has no designation and will be dropped on commit
func (d LineItemDraft) IsBlank() bool {
	return strings.TrimSpace(d.Designation) == ""
}

// InvoiceWizard is the state machine driving invoice creation.
// Transitions:
//
//	Idle -> ModeChoice -> HeaderEntry <-> LineItemEntry -> Committed
//	any  -> Idle (abort)
type InvoiceWizard struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	State      WizardState
	Header     InvoiceHeader
	Attachment *Attachment
	Items      []LineItemDraft
	UpdatedAt  time.Time
}

// NewInvoiceWizard creates an idle wizard for a project
func NewInvoiceWizard(projectID uuid.UUID) *InvoiceWizard {
	w := &InvoiceWizard{
		ID:        uuid.New(),
		ProjectID: projectID,
	}
	w.reset()
	return w
}

func (w *InvoiceWizard) reset() {
	w.State = WizardIdle
	w.Header = InvoiceHeader{
		Amount:   decimal.Zero,
		Status:   ExpenseStatusPending,
		Quantity: DefaultQuantity,
	}
	w.Attachment = nil
	w.Items = nil
	w.touch()
}

func (w *InvoiceWizard) touch() {
	w.UpdatedAt = time.Now()
}

func (w *InvoiceWizard) require(states ...WizardState) error {
	for _, s := range states {
		if w.State == s {
			return nil
		}
	}
	return ErrInvalidTransition
}

// Start opens the mode choice
func (w *InvoiceWizard) Start() error {
	if err := w.require(WizardIdle, WizardCommitted); err != nil {
		return err
	}
	if w.State == WizardCommitted {
		w.reset()
	}
	w.State = WizardModeChoice
	w.touch()
	return nil
}

// ChooseMode moves to header entry for manual mode and stays put for AI mode
func (w *InvoiceWizard) ChooseMode(mode EntryMode) error {
	if err := w.require(WizardModeChoice); err != nil {
		return err
	}
	switch mode {
	case EntryModeManual:
		w.State = WizardHeaderEntry
	case EntryModeAI:
		w.State = WizardModeChoice
	default:
		return ErrInvalidTransition
	}
	w.touch()
	return nil
}

// SetHeader replaces the header fields; a blank quantity becomes "1"
func (w *InvoiceWizard) SetHeader(h InvoiceHeader) error {
	if err := w.require(WizardHeaderEntry); err != nil {
		return err
	}
	if strings.TrimSpace(h.Quantity) == "" {
		h.Quantity = DefaultQuantity
	}
	if h.Status == "" {
		h.Status = ExpenseStatusPending
	}
	if !h.Status.IsValid() {
		return ErrInvalidStatus
	}
	h.Amount = RoundMoney(h.Amount)
	w.Header = h
	w.touch()
	return nil
}

// Attach stores a file to upload on commit
func (w *InvoiceWizard) Attach(a Attachment) error {
	if err := w.require(WizardHeaderEntry, WizardLineItemEntry); err != nil {
		return err
	}
	w.Attachment = &a
	w.touch()
	return nil
}

// ValidateHeader checks the gate between header and line items
func (w *InvoiceWizard) ValidateHeader() error {
	if !w.Header.Supplier.IsSet() {
		return ErrSupplierRequired
	}
	if strings.TrimSpace(w.Header.Label) == "" {
		return ErrLabelRequired
	}
	return nil
}

// Advance moves from header entry to line items once the header is valid
func (w *InvoiceWizard) Advance() error {
	if err := w.require(WizardHeaderEntry); err != nil {
		return err
	}
	if err := w.ValidateHeader(); err != nil {
		return err
	}
	w.State = WizardLineItemEntry
	w.touch()
	return nil
}

// Back returns from line items to the header, keeping both drafts
func (w *InvoiceWizard) Back() error {
	if err := w.require(WizardLineItemEntry); err != nil {
		return err
	}
	w.State = WizardHeaderEntry
	w.touch()
	return nil
}

// SetItems replaces the line item drafts
func (w *InvoiceWizard) SetItems(items []LineItemDraft) error {
	if err := w.require(WizardLineItemEntry); err != nil {
		return err
	}
	w.Items = append([]LineItemDraft(nil), items...)
	w.touch()
	return nil
}

// ItemsTotal is the sum of the non-blank rows' totals.
// A row left without a designation is not priced, even when it has a
// quantity and unit price: it is dropped on commit, and the price must equal
// the sum of the line items actually stored.
func (w *InvoiceWizard) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range w.Items {
		if it.IsBlank() {
			continue
		}
		sum = sum.Add(it.Total())
	}
	return RoundMoney(sum)
}

// FinalPrice is the items total when positive, otherwise the header amount.
// Blank rows never contribute; see ItemsTotal.
func (w *InvoiceWizard) FinalPrice() decimal.Decimal {
	if sum := w.ItemsTotal(); sum.IsPositive() {
		return sum
	}
	return w.Header.Amount
}

// CommittableItems returns the rows persisted on commit
func (w *InvoiceWizard) CommittableItems() []LineItemDraft {
	out := make([]LineItemDraft, 0, len(w.Items))
	for _, it := range w.Items {
		if !it.IsBlank() {
			out = append(out, it)
		}
	}
	return out
}

// CanCommit checks the wizard is on the line items step with a valid header
func (w *InvoiceWizard) CanCommit() error {
	if err := w.require(WizardLineItemEntry); err != nil {
		return err
	}
	return w.ValidateHeader()
}

// MarkCommitted clears the drafts and moves to Committed
func (w *InvoiceWizard) MarkCommitted() error {
	if err := w.CanCommit(); err != nil {
		return err
	}
	w.reset()
	w.State = WizardCommitted
	return nil
}

// Abort discards the drafts from any state
func (w *InvoiceWizard) Abort() {
	w.reset()
}

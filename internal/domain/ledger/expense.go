package ledger

import (
	"strings"
	"time"
	"unicode"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ExpenseStatus is the payment status of an expense
type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "pending"
	ExpenseStatusPaid    ExpenseStatus = "paid"
)

// IsValid reports whether s is a known status
func (s ExpenseStatus) IsValid() bool {
	return s == ExpenseStatusPending || s == ExpenseStatusPaid
}

// ParseExpenseStatus parses a status string, defaulting empty input to pending
func ParseExpenseStatus(s string) (ExpenseStatus, error) {
	if s == "" {
		return ExpenseStatusPending, nil
	}
	st := ExpenseStatus(strings.ToLower(s))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// DefaultQuantity is used when an expense or line item gives no quantity
const DefaultQuantity = "1"

// ExpenseHeader carries the optional delivery-note details of an invoice
type ExpenseHeader struct {
	ClientCode          string `gorm:"type:varchar(100)" json:"client_code,omitempty"`
	Client              string `gorm:"type:varchar(200)" json:"client,omitempty"`
	ClientAddress       string `gorm:"type:text" json:"client_address,omitempty"`
	CIN                 string `gorm:"column:cin;type:varchar(50)" json:"cin,omitempty"`
	DeliveryPlace       string `gorm:"type:varchar(200)" json:"delivery_place,omitempty"`
	AuthorizationDate   string `gorm:"type:varchar(20)" json:"authorization_date,omitempty"`
	AuthorizationNumber string `gorm:"type:varchar(100)" json:"authorization_number,omitempty"`
	OrderDate           string `gorm:"type:varchar(20)" json:"order_date,omitempty"`
	OrderNumber         string `gorm:"type:varchar(100)" json:"order_number,omitempty"`
	MixerTruck          string `gorm:"type:varchar(100)" json:"mixer_truck,omitempty"`
	Driver              string `gorm:"type:varchar(100)" json:"driver,omitempty"`
	Pump                string `gorm:"type:varchar(100)" json:"pump,omitempty"`
	PumpOperator        string `gorm:"type:varchar(100)" json:"pump_operator,omitempty"`
	DeliveryTime        string `gorm:"type:varchar(20)" json:"delivery_time,omitempty"`
	Admixture           string `gorm:"type:varchar(100)" json:"admixture,omitempty"`
	ConcreteClass       string `gorm:"type:varchar(50)" json:"concrete_class,omitempty"`
}

// Expense is an invoice or delivery note billed by a supplier on a project
type Expense struct {
	shared.BaseEntity
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_project_supplier,priority:1"`
	SupplierID   string          `gorm:"type:varchar(200);not null;index:idx_expenses_project_supplier,priority:2"`
	Date         time.Time       `gorm:"type:date;not null"`
	Item         string          `gorm:"type:varchar(500);not null"`
	Quantity     string          `gorm:"type:varchar(50);not null;default:'1'"`
	Price        decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	Status       ExpenseStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	InvoiceImage *string         `gorm:"type:text"`
	ExpenseHeader
	Items     []InvoiceLineItem `gorm:"foreignKey:ExpenseID"`
	DeletedAt *time.Time        `gorm:"index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense validates the label and status and creates an expense
func NewExpense(projectID uuid.UUID, supplierID, item string, price decimal.Decimal, date time.Time, status ExpenseStatus) (*Expense, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ErrSupplierRequired
	}
	if strings.TrimSpace(item) == "" {
		return nil, ErrLabelRequired
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &Expense{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		SupplierID: supplierID,
		Date:       date,
		Item:       strings.TrimSpace(item),
		Quantity:   DefaultQuantity,
		Price:      RoundMoney(price),
		Status:     status,
	}, nil
}

// IsPaid reports whether the expense is settled
func (e *Expense) IsPaid() bool {
	return e.Status == ExpenseStatusPaid
}

// SetStatus changes the payment status
func (e *Expense) SetStatus(status ExpenseStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	e.Status = status
	return nil
}

// SetQuantity stores q, falling back to the default quantity when blank
func (e *Expense) SetQuantity(q string) {
	q = strings.TrimSpace(q)
	if q == "" {
		q = DefaultQuantity
	}
	e.Quantity = q
}

// LinkDocument points the expense at a document URL
func (e *Expense) LinkDocument(url string) {
	e.InvoiceImage = &url
}

// IsPayment reports whether the expense label reads as a payment record
func (e *Expense) IsPayment() bool {
	return IsPayment(e.Item)
}

var paymentKeywords = []string{"RECU", "PAIEMENT", "AVANCE", "ACOMPTE", "CHEQUE", "VERSEMENT", "VIREMENT"}

// IsPayment detects labels such as "Reçu n°12" or "Chèque BMCE"
func IsPayment(label string) bool {
	folded := strings.ToUpper(foldAccents(label))
	for _, kw := range paymentKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// InvoiceLineItem is one row of an invoice. It never exists without its expense.
type InvoiceLineItem struct {
	shared.BaseEntity
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExpenseID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Code        string          `gorm:"type:varchar(100)"`
	Designation string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,3);not null;default:1"`
	Unit        string          `gorm:"type:varchar(50)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	UnitPriceHT decimal.Decimal `gorm:"column:unit_price_ht;type:decimal(18,3);not null;default:0"`
	Remise      decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	TVA         decimal.Decimal `gorm:"column:tva;type:decimal(6,2);not null;default:0"`
	TotalTTC    decimal.Decimal `gorm:"column:total_ttc;type:decimal(18,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceLineItem) TableName() string {
	return "invoice_items"
}

package ledger

import (
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit is an advance payment made to a supplier on a project
type Deposit struct {
	shared.BaseEntity
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_deposits_project_supplier,priority:1"`
	SupplierID   string          `gorm:"type:varchar(200);not null;index:idx_deposits_project_supplier,priority:2"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	Date         time.Time       `gorm:"type:date;not null"`
	Ref          string          `gorm:"type:varchar(100)"`
	Payer        string          `gorm:"type:varchar(200)"`
	Commercial   string          `gorm:"type:varchar(200)"`
	ReceiptImage *string         `gorm:"type:text"`
	DeletedAt    *time.Time      `gorm:"index"`
}

// TableName returns the table name for GORM
func (Deposit) TableName() string {
	return "deposits"
}

// DepositDetails holds the free-text fields of a deposit
type DepositDetails struct {
	Ref        string
	Payer      string
	Commercial string
}

// NewDeposit creates a deposit, rejecting amounts that are not strictly positive
func NewDeposit(projectID uuid.UUID, supplierID string, amount decimal.Decimal, date time.Time, details DepositDetails) (*Deposit, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ErrSupplierRequired
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &Deposit{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		SupplierID: supplierID,
		Amount:     RoundMoney(amount),
		Date:       date,
		Ref:        details.Ref,
		Payer:      details.Payer,
		Commercial: details.Commercial,
	}, nil
}

// Update replaces amount, date and details
func (d *Deposit) Update(amount decimal.Decimal, date time.Time, details DepositDetails) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	d.Amount = RoundMoney(amount)
	if !date.IsZero() {
		d.Date = date
	}
	d.Ref = details.Ref
	d.Payer = details.Payer
	d.Commercial = details.Commercial
	return nil
}

// LinkReceipt points the deposit at a document URL
func (d *Deposit) LinkReceipt(url string) {
	d.ReceiptImage = &url
}

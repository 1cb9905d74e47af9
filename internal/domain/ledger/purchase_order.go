package ledger

import (
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is where a purchase order stands
type PurchaseOrderStatus string

const (
	OrderStatusPending   PurchaseOrderStatus = "pending"
	OrderStatusDelivered PurchaseOrderStatus = "delivered"
	OrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// DefaultOrderUnit is the unit of an order line that names none
const DefaultOrderUnit = "pcs"

// DeliveredQuantity is the quantity label of the expense a delivery creates
const DeliveredQuantity = "Lot"

// PurchaseOrder is an order placed with a supplier for a project. Delivering
// it books the ordered lines as an expense.
type PurchaseOrder struct {
	shared.BaseEntity
	ProjectID  uuid.UUID           `gorm:"type:uuid;not null;index:idx_orders_project"`
	SupplierID string              `gorm:"type:varchar(200);not null;index"`
	Date       time.Time           `gorm:"type:date;not null"`
	Status     PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes      string              `gorm:"type:text"`
	ExpenseID  *uuid.UUID          `gorm:"type:uuid"`
	Items      []PurchaseOrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "orders"
}

// PurchaseOrderItem is one ordered article
type PurchaseOrderItem struct {
	shared.BaseEntity
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticleName string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,3);not null;default:1"`
	Unit        string          `gorm:"type:varchar(50)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "order_items"
}

// Total is the estimated amount of the line
func (i PurchaseOrderItem) Total() decimal.Decimal {
	return RoundMoney(i.Quantity.Mul(i.UnitPrice))
}

// OrderLine is an order row as typed by a user
type OrderLine struct {
	ArticleName string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
}

// NewPurchaseOrder creates a pending order. A zero date means today.
func NewPurchaseOrder(projectID uuid.UUID, supplierID string, date time.Time, notes string) (*PurchaseOrder, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ErrSupplierRequired
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &PurchaseOrder{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		SupplierID: supplierID,
		Date:       date,
		Status:     OrderStatusPending,
		Notes:      strings.TrimSpace(notes),
	}, nil
}

// IsPending reports whether the order can still be edited
func (o *PurchaseOrder) IsPending() bool {
	return o.Status == OrderStatusPending
}

// SetLines replaces the order's items. Lines without an article name are
// dropped; a missing quantity counts as one and a missing unit as pcs.
func (o *PurchaseOrder) SetLines(lines []OrderLine) {
	items := make([]PurchaseOrderItem, 0, len(lines))
	for _, l := range lines {
		name := strings.TrimSpace(l.ArticleName)
		if name == "" {
			continue
		}
		qty := l.Quantity
		if !qty.IsPositive() {
			qty = decimal.NewFromInt(1)
		}
		unit := strings.TrimSpace(l.Unit)
		if unit == "" {
			unit = DefaultOrderUnit
		}
		items = append(items, PurchaseOrderItem{
			BaseEntity:  shared.NewBaseEntity(),
			ProjectID:   o.ProjectID,
			OrderID:     o.ID,
			ArticleName: name,
			Quantity:    RoundMoney(qty),
			Unit:        unit,
			UnitPrice:   RoundMoney(l.UnitPrice),
		})
	}
	o.Items = items
}

// Total is the estimated amount of the order
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Total())
	}
	return RoundMoney(total)
}

// Transition moves the order to status. Delivered is final; delivering goes
// through Delivery so the booked expense is recorded.
func (o *PurchaseOrder) Transition(status PurchaseOrderStatus) error {
	if !status.IsValid() {
		return ErrInvalidOrderStatus
	}
	if o.Status == OrderStatusDelivered || status == OrderStatusDelivered {
		return ErrOrderNotPending
	}
	o.Status = status
	return nil
}

// Delivery builds the expense and line items booked when the order arrives
// on deliveredOn. The order itself is left pending until MarkDelivered.
func (o *PurchaseOrder) Delivery(deliveredOn time.Time) (*Expense, []InvoiceLineItem, error) {
	if !o.IsPending() {
		return nil, nil, ErrOrderNotPending
	}
	label := "Commande du " + o.Date.Format("02/01/2006")
	expense, err := NewExpense(o.ProjectID, o.SupplierID, label, o.Total(), deliveredOn, ExpenseStatusPending)
	if err != nil {
		return nil, nil, err
	}
	expense.Quantity = DeliveredQuantity

	items := make([]InvoiceLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, InvoiceLineItem{
			BaseEntity:  shared.NewBaseEntity(),
			ProjectID:   o.ProjectID,
			ExpenseID:   expense.ID,
			Designation: it.ArticleName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalTTC:    it.Total(),
		})
	}
	return expense, items, nil
}

// MarkDelivered records the expense booked for the order
func (o *PurchaseOrder) MarkDelivered(expenseID uuid.UUID) {
	o.Status = OrderStatusDelivered
	o.ExpenseID = &expenseID
}

package ledger

import "github.com/erp/ledger/internal/domain/shared"

// Validation and state errors raised before any write happens
var (
	ErrSupplierRequired     = shared.NewDomainError("SUPPLIER_REQUIRED", "A supplier must be selected or named")
	ErrLabelRequired        = shared.NewDomainError("LABEL_REQUIRED", "Document label is required")
	ErrInvalidAmount        = shared.NewDomainError("INVALID_AMOUNT", "Amount must be a valid number")
	ErrNonPositiveAmount    = shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	ErrInvalidStatus        = shared.NewDomainError("INVALID_STATUS", "Status must be pending or paid")
	ErrConfirmationMismatch = shared.NewDomainError("CONFIRMATION_MISMATCH", "Typed name does not match the supplier name")
	ErrInvalidTransition    = shared.NewDomainError("INVALID_STATE", "Invoice wizard cannot perform this step now")
	ErrWizardNotFound       = shared.NewDomainError("WIZARD_NOT_FOUND", "Invoice wizard session not found or expired")
	ErrInvalidDate          = shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or DD/MM/YYYY")
	ErrUnknownSupplier      = shared.NewDomainError("UNKNOWN_SUPPLIER", "Supplier is not in the catalog")
	ErrInvalidOrderStatus   = shared.NewDomainError("INVALID_STATUS", "Order status must be pending, delivered or cancelled")
	ErrOrderNotPending      = shared.NewDomainError("ORDER_NOT_PENDING", "Only a pending order can be changed or delivered")
	ErrSupplierNotDeleted   = shared.NewDomainError("SUPPLIER_NOT_DELETED", "Supplier is still in the catalog")
)

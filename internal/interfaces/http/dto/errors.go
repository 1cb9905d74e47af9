package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeUnavailable is used when a dependency such as the schema is missing
	ErrCodeUnavailable = "ERR_SYSTEM_NOT_PROVISIONED"
	// ErrCodePartialFailure is used when a multi-step write stopped midway
	ErrCodePartialFailure = "ERR_PARTIAL_FAILURE"
)

// Validation error codes
const (
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeSupplierRequired   = "ERR_VALIDATION_SUPPLIER_REQUIRED"
	ErrCodeLabelRequired      = "ERR_VALIDATION_LABEL_REQUIRED"
	ErrCodeInvalidAmount      = "ERR_VALIDATION_AMOUNT"
	ErrCodeInvalidDate        = "ERR_VALIDATION_DATE"
	ErrCodeInvalidStatus      = "ERR_VALIDATION_STATUS"
	ErrCodeConfirmMismatch    = "ERR_VALIDATION_CONFIRMATION"
	ErrCodeUnknownSupplier    = "ERR_VALIDATION_UNKNOWN_SUPPLIER"
	ErrCodeRequestTooLarge    = "ERR_REQUEST_TOO_LARGE"
	ErrCodeUnsupportedContent = "ERR_UNSUPPORTED_CONTENT"
)

// Resource error codes
const (
	ErrCodeNotFound       = "ERR_NOT_FOUND"
	ErrCodeWizardNotFound = "ERR_WIZARD_NOT_FOUND"
	ErrCodeAlreadyExists  = "ERR_ALREADY_EXISTS"
	ErrCodeConflict       = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:        http.StatusInternalServerError,
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeUnavailable:    http.StatusServiceUnavailable,
	ErrCodePartialFailure: http.StatusBadGateway,

	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSupplierRequired:   http.StatusBadRequest,
	ErrCodeLabelRequired:      http.StatusBadRequest,
	ErrCodeInvalidAmount:      http.StatusBadRequest,
	ErrCodeInvalidDate:        http.StatusBadRequest,
	ErrCodeInvalidStatus:      http.StatusBadRequest,
	ErrCodeConfirmMismatch:    http.StatusUnprocessableEntity,
	ErrCodeUnknownSupplier:    http.StatusUnprocessableEntity,
	ErrCodeRequestTooLarge:    http.StatusRequestEntityTooLarge,
	ErrCodeUnsupportedContent: http.StatusUnsupportedMediaType,

	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeWizardNotFound: http.StatusNotFound,
	ErrCodeAlreadyExists:  http.StatusConflict,
	ErrCodeConflict:       http.StatusConflict,

	ErrCodeInvalidState: http.StatusUnprocessableEntity,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"INVALID_INPUT":          ErrCodeInvalidInput,
	"INVALID_STATE":          ErrCodeInvalidState,
	"SYSTEM_NOT_PROVISIONED": ErrCodeUnavailable,
	"SUPPLIER_REQUIRED":      ErrCodeSupplierRequired,
	"LABEL_REQUIRED":         ErrCodeLabelRequired,
	"INVALID_AMOUNT":         ErrCodeInvalidAmount,
	"INVALID_DATE":           ErrCodeInvalidDate,
	"INVALID_STATUS":         ErrCodeInvalidStatus,
	"CONFIRMATION_MISMATCH":  ErrCodeConfirmMismatch,
	"WIZARD_NOT_FOUND":       ErrCodeWizardNotFound,
	"UNKNOWN_SUPPLIER":       ErrCodeUnknownSupplier,
	"ORDER_NOT_PENDING":      ErrCodeInvalidState,
	"SUPPLIER_NOT_DELETED":   ErrCodeInvalidState,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already in the API format or unknown pass through unchanged.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}

// Package errors defines the application error taxonomy. Every error the
// usecases surface maps to one of the predefined values here, or wraps one.
package errors

import (
	"net/http"

	"parivartan/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors: reported to the caller, no mutation, fully recoverable.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"document must be a JPEG, PNG or PDF file",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"document exceeds the maximum allowed size",
		"",
	)

	ErrDocumentsIncomplete = NewBaseError(
		http.StatusBadRequest,
		"DOCUMENTS_INCOMPLETE",
		"all mandatory documents must be uploaded before submitting for review",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"verification status transition is not allowed",
		"",
	)

	// Identity errors.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"session token is invalid or expired",
		"",
	)

	// ErrPrincipalRecordMissing marks the data-integrity condition where a
	// principal exists in the identity provider but has no application
	// record. Resolved to the least-privileged state, never fatal.
	ErrPrincipalRecordMissing = NewBaseError(
		http.StatusNotFound,
		"PRINCIPAL_RECORD_MISSING",
		"no application record exists for this account",
		"",
	)

	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"partner not found",
		"",
	)

	ErrPartnerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PARTNER_ALREADY_EXISTS",
		"this email is already registered as a partner",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	// Reward ledger errors: reported to the caller, no mutation.
	ErrVoucherNotFound = NewBaseError(
		http.StatusNotFound,
		"VOUCHER_NOT_FOUND",
		"voucher not found",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_POINTS",
		"reward points are insufficient for this voucher",
		"",
	)

	ErrAlreadyRedeemed = NewBaseError(
		http.StatusConflict,
		"ALREADY_REDEEMED",
		"this voucher has already been redeemed",
		"",
	)

	// Payment and subscription errors.
	ErrPaymentFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_FAILED",
		"payment was declined or could not be processed",
		"",
	)

	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"subscription plan not found",
		"",
	)

	// ErrExternalService covers store, blob and payment infrastructure
	// failures. Retryable by the caller; state is left unchanged.
	ErrExternalService = NewBaseError(
		http.StatusServiceUnavailable,
		"EXTERNAL_SERVICE_ERROR",
		"an external service is temporarily unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

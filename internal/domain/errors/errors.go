package errors

import (
	"net/http"

	"qrstudio/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on error code so copies made by WithDetails still compare equal
// to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Reason is the text shown to the end user for this error. Details win over
// the generic message because they carry the collaborator's own reason.
func (e *BaseError) Reason() string {
	if e.details != "" {
		return e.details
	}

	return e.message
}

// Predefined error types
var (
	// Input errors
	ErrEmptyText = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_TEXT",
		"Please enter some text for the QR code.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Codec errors
	ErrEncoding = NewBaseError(
		http.StatusUnprocessableEntity,
		"ENCODING_FAILED",
		"Failed to generate QR code",
		"",
	)

	ErrImageDecode = NewBaseError(
		http.StatusUnprocessableEntity,
		"IMAGE_DECODE_FAILED",
		"Failed to process image",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"QR_CODE_NOT_FOUND",
		"No QR code found in the image",
		"",
	)

	ErrMalformed = NewBaseError(
		http.StatusUnprocessableEntity,
		"QR_CODE_MALFORMED",
		"QR code found but its content could not be read",
		"",
	)

	// Persistence sink errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Permission to access photo library was denied",
		"",
	)

	ErrSink = NewBaseError(
		http.StatusInternalServerError,
		"SINK_FAILED",
		"Unknown error occurred while saving image",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"Image not found in photo library",
		"",
	)

	// Capture errors
	ErrScannerUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SCANNER_UNAVAILABLE",
		"Failed to setup camera for scanning.",
		"",
	)

	ErrScanFailed = NewBaseError(
		http.StatusInternalServerError,
		"SCAN_FAILED",
		"QR code scanning failed.",
		"",
	)

	// Orchestration errors
	ErrSuperseded = NewBaseError(
		http.StatusConflict,
		"SUPERSEDED",
		"Operation was superseded by a newer submission",
		"",
	)
)

// ReasonOf returns the user-facing reason for err: the AppError reason when
// one is found in the chain, the raw error text otherwise.
func ReasonOf(err error) string {
	var baseErr *BaseError
	if errors.As(err, &baseErr) {
		return baseErr.Reason()
	}

	return err.Error()
}

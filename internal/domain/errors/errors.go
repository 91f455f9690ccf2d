package errors

import (
	"net/http"

	"vitashop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, rendered as the response message
	Message() string   // Human-readable description, logged but not rendered
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

// Message returns the human-readable error message
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

// Is matches any BaseError carrying the same status and code, so WithDetails copies
// still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode
}

// Business codes rendered in the response "message" field.
const (
	CodeSuccess              = "SUCCESS"
	CodeEmpty                = "EMPTY"
	CodeKeyError             = "KEY_ERROR"
	CodeDoesNotExist         = "DOES_NOT_EXIST"
	CodeProductDoesNotExist  = "PRODUCT_DOES_NOT_EXIST"
	CodeOutOfStock           = "OUT_OF_STOCK"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeDatabaseExecuteError = "DATABASE_EXECUTE_FAILED"
)

// Predefined error types
var (
	// Input errors
	ErrKeyError = NewBaseError(
		http.StatusBadRequest,
		CodeKeyError,
		"required field missing or malformed",
		"",
	)

	// Lookup errors. The status depends on which lookup failed.
	ErrDoesNotExist = NewBaseError(
		http.StatusNotFound,
		CodeDoesNotExist,
		"resource does not exist",
		"",
	)

	ErrVariantDoesNotExist = NewBaseError(
		http.StatusBadRequest,
		CodeDoesNotExist,
		"product variant or cart item does not exist",
		"",
	)

	ErrProductDoesNotExist = NewBaseError(
		http.StatusBadRequest,
		CodeProductDoesNotExist,
		"no variant matches the product and size",
		"",
	)

	// Business rule rejection, reported with a 200 status.
	ErrOutOfStock = NewBaseError(
		http.StatusOK,
		CodeOutOfStock,
		"requested quantity exceeds variant stock",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"missing or invalid credentials",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"internal error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecuteError
}

// Message returns the human-readable error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

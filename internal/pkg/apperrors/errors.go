package apperrors

import (
	"errors"
	"fmt"
)

// Common errors. Each one maps to exactly one HTTP status in
// middleware.HandleAPIError.
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	ErrConnection = errors.New("database connection failed")
	ErrInternal   = errors.New("internal error")
)

// ErrDataNotFound is the detail used by the student and contact endpoints.
var ErrDataNotFound = NewResourceNotFoundError("Data not found")

// NewResourceNotFoundError creates a not-found error with a client-facing message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error with a client-facing message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error with a client-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates an already-exists error carrying the driver text
func NewConflictError(cause error) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: cause.Error(),
		cause:   cause,
	}
}

// NewConnectionError wraps a failed connection attempt
func NewConnectionError(cause error) error {
	return &CustomError{
		Err:     ErrConnection,
		Message: cause.Error(),
		cause:   cause,
	}
}

// NewInternalError wraps an unexpected driver failure. The driver text is
// kept as the message and is surfaced to the client unchanged.
func NewInternalError(cause error) error {
	return &CustomError{
		Err:     ErrInternal,
		Message: cause.Error(),
		cause:   cause,
	}
}

// NotFoundWithID formats the "<Entity> with ID <id> not found" detail
func NotFoundWithID(entity string, id any) error {
	return NewResourceNotFoundError(fmt.Sprintf("%s with ID %v not found", entity, id))
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Fields  []FieldError

	cause error
}

// FieldError is a single failed constraint on a request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the sentinel and the underlying driver error
func (e *CustomError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// WithFields attaches per-field validation failures
func (e *CustomError) WithFields(fields []FieldError) *CustomError {
	e.Fields = fields
	return e
}

// Detail returns the client-facing text for err
func Detail(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}

package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error so that callers can react to the category of a
// failure without inspecting messages or driver-specific codes.
type ErrorKind string

// Error kinds shared by every layer of the application.
const (
	// KindValidation marks malformed input or a violated business rule.
	// API layer maps this to HTTP 400.
	KindValidation ErrorKind = "validation"

	// KindNotFound marks a referenced entity that does not exist.
	// API layer maps this to HTTP 404.
	KindNotFound ErrorKind = "not_found"

	// KindConflict marks a uniqueness violation reported by the store.
	// API layer maps this to HTTP 400, same as a failed pre-check.
	KindConflict ErrorKind = "conflict"

	// KindInfrastructure marks any unexpected store-layer failure.
	// API layer maps this to HTTP 500.
	KindInfrastructure ErrorKind = "infrastructure"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the tagged error variant passed between the store, service and API
// layers. Message is safe to show to clients; Err holds the underlying cause
// and is only ever logged.
type Error struct {
	Kind    ErrorKind
	Message string
	Details []FieldError
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with optional field details.
func NewValidationError(message string, details ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConflictError creates a conflict error wrapping the store error that
// reported the uniqueness violation.
func NewConflictError(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// NewDatabaseError creates an infrastructure error wrapping the raw store error.
func NewDatabaseError(message string, err error) *Error {
	return &Error{Kind: KindInfrastructure, Message: message, Err: err}
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or an empty
// kind when err is nil or carries no classification.
func KindOf(err error) ErrorKind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// Package apperrors provides the typed failures returned by the membership and
// registration services.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable failure category.
type Kind string

const (
	// KindNotFound means an entity id does not resolve.
	KindNotFound Kind = "NOT_FOUND"
	// KindConflict means a uniqueness, capacity or concurrent-update violation.
	KindConflict Kind = "CONFLICT"
	// KindForbidden means the caller lacks the required role or ownership.
	KindForbidden Kind = "FORBIDDEN"
	// KindInvalidState means the operation is illegal in the current lifecycle phase.
	KindInvalidState Kind = "INVALID_STATE"
	// KindValidation means the input is malformed.
	KindValidation Kind = "VALIDATION"
	// KindInternal is an unexpected store or collaborator failure.
	KindInternal Kind = "INTERNAL"
)

// HTTPStatus maps a kind to the status code the API responds with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidState:
		return http.StatusUnprocessableEntity
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a user-displayable failure with a kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func InvalidState(message string) *Error { return New(KindInvalidState, message) }
func Validation(message string) *Error   { return New(KindValidation, message) }

// Internal wraps an unexpected failure. The message is what clients see.
func Internal(err error, message string) *Error {
	return Wrap(err, KindInternal, message)
}

// KindOf extracts the kind from any error. Unknown errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// PublicMessage returns the message safe to show to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "An unexpected error occurred on the server"
}

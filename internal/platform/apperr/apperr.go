// Package apperr defines the failure taxonomy shared by the services and the
// HTTP layer. Services return *Error values whose Kind is one of the sentinel
// errors below; callers branch on the kind with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ---------------------------------------------------------------------------
// Sentinel kinds
// ---------------------------------------------------------------------------

var (
	ErrUnauthenticated        = errors.New("unauthenticated")
	ErrInvalidCredential      = errors.New("invalid credential")
	ErrForbidden              = errors.New("forbidden")
	ErrValidation             = errors.New("validation error")
	ErrNotFound               = errors.New("not found")
	ErrNotFoundOrUnauthorized = errors.New("not found or unauthorized")
	ErrConflict               = errors.New("conflict")
	ErrReference              = errors.New("reference error")
)

// Error carries a client-safe message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// New returns an *Error of the given kind.
func New(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...interface{}) *Error {
	return New(ErrUnauthenticated, format, args...)
}

func InvalidCredential(format string, args ...interface{}) *Error {
	return New(ErrInvalidCredential, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return New(ErrForbidden, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return New(ErrValidation, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return New(ErrNotFound, format, args...)
}

func NotFoundOrUnauthorized(format string, args ...interface{}) *Error {
	return New(ErrNotFoundOrUnauthorized, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return New(ErrConflict, format, args...)
}

func Reference(format string, args ...interface{}) *Error {
	return New(ErrReference, format, args...)
}

// HTTPStatus maps an error onto a response status code. Errors outside the
// taxonomy map to 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation), errors.Is(err, ErrReference):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNotFoundOrUnauthorized):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsExpected reports whether err belongs to the taxonomy.
func IsExpected(err error) bool {
	var ae *Error
	return errors.As(err, &ae)
}

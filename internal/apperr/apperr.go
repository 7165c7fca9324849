// Package apperr defines the error taxonomy shared by services and handlers.
//
// Repositories and services return *Error values; the HTTP layer maps them to
// status codes via HTTPStatus. The Cause chain is for server-side logging only
// and is never serialized to clients.
package apperr

import (
	"errors"
	"net/http"
)

// Machine-readable error codes.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeUnavailable  = "UNAVAILABLE"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error is the canonical application error.
type Error struct {
	// Code is a machine-readable identifier, e.g. "NOT_FOUND".
	Code string `json:"code"`
	// Message is a human-readable description safe to return to clients.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status this error maps to.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, kept for logging.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is / errors.As traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

// InvalidInput reports a schema, length or type violation caught before any
// mutation was attempted.
func InvalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg, HTTPStatus: http.StatusBadRequest}
}

// NotFound reports a missing or soft-deleted target.
func NotFound(resource string) *Error {
	return &Error{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// Forbidden reports an authenticated caller that is not authorized for the target.
func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg, HTTPStatus: http.StatusForbidden}
}

// Conflict reports a duplicate username/email or equivalent uniqueness violation.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg, HTTPStatus: http.StatusConflict}
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg, HTTPStatus: http.StatusUnauthorized}
}

// Unavailable reports a failed downstream collaborator (object store, email).
func Unavailable(msg string, cause error) *Error {
	return &Error{Code: CodeUnavailable, Message: msg, HTTPStatus: http.StatusServiceUnavailable, Cause: cause}
}

// Internal wraps an unexpected server-side error. The cause is never sent to clients.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "An unexpected error occurred", HTTPStatus: http.StatusInternalServerError, Cause: cause}
}

// As extracts the *Error from err's chain, or nil if there is none.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeNotFound
}

// IsConflict reports whether err carries the CONFLICT code.
func IsConflict(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeConflict
}

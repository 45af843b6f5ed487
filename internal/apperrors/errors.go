// Package apperrors defines the error taxonomy the route layer maps to
// HTTP statuses. Repository faults surface as one of these kinds; raw
// store errors never leak past the wrapped message.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota // malformed or missing required input
	KindNotFound               // missing entity or unresolvable reference
	KindAuth                   // missing, invalid or expired credentials
	KindInternal               // store failure or unexpected fault
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// StatusCode maps an error to its HTTP status. Unrecognized errors are
// treated as internal faults.
func StatusCode(err error) int {
	var appErr *Error

	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for an error. Unrecognized
// errors get a generic message so store internals are never exposed.
func Message(err error) string {
	var appErr *Error

	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return "Unexpected error"
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the application error carried from services up to the HTTP
// layer. Status drives the response code, Message is client-visible,
// Err (optional) is the wrapped cause and only ever logged.
type Error struct {
	Status  int
	Message string
	Err     error
	storage bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(status int, msg string) *Error {
	return &Error{Status: status, Message: msg}
}

func ErrBadRequest(msg string) *Error    { return newError(http.StatusBadRequest, msg) }
func ErrUnauthorized(msg string) *Error  { return newError(http.StatusUnauthorized, msg) }
func ErrForbidden(msg string) *Error     { return newError(http.StatusForbidden, msg) }
func ErrNotFound(msg string) *Error      { return newError(http.StatusNotFound, msg) }
func ErrConflict(msg string) *Error      { return newError(http.StatusConflict, msg) }
func ErrUnprocessable(msg string) *Error { return newError(http.StatusUnprocessableEntity, msg) }

// ErrStorage wraps a failure coming out of the persistence layer so the
// error middleware can log it under its own category.
func ErrStorage(op string, err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Storage failure.",
		Err:     fmt.Errorf("%s: %w", op, err),
		storage: true,
	}
}

// StatusOf returns the HTTP status an error maps to, defaulting to 500
// for anything that is not a *Error.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// IsStorage reports whether err is a storage-layer failure.
func IsStorage(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.storage
}

// Package apierr defines the failure values returned by usecases.
// A known failure condition is reported as an *Error carrying a stable
// machine-readable code, a human-readable message and the HTTP status
// the transport layer should answer with. Usecases return these through
// the normal error path instead of panicking across layers.
package apierr

import (
	"errors"
	"net/http"
)

// Error is a typed operation failure.
type Error struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface. The message is what ends up in
// the HTTP response body, verbatim.
func (e *Error) Error() string {
	return e.Message
}

// Problem creates a 400 Bad Request failure.
func Problem(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusBadRequest}
}

// NotFound creates a 404 Not Found failure.
func NotFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusNotFound}
}

// Conflict creates a 409 Conflict failure.
func Conflict(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusConflict}
}

// Forbidden creates a 403 Forbidden failure.
func Forbidden(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusForbidden}
}

// From extracts the typed failure from err. Errors that are not *Error
// (unexpected storage or infrastructure failures) are reported as a
// generic 500 so that internals never leak into response bodies.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:    "Internal.Error",
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries two independent channels: Internal is a diagnostic for
// logs and is never written to a response; Status and Message are what
// the client is allowed to see.
type Error struct {
	Internal error
	Status   int
	Message  string
}

// External is the client-visible half, serialized as the JSON error body.
type External struct {
	Msg string `json:"msg"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

func (e *Error) External() External {
	return External{Msg: e.Message}
}

func New(internal error, status int, msg string) *Error {
	return &Error{Internal: internal, Status: status, Message: msg}
}

func BadRequest(internal error, msg string) *Error {
	return New(internal, http.StatusBadRequest, msg)
}

func Internal(internal error, msg string) *Error {
	return New(internal, http.StatusInternalServerError, msg)
}

func NotFound(internal error) *Error {
	return New(internal, http.StatusNotFound, "Page not found")
}

func MethodNotAllowed(internal error) *Error {
	return New(internal, http.StatusMethodNotAllowed, "Method not allowed")
}

// ExternalOnly is for validation failures whose message only restates a
// format rule and is therefore safe on both channels. This is the one
// place a channel is derived from the other.
func ExternalOnly(status int, msg string) *Error {
	return &Error{Internal: errors.New(msg), Status: status, Message: msg}
}

// From returns err as *Error. Anything else is wrapped as a generic 500
// so unknown failures never leak their text to the client.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(err, http.StatusInternalServerError, "Internal server error")
}

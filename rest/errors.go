package rest

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks invariant violations in call configuration.
// These are caller programming errors and are detected before the first
// attempt.
var ErrConfiguration = errors.New("rest: invalid configuration")

// ErrUnknown is the defensive failure returned if the attempt loop exits
// without a terminal result. It is unreachable while the loop invariants
// hold.
var ErrUnknown = errors.New("rest: unknown error")

// Error is the failure value of a REST call. It always carries a
// response: the last response received, or a synthetic one with a zero
// status when the transport never produced any.
type Error struct {
	// Message is a human-readable description.
	Message string
	// Response is the response that triggered the failure.
	Response *Response
	// Err is the underlying transport error, if any.
	Err error
}

// NewError creates an Error carrying the given response. A nil response
// is replaced by a synthetic empty one.
func NewError(message string, resp *Response) *Error {
	if resp == nil {
		resp = &Response{}
	}
	return &Error{Message: message, Response: resp}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Response != nil && e.Response.StatusCode > 0 {
		return fmt.Sprintf("rest: %s (status %d)", e.Message, e.Response.StatusCode)
	}
	return "rest: " + e.Message
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

package transport

import (
	"errors"
	"fmt"
)

// ErrorKind classifies transport errors.
type ErrorKind int

const (
	// KindConnection indicates a connection failure (refused, DNS, reset).
	KindConnection ErrorKind = iota
	// KindTimeout indicates the send exceeded its timeout or the context
	// was cancelled mid-flight.
	KindTimeout
	// KindRequest indicates the request could not be assembled or secured.
	KindRequest
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a structured transport error with classification.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Kind: KindConnection, Message: err.Error(), Err: err}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Message: err.Error(), Err: err}
}

// NewRequestError creates a request-assembly error.
func NewRequestError(err error) *Error {
	return &Error{Kind: KindRequest, Message: err.Error(), Err: err}
}

// IsTimeout checks if an error is a transport timeout.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTimeout
}

// IsConnection checks if an error is a transport connection failure.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConnection
}

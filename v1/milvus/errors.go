package milvus

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Common Milvus client errors
var (
	// ErrMissingArgument is returned when a required argument of an operation
	// was not supplied. No request is sent in that case.
	ErrMissingArgument = errors.New("milvus: missing required argument")

	// ErrTransport is returned when the request could not be delivered or the
	// response could not be read.
	ErrTransport = errors.New("milvus: transport failure")

	// ErrServer is returned when the server answered with a non-2xx status or
	// an error code in the response envelope.
	ErrServer = errors.New("milvus: server error")

	// ErrMalformedResponse is returned when a non-empty response body is not valid JSON.
	ErrMalformedResponse = errors.New("milvus: malformed response")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("milvus: invalid config")
)

// errNoResponse is wrapped in a TransportError when a Transport returns
// neither a response nor an error.
var errNoResponse = errors.New("transport returned no response")

// MissingArgumentError names the operation and the caller-facing argument
// that was missing.
type MissingArgumentError struct {
	Operation string
	Argument  string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("milvus: %s: missing required argument %q", e.Operation, e.Argument)
}

func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }

// TransportError is returned by HTTPTransport when a request failed after
// all attempts. Err keeps the last underlying error, so context.Canceled and
// context.DeadlineExceeded stay matchable with errors.Is.
type TransportError struct {
	Path     string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("milvus: POST %s failed after %d attempt(s): %v", e.Path, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ServerError carries the HTTP status, the envelope code and message, and
// the raw body exactly as received. The code is not interpreted.
type ServerError struct {
	StatusCode int
	Code       int64
	Message    string
	Body       []byte
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("milvus: server error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("milvus: server error (status %d, code %d)", e.StatusCode, e.Code)
}

func (e *ServerError) Is(target error) bool { return target == ErrServer }

// IsMissingArgumentError checks if the error reports a missing required argument.
func IsMissingArgumentError(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsTransportError checks if the error is a transport failure.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsServerError checks if the error was reported by the server.
func IsServerError(err error) bool {
	return errors.Is(err, ErrServer)
}

// IsMalformedResponseError checks if the response body could not be parsed.
func IsMalformedResponseError(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsTimeout checks if the error is a deadline or network timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

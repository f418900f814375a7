package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindValidation is a local failure caught before any request is issued.
	KindValidation Kind = iota
	// KindTransport means the request could not be completed at all.
	KindTransport
	// KindHTTP means the server answered with a non-success status.
	KindHTTP
	// KindApplication means the transport succeeded but the payload carried
	// an error field.
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindApplication:
		return "application"
	}
	return "unknown"
}

// Error is the uniform failure type surfaced by every client operation.
type Error struct {
	Kind    Kind
	Status  int // HTTP status code, set for KindHTTP only.
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage is the text shown to the user. It favors the server's own
// error message over the mechanical wrapping.
func (e *Error) UserMessage() string { return e.Message }

// NewValidationError reports a local pre-network failure.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func transportError(cause error, message string) *Error {
	return &Error{Kind: KindTransport, Message: message, cause: errors.WithStack(cause)}
}

func httpError(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("server returned status %d", status)
	}
	return &Error{Kind: KindHTTP, Status: status, Message: message}
}

func applicationError(message string) *Error {
	return &Error{Kind: KindApplication, Message: message}
}

// KindOf extracts the failure class of err, or KindTransport when err did not
// come out of this package.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransport
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

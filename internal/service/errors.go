package service

import (
	"errors"
	"fmt"
)

// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when no
// build version is configured.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")

// Kind classifies every failure a service can report. The transport layer
// maps each kind to exactly one response status.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindInvalidCredentials
	KindInvalidToken
	KindUploadFailed
	KindPersistenceFailed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindInvalidToken:
		return "invalid_token"
	case KindUploadFailed:
		return "upload_failed"
	case KindPersistenceFailed:
		return "persistence_failed"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by services.
//
// Message is safe to show to clients. Fields carries per-field validation
// messages and is nil otherwise. Err keeps the underlying cause for logs
// and errors.Is matching.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first [*Error] in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return KindUnknown
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// ValidationFields builds a validation error carrying per-field messages.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

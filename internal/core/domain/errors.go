package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider failures so callers can branch
// programmatically instead of string-matching messages.
type ErrorKind string

const (
	// ErrKindTransport means no response was received at all
	// (connection, DNS, TLS).
	ErrKindTransport ErrorKind = "transport"
	// ErrKindDeadline means the operation's timeout elapsed before a
	// response arrived.
	ErrKindDeadline ErrorKind = "deadline"
	// ErrKindStatus means the backend answered with a non-2xx status.
	ErrKindStatus ErrorKind = "status"
	// ErrKindDecode means a 2xx body did not match the expected shape.
	ErrKindDecode ErrorKind = "decode"
	// ErrKindPrecondition means a required input was missing before any
	// network call was made.
	ErrKindPrecondition ErrorKind = "precondition"
	// ErrKindProcess means an external process exited non-zero.
	ErrKindProcess ErrorKind = "process"
)

// ProviderError wraps a provider operation failure with enough context for the
// caller to decide whether to retry, re-prompt for credentials or surface the
// message as-is.
type ProviderError struct {
	Err      error
	Kind     ErrorKind
	Provider Provider
	Message  string
	Status   int
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %s (status: %d)", e.Provider, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider Provider, kind ErrorKind, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     kind,
		Message:  message,
		Err:      err,
	}
}

func NewStatusError(provider Provider, status int, message string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     ErrKindStatus,
		Message:  message,
		Status:   status,
	}
}

// ErrorKindOf returns the kind of err when it is (or wraps) a ProviderError.
func ErrorKindOf(err error) (ErrorKind, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// IsRetryable reports whether retrying the same call could plausibly succeed.
// Precondition, decode and 4xx status failures won't improve on retry.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}

	switch pe.Kind {
	case ErrKindTransport, ErrKindDeadline:
		return true
	case ErrKindStatus:
		// 4xx means the request itself is wrong (auth, bad endpoint)
		return pe.Status < 400 || pe.Status >= 500
	default:
		return false
	}
}

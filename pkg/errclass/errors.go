// Package errclass defines the stable error classes surfaced by hashcalc
// and how each one maps to a process exit code.
package errclass

import (
	"errors"
	"fmt"
)

// HashError is a stable, machine-readable error class.
type HashError struct {
	Code    string
	Message string
	Err     error
}

func (e *HashError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if msg == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *HashError) Is(target error) bool {
	t, ok := target.(*HashError)
	return ok && e.Code == t.Code
}

func (e *HashError) Unwrap() error {
	return e.Err
}

// WithMessage returns a new HashError with the same Code but a specific message.
func (e *HashError) WithMessage(msg string) *HashError {
	return &HashError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new HashError with a formatted message.
func (e *HashError) WithMessagef(format string, args ...any) *HashError {
	return &HashError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a new HashError with the same Code that wraps cause.
// errors.Is matches both the class and the cause.
func (e *HashError) Wrap(cause error, msg string) *HashError {
	return &HashError{Code: e.Code, Message: msg, Err: cause}
}

var (
	// ErrUsage is an invalid or missing selection. Raised before any file I/O.
	ErrUsage = &HashError{Code: "E_USAGE"}
	// ErrIO is a missing, unreadable or failing file.
	ErrIO = &HashError{Code: "E_IO"}
	// ErrMediumUnavailable is advisory only and never leaves the classifier.
	ErrMediumUnavailable = &HashError{Code: "E_MEDIUM_UNAVAILABLE"}
	// ErrCancelled is a user interrupt. It terminates with a successful exit.
	ErrCancelled = &HashError{Code: "E_CANCELLED"}
	// ErrDigestMismatch is only produced when the caller asks for strict verification.
	ErrDigestMismatch = &HashError{Code: "E_DIGEST_MISMATCH"}
)

// Exit codes.
const (
	ExitOK       = 0
	ExitIO       = 1
	ExitUsage    = 2
	ExitMismatch = 3
)

// ExitCode maps an error to a process exit code.
// Cancellation is a graceful termination and exits 0.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrCancelled):
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrDigestMismatch):
		return ExitMismatch
	default:
		return ExitIO
	}
}

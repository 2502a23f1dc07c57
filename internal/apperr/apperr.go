package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels. Handlers map these to HTTP statuses; services and stores
// attach them to errors with New/Wrap so callers can use errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication required")
	ErrAuthorization  = errors.New("access denied")
	ErrUnavailable    = errors.New("service unavailable")
	ErrInfrastructure = errors.New("infrastructure failure")
)

// Error pairs a taxonomy kind with a message that is safe to return to the
// caller, plus an optional underlying cause that is only ever logged.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

// New creates a classified error with a caller-safe message.
func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with formatting.
func Newf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. The cause stays attached for logging
// and errors.Is, but Message never exposes it.
func Wrap(kind error, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Message extracts a caller-safe message. Infrastructure faults and
// unclassified errors get a generic message so store internals never leak
// into a response body.
func Message(err error) string {
	if errors.Is(err, ErrInfrastructure) || !isClassified(err) {
		return "Internal server error"
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return err.Error()
}

func isClassified(err error) bool {
	for _, kind := range []error{
		ErrValidation, ErrConflict, ErrNotFound,
		ErrAuthentication, ErrAuthorization, ErrUnavailable,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

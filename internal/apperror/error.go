// Package apperror classifies failures raised while serving a request.
// Every failure is either a domain error, reported through a repository's
// error channel, or an exceptional error that escaped normal control flow.
package apperror

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure classes.
type Kind uint8

const (
	// KindDomain is an anticipated failure reported by a repository.
	KindDomain Kind = iota + 1

	// KindExceptional is a fault that escaped the handling path, such as a
	// panic or a malformed request.
	KindExceptional
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindExceptional:
		return "exceptional"
	default:
		return "unknown"
	}
}

// Error carries a failure together with its kind and the failing operation
type Error struct {
	// Kind is the failure class
	Kind Kind

	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Message()
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the underlying message without the operation name.
func (e *Error) Message() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

// NewDomain wraps err as a domain error raised by op
func NewDomain(op string, err error) *Error {
	return &Error{Kind: KindDomain, Op: op, Err: err}
}

// NewExceptional wraps err as an exceptional error raised by op
func NewExceptional(op string, err error) *Error {
	return &Error{Kind: KindExceptional, Op: op, Err: err}
}

// FromPanic converts a recovered panic value into an exceptional error.
func FromPanic(op string, recovered any) *Error {
	if err, ok := recovered.(error); ok {
		return NewExceptional(op, err)
	}
	return NewExceptional(op, fmt.Errorf("%v", recovered))
}

// AsError extracts *Error from the error chain
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err. Errors without a kind came through a
// repository's error channel and are domain errors.
func KindOf(err error) Kind {
	if appErr, ok := AsError(err); ok && appErr.Kind != 0 {
		return appErr.Kind
	}
	return KindDomain
}

// IsExceptional reports whether err is an exceptional error
func IsExceptional(err error) bool {
	return err != nil && KindOf(err) == KindExceptional
}

// Message returns the human readable message of err, dropping the operation
// prefix added by *Error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := AsError(err); ok {
		return appErr.Message()
	}
	return err.Error()
}

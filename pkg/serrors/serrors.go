// Package serrors attaches a semantic kind to errors raised by scan sources,
// the coordinator and the API. Workers use the kind to decide between retrying
// and giving up; handlers use it to pick an HTTP status.
package serrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error. Values are comparable sentinels and match through
// errors.Is and errors.As on an *Error.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (k kind) isKind()       {}

// NewKind returns a new sentinel kind named name.
func NewKind(name string) Kind { return kind(name) }

var (
	// ErrNotFound marks a missing scan or subject.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest marks caller input that can never succeed as given, such as
	// an unknown scan kind or a malformed cursor.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized marks a rejected or missing credential, both for operator
	// tokens and for the breach source API key.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrRateLimited marks a source throttling us. Retrying later may succeed.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is an error tagged with a Kind. It may wrap a cause and carry a
// message; errors.Is and errors.As see both the kind and the cause.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping cause, prefixed by a formatted message.
func Wrap(k Kind, cause error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error whose text is the kind name.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg == "" && e.cause == nil {
		if e.kind == nil {
			return "unknown error"
		}

		return e.kind.Error()
	}
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}

	return e.msg + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches target against the kind first, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.cause != nil && errors.Is(e.cause, target))
}

// As resolves target from the kind first, then the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.cause != nil && errors.As(e.cause, target))
}

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Message() string { return e.msg }

func (e *Error) Cause() error { return e.cause }

// KindOf returns the kind carried anywhere in err's chain, or nil.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// Fatal reports whether retrying err is pointless. A bad credential or bad
// input fails the same way on every attempt; throttling and transport errors
// do not.
func Fatal(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrBadRequest)
}

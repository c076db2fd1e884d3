// Package errors provides the kind-tagged error type used across streamkit.
//
// Instead of generating a nominal error subtype per call site, every failure
// is a single *Error carrying a Kind discriminant. Errors of the same kind
// compare equal under errors.Is regardless of message, and a Class bundles a
// kind with constructors so callers can raise and recognize one family of
// failures.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind discriminates families of errors. Two errors with the same kind are
// treated as the same variant.
type Kind string

// Kinds predeclared for streamkit's own packages. Callers are free to define
// their own kinds; there is no registration step.
const (
	// KindValidation tags errors raised for invalid arguments or configuration.
	KindValidation Kind = "validation"

	// KindIO tags errors raised by filesystem operations.
	KindIO Kind = "io"
)

// Error is the failure type used across streamkit. It carries a Kind
// discriminant, an optional message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New creates an Error of the given kind with a message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithCause attaches a wrapped cause and returns the error for chaining.
// The cause is stored as-is and surfaced by Unwrap.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Cause == nil:
		return string(e.Kind)
	case e.Message == "":
		return string(e.Kind) + ": " + e.Cause.Error()
	case e.Cause == nil:
		return string(e.Kind) + ": " + e.Message
	default:
		return string(e.Kind) + ": " + e.Message + ": " + e.Cause.Error()
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind. A target with an
// empty message acts as a kind sentinel: errors.Is(err, &Error{Kind: k})
// matches any error of kind k. Targets with a message require an exact
// message match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// IsKind reports whether err, or any error it wraps, is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of the first *Error in err's chain. The second
// return value is false when the chain holds no *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Class bundles a kind with constructors. It plays the role of a named error
// subtype: errors built by one class are recognizable as that class and as
// plain errors, nothing more.
type Class struct {
	kind Kind
}

// NewClass creates a Class for the given kind.
func NewClass(kind Kind) *Class {
	return &Class{kind: kind}
}

// Kind returns the kind this class constructs.
func (c *Class) Kind() Kind {
	return c.kind
}

// New creates an error of this class with a message.
func (c *Class) New(message string) *Error {
	return New(c.kind, message)
}

// Newf creates an error of this class with a formatted message.
func (c *Class) Newf(format string, args ...any) *Error {
	return Newf(c.kind, format, args...)
}

// Wrap creates an error of this class wrapping a cause.
func (c *Class) Wrap(message string, cause error) *Error {
	return New(c.kind, message).WithCause(cause)
}

// Is reports whether err belongs to this class.
func (c *Class) Is(err error) bool {
	return IsKind(err, c.kind)
}

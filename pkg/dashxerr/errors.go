// Package dashxerr classifies the errors returned by the SDK. Every error the
// SDK produces on its own (as opposed to plain I/O errors from net/http) is an
// *Error carrying the failing operation and a coarse Kind, so callers can map
// failures to their own status codes without string matching.
package dashxerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrConfiguration = errors.New("invalid configuration")
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindGraphQL       Kind = "graphql"
	KindTransport     Kind = "transport"
)

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrValidation) and errors.Is(err, ErrConfiguration)
// match on kind even when the wrapped message is specific.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	}
	return false
}

// Validation builds a validation error for op with the given message.
func Validation(op, msg string) error {
	return &Error{Op: op, Kind: KindValidation, Err: errors.New(msg)}
}

// Configuration builds a configuration error for op with the given message.
func Configuration(op, msg string) error {
	return &Error{Op: op, Kind: KindConfiguration, Err: errors.New(msg)}
}

// Wrap attaches op and kind to err. It returns nil when err is nil.
func Wrap(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// IsKind reports whether err, or anything it wraps, is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Package fault defines the error kinds shared by the catalog and comment
// stores. Handlers map kinds to HTTP status codes; the stores themselves only
// attach a kind and a short machine-readable message.
package fault

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindInvalidArgument marks input rejected before touching storage.
	KindInvalidArgument Kind = "invalid_argument"
	// KindNotFound marks a referenced entity that does not exist. It is a
	// normal outcome, not a failure of the store.
	KindNotFound Kind = "not_found"
	// KindPreconditionFailed marks a business-rule violation, e.g. the
	// comment deletion window.
	KindPreconditionFailed Kind = "precondition_failed"
	// KindStorage wraps a backend failure. The cause is preserved for
	// diagnostics and never retried here.
	KindStorage Kind = "storage"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(message string) error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Precondition(message string) error {
	return &Error{Kind: KindPreconditionFailed, Message: message}
}

func Storage(err error) error {
	return &Error{Kind: KindStorage, Message: "storage failure", Err: err}
}

// KindOf returns the kind of err, or KindStorage for errors that did not
// originate in this package. Unclassified errors are treated as backend
// failures so handlers never leak them as client mistakes.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindStorage
}

// MessageOf returns the short message of err, or a generic one for errors
// that carry no kind.
func MessageOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return "internal error"
}

func IsInvalid(err error) bool { return is(err, KindInvalidArgument) }

func IsNotFound(err error) bool { return is(err, KindNotFound) }

func IsPrecondition(err error) bool { return is(err, KindPreconditionFailed) }

func IsStorage(err error) bool { return is(err, KindStorage) }

func is(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

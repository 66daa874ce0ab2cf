// Package apperr defines the closed set of failure classifications shared by
// every layer of the application. Services and collaborators raise one of the
// kinds below; the HTTP dispatcher is the only consumer that translates them
// into transport responses.
//
// The taxonomy is deliberately a tagged enum rather than free-text sentinel
// errors: classification never depends on message text, and the dispatcher's
// switch over Kind is total, so an unhandled classification cannot slip
// through as an unanswered request.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies the cause of a failed operation, independent of its wire
// representation. The zero value is KindUnexpected so that an accidentally
// unclassified error still lands in the catch-all branch.
type Kind int

const (
	// KindUnexpected is the catch-all for failures no other kind describes
	// (store errors, programming mistakes). Always mapped to a 500.
	KindUnexpected Kind = iota

	// KindTokenMissing means the request carried no credential at all.
	KindTokenMissing

	// KindTokenExpired means the credential was well-formed but past its
	// expiry. The stored credential is invalid and should be cleared.
	KindTokenExpired

	// KindTokenTypeMismatch means the credential scheme or signature was not
	// the expected Bearer token.
	KindTokenTypeMismatch

	// KindUserNotFound means the credential referenced a user that no longer
	// exists. The stored credential is invalid and should be cleared.
	KindUserNotFound

	// KindValidation means a request field failed validation; Path on the
	// Error names the offending field.
	KindValidation

	// KindNotFound means the addressed resource does not exist.
	KindNotFound

	// KindForbidden means the requester is not allowed to act on the
	// resource (ownership violation).
	KindForbidden
)

// String returns a stable name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindTokenMissing:
		return "token_missing"
	case KindTokenExpired:
		return "token_expired"
	case KindTokenTypeMismatch:
		return "token_type_mismatch"
	case KindUserNotFound:
		return "user_not_found"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	default:
		return "unexpected"
	}
}

// Error is a classified failure. Path is set only for KindValidation and
// names the failing field; Err optionally wraps the underlying cause.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindValidation && e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality, so errors.Is(err, apperr.New(apperr.KindNotFound))
// matches any not-found error regardless of path or cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New returns a classified error of the given kind with no cause.
func New(kind Kind) *Error { return &Error{Kind: kind} }

// Validation returns a validation error for the named field.
func Validation(path string) *Error { return &Error{Kind: KindValidation, Path: path} }

// Wrap classifies an underlying error. A nil cause yields nil so call sites
// can wrap unconditionally.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the classification from any error. Errors that are not
// *apperr.Error (including nil-safe misuse) report KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// PathOf returns the failing field path when err is a validation error,
// otherwise "".
func PathOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindValidation {
		return e.Path
	}
	return ""
}

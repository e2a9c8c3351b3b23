// Package apperr defines the error kinds services return and handlers map
// to HTTP responses. Every kind carries a human-readable message; none is
// fatal to the process.
package apperr

import "errors"

type Kind string

const (
	// KindNotFound covers both truly absent records and records hidden from
	// the caller where existence is not disclosed (owner-folded lookups).
	KindNotFound Kind = "NOT_FOUND"
	// KindForbidden means the record exists and the caller may know it does,
	// but is not the owner.
	KindForbidden Kind = "FORBIDDEN"
	// KindConflict covers duplicate album names and exhausted share-code retries.
	KindConflict Kind = "CONFLICT"
	// KindPasswordRequired tells the caller to retry with a password. It is
	// deliberately distinct from KindUnauthorized so clients can render a
	// password prompt instead of a hard failure.
	KindPasswordRequired Kind = "PASSWORD_REQUIRED"
	// KindUnauthorized means a supplied credential did not verify.
	KindUnauthorized Kind = "UNAUTHORIZED"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func PasswordRequired(message string) *Error {
	return &Error{Kind: KindPasswordRequired, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// KindOf returns the kind of err, or "" when err is not an apperr.Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an apperr.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

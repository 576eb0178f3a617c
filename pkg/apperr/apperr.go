package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so handlers can pick the right
// response without matching on message text.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindUnauthorized
	KindInternal
)

// Error is a kind-coded application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports invalid or missing required input
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict reports a uniqueness violation caught before insert
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound reports a missing row lookup
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Unauthorized reports a failed login or missing permission
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Internal wraps a store or infrastructure failure
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from any error, defaulting to KindInternal
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Message extracts the user-facing message from any error
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}

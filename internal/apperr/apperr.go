// Package apperr defines the error taxonomy shared by validation,
// repositories and HTTP handlers. Every failure a client can see is
// one of these kinds, carrying the user-facing message.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	MissingField Kind = iota
	InvalidFormat
	OutOfRange
	Conflict
	Unauthorized
	NotFound
	StoreFailure
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Store wraps an underlying store error, passing its message through
// verbatim.
func Store(err error) *Error {
	return &Error{Kind: StoreFailure, Message: err.Error()}
}

// KindOf extracts the kind from err, defaulting to StoreFailure for
// anything outside the taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return StoreFailure
}

// HTTPStatus maps a kind to the response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case MissingField, InvalidFormat, OutOfRange:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Package apierror provides standardized error response structures for the API
// and the error kinds every service operation may fail with. All errors
// returned to clients go through this package to ensure consistency and to
// prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service-level failure. Handlers translate kinds into
// HTTP status codes in exactly one place (Status).
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInsufficientStock
	KindInvalid
)

// Error is the typed error services return. It carries the kind plus
// structured context (the offending entity and id) — never user-facing
// prose beyond Msg, which handlers may surface verbatim for 4xx kinds.
type Error struct {
	Kind      Kind
	Msg       string
	Entity    string
	ID        string
	ProductID string // set for insufficient-stock failures
	Err       error  // wrapped cause, logged but never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind so callers can use errors.Is against sentinels like
// ErrTokenExpired without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Msg: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Msg: msg} }
func Invalid(msg string) *Error      { return &Error{Kind: KindInvalid, Msg: msg} }

func NotFound(entity, id string) *Error {
	return &Error{
		Kind:   KindNotFound,
		Msg:    entity + " not found",
		Entity: entity,
		ID:     id,
	}
}

func InsufficientStock(productID string) *Error {
	return &Error{
		Kind:      KindInsufficientStock,
		Msg:       "insufficient stock for product " + productID,
		ProductID: productID,
	}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// ErrTokenExpired distinguishes natural token expiry from a malformed or
// badly signed token. Both map to 401, but callers can tell them apart.
var ErrTokenExpired = &Error{Kind: KindUnauthorized, Msg: "token expired"}

// KindOf extracts the kind from any error chain; unclassified errors are
// treated as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error kind to the HTTP status the transport layer emits.
func Status(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInsufficientStock, KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// Package apperror defines the caller-visible failure kinds returned by services.
//
// Handlers never inspect error strings: they map an *Error to an HTTP status through
// StatusCode and render Kind, Message and Details as the response body.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation      Kind = "VALIDATION_ERROR"
	KindNotFound        Kind = "NOT_FOUND"
	KindPolicyViolation Kind = "POLICY_VIOLATION"
	KindAccessDenied    Kind = "ACCESS_DENIED"
	KindConflict        Kind = "CONFLICT"
	KindExternalService Kind = "EXTERNAL_SERVICE_ERROR"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindInternal        Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches sentinels by kind and message, so a sentinel enriched with
// details through WithDetails still satisfies errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// WithDetails returns a copy of e carrying machine-readable details.
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func Validation(message string) *Error      { return New(KindValidation, message) }
func NotFound(message string) *Error        { return New(KindNotFound, message) }
func PolicyViolation(message string) *Error { return New(KindPolicyViolation, message) }
func AccessDenied(message string) *Error    { return New(KindAccessDenied, message) }
func Conflict(message string) *Error        { return New(KindConflict, message) }
func Unauthorized(message string) *Error    { return New(KindUnauthorized, message) }

func ExternalService(message string, cause error) *Error {
	return Wrap(KindExternalService, message, cause)
}

// KindOf reports the kind of err, or KindInternal for errors outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPolicyViolation:
		if _, ok := appErr.Details["remaining_minutes"]; ok {
			return http.StatusTooManyRequests
		}
		return http.StatusForbidden
	case KindAccessDenied:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindExternalService:
		return http.StatusBadGateway
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

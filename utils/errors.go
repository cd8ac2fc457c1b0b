package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error implementation that allows exported globals to be
// declared with the const keyword.
type Error string

func (err Error) Error() string { return string(err) }

// Error categories. Every domain failure wraps exactly one of these; the
// HTTP layer maps the category to a status code.
const (
	ErrValidation     Error = "validation error"
	ErrAuthentication Error = "authentication error"
	ErrAuthorization  Error = "authorization error"
	ErrNotFound       Error = "not found"
	ErrConflict       Error = "conflict"
)

// APIError carries a category plus the message the client should see.
type APIError struct {
	Kind    Error
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Is(target error) bool { return target == e.Kind }

func Validationf(format string, args ...any) error {
	return &APIError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Authenticationf(format string, args ...any) error {
	return &APIError{Kind: ErrAuthentication, Message: fmt.Sprintf(format, args...)}
}

func Authorizationf(format string, args ...any) error {
	return &APIError{Kind: ErrAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &APIError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &APIError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// StatusFor maps a domain error onto its HTTP status. Conflicts surface as
// 400 with an explanatory message, matching the existing API surface.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Package domain defines the error kinds shared by the service packages.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError indicates the referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AuthorizationError indicates the entity exists but the acting user
// has no rights on it.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// InvariantError indicates a write that should have produced a result
// produced none. It maps to a client-visible 400 but signals an
// unexpected storage state and is logged as an anomaly at the boundary.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrAuthorization creates an AuthorizationError with a formatted message.
func ErrAuthorization(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvariant creates an InvariantError with a formatted message.
func ErrInvariant(format string, args ...any) *InvariantError {
	return &InvariantError{Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps a domain error to an HTTP status code. Anything that is
// not a classified domain error is a storage fault and maps to 500.
func HTTPStatus(err error) int {
	var notFound *NotFoundError
	var authz *AuthorizationError
	var invariant *InvariantError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &authz):
		return http.StatusForbidden
	case errors.As(err, &invariant):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var authz *AuthorizationError
	return errors.As(err, &authz)
}

// IsInvariant reports whether err is an InvariantError.
func IsInvariant(err error) bool {
	var invariant *InvariantError
	return errors.As(err, &invariant)
}

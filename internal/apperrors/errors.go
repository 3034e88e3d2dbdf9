package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusinessRule indicates that a well-formed request violates an account rule
// (inactive account, insufficient balance).
var ErrBusinessRule = errors.New("business rule violation")

// ErrInternal indicates an unexpected infrastructure failure.
var ErrInternal = errors.New("internal error")

// GenericInternalMessage is the only message callers see for infrastructure failures.
const GenericInternalMessage = "An unexpected error occurred. Please contact the administrator."

// HTTPStatus maps an error to the HTTP status of its kind.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrBusinessRule):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Label returns the short category label used in error payloads.
func Label(err error) string {
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		return "Validation Error"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusUnprocessableEntity:
		return "Business Rule Violation"
	default:
		return "Internal Server Error"
	}
}

// PublicMessage returns the message safe to show to a caller.
// Infrastructure failures never leak their cause.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return GenericInternalMessage
	}
	return err.Error()
}

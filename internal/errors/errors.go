package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrIdeaNotFound is returned when an idea does not exist or the
	// identifier is malformed.
	ErrIdeaNotFound = errors.New("idea not found")
	// ErrNotIdeaOwner is returned when an authenticated user tries to modify
	// an idea they do not own.
	ErrNotIdeaOwner = errors.New("not authorized to modify this idea")
	// ErrMissingFields is returned when required idea fields are empty after
	// trimming.
	ErrMissingFields = errors.New("title, summary and description are required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrIdeaNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "IDEA_NOT_FOUND")
	case ErrNotIdeaOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrMissingFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

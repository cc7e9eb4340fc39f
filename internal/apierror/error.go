package apierror

import (
	"net/http"

	"github.com/pkg/errors"
)

type (
	// An APIError represents the error format that can be rendered by the services.
	APIError struct {
		HTTPCode   int `json:"-"`
		FieldError err `json:"error"`
	}

	err struct {
		Tag     string `json:"tag,omitempty"`
		Message string `json:"message"`
	}
)

// StatusCode returns the HTTP status code.
func StatusCode(e error) int {
	var apierr *APIError
	if errors.As(e, &apierr) && apierr.HTTPCode != 0 {
		return apierr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new APIError with the given message.
func New(message string) *APIError {
	return &APIError{FieldError: err{Message: message}}
}

// NewWithTagCode returns a new APIError with the given code, tag and message.
func NewWithTagCode(code int, tag, message string) *APIError {
	return &APIError{HTTPCode: code, FieldError: err{Tag: tag, Message: message}}
}

// NotFound returns a 404 APIError for the given resource name.
func NotFound(resource string) *APIError {
	return NewWithTagCode(http.StatusNotFound, "not-found", resource+" not found.")
}

// InvalidParameters returns a 400 APIError with the given message.
func InvalidParameters(message string) *APIError {
	return NewWithTagCode(http.StatusBadRequest, "invalid-parameters", message)
}

// Error implements error interface.
func (e *APIError) Error() string {
	return e.FieldError.Message
}

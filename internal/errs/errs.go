// Package errs defines the error envelope returned to API clients.
package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// HTTPError is serialized as the response body of every failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level messages keyed by field name.
	Errors map[string][]string `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError regardless of its content.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewValidationError carries per-field messages with a 400 status.
func NewValidationError(fields map[string][]string) *HTTPError {
	return &HTTPError{
		Code:    "VALIDATION_FAILED",
		Message: "Validation failed",
		Status:  http.StatusBadRequest,
		Errors:  fields,
	}
}

func NewUnprocessableEntityError(code, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewInternalServerError hides the underlying error from the client.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// Write renders err as JSON. Errors that are not *HTTPError become a generic 500.
func Write(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = NewInternalServerError()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Status)
	json.NewEncoder(w).Encode(httpErr)
}

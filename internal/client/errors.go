package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx reply from the backend.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error (%d): %s - %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new API error.
func NewAPIError(statusCode int, message, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// NetworkError represents a transport-level failure: the request never
// produced a backend response.
type NetworkError struct {
	Operation string
	URL       string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s to %s: %v", e.Operation, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if an error is a backend API error.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNotFound checks if an error is a 404 from the backend.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden checks if an error is a 403 from the backend.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsConflict checks if an error is a 409 from the backend (duplicate
// username or email on register/create).
func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}

func statusIs(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// UserMessage extracts a message fit for display: the server-supplied
// message when there is one, otherwise the fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

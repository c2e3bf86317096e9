package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates no API key is configured
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrInvalidRequest indicates the request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDecode indicates the response body was not valid JSON
	ErrDecode = errors.New("malformed response")

	// ErrNoStopsFound indicates a stops fetch yielded no usable records
	ErrNoStopsFound = errors.New("no stops found")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrUnauthorized indicates the API rejected the key
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError represents a non-200 response from the 511 API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for APIError
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == 401 || e.StatusCode == 403
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode == 400
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

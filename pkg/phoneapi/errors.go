package phoneapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidConfig is returned by NewClient for an unusable Config
	ErrInvalidConfig = errors.New("invalid client config")

	// ErrInvalidRequest is returned when the server rejects the input (400)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when the phone does not exist (404)
	ErrNotFound = errors.New("phone not found")

	// ErrServer is returned for 5xx responses
	ErrServer = errors.New("server error")

	// ErrNetworkError is returned when the server could not be reached
	ErrNetworkError = errors.New("network error")
)

// APIError is a non-2xx answer decoded from the server's error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("phone api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap lets errors.Is match the sentinel for the status class.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return ErrInvalidRequest
	}
}

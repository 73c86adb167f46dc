package weatherapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers unreachable endpoints, timeouts and non-2xx responses
	ErrNetwork = errors.New("weather API unreachable")
	// ErrDecode is returned when a response body has an unexpected shape
	ErrDecode = errors.New("weather API response malformed")
	// ErrEmptyResult is returned when a valid forecast response has no days
	ErrEmptyResult = errors.New("weather API returned no data")
	// ErrInvalidRequest is returned before any I/O when preconditions fail
	ErrInvalidRequest = errors.New("invalid weather request")
)

// APIError is the error payload weatherapi.com sends with non-2xx responses
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.Status)
	}
	return fmt.Sprintf("status %d: %s (code %d)", e.Status, e.Message, e.Code)
}

// Unwrap lets errors.Is(err, ErrNetwork) match API errors
func (e *APIError) Unwrap() error {
	return ErrNetwork
}

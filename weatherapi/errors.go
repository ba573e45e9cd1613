package weatherapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("city not found")
)

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weatherapi error: %d - %s", e.Code, e.Message)
	}
	return fmt.Sprintf("weatherapi error: %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

// NetworkError is a failure below HTTP: DNS, refused connections, timeouts
// and truncated bodies.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError means the body was not the JSON document we expect.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// UserMessage turns a Client error into the line shown on the terminal.
func UserMessage(err error) string {
	var (
		statusErr  *StatusError
		networkErr *NetworkError
		decodeErr  *DecodeError
	)
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Access denied. Check your API key."
	case errors.Is(err, ErrNotFound):
		return "Can't find weather data for this city."
	case errors.As(err, &statusErr):
		if statusErr.Message != "" {
			return fmt.Sprintf("Something went wrong... (%d: %s)", statusErr.Code, statusErr.Message)
		}
		return fmt.Sprintf("Something went wrong... (%d)", statusErr.Code)
	case errors.As(err, &networkErr):
		return fmt.Sprintf("Network error: couldn't reach the weather service (%v).", networkErr.Err)
	case errors.As(err, &decodeErr):
		return "Couldn't read the server response."
	default:
		return fmt.Sprintf("Something went wrong... (%v)", err)
	}
}

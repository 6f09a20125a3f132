package api

import (
	"fmt"
	"strings"
)

// The client normalizes every failure into one of four error types so the
// UI can surface a single human-readable message:
//
//   - ValidationError: a precondition caught before any network call, or a
//     field-level rejection reported by the server.
//   - APIError: the server rejected the request with a message.
//   - NetworkError: the transport failed; the raw cause is kept for logs
//     but never shown to the user.
//   - ServerError: the response body could not be decoded.

// ValidationError reports invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// APIError reports a non-2xx response carrying a server-provided message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// NetworkError reports a transport failure (connection refused, DNS, ...).
// Its message is fixed so raw transport detail never reaches the user.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return "connection error, check your network and try again"
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// ServerError reports a response whose body was not valid JSON.
type ServerError struct {
	Status     int
	StatusText string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d %s", e.Status, e.StatusText)
}

// fieldError is one entry of the server's validation error list.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func joinFieldErrors(errs []fieldError) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, ", ")
}

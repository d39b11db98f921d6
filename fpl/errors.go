package fpl

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates a record was absent from otherwise valid API data,
// such as a player or fixture ID that does not exist. It is distinct from a
// 404 response, which surfaces as a *StatusError.
var ErrNotFound = errors.New("not found")

// RequestError indicates the HTTP request itself failed before a response
// arrived: DNS failure, connection refused, timeout.
type RequestError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("fpl: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError indicates the API answered with a non-2xx status code.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("fpl: request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// IsNotFound checks if the response was a 404
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError checks if the response was a 5xx
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// DecodeError indicates a success response whose body could not be decoded
// into the expected shape.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("fpl: decoding response from %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

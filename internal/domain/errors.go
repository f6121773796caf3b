package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary search domain. Callers match with
// errors.Is; adapters map them to HTTP status codes.
var (
	// ErrInvalidCriteria indicates the search criteria failed validation.
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrMalformedRecord indicates a single result item is missing
	// required chain fields. The item is dropped; the page survives.
	ErrMalformedRecord = errors.New("malformed itinerary record")

	// ErrItineraryNotFound indicates no itinerary exists under the
	// requested ID.
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrNoSeatsAvailable indicates the reservation API reported a seat
	// availability conflict. The outcome is opaque to this service.
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrUpstreamUnavailable indicates the search API could not be
	// reached or answered with a server error.
	ErrUpstreamUnavailable = errors.New("search API unavailable")
)

// UpstreamError wraps a failure talking to the search or reservation API
// with the operation that failed and whether a retry could help.
type UpstreamError struct {
	// Op is the logical operation, e.g. "search" or "reserve".
	Op string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether retrying the call might succeed.
	Retryable bool
}

// NewUpstreamError creates a non-retryable upstream error.
func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

// NewRetryableUpstreamError creates an upstream error a retry might resolve,
// such as a timeout or a 5xx response.
func NewRetryableUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err, Retryable: true}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

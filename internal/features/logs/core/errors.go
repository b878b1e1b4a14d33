package logs_core

import (
	"errors"
	"fmt"
)

// FetchError describes why a log query did not produce records.
type FetchError struct {
	Kind       FetchFailureKind `json:"kind"`
	StatusCode int              `json:"statusCode,omitempty"`
	Message    string           `json:"message"`
	Err        error            `json:"-"`
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newNetworkFailure(message string, err error) *FetchError {
	return &FetchError{Kind: FetchFailureNetwork, Message: message, Err: err}
}

func newMalformedResponse(message string, err error) *FetchError {
	return &FetchError{Kind: FetchFailureMalformedResponse, Message: message, Err: err}
}

// FetchFailureKindOf returns the failure kind, treating unknown errors as
// network failures.
func FetchFailureKindOf(err error) FetchFailureKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}

	return FetchFailureNetwork
}

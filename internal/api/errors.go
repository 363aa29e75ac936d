package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for transport-level reporting.
var (
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	ErrValidation      = errors.New("validation error")
)

// RemoteError reports a non-2xx response from the contact endpoint.
type RemoteError struct {
	StatusCode int
	RequestID  string
	Message    string
}

func (e RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote error %d: %s [request_id=%s]", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("remote error %d [request_id=%s]", e.StatusCode, e.RequestID)
}

package flowmesh

import (
	"context"
	"errors"
	"fmt"
)

// ConfigurationError reports invalid or contradictory client configuration.
// It is returned synchronously by New and UpdateAccessToken, never from a
// flow execution itself.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// NetworkError reports a transport-level failure: connection refused, DNS
// failure, timeout, or context cancellation. Workflow-level failures are not
// network errors; they come back as a normal FlowResponse.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	switch {
	case errors.Is(e.Err, context.Canceled):
		return fmt.Sprintf("request canceled: %s", e.URL)
	case errors.Is(e.Err, context.DeadlineExceeded):
		return fmt.Sprintf("request timed out: %s", e.URL)
	default:
		return fmt.Sprintf("network error: unable to reach %s: %v", e.URL, e.Err)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not a valid JSON envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

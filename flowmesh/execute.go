package flowmesh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/flowmesh/flowmesh-go/pkg/logger"
)

// ExecuteFlow runs the flow identified by flowID with the given payload and
// returns the parsed response envelope. The payload is serialized as the JSON
// request body without validation; its shape is flow-specific and the
// caller's responsibility.
//
// A well-formed envelope is always returned as a value, even when the flow
// itself reports Status "error" and regardless of the HTTP status code (an
// expired-token 403 included; re-authentication is the caller's concern).
// ExecuteFlow returns an error only for transport failures (*NetworkError)
// or a body that is not valid JSON (*ParseError). No retries are performed.
func (c *Client) ExecuteFlow(ctx context.Context, flowID string, payload any) (*FlowResponse, error) {
	if strings.TrimSpace(flowID) == "" {
		return nil, fmt.Errorf("flow id is required")
	}
	log := logger.FromContext(ctx)
	requestID := uuid.NewString()
	path := fmt.Sprintf("/%s/%s", url.PathEscape(c.projectID), url.PathEscape(flowID))

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetAuthToken(c.bearerToken())
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, c.transformRequestError(path, err)
	}

	var envelope FlowResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, &ParseError{Err: err}
	}

	log.Debug("flow execution completed",
		"flow_id", flowID,
		"request_id", requestID,
		"http_status", resp.StatusCode(),
		"status", envelope.Status,
	)
	return &envelope, nil
}

func (c *Client) transformRequestError(path string, err error) error {
	var typeErr *json.UnsupportedTypeError
	var valueErr *json.UnsupportedValueError
	if errors.As(err, &typeErr) || errors.As(err, &valueErr) {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return &NetworkError{URL: path, Err: err}
}

package flowmesh

import "encoding/json"

// Flow execution statuses reported by the platform.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// FlowResponse is the envelope returned by a flow execution. A response with
// Status "error" is a normal return value, not a Go error: callers branch on
// it. Result is opaque to the client; its shape is defined by the flow.
type FlowResponse struct {
	Status     string          `json:"status"`
	Result     json.RawMessage `json:"result,omitempty"`
	Message    string          `json:"message,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
}

// IsError reports whether the flow itself failed.
func (r *FlowResponse) IsError() bool {
	return r.Status == StatusError
}

// DecodeResult unmarshals the opaque result into v.
func (r *FlowResponse) DecodeResult(v any) error {
	if len(r.Result) == 0 {
		return nil
	}
	return json.Unmarshal(r.Result, v)
}

// Package flowmesh is the Go client for the Flowmesh platform. It executes
// pre-defined flows by identifier with a JSON payload over an authenticated
// HTTP call and normalizes the result into a FlowResponse envelope.
package flowmesh

import (
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/flowmesh/flowmesh-go/pkg/version"
)

const defaultTimeout = 30 * time.Second

// Config holds the connection settings for a Client. Endpoint and ProjectID
// are required; Credential must be built with APIKey or AccessToken.
type Config struct {
	// Endpoint is the base URL of the Flowmesh service.
	Endpoint string
	// ProjectID scopes every flow execution to a project.
	ProjectID string
	// Credential is the authentication mode, exactly one of API key or
	// access token.
	Credential Credential
	// Timeout bounds each request; zero means 30s.
	Timeout time.Duration
	// Debug enables request/response dumps from the HTTP client.
	Debug bool
}

// Client issues flow executions against a single project. A client is safe
// for concurrent ExecuteFlow calls; each call snapshots the credential at
// request-construction time.
type Client struct {
	http      *resty.Client
	projectID string

	mu         sync.RWMutex
	credential Credential
}

// New validates cfg and builds a Client. It returns a *ConfigurationError
// when the endpoint or project is missing, the endpoint is not an absolute
// http(s) URL, or no credential was provided.
func New(cfg Config) (*Client, error) {
	endpoint, err := validateEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, &ConfigurationError{Field: "projectId", Reason: "project id is required"}
	}
	if cfg.Credential.IsZero() {
		return nil, &ConfigurationError{
			Field:  "credential",
			Reason: "exactly one of an API key or an access token is required",
		}
	}
	if strings.TrimSpace(cfg.Credential.value) == "" {
		return nil, &ConfigurationError{Field: "credential", Reason: "credential value must not be empty"}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "flowmesh-go/"+version.GetVersion())
	if cfg.Debug {
		httpClient.SetDebug(true)
	}

	return &Client{
		http:       httpClient,
		projectID:  cfg.ProjectID,
		credential: cfg.Credential,
	}, nil
}

// validateEndpoint checks the endpoint is an absolute http(s) URL and strips
// a trailing slash so path joining stays predictable.
func validateEndpoint(endpoint string) (string, error) {
	if strings.TrimSpace(endpoint) == "" {
		return "", &ConfigurationError{Field: "endpoint", Reason: "endpoint is required"}
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", &ConfigurationError{Field: "endpoint", Reason: "invalid URL: " + err.Error()}
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", &ConfigurationError{
			Field:  "endpoint",
			Reason: "endpoint must be an absolute URL with a host, got: " + endpoint,
		}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &ConfigurationError{
			Field:  "endpoint",
			Reason: "endpoint scheme must be http or https, got: " + parsed.Scheme,
		}
	}
	return strings.TrimRight(endpoint, "/"), nil
}

// UpdateAccessToken replaces the stored access token in place. Requests
// issued after it returns use the new token; in-flight requests already
// captured the old one. The client must be configured with an access-token
// credential: rotating an API-key client is a configuration error.
func (c *Client) UpdateAccessToken(newToken string) error {
	if strings.TrimSpace(newToken) == "" {
		return &ConfigurationError{Field: "accessToken", Reason: "token must not be empty"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.credential.kind != credentialAccessToken {
		return &ConfigurationError{
			Field:  "credential",
			Reason: "client is configured with an API key; only access tokens can be rotated",
		}
	}
	c.credential = AccessToken(newToken)
	return nil
}

// bearerToken snapshots the current credential value.
func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential.value
}

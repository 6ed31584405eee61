// Package config loads the Flowmesh client configuration for the CLI from
// defaults and FLOWMESH_* environment variables. The library itself only
// accepts explicit construction parameters; this package is the bridge
// between the environment and a flowmesh.Config.
package config

import (
	"time"

	"github.com/flowmesh/flowmesh-go/flowmesh"
)

// Config represents the complete configuration surface of the CLI.
// It provides type-safe access to all configuration values with validation.
type Config struct {
	Endpoint    string          `koanf:"endpoint"     env:"FLOWMESH_ENDPOINT"     validate:"required"`
	ProjectID   string          `koanf:"project_id"   env:"FLOWMESH_PROJECT_ID"   validate:"required"`
	APIKey      SensitiveString `koanf:"api_key"      env:"FLOWMESH_API_KEY"      sensitive:"true"`
	AccessToken SensitiveString `koanf:"access_token" env:"FLOWMESH_ACCESS_TOKEN" sensitive:"true"`
	Timeout     time.Duration   `koanf:"timeout"      env:"FLOWMESH_TIMEOUT"`
	Runtime     RuntimeConfig   `koanf:"runtime"`
}

// RuntimeConfig contains logging and diagnostics configuration.
type RuntimeConfig struct {
	LogLevel string `koanf:"log_level" env:"FLOWMESH_LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	LogJSON  bool   `koanf:"log_json"  env:"FLOWMESH_LOG_JSON"`
	Debug    bool   `koanf:"debug"     env:"FLOWMESH_DEBUG"`
}

// Default returns the built-in defaults applied before environment loading.
func Default() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
	}
}

// Credential maps the loose api_key/access_token fields onto the client's
// tagged credential, enforcing that exactly one of them is set.
func (c *Config) Credential() (flowmesh.Credential, error) {
	hasKey := c.APIKey.Value() != ""
	hasToken := c.AccessToken.Value() != ""
	switch {
	case hasKey && hasToken:
		return flowmesh.Credential{}, &flowmesh.ConfigurationError{
			Field:  "credential",
			Reason: "api_key and access_token are mutually exclusive; set only one",
		}
	case hasKey:
		return flowmesh.APIKey(c.APIKey.Value()), nil
	case hasToken:
		return flowmesh.AccessToken(c.AccessToken.Value()), nil
	default:
		return flowmesh.Credential{}, &flowmesh.ConfigurationError{
			Field:  "credential",
			Reason: "either api_key or access_token is required",
		}
	}
}

// ClientConfig builds the flowmesh.Config the CLI hands to flowmesh.New.
func (c *Config) ClientConfig() (flowmesh.Config, error) {
	credential, err := c.Credential()
	if err != nil {
		return flowmesh.Config{}, err
	}
	return flowmesh.Config{
		Endpoint:   c.Endpoint,
		ProjectID:  c.ProjectID,
		Credential: credential,
		Timeout:    c.Timeout,
		Debug:      c.Runtime.Debug,
	}, nil
}

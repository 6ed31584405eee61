package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmesh/flowmesh-go/flowmesh"
)

func TestConfig_Credential(t *testing.T) {
	t.Run("Should map an api key to the api-key variant", func(t *testing.T) {
		cfg := &Config{APIKey: "k1"}
		credential, err := cfg.Credential()
		require.NoError(t, err)
		assert.False(t, credential.IsZero())
	})

	t.Run("Should map an access token to the access-token variant", func(t *testing.T) {
		cfg := &Config{AccessToken: "T1"}
		credential, err := cfg.Credential()
		require.NoError(t, err)
		assert.False(t, credential.IsZero())
	})

	t.Run("Should fail when both credentials are set", func(t *testing.T) {
		cfg := &Config{APIKey: "k1", AccessToken: "T1"}
		_, err := cfg.Credential()
		var cfgErr *flowmesh.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "mutually exclusive")
	})

	t.Run("Should fail when neither credential is set", func(t *testing.T) {
		cfg := &Config{}
		_, err := cfg.Credential()
		var cfgErr *flowmesh.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestConfig_ClientConfig(t *testing.T) {
	t.Run("Should carry connection settings over to the client config", func(t *testing.T) {
		cfg := &Config{
			Endpoint:  "https://api.flowmesh.dev",
			ProjectID: "p1",
			APIKey:    "k1",
			Timeout:   45 * time.Second,
		}
		clientCfg, err := cfg.ClientConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://api.flowmesh.dev", clientCfg.Endpoint)
		assert.Equal(t, "p1", clientCfg.ProjectID)
		assert.Equal(t, 45*time.Second, clientCfg.Timeout)

		client, err := flowmesh.New(clientCfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

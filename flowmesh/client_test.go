package flowmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Should build a client from a valid config", func(t *testing.T) {
		client, err := New(Config{
			Endpoint:   "https://api.flowmesh.dev",
			ProjectID:  "p1",
			Credential: APIKey("k1"),
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Should reject a missing endpoint", func(t *testing.T) {
		_, err := New(Config{ProjectID: "p1", Credential: APIKey("k1")})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "endpoint", cfgErr.Field)
	})

	t.Run("Should reject a relative endpoint", func(t *testing.T) {
		_, err := New(Config{Endpoint: "api.flowmesh.dev/v1", ProjectID: "p1", Credential: APIKey("k1")})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "endpoint", cfgErr.Field)
	})

	t.Run("Should reject a non-http scheme", func(t *testing.T) {
		_, err := New(Config{Endpoint: "ftp://api.flowmesh.dev", ProjectID: "p1", Credential: APIKey("k1")})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "scheme")
	})

	t.Run("Should reject a missing project id", func(t *testing.T) {
		_, err := New(Config{Endpoint: "https://api.flowmesh.dev", Credential: APIKey("k1")})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "projectId", cfgErr.Field)
	})

	t.Run("Should reject a zero credential", func(t *testing.T) {
		_, err := New(Config{Endpoint: "https://api.flowmesh.dev", ProjectID: "p1"})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "credential", cfgErr.Field)
	})

	t.Run("Should reject an empty credential value", func(t *testing.T) {
		_, err := New(Config{Endpoint: "https://api.flowmesh.dev", ProjectID: "p1", Credential: APIKey("")})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "credential", cfgErr.Field)
	})
}

func TestClient_UpdateAccessToken(t *testing.T) {
	t.Run("Should rotate the token on an access-token client", func(t *testing.T) {
		client, err := New(Config{
			Endpoint:   "https://api.flowmesh.dev",
			ProjectID:  "p1",
			Credential: AccessToken("T1"),
		})
		require.NoError(t, err)

		require.NoError(t, client.UpdateAccessToken("T2"))
		assert.Equal(t, "T2", client.bearerToken())
	})

	t.Run("Should fail on an api-key client", func(t *testing.T) {
		client, err := New(Config{
			Endpoint:   "https://api.flowmesh.dev",
			ProjectID:  "p1",
			Credential: APIKey("k1"),
		})
		require.NoError(t, err)

		err = client.UpdateAccessToken("T2")
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "k1", client.bearerToken())
	})

	t.Run("Should reject an empty token", func(t *testing.T) {
		client, err := New(Config{
			Endpoint:   "https://api.flowmesh.dev",
			ProjectID:  "p1",
			Credential: AccessToken("T1"),
		})
		require.NoError(t, err)

		err = client.UpdateAccessToken("")
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "T1", client.bearerToken())
	})
}

package flowmesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredential(t *testing.T) {
	t.Run("Should report zero for the empty credential", func(t *testing.T) {
		assert.True(t, Credential{}.IsZero())
		assert.False(t, APIKey("k1").IsZero())
		assert.False(t, AccessToken("T1").IsZero())
	})

	t.Run("Should redact the secret when formatted", func(t *testing.T) {
		assert.Equal(t, "APIKey([REDACTED])", fmt.Sprintf("%s", APIKey("super-secret")))
		assert.Equal(t, "AccessToken([REDACTED])", fmt.Sprintf("%s", AccessToken("super-secret")))
		assert.Equal(t, "Credential(none)", Credential{}.String())
		assert.NotContains(t, fmt.Sprintf("%v", APIKey("super-secret")), "super-secret")
	})
}

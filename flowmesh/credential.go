package flowmesh

type credentialKind uint8

const (
	credentialNone credentialKind = iota
	credentialAPIKey
	credentialAccessToken
)

// Credential is the authentication mode for a client: either an API key or an
// access token, never both. The zero value carries no credential and is
// rejected by New. Build one with APIKey or AccessToken.
type Credential struct {
	kind  credentialKind
	value string
}

// APIKey returns a credential that authenticates with a static API key.
// API keys are fixed for the lifetime of the client.
func APIKey(key string) Credential {
	return Credential{kind: credentialAPIKey, value: key}
}

// AccessToken returns a credential that authenticates with an access token.
// Tokens can be rotated later via Client.UpdateAccessToken.
func AccessToken(token string) Credential {
	return Credential{kind: credentialAccessToken, value: token}
}

// IsZero reports whether the credential carries no authentication material.
func (c Credential) IsZero() bool {
	return c.kind == credentialNone
}

// String redacts the secret so credentials are safe to log.
func (c Credential) String() string {
	switch c.kind {
	case credentialAPIKey:
		return "APIKey([REDACTED])"
	case credentialAccessToken:
		return "AccessToken([REDACTED])"
	default:
		return "Credential(none)"
	}
}

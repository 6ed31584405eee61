package config

import "encoding/json"

// SensitiveString is a string that redacts itself in logs and JSON output.
// Use Value to read the actual secret.
type SensitiveString string

const redacted = "[REDACTED]"

// String returns a redacted placeholder for non-empty values.
func (s SensitiveString) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// Value returns the actual secret value.
func (s SensitiveString) Value() string {
	return string(s)
}

// MarshalJSON marshals the redacted placeholder, never the secret.
func (s SensitiveString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a plain JSON string.
func (s *SensitiveString) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*s = SensitiveString(value)
	return nil
}

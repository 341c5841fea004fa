package models

import "strings"

// Credentials carries the platform API key supplied by the caller. It is the
// body of POST /verify-api-key and is never persisted.
type Credentials struct {
	APIKey string `json:"apiKey" form:"apiKey"`
}

// Trimmed returns a copy with surrounding whitespace removed.
func (c Credentials) Trimmed() Credentials {
	return Credentials{APIKey: strings.TrimSpace(c.APIKey)}
}

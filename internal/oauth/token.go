package oauth

import (
	"strings"
	"time"
)

// expiryBuffer rejects tokens that are about to lapse mid-run.
const expiryBuffer = 30 * time.Second

// Token is the persisted record of a password-grant exchange. ExpirationTime
// is stamped locally at acquisition; the server only reports ExpiresIn.
type Token struct {
	AccessToken    string    `json:"access_token"`
	TokenType      string    `json:"token_type,omitempty"`
	ExpiresIn      int64     `json:"expires_in,omitempty"`
	ExpirationTime time.Time `json:"expiration_time"`
}

// Valid reports whether the token can still be sent as a bearer credential.
func (t *Token) Valid() bool {
	if t == nil {
		return false
	}
	if strings.TrimSpace(t.AccessToken) == "" {
		return false
	}
	if t.ExpirationTime.IsZero() {
		return false
	}
	return time.Now().Before(t.ExpirationTime.Add(-expiryBuffer))
}

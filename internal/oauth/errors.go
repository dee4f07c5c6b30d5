package oauth

import "fmt"

// AuthError reports a 200 identity response without an access token.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "auth error: access token missing from identity response"
	}
	return "auth error: " + e.Message
}

// TransportError reports a non-200 status from the identity endpoint.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("identity request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// TLSError reports a certificate validation failure during the token exchange.
type TLSError struct {
	Err error
}

func (e *TLSError) Error() string {
	return fmt.Sprintf("tls certificate validation failed: %v", e.Err)
}

func (e *TLSError) Unwrap() error {
	return e.Err
}

package oauth

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultIdentityURL = "https://autocare-identity.autocare.org/connect/token"
	DefaultScope       = "CommonApis QDBApis PcadbApis BrandApis VcdbApis offline_access"

	defaultExpiresIn = 3600
	defaultTimeout   = 30 * time.Second
)

// Client performs the OAuth2 password-grant exchange against the identity
// endpoint. It never refreshes or retries; an expired token is replaced by a
// fresh exchange.
type Client struct {
	config     *oauth2.Config
	httpClient *http.Client
	username   string
	password   string
}

// Options configures a Client. Zero values fall back to the AutoCare
// production endpoint and scopes.
type Options struct {
	IdentityURL  string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Scopes       []string
	Timeout      time.Duration

	// InsecureSkipTLSVerify disables certificate validation. Off unless the
	// operator opts in explicitly.
	InsecureSkipTLSVerify bool
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewClient(opts Options) *Client {
	identityURL := strings.TrimSpace(opts.IdentityURL)
	if identityURL == "" {
		identityURL = DefaultIdentityURL
	}

	scopes := opts.Scopes
	if len(scopes) == 0 {
		scopes = strings.Fields(DefaultScope)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.InsecureSkipTLSVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: identityURL,
			},
			Scopes: scopes,
		},
		httpClient: httpClient,
		username:   opts.Username,
		password:   opts.Password,
	}
}

// PasswordGrant exchanges the configured credentials for a bearer token and
// stamps its absolute expiration time.
func (c *Client) PasswordGrant(ctx context.Context) (*Token, error) {
	if strings.TrimSpace(c.config.ClientID) == "" || c.config.ClientSecret == "" {
		return nil, fmt.Errorf("password grant: missing client credentials")
	}
	if strings.TrimSpace(c.username) == "" || c.password == "" {
		return nil, fmt.Errorf("password grant: missing username or password")
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.username)
	form.Set("password", c.password)
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("scope", strings.Join(c.config.Scopes, " "))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("password grant: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var certErr *tls.CertificateVerificationError
		if errors.As(err, &certErr) {
			return nil, &TLSError{Err: err}
		}
		return nil, fmt.Errorf("password grant: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("password grant: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload tokenResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("password grant: parse json: %w", err)
	}

	if strings.TrimSpace(payload.AccessToken) == "" {
		return nil, &AuthError{}
	}

	expiresIn := payload.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultExpiresIn
	}

	return &Token{
		AccessToken:    payload.AccessToken,
		TokenType:      payload.TokenType,
		ExpiresIn:      expiresIn,
		ExpirationTime: time.Now().UTC().Add(time.Duration(expiresIn) * time.Second),
	}, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL    = "https://common.autocarevip.com/api/v1.0"
	DefaultDataHost   = "autocarevip.com"
	DefaultAPIVersion = "v1.0"

	defaultMaxPages = 10000
	defaultTimeout  = 30 * time.Second
)

// Database is a catalog entry; only its name is consumed downstream.
type Database struct {
	Name string `json:"databaseName"`
}

// Table is a database-scoped catalog entry.
type Table struct {
	Name string `json:"TableName"`
}

// Client talks to the catalog and table-data endpoints with a fixed bearer
// token. All calls are synchronous and block until response or error.
type Client struct {
	baseURL    string
	dataHost   string
	apiVersion string
	token      string
	maxPages   int
	httpClient *http.Client
	logger     zerolog.Logger
}

type Options struct {
	BaseURL    string
	DataHost   string
	APIVersion string
	Token      string
	MaxPages   int
	Timeout    time.Duration
	Logger     zerolog.Logger
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	dataHost := strings.TrimSpace(opts.DataHost)
	if dataHost == "" {
		dataHost = DefaultDataHost
	}

	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		dataHost:   dataHost,
		apiVersion: apiVersion,
		token:      opts.Token,
		maxPages:   maxPages,
		httpClient: &http.Client{Timeout: timeout},
		logger:     opts.Logger,
	}
}

// ListDatabases fetches the catalog's databases. The catalog is small enough
// to return in a single response, so no pagination handling here.
func (c *Client) ListDatabases(ctx context.Context) ([]Database, error) {
	body, _, err := c.get(ctx, c.baseURL+"/databases")
	if err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}

	var databases []Database
	if err := json.Unmarshal(body, &databases); err != nil {
		return nil, fmt.Errorf("list databases: parse json: %w", err)
	}

	return databases, nil
}

// ListTables fetches the tables of one database.
func (c *Client) ListTables(ctx context.Context, database string) ([]Table, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("%s/databases/%s/tables", c.baseURL, database))
	if err != nil {
		return nil, fmt.Errorf("list tables of %s: %w", database, err)
	}

	var tables []Table
	if err := json.Unmarshal(body, &tables); err != nil {
		return nil, fmt.Errorf("list tables of %s: parse json: %w", database, err)
	}

	return tables, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return body, resp.Header, nil
}

package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newJSONResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestListDatabases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases" {
			t.Errorf("path = %q, want /databases", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"databaseName":"VCdb"},{"databaseName":"PCdb"}]`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, Token: "tok-1"})

	databases, err := client.ListDatabases(context.Background())
	if err != nil {
		t.Fatalf("ListDatabases error: %v", err)
	}
	if len(databases) != 2 {
		t.Fatalf("len(databases) = %d, want 2", len(databases))
	}
	if databases[0].Name != "VCdb" || databases[1].Name != "PCdb" {
		t.Fatalf("unexpected databases: %+v", databases)
	}
}

func TestListDatabasesNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, Token: "stale"})

	_, err := client.ListDatabases(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("ListDatabases error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
	if !strings.Contains(apiErr.Body, "token expired") {
		t.Fatalf("body = %q, want response body preserved", apiErr.Body)
	}
}

func TestListTables(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/VCdb/tables" {
			t.Errorf("path = %q, want /databases/VCdb/tables", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"TableName":"Make"},{"TableName":"Model"}]`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, Token: "tok-1"})

	tables, err := client.ListTables(context.Background(), "VCdb")
	if err != nil {
		t.Fatalf("ListTables error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("len(tables) = %d, want 2", len(tables))
	}
	if tables[0].Name != "Make" || tables[1].Name != "Model" {
		t.Fatalf("unexpected tables: %+v", tables)
	}
}

func TestListTablesInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not-json`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, Token: "tok-1"})

	_, err := client.ListTables(context.Background(), "VCdb")
	if err == nil || !strings.Contains(err.Error(), "parse json") {
		t.Fatalf("expected parse json error, got: %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Options{})
	if client.baseURL != DefaultBaseURL {
		t.Fatalf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.dataHost != DefaultDataHost {
		t.Fatalf("dataHost = %q, want %q", client.dataHost, DefaultDataHost)
	}
	if client.apiVersion != DefaultAPIVersion {
		t.Fatalf("apiVersion = %q, want %q", client.apiVersion, DefaultAPIVersion)
	}
	if client.maxPages != defaultMaxPages {
		t.Fatalf("maxPages = %d, want %d", client.maxPages, defaultMaxPages)
	}
	if client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("timeout = %v, want %v", client.httpClient.Timeout, defaultTimeout)
	}
}

package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IdentityURL != "https://autocare-identity.autocare.org/connect/token" {
		t.Fatalf("IdentityURL = %q", cfg.IdentityURL)
	}
	if cfg.CatalogURL != "https://common.autocarevip.com/api/v1.0" {
		t.Fatalf("CatalogURL = %q", cfg.CatalogURL)
	}
	if cfg.DataHost != "autocarevip.com" {
		t.Fatalf("DataHost = %q", cfg.DataHost)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.InsecureSkipTLSVerify {
		t.Fatal("InsecureSkipTLSVerify = true, want false by default")
	}
	if cfg.MaxPages != 10000 {
		t.Fatalf("MaxPages = %d, want 10000", cfg.MaxPages)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AC_CLIENT_ID", "client-1")
	t.Setenv("AC_CLIENT_SECRET", "secret-1")
	t.Setenv("AC_USERNAME", "user-1")
	t.Setenv("AC_PASSWORD", "pass-1")
	t.Setenv("AC_DATA_DIR", "./tmp-data")
	t.Setenv("AC_OUTPUT_DIR", "./tmp-out")
	t.Setenv("AC_LOG_LEVEL", "debug")
	t.Setenv("AC_HTTP_TIMEOUT", "5s")
	t.Setenv("AC_INSECURE_SKIP_TLS_VERIFY", "true")
	t.Setenv("AC_MAX_PAGES", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ClientID != "client-1" || cfg.ClientSecret != "secret-1" {
		t.Fatalf("client credentials = %q/%q", cfg.ClientID, cfg.ClientSecret)
	}
	if cfg.Username != "user-1" || cfg.Password != "pass-1" {
		t.Fatalf("user credentials = %q/%q", cfg.Username, cfg.Password)
	}
	if cfg.DataDir != "./tmp-data" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.OutputDir != "./tmp-out" {
		t.Fatalf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if !cfg.InsecureSkipTLSVerify {
		t.Fatal("InsecureSkipTLSVerify = false, want true")
	}
	if cfg.MaxPages != 12 {
		t.Fatalf("MaxPages = %d, want 12", cfg.MaxPages)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("AC_HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want non-nil")
	}
}

func TestTokenFile(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/acfetch"}
	want := filepath.Join("/tmp/acfetch", "token.json")
	if got := cfg.TokenFile(); got != want {
		t.Fatalf("TokenFile() = %q, want %q", got, want)
	}
}

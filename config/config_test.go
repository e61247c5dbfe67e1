package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// unsetenv clears k for the duration of the test.
func unsetenv(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	os.Unsetenv(k)
}

func TestParseDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "DATA_SOURCE", "BACKEND_URL", "BACKEND_TIMEOUT", "MOCK_DELAY", "CORS_ORIGINS", "ENABLE_DEV_LOGIN", "BACKEND_UID"} {
		unsetenv(t, k)
	}
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Port != "8080" || cfg.DBPath != "farm.db" || cfg.DataSource != SourceMock {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.MockDelay != 300*time.Millisecond || cfg.BackendTimeout != 15*time.Second {
		t.Fatalf("durations = %s, %s", cfg.MockDelay, cfg.BackendTimeout)
	}
	if !cfg.EnableDevLogin {
		t.Fatalf("EnableDevLogin = false, want true")
	}
	if cfg.BackendUID != "farmdash" {
		t.Fatalf("BackendUID = %q, want farmdash", cfg.BackendUID)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "sqlite")
	t.Setenv("MOCK_DELAY", "0s")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("ENABLE_DEV_LOGIN", "false")
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.DataSource != SourceSQLite || cfg.MockDelay != 0 || cfg.EnableDevLogin {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	if err := (AppConfig{DataSource: "postgres"}).Validate(); err == nil {
		t.Fatalf("unknown source accepted")
	}
	if err := (AppConfig{DataSource: SourceRemote}).Validate(); err == nil {
		t.Fatalf("remote without BACKEND_URL accepted")
	}
	if err := (AppConfig{DataSource: SourceRemote, BackendURL: "http://farm.test"}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestStringHidesKey(t *testing.T) {
	s := AppConfig{BackendAPIKey: "secret"}.String()
	if strings.Contains(s, "secret") {
		t.Fatalf("String() leaks key: %s", s)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carmatch/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "carmatch")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Paths.APIBind != "127.0.0.1:7583" {
		t.Fatalf("unexpected api bind: %q", cfg.Paths.APIBind)
	}
	if cfg.XCatalog.Country != "it" {
		t.Fatalf("unexpected country: %q", cfg.XCatalog.Country)
	}
	if cfg.XCatalog.SubmissionsEnabled {
		t.Fatal("expected submissions disabled by default")
	}
	if cfg.Catalog.RefreshInterval != 3600 {
		t.Fatalf("unexpected refresh interval: %d", cfg.Catalog.RefreshInterval)
	}
	if cfg.Matching.DefaultProfile != "default" {
		t.Fatalf("unexpected default profile: %q", cfg.Matching.DefaultProfile)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.CatalogDBPath() != filepath.Join(wantData, "catalog.db") {
		t.Fatalf("unexpected catalog db path: %q", cfg.CatalogDBPath())
	}
	if cfg.LockPath() != filepath.Join(wantData, "carmatchd.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestLoadReadsTOMLFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
data_dir = "~/carmatch-data"
api_bind = "0.0.0.0:9000"
api_token = "secret"

[xcatalog]
base_url = "https://catalog.example.com/"
country = "DE"
requests_per_second = 2.5
submissions_enabled = true

[catalog]
refresh_interval = 600

[matching]
default_profile = "trim_heavy"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Paths.DataDir != filepath.Join(tempHome, "carmatch-data") {
		t.Fatalf("data dir not expanded: %q", cfg.Paths.DataDir)
	}
	if cfg.Paths.APIBind != "0.0.0.0:9000" {
		t.Fatalf("api bind = %q", cfg.Paths.APIBind)
	}
	if cfg.Paths.APIToken != "secret" {
		t.Fatalf("api token = %q", cfg.Paths.APIToken)
	}
	if cfg.XCatalog.BaseURL != "https://catalog.example.com/" {
		t.Fatalf("base url = %q", cfg.XCatalog.BaseURL)
	}
	if cfg.XCatalog.Country != "de" {
		t.Fatalf("country not lowercased: %q", cfg.XCatalog.Country)
	}
	if cfg.XCatalog.RequestsPerSecond != 2.5 {
		t.Fatalf("requests per second = %v", cfg.XCatalog.RequestsPerSecond)
	}
	if !cfg.XCatalog.SubmissionsEnabled {
		t.Fatal("expected submissions enabled")
	}
	if cfg.Catalog.RefreshInterval != 600 {
		t.Fatalf("refresh interval = %d", cfg.Catalog.RefreshInterval)
	}
	if cfg.Matching.DefaultProfile != "trim_heavy" {
		t.Fatalf("default profile = %q", cfg.Matching.DefaultProfile)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARMATCH_API_TOKEN", "env-token")
	t.Setenv("CARMATCH_XCATALOG_URL", "https://override.example.com")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.APIToken != "env-token" {
		t.Fatalf("api token = %q, want env override", cfg.Paths.APIToken)
	}
	if cfg.XCatalog.BaseURL != "https://override.example.com" {
		t.Fatalf("base url = %q, want env override", cfg.XCatalog.BaseURL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "bad api bind",
			content: "[paths]\napi_bind = \"not-an-address\"\n",
			wantMsg: "paths.api_bind",
		},
		{
			name:    "bad base url",
			content: "[xcatalog]\nbase_url = \"not a url\"\n",
			wantMsg: "xcatalog.base_url",
		},
		{
			name:    "bad country",
			content: "[xcatalog]\ncountry = \"italy\"\n",
			wantMsg: "xcatalog.country",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"verbose\"\n",
			wantMsg: "logging.level",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantMsg: "logging.format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths\ndata_dir"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Paths.APIBind == "" {
		t.Fatal("expected sample to carry an api bind")
	}
}

func TestExpandPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/nested/dir")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(tempHome, "nested", "dir") {
		t.Fatalf("ExpandPath = %q", got)
	}

	abs, err := config.ExpandPath("/already/absolute")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if abs != "/already/absolute" {
		t.Fatalf("ExpandPath = %q", abs)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %q: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("%q is not a directory", dir)
		}
	}
}

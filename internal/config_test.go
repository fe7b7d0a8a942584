package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/munro/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.App.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.App.HTTP.Port)
	}
	if cfg.Dataset.Path == "" {
		t.Error("default dataset path is empty")
	}
	if !cfg.Dataset.Watch {
		t.Error("drift watching should default to on")
	}
	if cfg.Auth.AuthEnabled() {
		t.Error("auth should default to disabled")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  log_level: debug
  http:
    port: 9090
dataset:
  path: /srv/munros.csv
  strict: true
  watch: false
auth:
  mode: token
  token: s3cret
`)
	cfg := NewDefaultConfig()
	if err := config.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.HTTP.Address() != ":9090" {
		t.Errorf("address = %q, want :9090", cfg.App.HTTP.Address())
	}
	if cfg.Dataset.Path != "/srv/munros.csv" || !cfg.Dataset.Strict || cfg.Dataset.Watch {
		t.Errorf("dataset = %+v", cfg.Dataset)
	}
	if !cfg.Auth.AuthEnabled() || cfg.Auth.Token != "s3cret" {
		t.Errorf("auth = %+v", cfg.Auth)
	}
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	t.Setenv("MUNRO_DATASET", "/data/from-env.csv")
	path := writeConfig(t, `
dataset:
  path: ${MUNRO_DATASET}
`)
	cfg := NewDefaultConfig()
	if err := config.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dataset.Path != "/data/from-env.csv" {
		t.Errorf("path = %q, env var not expanded", cfg.Dataset.Path)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.App.HTTP.Port = 0 }, true},
		{"port too high", func(c *Config) { c.App.HTTP.Port = 70000 }, true},
		{"missing dataset path", func(c *Config) { c.Dataset.Path = "" }, true},
		{"token mode without token", func(c *Config) { c.Auth.Mode = AuthModeToken }, true},
		{"token mode with token", func(c *Config) { c.Auth.Mode = AuthModeToken; c.Auth.Token = "x" }, false},
		{"unknown auth mode", func(c *Config) { c.Auth.Mode = "basic" }, true},
		{"empty mode normalised", func(c *Config) { c.Auth.Mode = "" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadWithDefaults_FallsBack(t *testing.T) {
	def := writeConfig(t, `
app:
  http:
    port: 8081
`)
	cfg := NewDefaultConfig()
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if err := config.LoadWithDefaults(missing, def, cfg); err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if cfg.App.HTTP.Port != 8081 {
		t.Errorf("port = %d, want 8081 from the fallback file", cfg.App.HTTP.Port)
	}
}

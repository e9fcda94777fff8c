package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
database:
  host: localhost
  user: horizon
  password: secret
  dbname: horizon
  port: "5432"
  sslmode: disable
mongo:
  uri: mongodb://localhost:27017
  dbname: horizon
auth:
  secret: jwt-secret
chat:
  api_key: sk-test
server:
  port: 8080
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Chat.EndpointURL != "https://openrouter.ai/api/v1/chat/completions" {
		t.Errorf("unexpected default endpoint %q", cfg.Chat.EndpointURL)
	}
	if cfg.Chat.Backend != "mongo" {
		t.Errorf("expected default backend mongo, got %q", cfg.Chat.Backend)
	}
	if cfg.Auth.ExpHour != 168 {
		t.Errorf("expected default expiry of 168 hours, got %d", cfg.Auth.ExpHour)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OPENROUTER_URL", "https://example.test/v1/chat")
	t.Setenv("OPENROUTER_API_KEY", "sk-env")
	t.Setenv("OPENROUTER_MODEL", "some/model")
	t.Setenv("APP_URL", "https://app.example.test")

	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Chat.EndpointURL != "https://example.test/v1/chat" {
		t.Errorf("endpoint not overridden: %q", cfg.Chat.EndpointURL)
	}
	if cfg.Chat.APIKey != "sk-env" {
		t.Errorf("api key not overridden: %q", cfg.Chat.APIKey)
	}
	if cfg.Chat.Model != "some/model" {
		t.Errorf("model not overridden: %q", cfg.Chat.Model)
	}
	if cfg.Chat.Referer != "https://app.example.test" {
		t.Errorf("referer not overridden: %q", cfg.Chat.Referer)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestLoadConfig_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing db host", `
database:
  user: u
  dbname: d
  port: "5432"
  sslmode: disable
mongo: {uri: mongodb://localhost, dbname: d}
auth: {secret: s}
server: {port: 8080}
`},
		{"missing auth secret", `
database: {host: h, user: u, dbname: d, port: "5432", sslmode: disable}
mongo: {uri: mongodb://localhost, dbname: d}
server: {port: 8080}
`},
		{"missing mongo uri with mongo backend", `
database: {host: h, user: u, dbname: d, port: "5432", sslmode: disable}
auth: {secret: s}
server: {port: 8080}
`},
		{"port out of range", `
database: {host: h, user: u, dbname: d, port: "5432", sslmode: disable}
mongo: {uri: mongodb://localhost, dbname: d}
auth: {secret: s}
server: {port: 70000}
`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, c.yaml)); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestLoadConfig_MemoryBackendSkipsMongo(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
database: {host: h, user: u, dbname: d, port: "5432", sslmode: disable}
auth: {secret: s}
chat: {backend: memory}
server: {port: 8080}
`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Chat.Backend != "memory" {
		t.Errorf("expected memory backend, got %q", cfg.Chat.Backend)
	}
}

func TestDSN(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	want := "host=localhost user=horizon password=secret dbname=horizon port=5432 sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("unexpected DSN %q", got)
	}
}

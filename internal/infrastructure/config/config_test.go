package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestConfig writes a config file to a temp dir and returns its path.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

const validSecret = "test-secret-key-at-least-32-characters-long"

func TestLoad_Defaults(t *testing.T) {
	path := writeTestConfig(t, `
security:
  jwt:
    secret: "`+validSecret+`"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Database.Path != "./data/armoury.db" {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
	if !cfg.Database.WALMode {
		t.Error("Database.WALMode should default to true")
	}
	if cfg.Security.JWT.AccessTokenTTL != 60 {
		t.Errorf("AccessTokenTTL = %d, want 60", cfg.Security.JWT.AccessTokenTTL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeTestConfig(t, `
api:
  port: 9090
database:
  path: /tmp/test.db
security:
  jwt:
    secret: "`+validSecret+`"
    access_token_ttl: 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want 9090", cfg.API.Port)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want /tmp/test.db", cfg.Database.Path)
	}
	if cfg.Security.JWT.AccessTokenTTL != 30 {
		t.Errorf("AccessTokenTTL = %d, want 30", cfg.Security.JWT.AccessTokenTTL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTestConfig(t, `
database:
  path: /tmp/from-file.db
security:
  jwt:
    secret: "file-secret-that-is-long-enough-to-validate"
`)

	t.Setenv("ARMOURY_DATABASE_PATH", "/tmp/from-env.db")
	t.Setenv("ARMOURY_JWT_SECRET", validSecret)
	t.Setenv("ARMOURY_API_PORT", "9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/from-env.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
	if cfg.Security.JWT.Secret != validSecret {
		t.Error("JWT secret should come from environment")
	}
	if cfg.API.Port != 9999 {
		t.Errorf("API.Port = %d, want 9999", cfg.API.Port)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeTestConfig(t, `
api:
  port: 8080
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail without a JWT secret")
	}
	if !strings.Contains(err.Error(), "security.jwt.secret") {
		t.Errorf("error = %v, want mention of security.jwt.secret", err)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	path := writeTestConfig(t, `
security:
  jwt:
    secret: "too-short"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject a short JWT secret")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.JWT.Secret = validSecret
	cfg.API.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject port 0")
	}
}

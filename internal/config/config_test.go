package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "openshelf"
  password: "pw"
  database: "openshelf_test"
  ssl_mode: "disable"
smtp:
  host: "localhost"
  port: 1025
  from: "library@openshelf.local"
jwt:
  secret: "test-secret-0123456789abcdef0123456789"
  access_token_expiry_minutes: 30
log:
  level: "debug"
  format: "text"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid File", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validYAML))
		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
		assert.Equal(t, "postgres://openshelf:pw@localhost:5432/openshelf_test?sslmode=disable", cfg.GetDatabaseConnectionString())
		assert.Equal(t, 30, cfg.JWT.AccessTokenExpiry)
		// Scheduler falls back to the 8 AM UTC default
		assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.SendOverdueReminders)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Env Overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := Load(writeConfig(t, validYAML))
		assert.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, validYAML))
		if err != nil {
			t.Fatalf("error loading base config: %v", err)
		}
		return cfg
	}

	t.Run("Short JWT Secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "too-short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Bad Server Port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Expiry Defaults To An Hour", func(t *testing.T) {
		cfg := base()
		cfg.JWT.AccessTokenExpiry = 0
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	})
}

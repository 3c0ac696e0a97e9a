package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP", "HTTP_ADDR", "POSTGRES_DSN", "POSTGRES_MIGRATIONS_DIR", "DB_PATH",
		"DB_MIGRATIONS_DIR", "LOG_LEVEL", "LOG_FORMAT", "ADMIN_PASSWORD_HASH",
		"CORS_ORIGINS", "SEED_PLAYERS",
	} {
		t.Setenv(key, "")
	}
	// keep .env files in the package dir out of the picture
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "test")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "prod", cfg.App)
	assert.False(t, cfg.IsDev())
	assert.Empty(t, cfg.Postgres.DSN)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app: dev
http_addr: ":9000"
sqlite:
  path: /tmp/swiss.db
log:
  level: debug
  format: json
cors_origins: ["http://a.example"]
seed_players: 4
`), 0o600))
	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("CORS_ORIGINS", "http://b.example, http://c.example")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, "/tmp/swiss.db", cfg.SQLite.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"http://b.example", "http://c.example"}, cfg.CORSOrigins)
	assert.Equal(t, 4, cfg.SeedPlayers)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("SEED_PLAYERS", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "players", 5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"players":5`)
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

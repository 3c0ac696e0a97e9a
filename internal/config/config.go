package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the server and the CLI need.
type Config struct {
	App      string         `yaml:"app"`
	HTTPAddr string         `yaml:"http_addr"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Log      LogConfig      `yaml:"log"`
	Admin    AdminConfig    `yaml:"admin"`
	// CORSOrigins lists the origins allowed to call the JSON API.
	CORSOrigins []string `yaml:"cors_origins"`
	SeedPlayers int      `yaml:"seed_players"`
}

type PostgresConfig struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type SQLiteConfig struct {
	Path          string `yaml:"path"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash guarding the reset endpoints.
	PasswordHash string `yaml:"password_hash"`
}

func defaults() Config {
	return Config{
		App:      "prod",
		HTTPAddr: ":8080",
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads .env files, then the optional YAML file at filename, then
// environment overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		_ = godotenv.Load(".env", ".env.local")
	}

	cfg := defaults()
	if strings.TrimSpace(filename) != "" {
		data, err := os.ReadFile(filename)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", filename, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("APP"); v != "" {
		cfg.App = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MIGRATIONS_DIR"); v != "" {
		cfg.Postgres.MigrationsDir = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.SQLite.Path = v
	}
	if v := os.Getenv("DB_MIGRATIONS_DIR"); v != "" {
		cfg.SQLite.MigrationsDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Admin.PasswordHash = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}
	if v := os.Getenv("SEED_PLAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid SEED_PLAYERS %q", v)
		}
		cfg.SeedPlayers = n
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.App == "dev"
}

// NewLogger builds the process logger from the log settings.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

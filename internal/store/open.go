package store

import "strings"

type Options struct {
	PostgresDSN           string
	PostgresMigrationsDir string
	SQLitePath            string
	SQLiteMigrationsDir   string
}

// Open picks Postgres when a DSN is set, SQLite when a path is set, and
// falls back to an in-memory store. The returned name identifies the backend.
func Open(opts Options) (Store, string, error) {
	if dsn := strings.TrimSpace(opts.PostgresDSN); dsn != "" {
		pgStore, err := NewPostgresStore(dsn, PostgresOptions{MigrationsDir: opts.PostgresMigrationsDir})
		if err != nil {
			return nil, "", err
		}
		return pgStore, "postgres", nil
	}
	if path := strings.TrimSpace(opts.SQLitePath); path != "" {
		sqliteStore, err := NewSQLiteStore(path, SQLiteOptions{MigrationsDir: opts.SQLiteMigrationsDir})
		if err != nil {
			return nil, "", err
		}
		return sqliteStore, "sqlite", nil
	}
	return NewMemoryStore(), "memory", nil
}

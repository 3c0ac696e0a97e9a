package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"swiss-app/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

type SQLiteOptions struct {
	MigrationsDir string
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewSQLiteStore(path string, opts SQLiteOptions) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps pragmas and in-memory databases consistent.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	migrations, err := migrationSource(opts.MigrationsDir, "sqlite")
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applyMigrations(db, migrations, `INSERT INTO schema_migrations (filename) VALUES (?)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return listSQLitePlayers(ctx, s.db)
}

func (s *SQLiteStore) CountPlayers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) GetPlayer(ctx context.Context, id int64) (model.Player, bool) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, registered_at FROM players WHERE id = ?`, id)
	player, err := scanSQLitePlayerRow(row)
	if err != nil {
		return model.Player{}, false
	}
	return player, true
}

func (s *SQLiteStore) RegisterPlayer(ctx context.Context, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, ErrNameRequired
	}
	player := model.Player{Name: name, RegisteredAt: time.Now().UTC()}
	err := s.db.QueryRowContext(ctx, `INSERT INTO players (name, registered_at) VALUES (?, ?) RETURNING id`,
		player.Name, timeValueString(player.RegisteredAt),
	).Scan(&player.ID)
	if err != nil {
		return model.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return player, nil
}

func (s *SQLiteStore) DeletePlayers(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete players: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListMatches(ctx context.Context) ([]model.Match, error) {
	return listSQLiteMatches(ctx, s.db)
}

func (s *SQLiteStore) RecordMatch(ctx context.Context, winnerID, loserID int64) (model.Match, error) {
	if winnerID == loserID {
		return model.Match{}, ErrSelfMatch
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Match{}, fmt.Errorf("begin record match: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range []int64{winnerID, loserID} {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM players WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return model.Match{}, ErrPlayerNotFound
		}
		if err != nil {
			return model.Match{}, fmt.Errorf("lookup player %d: %w", id, err)
		}
	}

	match := model.Match{
		ID:         uuid.NewString(),
		WinnerID:   winnerID,
		LoserID:    loserID,
		RecordedAt: time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO matches (id, winner_id, loser_id, recorded_at) VALUES (?,?,?,?)`,
		match.ID, match.WinnerID, match.LoserID, timeValueString(match.RecordedAt),
	)
	if err != nil {
		return model.Match{}, fmt.Errorf("insert match: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return model.Match{}, fmt.Errorf("commit match: %w", err)
	}
	return match, nil
}

func (s *SQLiteStore) DeleteMatches(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	return nil
}

// Snapshot reads players and matches inside one transaction.
func (s *SQLiteStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	players, err := listSQLitePlayers(ctx, tx)
	if err != nil {
		return model.Snapshot{}, err
	}
	matches, err := listSQLiteMatches(ctx, tx)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{Players: players, Matches: matches}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func listSQLitePlayers(ctx context.Context, q queryer) ([]model.Player, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, registered_at FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []model.Player{}
	for rows.Next() {
		player, err := scanSQLitePlayerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func listSQLiteMatches(ctx context.Context, q queryer) ([]model.Match, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, winner_id, loser_id, recorded_at FROM matches ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := []model.Match{}
	for rows.Next() {
		match, err := scanSQLiteMatchRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func scanSQLitePlayerRow(scanner interface{ Scan(dest ...any) error }) (model.Player, error) {
	var player model.Player
	var registeredAt sql.NullString
	if err := scanner.Scan(&player.ID, &player.Name, &registeredAt); err != nil {
		return model.Player{}, err
	}
	if registeredAt.Valid {
		if parsed, ok := parseTimeString(registeredAt.String); ok {
			player.RegisteredAt = parsed
		}
	}
	return player, nil
}

func scanSQLiteMatchRow(scanner interface{ Scan(dest ...any) error }) (model.Match, error) {
	var match model.Match
	var recordedAt sql.NullString
	if err := scanner.Scan(&match.ID, &match.WinnerID, &match.LoserID, &recordedAt); err != nil {
		return model.Match{}, err
	}
	if recordedAt.Valid {
		if parsed, ok := parseTimeString(recordedAt.String); ok {
			match.RecordedAt = parsed
		}
	}
	return match, nil
}

func timeValueString(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

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
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB
}

type PostgresOptions struct {
	MigrationsDir string
}

func NewPostgresStore(dsn string, opts PostgresOptions) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	migrations, err := migrationSource(opts.MigrationsDir, "postgres")
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applyMigrations(db, migrations, `INSERT INTO schema_migrations (filename) VALUES ($1)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return listPostgresPlayers(ctx, s.db)
}

func (s *PostgresStore) CountPlayers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) GetPlayer(ctx context.Context, id int64) (model.Player, bool) {
	var p model.Player
	err := s.db.QueryRowContext(ctx, `SELECT id, name, registered_at FROM players WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.RegisteredAt)
	if err != nil {
		return model.Player{}, false
	}
	return p, true
}

func (s *PostgresStore) RegisterPlayer(ctx context.Context, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, ErrNameRequired
	}
	player := model.Player{Name: name}
	err := s.db.QueryRowContext(ctx, `INSERT INTO players (name) VALUES ($1) RETURNING id, registered_at`, name).
		Scan(&player.ID, &player.RegisteredAt)
	if err != nil {
		return model.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return player, nil
}

func (s *PostgresStore) DeletePlayers(ctx context.Context) error {
	// matches go with their players through ON DELETE CASCADE
	if _, err := s.db.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListMatches(ctx context.Context) ([]model.Match, error) {
	return listPostgresMatches(ctx, s.db)
}

func (s *PostgresStore) RecordMatch(ctx context.Context, winnerID, loserID int64) (model.Match, error) {
	if winnerID == loserID {
		return model.Match{}, ErrSelfMatch
	}
	var found int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM players WHERE id = $1 OR id = $2`, winnerID, loserID).Scan(&found)
	if err != nil {
		return model.Match{}, fmt.Errorf("lookup players: %w", err)
	}
	if found != 2 {
		return model.Match{}, ErrPlayerNotFound
	}

	match := model.Match{ID: uuid.NewString(), WinnerID: winnerID, LoserID: loserID}
	err = s.db.QueryRowContext(ctx, `INSERT INTO matches (id, winner_id, loser_id) VALUES ($1,$2,$3) RETURNING recorded_at`,
		match.ID, match.WinnerID, match.LoserID,
	).Scan(&match.RecordedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
			return model.Match{}, ErrPlayerNotFound
		}
		return model.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return match, nil
}

func (s *PostgresStore) DeleteMatches(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	return nil
}

// Snapshot reads players and matches in one repeatable-read transaction so
// a concurrent RecordMatch is either fully visible or not at all.
func (s *PostgresStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	players, err := listPostgresPlayers(ctx, tx)
	if err != nil {
		return model.Snapshot{}, err
	}
	matches, err := listPostgresMatches(ctx, tx)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Snapshot{}, fmt.Errorf("commit snapshot: %w", err)
	}
	return model.Snapshot{Players: players, Matches: matches}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func listPostgresPlayers(ctx context.Context, q queryer) ([]model.Player, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, registered_at FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []model.Player{}
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func listPostgresMatches(ctx context.Context, q queryer) ([]model.Match, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, winner_id, loser_id, recorded_at FROM matches ORDER BY recorded_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := []model.Match{}
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

package store

import (
	"context"
	"errors"

	"swiss-app/internal/model"
)

var (
	ErrNameRequired   = errors.New("player name is required")
	ErrPlayerNotFound = errors.New("player not found")
	ErrSelfMatch      = errors.New("a player cannot play against themselves")
)

// Store persists players and matches. Every implementation also satisfies
// swiss.Source through Snapshot.
type Store interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	GetPlayer(ctx context.Context, id int64) (model.Player, bool)
	RegisterPlayer(ctx context.Context, name string) (model.Player, error)
	DeletePlayers(ctx context.Context) error

	ListMatches(ctx context.Context) ([]model.Match, error)
	RecordMatch(ctx context.Context, winnerID, loserID int64) (model.Match, error)
	DeleteMatches(ctx context.Context) error

	Snapshot(ctx context.Context) (model.Snapshot, error)
	Close() error
}

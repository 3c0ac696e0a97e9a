package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"swiss-app/internal/model"

	"github.com/google/uuid"
)

// MemoryStore keeps players and matches in flat slices in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	players []model.Player
	matches []model.Match
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]model.Player, len(s.players))
	copy(players, s.players)
	return players, nil
}

func (s *MemoryStore) CountPlayers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.players), nil
}

func (s *MemoryStore) GetPlayer(ctx context.Context, id int64) (model.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findPlayer(id)
}

func (s *MemoryStore) RegisterPlayer(ctx context.Context, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := model.Player{ID: s.nextID, Name: name, RegisteredAt: time.Now()}
	s.nextID++
	s.players = append(s.players, player)
	return player, nil
}

// DeletePlayers removes every player along with the matches they played.
// Ids are never reused.
func (s *MemoryStore) DeletePlayers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = nil
	s.matches = nil
	return nil
}

func (s *MemoryStore) ListMatches(ctx context.Context) ([]model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]model.Match, len(s.matches))
	copy(matches, s.matches)
	return matches, nil
}

func (s *MemoryStore) RecordMatch(ctx context.Context, winnerID, loserID int64) (model.Match, error) {
	if winnerID == loserID {
		return model.Match{}, ErrSelfMatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findPlayer(winnerID); !ok {
		return model.Match{}, ErrPlayerNotFound
	}
	if _, ok := s.findPlayer(loserID); !ok {
		return model.Match{}, ErrPlayerNotFound
	}
	match := model.Match{
		ID:         uuid.NewString(),
		WinnerID:   winnerID,
		LoserID:    loserID,
		RecordedAt: time.Now(),
	}
	s.matches = append(s.matches, match)
	return match, nil
}

func (s *MemoryStore) DeleteMatches(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = nil
	return nil
}

func (s *MemoryStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := model.Snapshot{
		Players: make([]model.Player, len(s.players)),
		Matches: make([]model.Match, len(s.matches)),
	}
	copy(snap.Players, s.players)
	copy(snap.Matches, s.matches)
	return snap, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) findPlayer(id int64) (model.Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return model.Player{}, false
}

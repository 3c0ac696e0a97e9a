package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiss-app/internal/swiss"
)

func newSQLiteTestStore(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "swiss.db"), SQLiteOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func backends(t *testing.T) map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": newSQLiteTestStore,
	}
}

func register(t *testing.T, s Store, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, len(names))
	for i, name := range names {
		p, err := s.RegisterPlayer(context.Background(), name)
		require.NoError(t, err)
		ids[i] = p.ID
	}
	return ids
}

func TestStore_RegisterAndList(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			count, err := s.CountPlayers(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, count)

			ids := register(t, s, "Ann", "  Bob  ", "Ann")
			assert.Less(t, ids[0], ids[1])
			assert.Less(t, ids[1], ids[2])

			players, err := s.ListPlayers(ctx)
			require.NoError(t, err)
			require.Len(t, players, 3)
			assert.Equal(t, "Ann", players[0].Name)
			assert.Equal(t, "Bob", players[1].Name)
			assert.Equal(t, ids[2], players[2].ID)
			assert.False(t, players[0].RegisteredAt.IsZero())

			count, err = s.CountPlayers(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, count)

			got, ok := s.GetPlayer(ctx, ids[1])
			require.True(t, ok)
			assert.Equal(t, "Bob", got.Name)
			_, ok = s.GetPlayer(ctx, ids[2]+100)
			assert.False(t, ok)

			_, err = s.RegisterPlayer(ctx, "   ")
			assert.ErrorIs(t, err, ErrNameRequired)
		})
	}
}

func TestStore_RecordMatch(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			ids := register(t, s, "Ann", "Bob")

			m, err := s.RecordMatch(ctx, ids[0], ids[1])
			require.NoError(t, err)
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, ids[0], m.WinnerID)
			assert.Equal(t, ids[1], m.LoserID)

			_, err = s.RecordMatch(ctx, ids[0], ids[0])
			assert.ErrorIs(t, err, ErrSelfMatch)
			_, err = s.RecordMatch(ctx, ids[0], ids[1]+50)
			assert.ErrorIs(t, err, ErrPlayerNotFound)
			_, err = s.RecordMatch(ctx, ids[1]+50, ids[0])
			assert.ErrorIs(t, err, ErrPlayerNotFound)

			matches, err := s.ListMatches(ctx)
			require.NoError(t, err)
			require.Len(t, matches, 1)
			assert.Equal(t, m.ID, matches[0].ID)
		})
	}
}

func TestStore_ResetMatchesKeepsPlayers(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			ids := register(t, s, "Ann", "Bob", "Cid", "Dee")
			_, err := s.RecordMatch(ctx, ids[0], ids[1])
			require.NoError(t, err)
			_, err = s.RecordMatch(ctx, ids[3], ids[2])
			require.NoError(t, err)

			require.NoError(t, s.DeleteMatches(ctx))

			svc := swiss.NewService(s, nil)
			standings, err := svc.Standings(ctx)
			require.NoError(t, err)
			require.Len(t, standings, 4)
			for i, row := range standings {
				assert.Equal(t, ids[i], row.PlayerID)
				assert.Zero(t, row.Wins)
				assert.Zero(t, row.Matches)
			}
		})
	}
}

func TestStore_DeletePlayersClearsMatches(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			ids := register(t, s, "Ann", "Bob")
			_, err := s.RecordMatch(ctx, ids[0], ids[1])
			require.NoError(t, err)

			require.NoError(t, s.DeletePlayers(ctx))

			snap, err := s.Snapshot(ctx)
			require.NoError(t, err)
			assert.Empty(t, snap.Players)
			assert.Empty(t, snap.Matches)

			again := register(t, s, "Cid")
			assert.Greater(t, again[0], ids[1], "player ids are not reused")
		})
	}
}

func TestStore_SnapshotFeedsPairings(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			ids := register(t, s, "P1", "P2", "P3", "P4")
			_, err := s.RecordMatch(ctx, ids[0], ids[1])
			require.NoError(t, err)
			_, err = s.RecordMatch(ctx, ids[2], ids[3])
			require.NoError(t, err)

			pairings, err := swiss.NewService(s, nil).Pairings(ctx)
			require.NoError(t, err)
			require.Len(t, pairings, 2)
			assert.Equal(t, ids[0], pairings[0].ID1)
			assert.Equal(t, ids[2], pairings[0].ID2)
			assert.Equal(t, ids[1], pairings[1].ID1)
			assert.Equal(t, ids[3], pairings[1].ID2)

			register(t, s, "P5")
			_, err = swiss.NewService(s, nil).Pairings(ctx)
			assert.ErrorIs(t, err, swiss.ErrPreconditionViolation)
		})
	}
}

func TestSeedPlayers(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()
	require.NoError(t, SeedPlayers(ctx, a, 6, 42))
	require.NoError(t, SeedPlayers(ctx, b, 6, 42))

	pa, err := a.ListPlayers(ctx)
	require.NoError(t, err)
	pb, err := b.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, pa, 6)
	for i := range pa {
		assert.NotEmpty(t, pa[i].Name)
		assert.Equal(t, pa[i].Name, pb[i].Name)
	}
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	s, backend, err := Open(Options{})
	require.NoError(t, err)
	assert.Equal(t, "memory", backend)
	assert.IsType(t, &MemoryStore{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	s, backend, err := Open(Options{SQLitePath: filepath.Join(t.TempDir(), "open.db")})
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "sqlite", backend)
}

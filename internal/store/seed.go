package store

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// SeedPlayers registers count players with generated names. The same seed
// always produces the same roster.
func SeedPlayers(ctx context.Context, s Store, count int, seed uint64) error {
	faker := gofakeit.New(seed)
	for i := 0; i < count; i++ {
		if _, err := s.RegisterPlayer(ctx, faker.Name()); err != nil {
			return fmt.Errorf("seed player %d: %w", i+1, err)
		}
	}
	return nil
}

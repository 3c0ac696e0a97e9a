package swiss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"swiss-app/internal/model"
)

// Source provides a snapshot-consistent view of players and matches.
type Source interface {
	Snapshot(ctx context.Context) (model.Snapshot, error)
}

type Service struct {
	source Source
	logger *slog.Logger
}

func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

func (s *Service) Standings(ctx context.Context) ([]model.StandingsRow, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	standings, err := ComputeStandings(snap)
	if err != nil {
		s.logger.Error("standings failed", "error", err)
		return nil, err
	}
	s.logger.Debug("standings computed", "players", len(snap.Players), "matches", len(snap.Matches))
	return standings, nil
}

func (s *Service) Pairings(ctx context.Context) ([]model.Pairing, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := GeneratePairings(standings)
	if err != nil {
		if errors.Is(err, ErrPreconditionViolation) {
			s.logger.Warn("pairings rejected", "players", len(standings), "error", err)
		}
		return nil, err
	}
	s.logger.Debug("pairings generated", "pairs", len(pairings))
	return pairings, nil
}

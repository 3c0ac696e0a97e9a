package web

import (
	"time"

	"swiss-app/internal/model"
)

type BaseView struct {
	Title string
}

type TournamentView struct {
	BaseView
	Standings    []StandingView
	Pairings     []PairingView
	PairingError string
}

type StandingView struct {
	Rank int
	Row  model.StandingsRow
}

type PairingView struct {
	Board   int
	Pairing model.Pairing
}

type PlayerView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

type MatchView struct {
	ID         string    `json:"id"`
	WinnerID   int64     `json:"winner_id"`
	LoserID    int64     `json:"loser_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

package model

import (
	"strings"
	"time"
)

type Player struct {
	ID           int64
	Name         string
	RegisteredAt time.Time
}

func (p Player) DisplayName() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// Match records a single decided game. There are no draws.
type Match struct {
	ID         string
	WinnerID   int64
	LoserID    int64
	RecordedAt time.Time
}

func (m Match) Involves(playerID int64) bool {
	return m.WinnerID == playerID || m.LoserID == playerID
}

// Snapshot is one consistent read of the tournament store. Players are
// ordered by registration.
type Snapshot struct {
	Players []Player
	Matches []Match
}

type StandingsRow struct {
	PlayerID int64  `json:"id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Matches  int    `json:"matches"`
}

func (r StandingsRow) Losses() int {
	return r.Matches - r.Wins
}

type Pairing struct {
	ID1   int64  `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int64  `json:"id2"`
	Name2 string `json:"name2"`
}

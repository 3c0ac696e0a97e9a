package swiss

import (
	"sort"

	"swiss-app/internal/model"
)

// ComputeStandings ranks every player in snap by wins, most first. Players
// with equal wins keep their registration order, so identical snapshots
// always produce identical standings.
func ComputeStandings(snap model.Snapshot) ([]model.StandingsRow, error) {
	standings := make([]model.StandingsRow, len(snap.Players))
	index := make(map[int64]int, len(snap.Players))
	for i, p := range snap.Players {
		standings[i] = model.StandingsRow{PlayerID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for _, match := range snap.Matches {
		winner, ok := index[match.WinnerID]
		if !ok {
			return nil, &InconsistentRecordError{MatchID: match.ID, PlayerID: match.WinnerID}
		}
		loser, ok := index[match.LoserID]
		if !ok {
			return nil, &InconsistentRecordError{MatchID: match.ID, PlayerID: match.LoserID}
		}
		standings[winner].Wins++
		standings[winner].Matches++
		standings[loser].Matches++
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})
	return standings, nil
}

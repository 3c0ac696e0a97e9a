package swiss

import "swiss-app/internal/model"

// GeneratePairings pairs adjacent players in standings order: first with
// second, third with fourth, and so on. The higher ranked player is always
// listed first. Byes are not supported, so an odd count is rejected.
func GeneratePairings(standings []model.StandingsRow) ([]model.Pairing, error) {
	if len(standings)%2 != 0 {
		return nil, &PreconditionError{Players: len(standings)}
	}
	pairings := make([]model.Pairing, 0, len(standings)/2)
	for i := 0; i < len(standings); i += 2 {
		a, b := standings[i], standings[i+1]
		pairings = append(pairings, model.Pairing{
			ID1:   a.PlayerID,
			Name1: a.Name,
			ID2:   b.PlayerID,
			Name2: b.Name,
		})
	}
	return pairings, nil
}

package web

import (
	"errors"
	"net/http"

	"swiss-app/internal/model"
	"swiss-app/internal/swiss"
)

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.swiss.Standings(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standings": standings})
}

func (s *Server) handlePairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := s.swiss.Pairings(r.Context())
	if err != nil {
		s.metrics.pairingFailed(failureReason(err))
		s.writeStoreError(w, r, err)
		return
	}
	s.metrics.pairings.Inc()
	writeJSON(w, http.StatusOK, map[string]any{"pairings": pairings})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	view := TournamentView{BaseView: BaseView{Title: "Swiss tournament"}}

	standings, err := s.swiss.Standings(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	view.Standings = make([]StandingView, 0, len(standings))
	for i, row := range standings {
		view.Standings = append(view.Standings, StandingView{Rank: i + 1, Row: row})
	}

	pairings, err := swiss.GeneratePairings(standings)
	switch {
	case err == nil:
		view.Pairings = pairingViews(pairings)
	case errors.Is(err, swiss.ErrPreconditionViolation):
		view.PairingError = err.Error()
	default:
		s.writeStoreError(w, r, err)
		return
	}

	render := s.templates.Render
	if isHTMX(r) {
		render = s.templates.RenderFragment
	}
	if err := render(w, "tournament.html", view); err != nil {
		s.logger.Error("render tournament", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pairingViews(pairings []model.Pairing) []PairingView {
	views := make([]PairingView, 0, len(pairings))
	for i, p := range pairings {
		views = append(views, PairingView{Board: i + 1, Pairing: p})
	}
	return views
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, swiss.ErrPreconditionViolation):
		return "odd_player_count"
	case errors.Is(err, swiss.ErrInconsistentRecord):
		return "inconsistent_records"
	default:
		return "store"
	}
}

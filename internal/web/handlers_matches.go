package web

import (
	"net/http"

	"swiss-app/internal/model"
)

type reportMatchRequest struct {
	WinnerID int64 `json:"winner_id"`
	LoserID  int64 `json:"loser_id"`
}

func (s *Server) handleMatchesList(w http.ResponseWriter, r *http.Request) {
	matches, err := s.store.ListMatches(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": views})
}

func (s *Server) handleMatchReport(w http.ResponseWriter, r *http.Request) {
	var req reportMatchRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	match, err := s.store.RecordMatch(r.Context(), req.WinnerID, req.LoserID)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.logger.Info("match recorded", "match_id", match.ID, "winner_id", match.WinnerID, "loser_id", match.LoserID)
	writeJSON(w, http.StatusCreated, map[string]any{"match": matchView(match)})
}

func (s *Server) handleMatchesReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteMatches(r.Context()); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.logger.Warn("all matches deleted")
	w.WriteHeader(http.StatusNoContent)
}

func matchView(m model.Match) MatchView {
	return MatchView{ID: m.ID, WinnerID: m.WinnerID, LoserID: m.LoserID, RecordedAt: m.RecordedAt}
}

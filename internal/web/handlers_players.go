package web

import (
	"net/http"

	"swiss-app/internal/model"
)

type registerPlayerRequest struct {
	Name string `json:"name"`
}

func (s *Server) handlePlayersList(w http.ResponseWriter, r *http.Request) {
	players, err := s.store.ListPlayers(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, playerView(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": views})
}

func (s *Server) handlePlayerRegister(w http.ResponseWriter, r *http.Request) {
	var req registerPlayerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	player, err := s.store.RegisterPlayer(r.Context(), req.Name)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.logger.Info("player registered", "player_id", player.ID, "name", player.Name)
	writeJSON(w, http.StatusCreated, map[string]any{"player": playerView(player)})
}

func (s *Server) handlePlayersCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountPlayers(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) handlePlayersReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePlayers(r.Context()); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.logger.Warn("all players deleted")
	w.WriteHeader(http.StatusNoContent)
}

func playerView(p model.Player) PlayerView {
	return PlayerView{ID: p.ID, Name: p.Name, RegisteredAt: p.RegisteredAt}
}

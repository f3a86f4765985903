package api

import (
	"net/http"

	"github.com/vytor/eligesaludable/internal/logger"
)

func (s *Server) handleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req registerPlayerRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}

	player, err := s.PlayerService.Register(r.Context(), req.Nombre)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("player registered: jugador_id=%d", player.ID)
	writeJSON(w, r, http.StatusCreated, envelope{
		"jugador_id": player.ID,
		"nombre":     player.Name,
	})
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "player")
	if err != nil {
		handleError(w, r, err)
		return
	}

	player, err := s.PlayerService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"jugador": player})
}

func (s *Server) handlePlayerRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.RankingService.PlayerRanking(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"ranking": ranking})
}

func (s *Server) handlePodium(w http.ResponseWriter, r *http.Request) {
	podium, err := s.RankingService.Podium(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"podio": podium})
}

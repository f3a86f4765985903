package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/eligesaludable/internal/logger"
)

func (s *Server) handleListLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.LevelService.ListLevels(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"niveles": levels})
}

func (s *Server) handleLevelFoods(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	level := chi.URLParam(r, "nivel")
	log.Debug("level foods requested: nivel=%s", level)

	foods, err := s.LevelService.FoodsForLevel(r.Context(), level)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"alimentos": foods})
}

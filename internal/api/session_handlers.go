package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
)

const (
	msgSummarySaved     = "Resumen guardado correctamente"
	msgAlreadyFinalized = "Partida ya finalizada"
)

func sessionIDParam(r *http.Request) (int64, error) {
	return idParam(r, "session")
}

func idParam(r *http.Request, resource string) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid " + resource + " id: " + raw)
	}
	return id, nil
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.SessionService.Start(r.Context(), req.JugadorID, req.VidasIniciales)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, envelope{
		"partida_id":      session.ID,
		"vidas_restantes": session.RemainingLives,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.SessionService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{"partida": session})
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.SessionService.SubmitAnswer(r.Context(), models.Answer{
		SessionID:      req.PartidaID,
		LevelID:        req.NivelID,
		FoodID:         req.AlimentoID,
		Correct:        bool(*req.Correcta),
		ElapsedSeconds: *req.Tiempo,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope{
		"puntos_obtenidos": result.Points,
		"puntuacion_total": result.TotalScore,
		"vidas_restantes":  result.RemainingLives,
	})
}

// handleFinalizeSession serves PATCH /api/partidas/{id}/finalizar; the body is optional.
func (s *Server) handleFinalizeSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req finalizeRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(w, r, err)
		return
	}
	s.finalize(w, r, id, req.NivelMaximo)
}

// handleFinalizeSessionByBody serves POST /api/finalizar-partida.
func (s *Server) handleFinalizeSessionByBody(w http.ResponseWriter, r *http.Request) {
	var req finalizeSessionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}
	s.finalize(w, r, req.PartidaID, req.NivelMaximo)
}

func (s *Server) finalize(w http.ResponseWriter, r *http.Request, id int64, maxLevel int) {
	log := logger.FromContext(r.Context())

	result, err := s.SessionService.Finalize(r.Context(), id, maxLevel)
	if err != nil {
		handleError(w, r, err)
		return
	}

	msg := msgSummarySaved
	if result.AlreadyFinalized {
		msg = msgAlreadyFinalized
		log.Debug("finalize repeated: partida_id=%d", id)
	}
	writeJSON(w, r, http.StatusOK, envelope{
		"mensaje":       msg,
		"resumen":       result.Summary,
		"ya_finalizada": result.AlreadyFinalized,
	})
}

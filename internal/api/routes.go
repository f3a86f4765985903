package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/eligesaludable/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(trustedRealIP(s.TrustedProxies))
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(corsMiddleware(s.AllowedOrigins))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		if s.RateLimitRPS > 0 {
			r.Use(newIPRateLimiter(s.RateLimitRPS, s.RateLimitBurst).middleware)
		}

		r.Post("/jugadores", s.handleRegisterPlayer)
		r.Get("/jugadores/ranking", s.handlePlayerRanking)
		r.Get("/jugadores/{id}", s.handleGetPlayer)

		r.Get("/niveles", s.handleListLevels)
		r.Get("/niveles/{nivel}/alimentos", s.handleLevelFoods)

		r.Post("/partidas", s.handleStartSession)
		r.Get("/partidas/{id}", s.handleGetSession)
		r.Patch("/partidas/{id}/finalizar", s.handleFinalizeSession)
		r.Post("/finalizar-partida", s.handleFinalizeSessionByBody)

		r.Post("/respuestas", s.handleSubmitAnswer)
		r.Get("/podio", s.handlePodium)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundMessage("Ruta no encontrada"))
	})
	return r
}

package api

import (
	"net/http"

	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
)

const internalErrorMessage = "Error interno del servidor"

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	appErr := errors.AsAppError(err)

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	message := appErr.Message
	if appErr.Status >= 500 {
		message = internalErrorMessage
	}
	encode(w, r, appErr.Status, envelope{
		"success": false,
		"error":   message,
	})
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/vytor/eligesaludable/internal/logger"
)

type envelope map[string]any

// writeJSON writes body as a success envelope.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	if body == nil {
		body = envelope{}
	}
	body["success"] = true
	encode(w, r, status, body)
}

func encode(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
